package reconcile

import (
	"fmt"

	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/runtime"
	"sigs.k8s.io/controller-runtime/pkg/client"
	"sigs.k8s.io/controller-runtime/pkg/client/apiutil"

	"github.com/njha/mycelium/internal/operror"
)

// controllerOwnerReference builds an OwnerReference with Controller=true
// pointing at obj. This is what drives cascading garbage collection of a
// CR's child objects (spec invariant: every child carries exactly one
// owner reference with controller=true).
func controllerOwnerReference(scheme *runtime.Scheme, obj client.Object) (metav1.OwnerReference, error) {
	gvk, err := apiutil.GVKForObject(obj, scheme)
	if err != nil {
		return metav1.OwnerReference{}, operror.New(operror.KindStructural, "controllerOwnerReference", err)
	}
	if obj.GetName() == "" {
		return metav1.OwnerReference{}, operror.Structural("controllerOwnerReference", "object has no name")
	}
	if obj.GetUID() == "" {
		return metav1.OwnerReference{}, operror.Structural("controllerOwnerReference", "object has no uid")
	}
	isController := true
	blockOwnerDeletion := true
	return metav1.OwnerReference{
		APIVersion:         gvk.GroupVersion().String(),
		Kind:               gvk.Kind,
		Name:               obj.GetName(),
		UID:                obj.GetUID(),
		Controller:         &isController,
		BlockOwnerDeletion: &blockOwnerDeletion,
	}, nil
}

func requireNameAndNamespace(obj client.Object) (name, namespace string, err error) {
	name = obj.GetName()
	namespace = obj.GetNamespace()
	if name == "" {
		return "", "", operror.Structural("requireNameAndNamespace", fmt.Sprintf("%T has no name", obj))
	}
	if namespace == "" {
		return "", "", operror.Structural("requireNameAndNamespace", fmt.Sprintf("%T has no namespace", obj))
	}
	return name, namespace, nil
}
