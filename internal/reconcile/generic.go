// Package reconcile implements the generic reconciliation routine shared
// by the MinecraftSet and MinecraftProxy controllers: it assembles one
// StatefulSet, one headless Service, one PodDisruptionBudget, and one
// derived forwarding Secret from a CR's spec, and server-side-applies all
// four under the mycelium.njha.dev field manager.
package reconcile

import (
	"context"
	"fmt"

	appsv1 "k8s.io/api/apps/v1"
	corev1 "k8s.io/api/core/v1"
	policyv1 "k8s.io/api/policy/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/runtime"
	"k8s.io/apimachinery/pkg/util/intstr"
	"k8s.io/client-go/tools/record"
	"sigs.k8s.io/controller-runtime/pkg/client"

	"github.com/njha/mycelium/api/v1beta1"
	"github.com/njha/mycelium/internal/config"
	"github.com/njha/mycelium/internal/jarapi"
	"github.com/njha/mycelium/internal/operror"
	"github.com/njha/mycelium/internal/state"
	"github.com/njha/mycelium/internal/token"
)

// FieldManager is the field-manager identity used on every server-side
// apply patch the operator issues. No other actor should re-use it.
const FieldManager = "mycelium.njha.dev"

// ExternalServicePort is the TCP port the headless service forwards on,
// for both MinecraftSet and MinecraftProxy backed workloads.
//
// TODO: earlier revisions of this reconciler computed a distinct external
// port per kind (25577 for proxies, 25565 for sets). The most recent
// revision always exposes 25565 externally regardless of kind; this has
// not been reconfirmed as intentional, so it is kept as the safe default
// rather than guessed at.
const ExternalServicePort = 25565

// Deps are the shared collaborators every reconcile needs: the API
// client, operator-global config, the in-memory heartbeat, and an event
// recorder. One Deps is constructed once in cmd/operator and shared by
// both the set and proxy reconcilers.
type Deps struct {
	Client   client.Client
	Scheme   *runtime.Scheme
	Config   config.Config
	State    *state.State
	Recorder record.EventRecorder
}

// Options carries everything specific to one reconcile call: the caller's
// extra environment variables, the pod target port the service forwards
// to, the label shortname ("mcset" or "mcproxy"), and the CR's container
// and runner spec fragments.
type Options struct {
	Env       []corev1.EnvVar
	Port      intstr.IntOrString
	Shortname string
	Container v1beta1.ContainerOptions
	Runner    v1beta1.RunnerOptions
	Replicas  int32
}

// Reconcile assembles and applies the four child objects for one CR. It
// is the single place that knows how a MinecraftSet or MinecraftProxy
// spec becomes Kubernetes objects; set/proxy reconcilers only supply the
// parts that differ between kinds.
func Reconcile(ctx context.Context, deps Deps, owner client.Object, opts Options) error {
	name, namespace, err := requireNameAndNamespace(owner)
	if err != nil {
		return err
	}

	ownerRef, err := controllerOwnerReference(deps.Scheme, owner)
	if err != nil {
		return err
	}

	// Why: /state exposes a liveness heartbeat usable as a cheap
	// operator-health signal; touch it at the start of every reconcile.
	deps.State.Touch()

	labels := map[string]string{
		fmt.Sprintf("mycelium.njha.dev/%s", opts.Shortname): name,
	}

	volumeMounts, volumes, volumeClaimTemplates, err := dataVolumes(opts)
	if err != nil {
		return err
	}

	env, err := composeEnv(name, opts)
	if err != nil {
		return err
	}

	statefulSet := buildStatefulSet(name, namespace, ownerRef, deps.Config.RunnerImage, labels, opts, env, volumeMounts, volumes, volumeClaimTemplates)
	disruptionBudget := buildDisruptionBudget(name, namespace, ownerRef, labels)
	service := buildService(name, namespace, ownerRef, labels, opts.Port)
	secret, err := buildForwardingSecret(name, namespace, ownerRef, deps.Config.ForwardingSecret)
	if err != nil {
		return err
	}

	// Apply order: budget before workload before service before secret.
	// Why: the budget must exist before pods are admitted, so an
	// eviction racing with reconciliation cannot fire during the window
	// between workload creation and budget creation.
	if err := apply(ctx, deps.Client, disruptionBudget); err != nil {
		return err
	}
	if err := apply(ctx, deps.Client, statefulSet); err != nil {
		return err
	}
	if err := apply(ctx, deps.Client, service); err != nil {
		return err
	}
	if err := apply(ctx, deps.Client, secret); err != nil {
		return err
	}

	return nil
}

func apply(ctx context.Context, c client.Client, obj client.Object) error {
	if err := c.Patch(ctx, obj, client.Apply, client.FieldOwner(FieldManager)); err != nil {
		return operror.New(operror.KindAPI, fmt.Sprintf("apply %T %s/%s", obj, obj.GetNamespace(), obj.GetName()), err)
	}
	return nil
}

// dataVolumes builds the config-map mounts from runner.Config plus, per
// spec priority rules, at most one /data mount: VolumeClaimTemplate wins
// over Volume when both are set (claim templates are per-replica
// persistent; a bare volume shares storage and is only valid for
// replicas=1).
func dataVolumes(opts Options) ([]corev1.VolumeMount, []corev1.Volume, []corev1.PersistentVolumeClaim, error) {
	var mounts []corev1.VolumeMount
	var volumes []corev1.Volume
	var claimTemplates []corev1.PersistentVolumeClaim

	for _, co := range opts.Runner.Config {
		mounts = append(mounts, configVolumeMount(co))
		volumes = append(volumes, configVolume(co))
	}

	switch {
	case opts.Container.VolumeClaimTemplate != nil:
		tpl := *opts.Container.VolumeClaimTemplate
		if tpl.Name == "" {
			return nil, nil, nil, operror.Structural("dataVolumes", "volumeClaimTemplate has no name")
		}
		mounts = append(mounts, corev1.VolumeMount{Name: tpl.Name, MountPath: "/data"})
		claimTemplates = append(claimTemplates, tpl)
	case opts.Container.Volume != nil:
		v := *opts.Container.Volume
		volumes = append(volumes, v)
		mounts = append(mounts, corev1.VolumeMount{Name: v.Name, MountPath: "/data"})
	}

	return mounts, volumes, claimTemplates, nil
}

// composeEnv prepends the three operator-owned reserved variables to the
// caller's extras. Ordering only matters insofar as a caller must not
// redefine one of the reserved names.
func composeEnv(name string, opts Options) ([]corev1.EnvVar, error) {
	reserved := []corev1.EnvVar{
		{Name: "MYCELIUM_JVM_OPTS", Value: opts.Runner.Jvm},
		{
			Name: "MYCELIUM_FW_TOKEN",
			ValueFrom: &corev1.EnvVarSource{
				SecretKeyRef: &corev1.SecretKeySelector{
					LocalObjectReference: corev1.LocalObjectReference{Name: name},
					Key:                  "forwarding_token",
				},
			},
		},
		{
			Name:  "MYCELIUM_RUNNER_JAR_URL",
			Value: jarapi.DownloadURL(opts.Runner.Jar.Type, opts.Runner.Jar.Version, opts.Runner.Jar.Build),
		},
	}
	reservedNames := map[string]bool{}
	for _, e := range reserved {
		reservedNames[e.Name] = true
	}
	for _, e := range opts.Env {
		if reservedNames[e.Name] {
			return nil, operror.Structural("composeEnv", fmt.Sprintf("extra env redefines reserved name %s", e.Name))
		}
	}
	return append(reserved, opts.Env...), nil
}

func buildStatefulSet(
	name, namespace string,
	ownerRef metav1.OwnerReference,
	runnerImage string,
	labels map[string]string,
	opts Options,
	env []corev1.EnvVar,
	volumeMounts []corev1.VolumeMount,
	volumes []corev1.Volume,
	volumeClaimTemplates []corev1.PersistentVolumeClaim,
) *appsv1.StatefulSet {
	replicas := opts.Replicas
	return &appsv1.StatefulSet{
		TypeMeta: metav1.TypeMeta{APIVersion: "apps/v1", Kind: "StatefulSet"},
		ObjectMeta: metav1.ObjectMeta{
			Name:            name,
			Namespace:       namespace,
			OwnerReferences: []metav1.OwnerReference{ownerRef},
		},
		Spec: appsv1.StatefulSetSpec{
			Selector:    &metav1.LabelSelector{MatchLabels: labels},
			ServiceName: name,
			Replicas:    &replicas,
			Template: corev1.PodTemplateSpec{
				ObjectMeta: metav1.ObjectMeta{
					Labels: labels,
					Annotations: map[string]string{
						"prometheus.io/port":   "9970",
						"prometheus.io/scrape": "true",
					},
				},
				Spec: corev1.PodSpec{
					SecurityContext: opts.Container.SecurityContext,
					NodeSelector:    opts.Container.NodeSelector,
					Containers: []corev1.Container{
						{
							Name:            name,
							Image:           runnerImage,
							ImagePullPolicy: corev1.PullIfNotPresent,
							TTY:             true,
							Stdin:           true,
							Resources:       derefResources(opts.Container.Resources),
							Env:             env,
							VolumeMounts:    volumeMounts,
						},
					},
					Volumes: volumes,
				},
			},
			VolumeClaimTemplates: volumeClaimTemplates,
		},
	}
}

func derefResources(r *corev1.ResourceRequirements) corev1.ResourceRequirements {
	if r == nil {
		return corev1.ResourceRequirements{}
	}
	return *r
}

func buildDisruptionBudget(name, namespace string, ownerRef metav1.OwnerReference, labels map[string]string) *policyv1.PodDisruptionBudget {
	matchLabels := make(map[string]string, len(labels)+1)
	for k, v := range labels {
		matchLabels[k] = v
	}
	matchLabels["mycelium.njha.dev/destroyable"] = "false"

	maxUnavailable := intstr.FromInt(0)
	return &policyv1.PodDisruptionBudget{
		TypeMeta: metav1.TypeMeta{APIVersion: "policy/v1", Kind: "PodDisruptionBudget"},
		ObjectMeta: metav1.ObjectMeta{
			Name:            name,
			Namespace:       namespace,
			OwnerReferences: []metav1.OwnerReference{ownerRef},
		},
		Spec: policyv1.PodDisruptionBudgetSpec{
			MaxUnavailable: &maxUnavailable,
			Selector:       &metav1.LabelSelector{MatchLabels: matchLabels},
		},
	}
}

func buildService(name, namespace string, ownerRef metav1.OwnerReference, labels map[string]string, targetPort intstr.IntOrString) *corev1.Service {
	return &corev1.Service{
		TypeMeta: metav1.TypeMeta{APIVersion: "v1", Kind: "Service"},
		ObjectMeta: metav1.ObjectMeta{
			Name:            name,
			Namespace:       namespace,
			OwnerReferences: []metav1.OwnerReference{ownerRef},
		},
		Spec: corev1.ServiceSpec{
			// https://kubernetes.io/docs/concepts/services-networking/service/#headless-services
			//
			// TODO: earlier revisions left MinecraftProxy services
			// non-headless (no explicit ClusterIP). This generic path
			// forces headless for both kinds; kept as the safer default
			// pending confirmation this is intended for proxies.
			ClusterIP: corev1.ClusterIPNone,
			Selector:  labels,
			Ports: []corev1.ServicePort{
				{
					Protocol:   corev1.ProtocolTCP,
					Port:       ExternalServicePort,
					TargetPort: targetPort,
				},
			},
		},
	}
}

func buildForwardingSecret(name, namespace string, ownerRef metav1.OwnerReference, globalSecret string) (*corev1.Secret, error) {
	return &corev1.Secret{
		TypeMeta: metav1.TypeMeta{APIVersion: "v1", Kind: "Secret"},
		ObjectMeta: metav1.ObjectMeta{
			Name:            name,
			Namespace:       namespace,
			OwnerReferences: []metav1.OwnerReference{ownerRef},
		},
		StringData: map[string]string{
			"forwarding_token": token.Forwarding(globalSecret, namespace),
		},
	}, nil
}
