// Package manager hosts the operator-wide collaborators an HTTP handler
// needs but a reconciler does not: the cross-resource join that answers
// "which backends should this proxy route to", plus the shared heartbeat
// state. It holds no handle on the metrics registry: /metrics is served
// from the registry passed to httpapi.NewServer.
package manager

import (
	"context"
	"fmt"

	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/labels"
	"sigs.k8s.io/controller-runtime/pkg/client"

	"github.com/njha/mycelium/api/v1beta1"
	"github.com/njha/mycelium/internal/operror"
	"github.com/njha/mycelium/internal/state"
)

// Manager is the read path shared by the HTTP surface: it has no mutating
// methods of its own, only queries against the same API client the
// reconcilers write through.
type Manager struct {
	Client client.Client
	State  *state.State
}

// New constructs a Manager.
func New(c client.Client, st *state.State) *Manager {
	return &Manager{Client: c, State: st}
}

// VelocityServerEntry is one row of a join result: a single backend pod
// address a proxy may route a player to.
type VelocityServerEntry struct {
	// Address is the pod's stable DNS name:
	// <set>-<i>.<set>.<namespace>.svc.cluster.local.
	Address string `json:"address"`

	// Name is the pod's name: <set>-<i>.
	Name string `json:"name"`

	// Host is the owning set's forced-host, or nil if unset.
	Host *string `json:"host"`

	// Priority is the owning set's try-list priority, or nil if unset.
	Priority *int32 `json:"priority"`
}

// Join computes the backend list for one MinecraftProxy: it loads the
// proxy, converts its selector to an equality label selector, lists
// matching MinecraftSets in the same namespace, and emits one
// VelocityServerEntry per replica index of every matching set.
//
// An empty or absent selector is conservative: it matches nothing, never
// everything.
func (m *Manager) Join(ctx context.Context, namespace, name string) ([]VelocityServerEntry, error) {
	proxy := &v1beta1.MinecraftProxy{}
	if err := m.Client.Get(ctx, client.ObjectKey{Namespace: namespace, Name: name}, proxy); err != nil {
		return nil, operror.New(operror.KindAPI, "manager.Join: get proxy", err)
	}

	selector, ok := equalitySelector(proxy.Spec.Selector)
	if !ok {
		return nil, nil
	}

	var sets v1beta1.MinecraftSetList
	if err := m.Client.List(ctx, &sets, client.InNamespace(namespace), client.MatchingLabelsSelector{Selector: selector}); err != nil {
		return nil, operror.New(operror.KindAPI, "manager.Join: list sets", err)
	}

	var entries []VelocityServerEntry
	for _, set := range sets.Items {
		for i := int32(0); i < set.Spec.Replicas; i++ {
			podName := fmt.Sprintf("%s-%d", set.Name, i)
			entries = append(entries, VelocityServerEntry{
				Address:  fmt.Sprintf("%s.%s.%s.svc.cluster.local", podName, set.Name, set.Namespace),
				Name:     podName,
				Host:     set.Spec.Proxy.Hostname,
				Priority: set.Spec.Proxy.Priority,
			})
		}
	}
	return entries, nil
}

// equalitySelector converts a *metav1.LabelSelector restricted to
// matchLabels into a labels.Selector. A nil selector or one with no
// matchLabels reports ok=false, signalling "selects nothing" to the
// caller rather than the labels package's default "selects everything".
func equalitySelector(sel *metav1.LabelSelector) (labels.Selector, bool) {
	if sel == nil || len(sel.MatchLabels) == 0 {
		return nil, false
	}
	return labels.SelectorFromSet(sel.MatchLabels), true
}
