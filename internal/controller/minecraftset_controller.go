/*
Copyright 2024.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package controller

import (
	"context"
	"strings"
	"time"

	appsv1 "k8s.io/api/apps/v1"
	corev1 "k8s.io/api/core/v1"
	policyv1 "k8s.io/api/policy/v1"
	"k8s.io/apimachinery/pkg/util/intstr"
	ctrl "sigs.k8s.io/controller-runtime"
	"sigs.k8s.io/controller-runtime/pkg/client"
	"sigs.k8s.io/controller-runtime/pkg/log"

	mceliumv1beta1 "github.com/njha/mycelium/api/v1beta1"
	"github.com/njha/mycelium/internal/metrics"
	"github.com/njha/mycelium/internal/reconcile"
)

// MinecraftSetReconciler reconciles a MinecraftSet object into its
// StatefulSet/Service/PodDisruptionBudget/Secret backing objects.
type MinecraftSetReconciler struct {
	Deps    reconcile.Deps
	Metrics *metrics.Metrics
}

//+kubebuilder:rbac:groups=mycelium.njha.dev,resources=minecraftsets,verbs=get;list;watch;create;update;patch;delete
//+kubebuilder:rbac:groups=mycelium.njha.dev,resources=minecraftsets/status,verbs=get;update;patch
//+kubebuilder:rbac:groups=apps,resources=statefulsets,verbs=get;list;watch;create;update;patch;delete
//+kubebuilder:rbac:groups=core,resources=services;secrets,verbs=get;list;watch;create;update;patch;delete
//+kubebuilder:rbac:groups=policy,resources=poddisruptionbudgets,verbs=get;list;watch;create;update;patch;delete
//+kubebuilder:rbac:groups=core,resources=events,verbs=create;patch

// reconcileErrorRequeue is the fixed requeue delay on a failed reconcile.
// Returning it alongside a nil error (rather than returning the error
// itself) opts out of controller-runtime's default exponential-backoff
// rate limiter: persistent misconfiguration retries slowly and steadily
// instead of hammering the API server, but never backs off further.
const reconcileErrorRequeue = 360 * time.Second

// Reconcile drives a MinecraftSet's backing objects towards its spec. On
// success it returns a bare ctrl.Result{}: the controller framework
// re-triggers on watched-object changes. On failure it requeues after
// reconcileErrorRequeue.
func (r *MinecraftSetReconciler) Reconcile(ctx context.Context, req ctrl.Request) (ctrl.Result, error) {
	logger := log.FromContext(ctx)
	start := time.Now()

	mcset := &mceliumv1beta1.MinecraftSet{}
	if err := r.Deps.Client.Get(ctx, req.NamespacedName, mcset); err != nil {
		return ctrl.Result{}, client.IgnoreNotFound(err)
	}

	plugins := strings.Join(mcset.Spec.Runner.Plugins, ",")
	opts := reconcile.Options{
		Env: []corev1.EnvVar{
			{Name: "MYCELIUM_RUNNER_KIND", Value: "game"},
			{Name: "MYCELIUM_PLUGINS", Value: plugins},
		},
		Port:      intstr.FromInt(25565),
		Shortname: "mcset",
		Container: mcset.Spec.Container,
		Runner:    mcset.Spec.Runner,
		Replicas:  mcset.Spec.Replicas,
	}

	err := reconcile.Reconcile(ctx, r.Deps, mcset, opts)
	r.Metrics.SetReconcileDuration.Observe(time.Since(start).Seconds())

	if err != nil {
		logger.Error(err, "failed to reconcile MinecraftSet", "name", mcset.Name, "namespace", mcset.Namespace)
		if r.Deps.Recorder != nil {
			r.Deps.Recorder.Event(mcset, corev1.EventTypeWarning, "ReconcileFailed", err.Error())
		}
		return ctrl.Result{RequeueAfter: reconcileErrorRequeue}, nil
	}

	r.Metrics.SetHandledEvents.Inc()
	if r.Deps.Recorder != nil {
		r.Deps.Recorder.Event(mcset, corev1.EventTypeNormal, "Reconciled", "converged backing objects")
	}
	return ctrl.Result{}, nil
}

// SetupWithManager wires the controller to watch MinecraftSets and the
// StatefulSets/Services/PodDisruptionBudgets it owns, so changes to the
// owned objects re-trigger reconciliation of their owner.
func (r *MinecraftSetReconciler) SetupWithManager(mgr ctrl.Manager) error {
	return ctrl.NewControllerManagedBy(mgr).
		For(&mceliumv1beta1.MinecraftSet{}).
		Owns(&appsv1.StatefulSet{}).
		Owns(&corev1.Service{}).
		Owns(&policyv1.PodDisruptionBudget{}).
		Complete(r)
}
