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
	"fmt"
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
	"github.com/njha/mycelium/internal/version"
)

// MinecraftProxyReconciler reconciles a MinecraftProxy object into its
// backing objects, and injects the discovery plugin that lets the proxy
// call back into this operator's /servers join endpoint.
type MinecraftProxyReconciler struct {
	Deps     reconcile.Deps
	Metrics  *metrics.Metrics
	Endpoint string
}

//+kubebuilder:rbac:groups=mycelium.njha.dev,resources=minecraftproxies,verbs=get;list;watch;create;update;patch;delete
//+kubebuilder:rbac:groups=mycelium.njha.dev,resources=minecraftproxies/status,verbs=get;update;patch
//+kubebuilder:rbac:groups=apps,resources=statefulsets,verbs=get;list;watch;create;update;patch;delete
//+kubebuilder:rbac:groups=core,resources=services;secrets,verbs=get;list;watch;create;update;patch;delete
//+kubebuilder:rbac:groups=policy,resources=poddisruptionbudgets,verbs=get;list;watch;create;update;patch;delete
//+kubebuilder:rbac:groups=core,resources=events,verbs=create;patch

const discoveryPluginURLTemplate = "https://ci.njha.dev/mycelium/artifacts/mycelium-velocity-plugin-%s-all.jar"

// Reconcile drives a MinecraftProxy's backing objects towards its spec. On
// failure it requeues after reconcileErrorRequeue, which is declared (with
// its rationale) in minecraftset_controller.go.
func (r *MinecraftProxyReconciler) Reconcile(ctx context.Context, req ctrl.Request) (ctrl.Result, error) {
	logger := log.FromContext(ctx)
	start := time.Now()

	mcproxy := &mceliumv1beta1.MinecraftProxy{}
	if err := r.Deps.Client.Get(ctx, req.NamespacedName, mcproxy); err != nil {
		return ctrl.Result{}, client.IgnoreNotFound(err)
	}

	plugins := append([]string{}, mcproxy.Spec.Runner.Plugins...)
	plugins = append(plugins, fmt.Sprintf(discoveryPluginURLTemplate, version.Version))

	opts := reconcile.Options{
		Env: []corev1.EnvVar{
			{Name: "MYCELIUM_RUNNER_KIND", Value: "proxy"},
			{Name: "MYCELIUM_PLUGINS", Value: strings.Join(plugins, ",")},
			{Name: "MYCELIUM_ENDPOINT", Value: r.Endpoint},
			{
				// Why downward-API: a proxy pod needs to know which
				// MinecraftProxy CR it belongs to in order to fetch its
				// own backend list from /servers/{ns}/{name}.
				Name: "K8S_NAMESPACE",
				ValueFrom: &corev1.EnvVarSource{
					FieldRef: &corev1.ObjectFieldSelector{FieldPath: "metadata.namespace"},
				},
			},
			{
				Name: "K8S_NAME",
				ValueFrom: &corev1.EnvVarSource{
					FieldRef: &corev1.ObjectFieldSelector{FieldPath: "metadata.name"},
				},
			},
		},
		Port:      intstr.FromInt(25577),
		Shortname: "mcproxy",
		Container: mcproxy.Spec.Container,
		Runner:    mcproxy.Spec.Runner,
		Replicas:  mcproxy.Spec.Replicas,
	}

	err := reconcile.Reconcile(ctx, r.Deps, mcproxy, opts)
	r.Metrics.ProxyReconcileDuration.Observe(time.Since(start).Seconds())

	if err != nil {
		logger.Error(err, "failed to reconcile MinecraftProxy", "name", mcproxy.Name, "namespace", mcproxy.Namespace)
		if r.Deps.Recorder != nil {
			r.Deps.Recorder.Event(mcproxy, corev1.EventTypeWarning, "ReconcileFailed", err.Error())
		}
		return ctrl.Result{RequeueAfter: reconcileErrorRequeue}, nil
	}

	r.Metrics.ProxyHandledEvents.Inc()
	if r.Deps.Recorder != nil {
		r.Deps.Recorder.Event(mcproxy, corev1.EventTypeNormal, "Reconciled", "converged backing objects")
	}
	return ctrl.Result{}, nil
}

// SetupWithManager wires the controller to watch MinecraftProxies and the
// objects it owns.
func (r *MinecraftProxyReconciler) SetupWithManager(mgr ctrl.Manager) error {
	return ctrl.NewControllerManagedBy(mgr).
		For(&mceliumv1beta1.MinecraftProxy{}).
		Owns(&appsv1.StatefulSet{}).
		Owns(&corev1.Service{}).
		Owns(&policyv1.PodDisruptionBudget{}).
		Complete(r)
}
