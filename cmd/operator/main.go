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

package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/go-logr/zapr"
	"github.com/oklog/run"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
	"k8s.io/apimachinery/pkg/runtime"
	utilruntime "k8s.io/apimachinery/pkg/util/runtime"
	clientgoscheme "k8s.io/client-go/kubernetes/scheme"
	ctrl "sigs.k8s.io/controller-runtime"
	metricsserver "sigs.k8s.io/controller-runtime/pkg/metrics/server"

	"github.com/njha/mycelium/api/v1beta1"
	"github.com/njha/mycelium/internal/config"
	"github.com/njha/mycelium/internal/controller"
	"github.com/njha/mycelium/internal/httpapi"
	"github.com/njha/mycelium/internal/manager"
	"github.com/njha/mycelium/internal/metrics"
	"github.com/njha/mycelium/internal/reconcile"
	"github.com/njha/mycelium/internal/state"
	"github.com/njha/mycelium/internal/version"
)

var (
	scheme   = runtime.NewScheme()
	setupLog = ctrl.Log.WithName("setup")
)

func init() {
	utilruntime.Must(clientgoscheme.AddToScheme(scheme))
	utilruntime.Must(v1beta1.AddToScheme(scheme))
	// +kubebuilder:scaffold:scheme
}

func main() {
	var healthProbeAddr string
	var managerMetricsAddr string
	flag.StringVar(&healthProbeAddr, "manager-health-probe-bind-address", ":8081", "The address the manager's own health probe endpoint binds to.")
	flag.StringVar(&managerMetricsAddr, "manager-metrics-bind-address", "0", "The address the manager's internal metrics endpoint binds to; 0 disables it in favor of the operator's own /metrics.")
	flag.Parse()

	zapLogger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintf(os.Stderr, "building zap logger failed: %s\n", err)
		os.Exit(1)
	}
	defer func() { _ = zapLogger.Sync() }()
	ctrl.SetLogger(zapr.NewLogger(zapLogger))

	setupLog.Info("starting mycelium operator", "version", version.Version)

	cfg, err := config.Load()
	if err != nil {
		setupLog.Error(err, "loading configuration failed")
		os.Exit(1)
	}

	restCfg, err := ctrl.GetConfig()
	if err != nil {
		setupLog.Error(err, "loading kubeconfig failed")
		os.Exit(1)
	}

	mgr, err := ctrl.NewManager(restCfg, ctrl.Options{
		Scheme:                 scheme,
		HealthProbeBindAddress: healthProbeAddr,
		Metrics: metricsserver.Options{
			BindAddress: managerMetricsAddr,
		},
	})
	if err != nil {
		setupLog.Error(err, "unable to start controller manager")
		os.Exit(1)
	}

	st := state.New()
	registry := prometheus.NewRegistry()
	registry.MustRegister(prometheus.NewGoCollector(), prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}))
	metricsHandles := metrics.New(registry)

	deps := reconcile.Deps{
		Client:   mgr.GetClient(),
		Scheme:   mgr.GetScheme(),
		Config:   cfg,
		State:    st,
		Recorder: mgr.GetEventRecorderFor("mycelium"),
	}

	setReconciler := &controller.MinecraftSetReconciler{Deps: deps, Metrics: metricsHandles}
	if err := setReconciler.SetupWithManager(mgr); err != nil {
		setupLog.Error(err, "unable to create controller", "controller", "MinecraftSet")
		os.Exit(1)
	}

	proxyReconciler := &controller.MinecraftProxyReconciler{Deps: deps, Metrics: metricsHandles, Endpoint: cfg.Endpoint}
	if err := proxyReconciler.SetupWithManager(mgr); err != nil {
		setupLog.Error(err, "unable to create controller", "controller", "MinecraftProxy")
		os.Exit(1)
	}
	// +kubebuilder:scaffold:builder

	joinMgr := manager.New(mgr.GetClient(), st)
	httpServer := httpapi.NewServer(joinMgr, registry)

	var g run.Group
	{
		ctx, cancel := context.WithCancel(context.Background())
		g.Add(func() error {
			setupLog.Info("starting controller manager")
			return mgr.Start(ctx)
		}, func(error) {
			cancel()
		})
	}
	{
		g.Add(func() error {
			setupLog.Info("starting http surface", "addr", httpServer.Addr)
			return httpServer.ListenAndServe()
		}, func(error) {
			ctx, cancel := context.WithTimeout(context.Background(), time.Second)
			defer cancel()
			_ = httpServer.Shutdown(ctx)
		})
	}

	if err := g.Run(); err != nil {
		setupLog.Error(err, "exiting")
		os.Exit(1)
	}
}
