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
	"time"

	//nolint:golint
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	appsv1 "k8s.io/api/apps/v1"
	corev1 "k8s.io/api/core/v1"
	"k8s.io/apimachinery/pkg/api/errors"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/types"
	"sigs.k8s.io/controller-runtime/pkg/reconcile"

	mceliumv1beta1 "github.com/njha/mycelium/api/v1beta1"
	"github.com/njha/mycelium/internal/config"
	"github.com/njha/mycelium/internal/metrics"
	internalreconcile "github.com/njha/mycelium/internal/reconcile"
	"github.com/njha/mycelium/internal/state"
)

var _ = Describe("MinecraftProxy controller", func() {
	Context("MinecraftProxy controller test", func() {

		const MinecraftProxyName = "test-mcproxy"

		ctx := context.Background()

		namespace := &corev1.Namespace{
			ObjectMeta: metav1.ObjectMeta{
				Name: MinecraftProxyName,
			},
		}

		typeNamespaceName := types.NamespacedName{
			Name:      MinecraftProxyName,
			Namespace: MinecraftProxyName,
		}

		BeforeEach(func() {
			By("Creating the Namespace to perform the tests")
			err := k8sClient.Create(ctx, namespace)
			Expect(err).To(Not(HaveOccurred()))

			By("creating the custom resource for the Kind MinecraftProxy")
			mcproxy := &mceliumv1beta1.MinecraftProxy{}
			err = k8sClient.Get(ctx, typeNamespaceName, mcproxy)
			if err != nil && errors.IsNotFound(err) {
				mcproxy := &mceliumv1beta1.MinecraftProxy{
					ObjectMeta: metav1.ObjectMeta{
						Name:      MinecraftProxyName,
						Namespace: namespace.Name,
					},
					Spec: mceliumv1beta1.MinecraftProxySpec{
						Replicas: 1,
						Runner: mceliumv1beta1.RunnerOptions{
							Jar: mceliumv1beta1.VersionTriple{Type: "velocity", Version: "3.1.2", Build: "45"},
						},
						Selector: &metav1.LabelSelector{
							MatchLabels: map[string]string{"tier": "prod"},
						},
					},
				}
				err = k8sClient.Create(ctx, mcproxy)
				Expect(err).To(Not(HaveOccurred()))
			}
		})

		AfterEach(func() {
			By("removing the custom resource for the Kind MinecraftProxy")
			found := &mceliumv1beta1.MinecraftProxy{}
			err := k8sClient.Get(ctx, typeNamespaceName, found)
			Expect(err).To(Not(HaveOccurred()))

			Eventually(func() error {
				return k8sClient.Delete(context.TODO(), found)
			}, 2*time.Minute, time.Second).Should(Succeed())

			By("Deleting the Namespace to perform the tests")
			_ = k8sClient.Delete(ctx, namespace)
		})

		It("should successfully reconcile a custom resource for MinecraftProxy", func() {
			By("Checking if the custom resource was successfully created")
			Eventually(func() error {
				found := &mceliumv1beta1.MinecraftProxy{}
				return k8sClient.Get(ctx, typeNamespaceName, found)
			}, time.Minute, time.Second).Should(Succeed())

			By("Reconciling the custom resource created")
			reconciler := &MinecraftProxyReconciler{
				Deps: internalreconcile.Deps{
					Client: k8sClient,
					Scheme: k8sClient.Scheme(),
					Config: config.Config{
						ForwardingSecret: "test-secret",
						RunnerImage:      "example.com/mycelium-runner:test",
						Endpoint:         "http://mycelium-operator.default.svc:8080",
					},
					State: state.New(),
				},
				Metrics:  metrics.New(newTestRegistry()),
				Endpoint: "http://mycelium-operator.default.svc:8080",
			}

			_, err := reconciler.Reconcile(ctx, reconcile.Request{
				NamespacedName: typeNamespaceName,
			})
			Expect(err).To(Not(HaveOccurred()))

			By("Checking that the StatefulSet was created with the discovery plugin wired in")
			Eventually(func() error {
				found := &appsv1.StatefulSet{}
				if err := k8sClient.Get(ctx, typeNamespaceName, found); err != nil {
					return err
				}
				for _, env := range found.Spec.Template.Spec.Containers[0].Env {
					if env.Name == "MYCELIUM_PLUGINS" && env.Value != "" {
						return nil
					}
				}
				return errMissingPluginsEnv
			}, time.Minute, time.Second).Should(Succeed())
		})
	})
})
