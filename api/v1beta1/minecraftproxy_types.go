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

package v1beta1

import (
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

// MinecraftProxySpec defines the desired state of a pool of gateway proxies.
type MinecraftProxySpec struct {
	// Replicas is the number of proxy instances.
	// +kubebuilder:validation:Minimum=0
	Replicas int32 `json:"replicas"`

	// Runner configures the in-container proxy process.
	Runner RunnerOptions `json:"runner"`

	// Container configures the pod that runs the runner.
	// +optional
	Container ContainerOptions `json:"container,omitempty"`

	// Selector restricts, by matchLabels equality, which MinecraftSets this
	// proxy fronts. An empty/absent selector matches no sets.
	// +optional
	Selector *metav1.LabelSelector `json:"selector,omitempty"`
}

// MinecraftProxyStatus defines the observed state of a MinecraftProxy.
type MinecraftProxyStatus struct{}

//+kubebuilder:object:root=true
//+kubebuilder:subresource:status
//+kubebuilder:resource:shortName=mcproxy
//+kubebuilder:printcolumn:name="Replicas",type="integer",JSONPath=".spec.replicas"

// MinecraftProxy is the Schema for the minecraftproxies API.
type MinecraftProxy struct {
	metav1.TypeMeta   `json:",inline"`
	metav1.ObjectMeta `json:"metadata,omitempty"`

	Spec   MinecraftProxySpec   `json:"spec,omitempty"`
	Status MinecraftProxyStatus `json:"status,omitempty"`
}

//+kubebuilder:object:root=true

// MinecraftProxyList contains a list of MinecraftProxy.
type MinecraftProxyList struct {
	metav1.TypeMeta `json:",inline"`
	metav1.ListMeta `json:"metadata,omitempty"`
	Items           []MinecraftProxy `json:"items"`
}

func init() {
	SchemeBuilder.Register(&MinecraftProxy{}, &MinecraftProxyList{})
}
