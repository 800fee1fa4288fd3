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

// MinecraftSetSpec defines the desired state of a fleet of identical game backends.
type MinecraftSetSpec struct {
	// Replicas is the number of backend instances.
	// +kubebuilder:validation:Minimum=0
	Replicas int32 `json:"replicas"`

	// Runner configures the in-container server process.
	Runner RunnerOptions `json:"runner"`

	// Container configures the pod that runs the runner.
	// +optional
	Container ContainerOptions `json:"container,omitempty"`

	// Proxy configures how proxies route to this set.
	// +optional
	Proxy ProxyOptions `json:"proxy,omitempty"`
}

// MinecraftSetStatus defines the observed state of a MinecraftSet.
type MinecraftSetStatus struct{}

//+kubebuilder:object:root=true
//+kubebuilder:subresource:status
//+kubebuilder:resource:shortName=mcset
//+kubebuilder:printcolumn:name="Replicas",type="integer",JSONPath=".spec.replicas"

// MinecraftSet is the Schema for the minecraftsets API.
type MinecraftSet struct {
	metav1.TypeMeta   `json:",inline"`
	metav1.ObjectMeta `json:"metadata,omitempty"`

	Spec   MinecraftSetSpec   `json:"spec,omitempty"`
	Status MinecraftSetStatus `json:"status,omitempty"`
}

//+kubebuilder:object:root=true

// MinecraftSetList contains a list of MinecraftSet.
type MinecraftSetList struct {
	metav1.TypeMeta `json:",inline"`
	metav1.ListMeta `json:"metadata,omitempty"`
	Items           []MinecraftSet `json:"items"`
}

func init() {
	SchemeBuilder.Register(&MinecraftSet{}, &MinecraftSetList{})
}
