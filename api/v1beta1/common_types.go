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
	corev1 "k8s.io/api/core/v1"
)

// VersionTriple identifies a runner jar to download from the PaperMC API.
type VersionTriple struct {
	// Type of jar to run.
	// +kubebuilder:validation:Enum=paper;velocity
	Type string `json:"type"`

	// Version according to the PaperMC API.
	Version string `json:"version"`

	// Build according to the PaperMC API.
	Build string `json:"build"`
}

// ConfigOptions names a ConfigMap to mount inside the runner's root.
type ConfigOptions struct {
	// Name of the ConfigMap to mount.
	Name string `json:"name"`

	// Path, relative to the runner root, to mount the ConfigMap at.
	Path string `json:"path"`
}

// RunnerOptions configures the in-container runner process.
type RunnerOptions struct {
	// Jar to download and run.
	Jar VersionTriple `json:"jar"`

	// Jvm is a space-separated list of JVM options (e.g. "-Dsomething=x -Dother=y").
	// +optional
	Jvm string `json:"jvm,omitempty"`

	// Config is the set of ConfigMaps to mount inside the runner root.
	// +optional
	Config []ConfigOptions `json:"config,omitempty"`

	// Plugins is a list of plugin URLs to download on server start.
	// +optional
	Plugins []string `json:"plugins,omitempty"`
}

// ContainerOptions configures the pod that runs the runner container.
type ContainerOptions struct {
	// Stateful controls whether the backing workload is a StatefulSet.
	// TODO: no reconcile path currently branches on this; a future
	// revision may degrade Stateful=false to a plain Deployment.
	// +optional
	Stateful *bool `json:"stateful,omitempty"`

	// Resources are the resource requirements for the runner container.
	// +optional
	Resources *corev1.ResourceRequirements `json:"resources,omitempty"`

	// Volume mounted at /data (ignored if VolumeClaimTemplate is set).
	// Only meaningful for replicas=1, since the volume is shared across pods.
	// +optional
	Volume *corev1.Volume `json:"volume,omitempty"`

	// VolumeClaimTemplate, if set, is used as a per-replica persistent
	// volume mounted at /data, overriding Volume.
	// +optional
	VolumeClaimTemplate *corev1.PersistentVolumeClaim `json:"volumeClaimTemplate,omitempty"`

	// NodeSelector restricts which nodes the runner pod can be scheduled on.
	// +optional
	NodeSelector map[string]string `json:"nodeSelector,omitempty"`

	// SecurityContext for the runner pod.
	// +optional
	SecurityContext *corev1.PodSecurityContext `json:"securityContext,omitempty"`
}

// ProxyOptions configures how a MinecraftSet is routed to by a proxy.
type ProxyOptions struct {
	// Hostname forces a Velocity forced-host entry for this set.
	// +optional
	Hostname *string `json:"hostname,omitempty"`

	// Priority orders this set in the proxy's default try list.
	// +optional
	Priority *int32 `json:"priority,omitempty"`
}
