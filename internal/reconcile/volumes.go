package reconcile

import (
	"path"

	corev1 "k8s.io/api/core/v1"

	"github.com/njha/mycelium/api/v1beta1"
)

// configVolumeMount mounts a ConfigMap-backed volume at a deterministic
// path under /config, the layout the runner expects.
func configVolumeMount(co v1beta1.ConfigOptions) corev1.VolumeMount {
	return corev1.VolumeMount{
		Name:      co.Name,
		MountPath: path.Join("/config", co.Path),
	}
}

// configVolume builds the ConfigMap-backed Volume matching configVolumeMount.
func configVolume(co v1beta1.ConfigOptions) corev1.Volume {
	return corev1.Volume{
		Name: co.Name,
		VolumeSource: corev1.VolumeSource{
			ConfigMap: &corev1.ConfigMapVolumeSource{
				LocalObjectReference: corev1.LocalObjectReference{Name: co.Name},
			},
		},
	}
}
