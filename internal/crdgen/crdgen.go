// Package crdgen renders sample custom resources for config/samples from
// the same Go structs the operator watches, so the samples can never drift
// out of sync with the API types.
package crdgen

import (
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"sigs.k8s.io/yaml"

	"github.com/njha/mycelium/api/v1beta1"
)

// Samples returns the name -> rendered-YAML map of every sample manifest
// this package knows how to produce.
func Samples() (map[string][]byte, error) {
	out := map[string][]byte{}

	set := &v1beta1.MinecraftSet{
		TypeMeta: metav1.TypeMeta{
			APIVersion: v1beta1.GroupVersion.String(),
			Kind:       "MinecraftSet",
		},
		ObjectMeta: metav1.ObjectMeta{
			Name:      "survival",
			Namespace: "default",
		},
		Spec: v1beta1.MinecraftSetSpec{
			Replicas: 2,
			Runner: v1beta1.RunnerOptions{
				Jar: v1beta1.VersionTriple{Type: "paper", Version: "1.20.4", Build: "497"},
			},
			Proxy: v1beta1.ProxyOptions{
				Hostname: strPtr("survival.example.com"),
			},
		},
	}
	setYAML, err := yaml.Marshal(set)
	if err != nil {
		return nil, err
	}
	out["mycelium_v1beta1_minecraftset.yaml"] = setYAML

	proxy := &v1beta1.MinecraftProxy{
		TypeMeta: metav1.TypeMeta{
			APIVersion: v1beta1.GroupVersion.String(),
			Kind:       "MinecraftProxy",
		},
		ObjectMeta: metav1.ObjectMeta{
			Name:      "gateway",
			Namespace: "default",
		},
		Spec: v1beta1.MinecraftProxySpec{
			Replicas: 1,
			Runner: v1beta1.RunnerOptions{
				Jar: v1beta1.VersionTriple{Type: "velocity", Version: "3.1.2", Build: "45"},
			},
			Selector: &metav1.LabelSelector{
				MatchLabels: map[string]string{"tier": "prod"},
			},
		},
	}
	proxyYAML, err := yaml.Marshal(proxy)
	if err != nil {
		return nil, err
	}
	out["mycelium_v1beta1_minecraftproxy.yaml"] = proxyYAML

	return out, nil
}

func strPtr(s string) *string { return &s }
