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

// Command crdgen writes config/samples/*.yaml from the live API types, so
// sample manifests can be regenerated whenever the CRD schema changes
// instead of hand-edited out of sync.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/njha/mycelium/internal/crdgen"
)

func main() {
	dir := "config/samples"
	if len(os.Args) > 1 {
		dir = os.Args[1]
	}

	samples, err := crdgen.Samples()
	if err != nil {
		fmt.Fprintf(os.Stderr, "rendering samples: %s\n", err)
		os.Exit(1)
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "creating %s: %s\n", dir, err)
		os.Exit(1)
	}

	for name, content := range samples {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, content, 0o644); err != nil {
			fmt.Fprintf(os.Stderr, "writing %s: %s\n", path, err)
			os.Exit(1)
		}
		fmt.Println("wrote", path)
	}
}
