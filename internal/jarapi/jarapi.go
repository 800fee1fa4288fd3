// Package jarapi builds download URLs against the PaperMC API.
package jarapi

import "fmt"

// DownloadURL builds the PaperMC download URL for a given jar type
// ("paper" or "velocity"), version, and build.
func DownloadURL(kind, version, build string) string {
	return fmt.Sprintf(
		"https://papermc.io/api/v2/projects/%s/versions/%s/builds/%s/downloads/%s-%s-%s.jar",
		kind, version, build, kind, version, build,
	)
}
