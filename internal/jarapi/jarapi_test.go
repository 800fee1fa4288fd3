package jarapi

import "testing"

func TestDownloadURL(t *testing.T) {
	got := DownloadURL("paper", "1.20.4", "497")
	want := "https://papermc.io/api/v2/projects/paper/versions/1.20.4/builds/497/downloads/paper-1.20.4-497.jar"
	if got != want {
		t.Fatalf("DownloadURL() = %q, want %q", got, want)
	}
}

func TestDownloadURLVelocity(t *testing.T) {
	got := DownloadURL("velocity", "3.1.2", "45")
	want := "https://papermc.io/api/v2/projects/velocity/versions/3.1.2/builds/45/downloads/velocity-3.1.2-45.jar"
	if got != want {
		t.Fatalf("DownloadURL() = %q, want %q", got, want)
	}
}
