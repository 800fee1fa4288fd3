package token

import "testing"

func TestForwardingIsDeterministic(t *testing.T) {
	a := Forwarding("global-secret", "default")
	b := Forwarding("global-secret", "default")
	if a != b {
		t.Fatalf("Forwarding is not deterministic: %q != %q", a, b)
	}
}

func TestForwardingVariesByNamespace(t *testing.T) {
	a := Forwarding("global-secret", "default")
	b := Forwarding("global-secret", "other-namespace")
	if a == b {
		t.Fatalf("Forwarding produced the same token for two namespaces: %q", a)
	}
}

func TestForwardingVariesBySecret(t *testing.T) {
	a := Forwarding("secret-one", "default")
	b := Forwarding("secret-two", "default")
	if a == b {
		t.Fatalf("Forwarding produced the same token for two secrets: %q", a)
	}
}

func TestForwardingIsBase64(t *testing.T) {
	tok := Forwarding("global-secret", "default")
	if tok == "" {
		t.Fatal("Forwarding returned an empty token")
	}
	// SHA-224 digests are 28 bytes; standard base64 without padding trim
	// encodes that to a fixed-length 40-character string.
	if len(tok) != 40 {
		t.Fatalf("expected a 40-character base64 digest, got %d characters: %q", len(tok), tok)
	}
}
