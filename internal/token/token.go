// Package token derives the per-namespace forwarding token shared between
// the operator and the runner's proxy-to-backend handshake.
//
// The algorithm is part of the public contract (see spec §9 design notes):
// changing it silently rotates every token in every namespace.
package token

import (
	"crypto/sha256"
	"encoding/base64"
)

// Forwarding derives the forwarding token for a namespace from the
// operator-global secret: base64(SHA-224(secret ‖ namespace)).
//
// It is a pure function of (secret, namespace): re-running the operator,
// or re-reconciling, always yields the same value for the same namespace,
// and changing the namespace always changes the value.
func Forwarding(globalSecret, namespace string) string {
	h := sha256.New224()
	h.Write([]byte(globalSecret))
	h.Write([]byte(namespace))
	return base64.StdEncoding.EncodeToString(h.Sum(nil))
}
