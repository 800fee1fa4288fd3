// Package operror defines the error taxonomy shared across the operator:
// a small set of kinds (not Go types) that callers can test for with Is
// (which uses errors.As, so it sees through wrapping), mirroring the original implementation's Error enum without
// forcing every caller through a switch on a concrete type.
package operror

import "errors"

// Kind classifies an error for logging and propagation-policy purposes.
type Kind int

const (
	// KindOther covers anything not classified below.
	KindOther Kind = iota
	// KindAPI is a Kubernetes API call failure (list/get/patch).
	KindAPI
	// KindSerialization is a JSON/YAML marshal or unmarshal failure.
	KindSerialization
	// KindUpstreamHTTP is an outbound HTTP call failure (e.g. PaperMC).
	KindUpstreamHTTP
	// KindMissingEnvironment is a required config variable absent at startup.
	KindMissingEnvironment
	// KindStructural is a CR missing a required field (name/namespace/uid).
	KindStructural
)

// Error wraps an underlying error with a Kind.
type Error struct {
	Kind Kind
	Op   string
	Err  error
}

func (e *Error) Error() string {
	if e.Op == "" {
		return e.Err.Error()
	}
	return e.Op + ": " + e.Err.Error()
}

func (e *Error) Unwrap() error { return e.Err }

// New wraps err with the given kind and operation label. Returns nil if err is nil.
func New(kind Kind, op string, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Kind: kind, Op: op, Err: err}
}

// Structural builds a KindStructural error without wrapping an underlying cause.
func Structural(op, msg string) error {
	return &Error{Kind: KindStructural, Op: op, Err: errors.New(msg)}
}

// Is reports whether err (or anything it wraps) has the given Kind.
func Is(err error, kind Kind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}
