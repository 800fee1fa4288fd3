package operror

import (
	"errors"
	"testing"
)

func TestIsMatchesWrappedKind(t *testing.T) {
	base := errors.New("boom")
	wrapped := New(KindAPI, "apply statefulset", base)

	if !Is(wrapped, KindAPI) {
		t.Fatal("expected Is(wrapped, KindAPI) to be true")
	}
	if Is(wrapped, KindStructural) {
		t.Fatal("expected Is(wrapped, KindStructural) to be false")
	}
	if !errors.Is(wrapped, base) {
		t.Fatal("expected errors.Is to see through to the wrapped cause via Unwrap")
	}
}

func TestNewNilErrorReturnsNil(t *testing.T) {
	if New(KindAPI, "op", nil) != nil {
		t.Fatal("expected New to return nil for a nil underlying error")
	}
}

func TestStructuralHasNoCauseButIsDetectable(t *testing.T) {
	err := Structural("requireNameAndNamespace", "object has no name")
	if !Is(err, KindStructural) {
		t.Fatal("expected Is(err, KindStructural) to be true")
	}
}
