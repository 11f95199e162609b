package common

import (
	"errors"
	"fmt"
	"testing"
)

func TestBearerValue(t *testing.T) {
	if got := BearerValue("abc"); got != "Bearer abc" {
		t.Fatalf("unexpected header value %q", got)
	}
	if got := BearerValue(""); got != "Bearer " {
		t.Fatalf("unexpected header value for empty token %q", got)
	}
}

func TestSentinels_AreDistinctAndWrappable(t *testing.T) {
	all := []error{ErrMalformedToken, ErrTokenExpired, ErrUnauthorized, ErrUnavailable, ErrNotFound}
	for i, a := range all {
		for j, b := range all {
			if i != j && errors.Is(a, b) {
				t.Fatalf("%v must not match %v", a, b)
			}
		}
		wrapped := fmt.Errorf("op: %w", a)
		if !errors.Is(wrapped, a) {
			t.Fatalf("wrapped %v lost its identity", a)
		}
	}
}
