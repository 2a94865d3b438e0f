// Package testutils contains convenient testing checkers that compare a produced
// value against an expected value (or condition).
// There are value checks like `CheckEqual(expected, produced, t)`, and
// checks that should run deferred like `defer ShouldPanic(t)`.
//
package testutils

import (
	"errors"
	"reflect"
)

// TB is the part of testing.TB that the checkers use
type TB interface {
	Helper()
	Fatalf(format string, args ...interface{})
}

// CheckEqual checks if two values are deeply equal and calls t.Fatalf if not
func CheckEqual(expected interface{}, got interface{}, t TB) {
	t.Helper()
	if !reflect.DeepEqual(expected, got) {
		t.Fatalf("Expected: %v, got %v", expected, got)
	}
}

// CheckBytes checks if two byte slices are equal and calls t.Fatalf with a hex dump if not
func CheckBytes(expected []byte, got []byte, t TB) {
	t.Helper()
	if len(expected) != len(got) || string(expected) != string(got) {
		t.Fatalf("Expected: % x, got % x", expected, got)
	}
}

// CheckError checks if there is an error
func CheckError(got error, t TB) {
	t.Helper()
	if got == nil {
		t.Fatalf("Expected: error, got %v", got)
	}
}

// CheckErrorIs checks that errors.Is(got, expected) is true
func CheckErrorIs(expected error, got error, t TB) {
	t.Helper()
	if !errors.Is(got, expected) {
		t.Fatalf("Expected: error %v, got %v", expected, got)
	}
}

// CheckNotError checks if error value is not nil
func CheckNotError(got error, t TB) {
	t.Helper()
	if got != nil {
		t.Fatalf("Expected: no error, got %v", got)
	}
}

// CheckTrue checks if value is true
func CheckTrue(got bool, t TB) {
	t.Helper()
	if !got {
		t.Fatalf("Expected: true, got %v", got)
	}
}

// CheckFalse checks if value is false
func CheckFalse(got bool, t TB) {
	t.Helper()
	if got {
		t.Fatalf("Expected: false, got %v", got)
	}
}
