package testutils

import (
	"errors"
	"fmt"
	"io"
	"testing"
)

type mockT struct {
	failures []string
}

func (m *mockT) Helper() {
}

func (m *mockT) Fatalf(format string, args ...interface{}) {
	m.failures = append(m.failures, fmt.Sprintf(format, args...))
}

func ensureFailed(t *testing.T, f func(t TB)) {
	t.Helper()
	mt := &mockT{}
	f(mt)
	if len(mt.failures) != 1 {
		t.Fatalf("expected one failure, got %d", len(mt.failures))
	}
}

func ensurePassed(t *testing.T, f func(t TB)) {
	t.Helper()
	mt := &mockT{}
	f(mt)
	if len(mt.failures) != 0 {
		t.Fatalf("expected no failure, got %v", mt.failures)
	}
}

func TestCheckEqual(t *testing.T) {
	ensureFailed(t, func(ft TB) {
		CheckEqual("a", "b", ft)
	})
	ensurePassed(t, func(ft TB) {
		CheckEqual([]int{1}, []int{1}, ft)
	})
}

func TestCheckBytes(t *testing.T) {
	ensureFailed(t, func(ft TB) {
		CheckBytes([]byte{0x80, 1}, []byte{0x80}, ft)
	})
	ensurePassed(t, func(ft TB) {
		CheckBytes([]byte{0x80, 1}, []byte{0x80, 1}, ft)
	})
	mt := &mockT{}
	CheckBytes([]byte{0xff, 0x7f}, []byte{0x7f}, mt)
	CheckEqual("Expected: ff 7f, got 7f", mt.failures[0], t)
}

func TestCheckError(t *testing.T) {
	ensureFailed(t, func(ft TB) {
		CheckError(nil, ft)
	})
}

func TestCheckErrorIs(t *testing.T) {
	ensureFailed(t, func(ft TB) {
		CheckErrorIs(io.EOF, io.ErrUnexpectedEOF, ft)
	})
	ensurePassed(t, func(ft TB) {
		CheckErrorIs(io.EOF, fmt.Errorf("wrapped: %w", io.EOF), ft)
	})
}

func TestCheckNotError(t *testing.T) {
	ensureFailed(t, func(ft TB) {
		CheckNotError(io.ErrUnexpectedEOF, ft)
	})
}

func TestCheckTrue(t *testing.T) {
	ensureFailed(t, func(ft TB) {
		CheckTrue(false, ft)
	})
}

func TestCheckFalse(t *testing.T) {
	ensureFailed(t, func(ft TB) {
		CheckFalse(true, ft)
	})
}

func TestShouldPanic(t *testing.T) {
	ensureFailed(t, func(ft TB) {
		defer ShouldPanic(ft)
		// but didn't
	})
	ensurePassed(t, func(ft TB) {
		defer ShouldPanic(ft)
		panic(errors.New("it did"))
	})
}
