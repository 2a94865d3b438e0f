package testutils

// ShouldPanic is used to assert that a function does panic
// Usage: defer testutils.ShouldPanic(t) at the point where the rest is expected to panic
func ShouldPanic(t TB) {
	t.Helper()
	if r := recover(); r == nil {
		t.Fatalf("Expected panic but got none")
	}
}
