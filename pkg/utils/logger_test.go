package utils

import "testing"

func TestNewLogger(t *testing.T) {
	for _, debug := range []bool{false, true} {
		logger, err := NewLogger(debug)
		if err != nil {
			t.Fatalf("NewLogger(%t): %v", debug, err)
		}
		if logger == nil {
			t.Fatalf("NewLogger(%t): nil logger", debug)
		}
	}
}
