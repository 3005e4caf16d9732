package dlog

import "testing"

func TestSprint(t *testing.T) {
	tests := []struct {
		name     string
		args     []interface{}
		expected string
	}{
		{
			name:     "words joined with spaces",
			args:     []interface{}{"Read", 100000, "entries"},
			expected: "Read 100000 entries",
		},
		{
			name:     "single argument",
			args:     []interface{}{"Sorting entries..."},
			expected: "Sorting entries...",
		},
		{
			name:     "no arguments",
			args:     nil,
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := sprint(tt.args...); got != tt.expected {
				t.Errorf("expected %q but got %q", tt.expected, got)
			}
		})
	}
}

func TestMutedLoggerDoesNotPanic(t *testing.T) {
	logger := New("info", "none")
	logger.Debug("a")
	logger.Info("b", 1)
	logger.Warn("c", 2, 3)
	logger.Error("d")
	logger.Sync()
}

func TestNewWithUnknownLevel(t *testing.T) {
	logger := New("nosuchlevel", "none")
	logger.Info("still works")
}
