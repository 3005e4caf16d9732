package errors

import (
	"testing"
)

func TestWrap(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		msg      string
		expected string
	}{
		{
			name:     "wrap with message",
			err:      ErrUnknownVersion,
			msg:      "loading eye info",
			expected: "loading eye info: unknown storage version",
		},
		{
			name:     "wrap nil error",
			err:      nil,
			msg:      "should return nil",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Wrap(tt.err, tt.msg)
			if tt.err == nil && result != nil {
				t.Errorf("expected nil, got %v", result)
			}
			if tt.err != nil && result.Error() != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, result.Error())
			}
		})
	}
}

func TestWrapf(t *testing.T) {
	err := Wrapf(ErrCorruptData, "reading snapshot %q", "info.dat")
	expected := `reading snapshot "info.dat": corrupt storage data`
	if err.Error() != expected {
		t.Errorf("expected %q, got %q", expected, err.Error())
	}

	if Wrapf(nil, "no error here") != nil {
		t.Error("expected nil for wrapped nil error")
	}
}

func TestIs(t *testing.T) {
	wrapped := Wrap(ErrUnknownVersion, "loading eye info")

	if !Is(wrapped, ErrUnknownVersion) {
		t.Error("expected Is to return true for wrapped error")
	}

	if Is(wrapped, ErrCorruptData) {
		t.Error("expected Is to return false for different error")
	}
}
