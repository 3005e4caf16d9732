package version

import (
	"strings"
	"testing"
)

func TestString(t *testing.T) {
	s := String()

	if !strings.Contains(s, Name) {
		t.Errorf("expected %q to contain %q", s, Name)
	}
	if !strings.Contains(s, Version) {
		t.Errorf("expected %q to contain %q", s, Version)
	}
}
