package pkg

import (
	"strings"
	"testing"
)

func TestName(t *testing.T) {
	expected := "fxc"
	if Name != expected {
		t.Errorf("Expected Name to be %q, got %q", expected, Name)
	}
}

func TestVersion_NotEmpty(t *testing.T) {
	if strings.TrimSpace(Version) == "" {
		t.Error("Expected embedded Version to be non-empty")
	}
}
