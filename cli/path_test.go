package cli

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ardnew/fxc/pkg"
)

func TestExecutablePrefix(t *testing.T) {
	tests := []struct {
		exe  string
		want string
	}{
		{exe: "/usr/local/bin/fxc", want: "fxc"},
		{exe: "/tmp/fxc-dev.exe", want: "fxc-dev"},
		{exe: "/home/u/.fxc", want: "fxc"},
		{exe: "/tmp/__debug_bin3001", want: pkg.Name},
		{exe: "...", want: pkg.Name},
	}

	for _, tt := range tests {
		if got := executablePrefix(tt.exe); got != tt.want {
			t.Errorf("executablePrefix(%q) = %q, want %q", tt.exe, got, tt.want)
		}
	}
}

func TestUserDir(t *testing.T) {
	base := t.TempDir()

	got := userDir(func() (string, error) { return base, nil }, ".config")
	if want := filepath.Join(base, basePrefix()); got != want {
		t.Errorf("userDir() = %q, want %q", got, want)
	}

	home := t.TempDir()
	t.Setenv("HOME", home)

	got = userDir(func() (string, error) { return "", errors.New("unset") }, ".cache")
	if !strings.HasPrefix(got, filepath.Join(home, ".cache")) {
		t.Errorf("userDir() fallback = %q, want below %q", got, filepath.Join(home, ".cache"))
	}
}
