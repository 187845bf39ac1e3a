package profile

import "testing"

func TestConfig_StartEmptyMode(t *testing.T) {
	p := Config{Path: t.TempDir()}.Start()
	if _, ok := p.(ignore); !ok {
		t.Fatalf("Start() = %T, want no-op profiler", p)
	}

	p.Stop()
	p.Stop()
}

func TestConfig_StartUnknownMode(t *testing.T) {
	p := Config{Mode: "bogus", Path: t.TempDir(), Quiet: true}.Start()
	if _, ok := p.(ignore); !ok {
		t.Fatalf("Start() = %T, want no-op profiler", p)
	}

	p.Stop()
}

func TestSupported(t *testing.T) {
	if Supported("") || Supported("bogus") {
		t.Error("Supported() accepted an invalid mode")
	}

	for _, m := range Modes() {
		if !Supported(m) {
			t.Errorf("Supported(%q) = false", m)
		}
	}
}
