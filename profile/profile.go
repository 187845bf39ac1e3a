package profile

// Profiler is a running profile.
type Profiler interface{ Stop() }

// Config selects a profiling mode and where its output is written.
type Config struct {
	Mode  string
	Path  string
	Quiet bool
}

// Start begins profiling and returns the profiler to stop. An empty or
// unknown mode, or a binary built without the pprof tag, yields a profiler
// whose Stop does nothing. Both Start and Stop are always safely callable.
func (c Config) Start() Profiler {
	if c.Mode == "" {
		return ignore{}
	}

	return start(c)
}

// Supported reports whether mode names a profiling mode of this build.
func Supported(mode string) bool {
	for _, m := range Modes() {
		if m == mode {
			return true
		}
	}

	return false
}

type ignore struct{}

func (ignore) Stop() {}
