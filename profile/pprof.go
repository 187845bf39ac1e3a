//go:build pprof

package profile

import (
	"maps"
	"slices"
	"sync"

	"github.com/pkg/profile"
)

// Modes returns the sorted profiling modes supported by this build.
var Modes = sync.OnceValue(
	func() []string {
		return slices.Sorted(maps.Keys(modes))
	},
)

var modes = map[string]func(*profile.Profile){
	"block":     profile.BlockProfile,
	"cpu":       profile.CPUProfile,
	"clock":     profile.ClockProfile,
	"goroutine": profile.GoroutineProfile,
	"mem":       profile.MemProfile,
	"allocs":    profile.MemProfileAllocs,
	"heap":      profile.MemProfileHeap,
	"mutex":     profile.MutexProfile,
	"thread":    profile.ThreadcreationProfile,
	"trace":     profile.TraceProfile,
}

func start(c Config) Profiler {
	mode, ok := modes[c.Mode]
	if !ok {
		return ignore{}
	}

	opts := []func(*profile.Profile){mode, profile.NoShutdownHook}

	if c.Path != "" {
		opts = append(opts, profile.ProfilePath(c.Path))
	}

	if c.Quiet {
		opts = append(opts, profile.Quiet)
	}

	return profile.Start(opts...)
}
