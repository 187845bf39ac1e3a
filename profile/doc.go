// Package profile starts and stops runtime profiling of fxc.
//
// Profiling is compiled in only when building with the pprof tag:
//
//	go build -tags pprof -o fxc .
//
// Without the tag, [Modes] is empty and [Config.Start] always returns a
// no-op profiler, so callers never need to check how the binary was built.
//
// A profile is written to the configured directory when the returned
// profiler is stopped:
//
//	p := profile.Config{Mode: "cpu", Path: dir, Quiet: true}.Start()
//	defer p.Stop()
//
//	go tool pprof -http=:8080 "$dir/cpu.pprof"
//
// Translating large document trees is dominated by descriptor lookups and
// listing output; "cpu" and "allocs" are usually the useful modes.
package profile

// Tag is the build tag required to enable pprof profiling.
const Tag = `pprof`
