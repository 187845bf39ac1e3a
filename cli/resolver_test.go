package cli

import (
	"strings"
	"testing"

	"github.com/alecthomas/kong"
	"github.com/google/go-cmp/cmp"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name string
		data string
		args []string
		want resolveCLI
	}{
		{
			name: "hyphen_and_underscore",
			data: "log-level: debug\nlog_format: json\nworkers: 4\nratio: 0.5\ntyped: true\n",
			want: resolveCLI{LogLevel: "debug", LogFormat: "json", Workers: 4, Ratio: 0.5, Typed: true},
		},
		{
			name: "sequence",
			data: "meta:\n  - a.yaml\n  - b.yaml\n",
			want: resolveCLI{LogLevel: "info", LogFormat: "text", Meta: []string{"a.yaml", "b.yaml"}},
		},
		{
			name: "flags_override",
			data: "log-level: debug\nworkers: 4\n",
			args: []string{"--workers=2"},
			want: resolveCLI{LogLevel: "debug", LogFormat: "text", Workers: 2},
		},
		{
			name: "empty",
			data: "",
			want: resolveCLI{LogLevel: "info", LogFormat: "text"},
		},
		{
			name: "not_a_mapping",
			data: "- a\n- b\n",
			want: resolveCLI{LogLevel: "info", LogFormat: "text"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resolver, err := resolve(strings.NewReader(tt.data))
			if err != nil {
				t.Fatalf("resolve() error = %v", err)
			}

			var got resolveCLI

			parser, err := kong.New(&got, kong.Resolvers(resolver))
			if err != nil {
				t.Fatal(err)
			}

			if _, err := parser.Parse(tt.args); err != nil {
				t.Fatalf("Parse() error = %v", err)
			}

			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("flags mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

type resolveCLI struct {
	LogLevel  string   `default:"info"`
	LogFormat string   `default:"text"`
	Workers   int      `default:"0"`
	Ratio     float64  `default:"0"`
	Typed     bool     `default:"false"`
	Meta      []string `name:"meta"`
}

func TestFlagValue(t *testing.T) {
	tests := []struct {
		in   any
		want any
	}{
		{in: int64(-3), want: "-3"},
		{in: uint64(7), want: "7"},
		{in: 1.5, want: "1.5"},
		{in: "s", want: "s"},
		{in: true, want: true},
		{in: []any{uint64(1), "x"}, want: []any{"1", "x"}},
	}

	for _, tt := range tests {
		if diff := cmp.Diff(tt.want, flagValue(tt.in)); diff != "" {
			t.Errorf("flagValue(%v) mismatch (-want +got):\n%s", tt.in, diff)
		}
	}
}
