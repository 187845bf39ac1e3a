package cmd

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ardnew/fxc/meta"
)

const (
	paneDocument = `<?import javafx.scene.layout.Pane?>
<Pane prefWidth="10"/>`
	labelDocument = `<?import javafx.scene.control.Label?>
<Label xmlns:fx="http://javafx.com/fxml/1" fx:id="l" text="b"/>`
	badDocument = `<?import javafx.scene.layout.Pane?>
<Pane bogus="1"/>`
)

// writeTree creates files below a temporary directory and returns it.
func writeTree(t *testing.T, files map[string]string) string {
	t.Helper()

	root := t.TempDir()

	for name, data := range files {
		path := filepath.Join(root, filepath.FromSlash(name))

		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}

		if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	return root
}

func testContext(buf *bytes.Buffer) context.Context {
	ctx := WithOutput(context.Background(), buf)

	return WithProvider(ctx, func(context.Context) (meta.Provider, error) {
		return meta.Builtin()
	})
}

func TestDiscover(t *testing.T) {
	root := writeTree(t, map[string]string{
		"a.fxml":       paneDocument,
		"views/b.fxml": labelDocument,
		"views/c.txt":  "not markup",
		"other/d.fxml": paneDocument,
	})

	if err := os.Symlink(filepath.Join(root, "a.fxml"), filepath.Join(root, "link.fxml")); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name    string
		sources []string
		include string
		want    []string
		wantErr error
	}{
		{
			name:    "walk_root",
			sources: []string{root},
			include: "**.fxml",
			want:    []string{"a.fxml", "other/d.fxml", "views/b.fxml"},
		},
		{
			name:    "explicit_file_ignores_include",
			sources: []string{filepath.Join(root, "views", "c.txt"), filepath.Join(root, "views")},
			include: "**.fxml",
			want:    []string{"views/b.fxml", "views/c.txt"},
		},
		{
			name:    "include_narrows_walk",
			sources: []string{root},
			include: "views/**",
			want:    []string{"views/b.fxml", "views/c.txt"},
		},
		{
			name:    "duplicates_dropped",
			sources: []string{filepath.Join(root, "a.fxml"), root, filepath.Join(root, "a.fxml")},
			include: "*.fxml",
			want:    []string{"a.fxml"},
		},
		{
			name:    "no_match",
			sources: []string{root},
			include: "**.xml",
			wantErr: ErrNoSources,
		},
		{
			name:    "missing",
			sources: []string{filepath.Join(root, "missing.fxml")},
			include: "**.fxml",
			wantErr: ErrSource,
		},
		{
			name:    "bad_pattern",
			sources: []string{root},
			include: "[a",
			wantErr: ErrIncludePattern,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			set, err := discover(root, tt.sources, tt.include)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("discover() error = %v, want %v", err, tt.wantErr)
				}

				return
			}

			if err != nil {
				t.Fatalf("discover() error = %v", err)
			}

			if diff := cmp.Diff(tt.want, set.paths); diff != "" {
				t.Errorf("paths mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDiscover_OutsideRoot(t *testing.T) {
	root := writeTree(t, map[string]string{"views/b.fxml": labelDocument})
	other := writeTree(t, map[string]string{"a.fxml": paneDocument})

	_, err := discover(filepath.Join(root, "views"), []string{filepath.Join(other, "a.fxml")}, "**")
	if !errors.Is(err, ErrOutsideRoot) {
		t.Errorf("discover() error = %v, want %v", err, ErrOutsideRoot)
	}
}

func TestSourceSet_Selects(t *testing.T) {
	root := writeTree(t, map[string]string{
		"a.fxml":       paneDocument,
		"views/b.fxml": labelDocument,
	})

	set, err := discover(root, []string{filepath.Join(root, "a.fxml"), filepath.Join(root, "views")}, "**.fxml")
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		path string
		want bool
	}{
		{path: "a.fxml", want: true},
		{path: "views/b.fxml", want: true},
		{path: "views/new.fxml", want: true},
		{path: "views/new.txt", want: false},
		{path: "new.fxml", want: false},
	}

	for _, tt := range tests {
		if got := set.selects(filepath.Join(root, filepath.FromSlash(tt.path))); got != tt.want {
			t.Errorf("selects(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}

func TestOutputFrom(t *testing.T) {
	if w := outputFrom(context.Background()); w != os.Stdout {
		t.Errorf("outputFrom(empty) = %v, want os.Stdout", w)
	}

	var buf bytes.Buffer
	if w := outputFrom(WithOutput(context.Background(), &buf)); w != &buf {
		t.Errorf("outputFrom() = %v, want buffer", w)
	}
}

func TestTranslate_Run(t *testing.T) {
	root := writeTree(t, map[string]string{
		"a.fxml":       paneDocument,
		"views/b.fxml": labelDocument,
	})

	var buf bytes.Buffer

	cmd := &Translate{
		SourceFlags: SourceFlags{Sources: []string{root}, Root: root, Include: "**.fxml"},
		Output:      formatText,
	}

	if err := cmd.Run(testContext(&buf)); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	out := buf.String()

	a := strings.Index(out, "// ALoader (a.fxml)\n")
	b := strings.Index(out, "// BLoader (views/b.fxml)\n")

	if a < 0 || b < 0 || a > b {
		t.Errorf("listings missing or out of order:\n%s", out)
	}

	if !strings.Contains(out, `namespace.publish("l", label);`) {
		t.Errorf("listing missing publish:\n%s", out)
	}
}

func TestTranslate_RunFailure(t *testing.T) {
	root := writeTree(t, map[string]string{
		"a.fxml":   paneDocument,
		"bad.fxml": badDocument,
	})

	var buf bytes.Buffer

	cmd := &Translate{
		SourceFlags: SourceFlags{Sources: []string{root}, Root: root, Include: "**.fxml"},
		Output:      formatYAML,
		Indent:      2,
	}

	err := cmd.Run(testContext(&buf))
	if !errors.Is(err, ErrTranslate) {
		t.Fatalf("Run() error = %v, want %v", err, ErrTranslate)
	}

	if !strings.Contains(buf.String(), "ALoader") {
		t.Errorf("successful document not printed:\n%s", buf.String())
	}

	if strings.Contains(buf.String(), "---") {
		t.Errorf("separator printed for a single document:\n%s", buf.String())
	}
}

func TestParse_Run(t *testing.T) {
	root := writeTree(t, map[string]string{"views/b.fxml": labelDocument})

	var buf bytes.Buffer

	cmd := &Parse{
		SourceFlags: SourceFlags{Sources: []string{root}, Root: root, Include: "**.fxml"},
		Output:      "markup",
		Indent:      2,
	}

	if err := cmd.Run(testContext(&buf)); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	for _, want := range []string{`<?import javafx.scene.control.Label?>`, `fx:id="l"`, `text="b"`} {
		if !strings.Contains(buf.String(), want) {
			t.Errorf("output missing %q:\n%s", want, buf.String())
		}
	}
}

func TestRegistry_Run(t *testing.T) {
	root := writeTree(t, map[string]string{
		"views/b.fxml": labelDocument,
		"a.fxml":       paneDocument,
		"bad.fxml":     badDocument,
	})

	var buf bytes.Buffer

	cmd := &Registry{
		SourceFlags: SourceFlags{Sources: []string{root}, Root: root, Include: "**.fxml"},
	}

	err := cmd.Run(testContext(&buf))
	if !errors.Is(err, ErrTranslate) {
		t.Errorf("Run() error = %v, want %v", err, ErrTranslate)
	}

	want := `// LoaderRegistry
import fxc.loader.Registry;

void register(Registry registry) {
    registry.register("a.fxml", () -> new ALoader());
    registry.register("views/b.fxml", () -> new BLoader());
}
`

	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("registry mismatch (-want +got):\n%s", diff)
	}
}

func TestTypes_Run(t *testing.T) {
	tests := []struct {
		name    string
		cmd     Types
		want    []string
		wantErr error
	}{
		{
			name: "package",
			cmd:  Types{Package: "javafx.geometry"},
			want: []string{"javafx.geometry.Insets", "javafx.geometry.Orientation", "javafx.geometry.Pos"},
		},
		{
			name: "package_glob",
			cmd:  Types{Package: "javafx.e*"},
			want: []string{"javafx.event.ActionEvent", "javafx.event.Event", "javafx.event.EventHandler"},
		},
		{
			name: "pattern",
			cmd:  Types{Package: "javafx.event", Pattern: "handler"},
			want: []string{"javafx.event.EventHandler"},
		},
		{
			name:    "bad_glob",
			cmd:     Types{Package: "[a"},
			wantErr: ErrFilterPattern,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer

			err := tt.cmd.Run(testContext(&buf))
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Run() error = %v, want %v", err, tt.wantErr)
				}

				return
			}

			if err != nil {
				t.Fatalf("Run() error = %v", err)
			}

			got := strings.Fields(buf.String())
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("types mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestHighlight(t *testing.T) {
	if got := highlight("abc", nil); got != "abc" {
		t.Errorf("highlight() = %q, want %q", got, "abc")
	}

	got := highlight("abc", []int{1})
	if !strings.HasPrefix(got, "a") || !strings.HasSuffix(got, "c") || !strings.Contains(got, "b") {
		t.Errorf("highlight() = %q", got)
	}
}
