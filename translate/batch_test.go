package translate

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"

	"github.com/ardnew/fxc/meta"
	"github.com/ardnew/fxc/pkg"
	"github.com/ardnew/fxc/program"
)

func batchFS() fstest.MapFS {
	return fstest.MapFS{
		"a.fxml": {Data: []byte(`<?import javafx.scene.layout.Pane?><Pane prefWidth="10"/>`)},
		"views/b.fxml": {Data: []byte(`<?import javafx.scene.control.Label?>
<Label xmlns:fx="http://javafx.com/fxml/1" text="b"/>`)},
		"bad.fxml": {Data: []byte(`<?import javafx.scene.layout.Pane?><Pane bogus="1"/>`)},
	}
}

func TestBatch(t *testing.T) {
	paths := []string{"views/b.fxml", "bad.fxml", "missing.fxml", "a.fxml"}

	for _, workers := range []int{0, 1, 3} {
		results := Batch(context.Background(), batchFS(), paths, testProvider(t), workers)

		if len(results) != len(paths) {
			t.Fatalf("workers=%d: %d results, want %d", workers, len(results), len(paths))
		}

		for i, r := range results {
			if r.Path != paths[i] {
				t.Errorf("workers=%d: result %d path = %q, want %q", workers, i, r.Path, paths[i])
			}
		}

		if r := results[0]; r.Err != nil || r.Program.Name != "BLoader" || r.Program.Path != "views/b.fxml" {
			t.Errorf("workers=%d: views/b.fxml = %+v", workers, r)
		}

		if r := results[1]; !errors.Is(r.Err, meta.ErrNoAccess) || r.Program != nil {
			t.Errorf("workers=%d: bad.fxml error = %v", workers, r.Err)
		}

		if r := results[2]; !errors.Is(r.Err, ErrReadSource) {
			t.Errorf("workers=%d: missing.fxml error = %v", workers, r.Err)
		} else if v, _ := pkg.WrapError(r.Err).Attr("path"); v.String() != "missing.fxml" {
			t.Errorf("workers=%d: missing.fxml path attr = %v", workers, v)
		}

		if r := results[3]; r.Err != nil || r.Program.Name != "ALoader" {
			t.Errorf("workers=%d: a.fxml = %+v", workers, r)
		}
	}
}

func TestBatch_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	for _, r := range Batch(ctx, batchFS(), []string{"a.fxml", "views/b.fxml"}, testProvider(t), 2) {
		if !errors.Is(r.Err, context.Canceled) {
			t.Errorf("%s: error = %v, want %v", r.Path, r.Err, context.Canceled)
		}
	}
}

func TestRegistry(t *testing.T) {
	results := Batch(context.Background(), batchFS(), []string{"views/b.fxml", "a.fxml"}, testProvider(t), 2)

	progs := make([]*program.Program, 0, len(results))
	for _, r := range results {
		if r.Err != nil {
			t.Fatalf("%s: %v", r.Path, r.Err)
		}

		progs = append(progs, r.Program)
	}

	progs = append(progs, &program.Program{Name: "Unnamed"}, nil)

	reg := Registry(progs, "")

	var buf bytes.Buffer
	if err := program.Fprint(&buf, reg, program.Style{}); err != nil {
		t.Fatalf("Fprint: %v", err)
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
