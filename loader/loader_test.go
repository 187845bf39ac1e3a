package loader

import (
	"errors"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ardnew/fxc/pkg"
)

func TestNamespace(t *testing.T) {
	var ns Namespace[int]

	if err := ns.Publish("a", 1); err != nil {
		t.Fatalf("Publish(a): %v", err)
	}

	if err := ns.Publish("b", 2); err != nil {
		t.Fatalf("Publish(b): %v", err)
	}

	if err := ns.Publish("a", 3); !errors.Is(err, ErrDuplicateID) {
		t.Errorf("duplicate publish error = %v", err)
	}

	if v, err := ns.Lookup("a"); err != nil || v != 1 {
		t.Errorf("Lookup(a) = %d, %v", v, err)
	}

	_, err := ns.Lookup("zzz")
	if !errors.Is(err, ErrUnknownID) || !pkg.IsKind(err, pkg.KindResolution) {
		t.Errorf("Lookup(zzz) error = %v", err)
	}

	if diff := cmp.Diff([]string{"a", "b"}, ns.IDs()); diff != "" {
		t.Errorf("IDs mismatch (-want +got):\n%s", diff)
	}
}

func TestNamespace_Concurrent(t *testing.T) {
	ns := NewNamespace[int]()

	var wg sync.WaitGroup
	for i := range 32 {
		wg.Go(func() {
			_ = ns.Publish(string(rune('a'+i%8)), i)
			_, _ = ns.Lookup("a")
		})
	}

	wg.Wait()

	if ns.Len() != 8 {
		t.Errorf("Len() = %d, want 8", ns.Len())
	}
}

type widget struct {
	name     string
	children []any
}

type controller struct {
	label       any
	initialized bool
}

func TestContext_Load(t *testing.T) {
	reg := NewRegistry()

	builds := 0
	footer := New(func(b *Base, _ *Context) (any, error) {
		builds++

		w := &widget{name: "footer"}

		return w, b.Namespace().Publish("text", w)
	}, func() any { return &controller{} }, nil)

	main := New(func(b *Base, ctx *Context) (any, error) {
		root := &widget{name: "main"}

		inc, err := ctx.Load("parts/footer.fxml")
		if err != nil {
			return nil, err
		}

		if err := b.Namespace().Publish("foot", inc.Root()); err != nil {
			return nil, err
		}

		if err := b.Namespace().Publish("footController", inc.Controller()); err != nil {
			return nil, err
		}

		root.children = append(root.children, inc.Root())

		return root, nil
	}, func() any { return &controller{} }, func(b *Base, c any) error {
		ctrl := c.(*controller)

		v, err := b.Namespace().Lookup("foot")
		if err != nil {
			return err
		}

		ctrl.label = v
		ctrl.initialized = true

		return nil
	})

	if err := reg.Register("views/main.fxml", main); err != nil {
		t.Fatal(err)
	}

	if err := reg.Register("views/parts/footer.fxml", footer); err != nil {
		t.Fatal(err)
	}

	if err := reg.Register("views/./main.fxml", main); !errors.Is(err, ErrDuplicatePath) {
		t.Errorf("duplicate register error = %v", err)
	}

	ctx := NewContext(reg)

	l1, err := ctx.Load("views/main.fxml")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	l2, err := ctx.Load("views/main.fxml")
	if err != nil {
		t.Fatalf("second Load: %v", err)
	}

	if l1 == l2 || l1.Root() == l2.Root() {
		t.Error("each load must produce a fresh loader and root")
	}

	if builds != 2 {
		t.Errorf("footer built %d times, want 2", builds)
	}

	ctrl := l1.Controller().(*controller)
	if !ctrl.initialized || ctrl.label != l1.Root().(*widget).children[0] {
		t.Errorf("controller not initialized with the included root: %+v", ctrl)
	}

	if diff := cmp.Diff([]string{"foot", "footController"}, l1.Namespace().IDs()); diff != "" {
		t.Errorf("IDs mismatch (-want +got):\n%s", diff)
	}

	if diff := cmp.Diff([]string{"views/main.fxml", "views/parts/footer.fxml"}, reg.Paths()); diff != "" {
		t.Errorf("Paths mismatch (-want +got):\n%s", diff)
	}
}

func TestContext_LoadErrors(t *testing.T) {
	reg := NewRegistry()

	loop := New(func(_ *Base, ctx *Context) (any, error) {
		_, err := ctx.Load("a.fxml")

		return nil, err
	}, nil, nil)

	if err := reg.Register("a.fxml", loop); err != nil {
		t.Fatal(err)
	}

	ctx := NewContext(reg)

	if _, err := ctx.Load("a.fxml"); !errors.Is(err, ErrIncludeCycle) {
		t.Errorf("cyclic load error = %v", err)
	}

	if _, err := ctx.Load("missing.fxml"); !errors.Is(err, ErrNoLoader) {
		t.Errorf("missing load error = %v", err)
	}
}

func TestContext_Resolve(t *testing.T) {
	ctx := &Context{stack: []string{"views/main.fxml"}}

	tests := map[string]string{
		"footer.fxml":        "views/footer.fxml",
		"../shared/bar.fxml": "shared/bar.fxml",
		"/abs/x.fxml":        "/abs/x.fxml",
	}

	for in, want := range tests {
		if got := ctx.Resolve(in); got != want {
			t.Errorf("Resolve(%q) = %q, want %q", in, got, want)
		}
	}

	if got := NewContext(nil).Resolve("./a/../b.fxml"); got != "b.fxml" {
		t.Errorf("top-level Resolve = %q", got)
	}
}
