package meta

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ardnew/fxc/markup"
	"github.com/ardnew/fxc/pkg"
)

// countingProvider records how often each name is looked up.
type countingProvider struct {
	Provider

	calls map[string]int
}

func (p *countingProvider) Lookup(name markup.QName) (*Type, bool) {
	p.calls[name.String()]++

	return p.Provider.Lookup(name)
}

func TestResolver_Resolve(t *testing.T) {
	table := mustTable(t, testDescriptors+`
  - name: other.Widget
  - name: java.lang.Widget
  - name: java.lang.String
    kind: string
`)

	tests := []struct {
		name    string
		imports []markup.Import
		lookup  markup.QName
		want    string
	}{
		{
			name:   "qualified",
			lookup: markup.QName{Package: "example", Name: "Widget"},
			want:   "example.Widget",
		},
		{
			name:   "implicit java.lang",
			lookup: markup.QName{Name: "String"},
			want:   "java.lang.String",
		},
		{
			name:    "exact import before wildcards",
			imports: []markup.Import{{Package: "example"}, {Package: "other", Name: "Widget"}},
			lookup:  markup.QName{Name: "Widget"},
			want:    "other.Widget",
		},
		{
			name:    "java.lang before declared wildcards",
			imports: []markup.Import{{Package: "example"}},
			lookup:  markup.QName{Name: "Widget"},
			want:    "java.lang.Widget",
		},
		{
			name:    "wildcards in declaration order",
			imports: []markup.Import{{Package: "example"}, {Package: "other"}},
			lookup:  markup.QName{Name: "Point"},
			want:    "example.Point",
		},
		{
			name:    "unmatched exact import falls through",
			imports: []markup.Import{{Package: "missing", Name: "Point"}, {Package: "example"}},
			lookup:  markup.QName{Name: "Point"},
			want:    "example.Point",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewResolver(table, tt.imports)

			got, ok := r.Resolve(tt.lookup)
			if !ok {
				t.Fatalf("Resolve(%v) found nothing", tt.lookup)
			}

			if got.Name != tt.want {
				t.Errorf("Resolve(%v) = %s, want %s", tt.lookup, got.Name, tt.want)
			}
		})
	}
}

func TestResolver_Memoized(t *testing.T) {
	p := &countingProvider{Provider: mustTable(t, testDescriptors), calls: map[string]int{}}
	r := NewResolver(p, []markup.Import{{Package: "example"}})

	for range 3 {
		if _, ok := r.Resolve(markup.QName{Name: "Widget"}); !ok {
			t.Fatal("Widget not resolved")
		}

		if _, ok := r.Resolve(markup.QName{Name: "Nothing"}); ok {
			t.Fatal("Nothing resolved")
		}
	}

	for name, n := range p.calls {
		if n != 1 {
			t.Errorf("provider consulted %d times for %s", n, name)
		}
	}

	// A fresh resolver does not share answers.
	NewResolver(p, nil).Resolve(markup.QName{Package: "example", Name: "Widget"})

	if p.calls["example.Widget"] != 2 {
		t.Errorf("expected a fresh resolver to consult the provider")
	}
}

func TestResolver_ResolveTypeErrors(t *testing.T) {
	table := mustTable(t, testDescriptors)
	r := NewResolver(table, []markup.Import{{Package: "example"}})

	_, err := r.ResolveType(markup.QName{Name: "Widge"})
	if !errors.Is(err, ErrClassNotFound) || !pkg.IsKind(err, pkg.KindResolution) {
		t.Fatalf("error = %v, want ErrClassNotFound", err)
	}

	var ee *pkg.Error
	if errors.As(err, &ee) {
		s, ok := ee.Attr("suggest")
		if !ok || !strings.Contains(s.String(), "example.Widget") {
			t.Errorf("suggestions = %v, want example.Widget", s)
		}
	}

	_, err = r.ResolveType(markup.QName{Name: "Loop"})
	if !errors.Is(err, ErrInheritanceCycle) {
		t.Errorf("error = %v, want ErrInheritanceCycle", err)
	}
}

func TestResolver_PropertyAccess(t *testing.T) {
	table := mustTable(t, testDescriptors)
	r := NewResolver(table, []markup.Import{{Package: "example"}})

	widget, err := r.ResolveType(markup.QName{Name: "Widget"})
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		property string
		want     Access
	}{
		{"count", Access{Kind: AccessSet, Method: "setCount", Type: "int"}},
		{"title", Access{Kind: AccessSet, Method: "setTitle", Type: "java.lang.Object"}},
		{"items", Access{Kind: AccessAppend, Method: "getItems", Type: ObjectType}},
		{"color", Access{Kind: AccessInsert, Type: ObjectType, Key: "color"}},
	}

	for _, tt := range tests {
		t.Run(tt.property, func(t *testing.T) {
			got, err := r.PropertyAccess(widget, tt.property)
			if err != nil {
				t.Fatalf("PropertyAccess: %v", err)
			}

			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("access mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestResolver_NoPropertyAccess(t *testing.T) {
	table := mustTable(t, testDescriptors)
	r := NewResolver(table, nil)

	point, _ := r.Resolve(markup.QName{Package: "example", Name: "Point"})

	_, err := r.PropertyAccess(point, "radius")
	if !errors.Is(err, ErrNoAccess) || !pkg.IsKind(err, pkg.KindPropertyAccess) {
		t.Fatalf("error = %v, want ErrNoAccess", err)
	}

	if !strings.Contains(err.Error(), "property=radius") {
		t.Errorf("error %q does not name the property", err)
	}

	// Cached negative answers are returned unchanged.
	_, again := r.PropertyAccess(point, "radius")
	if again != err {
		t.Errorf("expected memoized error, got %v", again)
	}
}

func TestResolver_Members(t *testing.T) {
	table := mustTable(t, testDescriptors)
	r := NewResolver(table, []markup.Import{{Package: "example"}})

	widget, _ := r.Resolve(markup.QName{Name: "Widget"})
	controller, _ := r.Resolve(markup.QName{Name: "Controller"})
	point, _ := r.Resolve(markup.QName{Name: "Point"})

	if p, ok := r.DefaultProperty(widget); !ok || p != "items" {
		t.Errorf("DefaultProperty(Widget) = %q, %v", p, ok)
	}

	if _, ok := r.DefaultProperty(point); ok {
		t.Error("Point should have no default property")
	}

	if !r.HasDefaultConstructor(widget) || r.HasDefaultConstructor(point) {
		t.Error("unexpected default constructor classification")
	}

	c, ok := r.NamedConstructor(point)
	if !ok || len(c.Params) != 3 {
		t.Errorf("NamedConstructor(Point) = %+v, %v", c, ok)
	}

	if _, ok := r.Method(controller, "initialize", 0); !ok {
		t.Error("initialize() not found")
	}

	if _, ok := r.Method(controller, "handle", 0); ok {
		t.Error("handle() should require one argument")
	}

	if _, ok := r.Field(controller, "label"); !ok {
		t.Error("field label not found")
	}

	var injected []string
	for _, m := range r.InjectedMembers(controller) {
		injected = append(injected, m.Name)
	}

	if diff := cmp.Diff([]string{"label", "setPoint"}, injected); diff != "" {
		t.Errorf("InjectedMembers mismatch (-want +got):\n%s", diff)
	}

	if diff := cmp.Diff([]string{"count", "items", "title"}, r.Properties(widget)); diff != "" {
		t.Errorf("Properties mismatch (-want +got):\n%s", diff)
	}
}

func TestNames(t *testing.T) {
	tests := []struct {
		prefix, property, method string
	}{
		{PrefixSet, "text", "setText"},
		{PrefixGet, "children", "getChildren"},
		{PrefixSet, "x", "setX"},
	}

	for _, tt := range tests {
		if got := MethodName(tt.prefix, tt.property); got != tt.method {
			t.Errorf("MethodName(%q, %q) = %q", tt.prefix, tt.property, got)
		}

		if got := PropertyName(tt.prefix, tt.method); got != tt.property {
			t.Errorf("PropertyName(%q, %q) = %q", tt.prefix, tt.method, got)
		}
	}

	if got := PropertyName(PrefixSet, "initialize"); got != "" {
		t.Errorf("PropertyName(set, initialize) = %q, want empty", got)
	}
}
