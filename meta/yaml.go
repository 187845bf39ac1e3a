package meta

import (
	"context"
	_ "embed"
	"errors"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/goccy/go-yaml"

	"github.com/ardnew/fxc/pkg"
)

type document struct {
	Types []*Type `yaml:"types"`
}

// LoadYAML decodes a descriptor document of the form
//
//	types:
//	  - name: javafx.scene.control.Label
//	    extends: [javafx.scene.control.Labeled]
//	    constructors:
//	      - params: []
//	    members:
//	      - {name: setText, params: [java.lang.String]}
//
// Unknown keys are rejected.
func LoadYAML(ctx context.Context, r io.Reader) (*Table, error) {
	var doc document

	dec := yaml.NewDecoder(r, yaml.DisallowUnknownField())
	if err := dec.DecodeContext(ctx, &doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, ErrInvalidDescriptor.Wrap(err)
	}

	return NewTable(doc.Types...)
}

// LoadFile decodes the descriptor document at path.
func LoadFile(ctx context.Context, path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, ErrReadDescriptors.Wrap(err).
			With(slog.String("path", path))
	}
	defer f.Close()

	t, err := LoadYAML(ctx, f)
	if err != nil {
		return nil, pkg.WrapError(err).With(slog.String("path", path))
	}

	return t, nil
}

// LoadFiles decodes each path in order. Earlier files take precedence when
// the returned chain is consulted.
func LoadFiles(ctx context.Context, paths ...string) (Chain, error) {
	chain := make(Chain, 0, len(paths))

	for _, path := range paths {
		t, err := LoadFile(ctx, path)
		if err != nil {
			return nil, err
		}

		chain = append(chain, t)
	}

	return chain, nil
}

//go:embed builtin.yaml
var builtinYAML string

// Builtin returns the descriptor table embedded in the binary. It covers the
// java.lang value types, common collection types and a core set of JavaFX
// scene classes.
var Builtin = sync.OnceValues(func() (*Table, error) {
	return LoadYAML(context.Background(), strings.NewReader(builtinYAML))
})
