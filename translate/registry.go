package translate

import (
	"cmp"
	"slices"

	"github.com/ardnew/fxc/markup"
	"github.com/ardnew/fxc/program"
)

// RegistryName is the name of the program produced by [Registry].
const RegistryName = "LoaderRegistry"

// Registry returns a program whose register function registers the loader
// of each translated document under the document's logical path. Programs
// without a path are skipped. Registrations are ordered by path.
func Registry(programs []*program.Program, runtimePkg string) *program.Program {
	if runtimePkg == "" {
		runtimePkg = DefaultRuntimePackage
	}

	sorted := slices.DeleteFunc(slices.Clone(programs), func(p *program.Program) bool {
		return p == nil || p.Path == ""
	})
	slices.SortFunc(sorted, func(a, b *program.Program) int {
		return cmp.Compare(a.Path, b.Path)
	})

	registry := markup.QName{Package: runtimePkg, Name: "Registry"}

	imports := program.NewImports()
	imports.Add(registry)

	reg := program.Ref(program.ParamRegistry)

	var body []program.Stmt

	for _, p := range sorted {
		name := p.Name
		if name == "" {
			name = LoaderName(p.Path)
		}

		body = append(body, program.Do(program.Invoke(reg, program.MethodRegister,
			program.String(p.Path),
			&program.Closure{Body: &program.New{Type: markup.QName{Name: name}}},
		)))
	}

	return &program.Program{
		Name:    RegistryName,
		Imports: imports,
		Build: &program.Function{
			Name:   program.FuncRegister,
			Params: []program.Param{{Name: program.ParamRegistry, Type: registry}},
			Body:   body,
		},
	}
}
