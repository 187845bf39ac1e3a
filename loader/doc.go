// Package loader is the run-time contract of generated programs.
//
// A generated loader builds its object tree with the help of a [Context],
// publishes identified objects into its [Namespace], and loads included
// documents through the [Registry] the context was created with. The same
// [Namespace] type serves as the translator's symbol table.
package loader
