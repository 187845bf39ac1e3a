// Package program is the target model produced by translation: an ordered
// list of declarations, calls and assignments that constructs a UI object
// tree without parsing markup at run time.
//
// Rendering a [Program] as source text is left to an external renderer.
// [Fprint] writes a language-neutral listing for inspection, and
// [Program.ToMap] exposes the model for YAML or JSON encoding.
package program
