// Package meta describes the classes a markup document may instantiate.
//
// Type metadata is supplied through a [Provider], typically a [Table] of
// descriptors loaded from YAML. A [Resolver] answers name-resolution and
// bean-convention questions for one translation run and memoizes every
// answer for the lifetime of that run.
package meta
