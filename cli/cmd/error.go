package cmd

import "github.com/ardnew/fxc/pkg"

// Predefined errors (sentinel values).
var (
	ErrSource         = pkg.NewError(pkg.KindUnknown, "cannot read source")
	ErrNoSources      = pkg.NewError(pkg.KindUnknown, "no source documents")
	ErrOutsideRoot    = pkg.NewError(pkg.KindUnknown, "source outside root directory")
	ErrIncludePattern = pkg.NewError(pkg.KindUnknown, "invalid include pattern")
	ErrFilterPattern  = pkg.NewError(pkg.KindUnknown, "invalid filter pattern")
	ErrParse          = pkg.NewError(pkg.KindUnknown, "parsing failed")
	ErrTranslate      = pkg.NewError(pkg.KindUnknown, "translation failed")
	ErrFormat         = pkg.NewError(pkg.KindUnknown, "cannot format output")
	ErrWatch          = pkg.NewError(pkg.KindUnknown, "cannot watch sources")
	ErrWriteConfig    = pkg.NewError(pkg.KindUnknown, "write configuration file")
	ErrFileExists     = pkg.NewError(pkg.KindUnknown, "file exists (use --force to overwrite)")
)
