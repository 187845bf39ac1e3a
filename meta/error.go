package meta

import "github.com/ardnew/fxc/pkg"

// Predefined errors (sentinel values).
var (
	ErrClassNotFound     = pkg.NewError(pkg.KindResolution, "class not found")
	ErrInheritanceCycle  = pkg.NewError(pkg.KindResolution, "inheritance cycle")
	ErrDuplicateType     = pkg.NewError(pkg.KindResolution, "duplicate type descriptor")
	ErrInvalidDescriptor = pkg.NewError(pkg.KindResolution, "invalid type descriptor")
	ErrReadDescriptors   = pkg.NewError(pkg.KindUnknown, "cannot read type descriptors")
	ErrNoAccess          = pkg.NewError(pkg.KindPropertyAccess, "no property access")
	ErrInvalidLiteral    = pkg.NewError(pkg.KindPropertyAccess, "invalid literal")
)
