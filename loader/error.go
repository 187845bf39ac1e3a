package loader

import "github.com/ardnew/fxc/pkg"

// Predefined errors (sentinel values).
var (
	ErrDuplicateID   = pkg.NewError(pkg.KindStructural, "id already published")
	ErrUnknownID     = pkg.NewError(pkg.KindResolution, "id not published")
	ErrDuplicatePath = pkg.NewError(pkg.KindStructural, "loader already registered")
	ErrNoLoader      = pkg.NewError(pkg.KindResolution, "no loader registered")
	ErrIncludeCycle  = pkg.NewError(pkg.KindStructural, "include cycle")
)
