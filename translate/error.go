package translate

import "github.com/ardnew/fxc/pkg"

// Predefined errors (sentinel values).
var (
	ErrNoStrategy        = pkg.NewError(pkg.KindInstantiation, "no instantiation strategy")
	ErrMissingArguments  = pkg.NewError(pkg.KindInstantiation, "missing constructor arguments")
	ErrArgumentValue     = pkg.NewError(pkg.KindInstantiation, "constructor argument requires exactly one value")
	ErrNoDefaultProperty = pkg.NewError(pkg.KindPropertyAccess, "no default property")
	ErrStaticProperty    = pkg.NewError(pkg.KindUnsupported, "static properties are not supported")
	ErrBinding           = pkg.NewError(pkg.KindUnsupported, "binding expressions are not supported")
	ErrLocation          = pkg.NewError(pkg.KindUnsupported, "location expressions are not supported")
	ErrNoController      = pkg.NewError(pkg.KindResolution, "method reference without controller")
	ErrUnknownMethod     = pkg.NewError(pkg.KindResolution, "controller method not found")
	ErrUnexpectedNode    = pkg.NewError(pkg.KindUnknown, "unexpected document node")
	ErrReadSource        = pkg.NewError(pkg.KindUnknown, "cannot read source")
)
