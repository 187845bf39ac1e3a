package markup

import "github.com/ardnew/fxc/pkg"

// Predefined errors (sentinel values).
var (
	ErrMalformedXML        = pkg.NewError(pkg.KindStructural, "malformed XML")
	ErrMalformedImport     = pkg.NewError(pkg.KindStructural, "malformed import")
	ErrNoRoot              = pkg.NewError(pkg.KindStructural, "document has no root element")
	ErrIllegalRoot         = pkg.NewError(pkg.KindStructural, "root element does not produce an instance")
	ErrUnknownElement      = pkg.NewError(pkg.KindStructural, "unknown element")
	ErrUnexpectedElement   = pkg.NewError(pkg.KindStructural, "element not allowed here")
	ErrMissingAttribute    = pkg.NewError(pkg.KindStructural, "missing required attribute")
	ErrTextAndChildren     = pkg.NewError(pkg.KindStructural, "element has both text and child elements")
	ErrUnterminatedBinding = pkg.NewError(pkg.KindStructural, "unterminated binding expression")
	ErrDuplicateID         = pkg.NewError(pkg.KindStructural, "duplicate fx:id")
	ErrMaxDepthExceeded    = pkg.NewError(pkg.KindStructural, "maximum element depth exceeded")
)
