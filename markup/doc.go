// Package markup parses FXML user interface documents into a typed element
// tree.
//
// A [Document] holds the document's imports, its root instance element and
// the optional controller type. Elements form a closed set of variants
// implementing [Element]; consumers switch over the concrete types:
//
//	switch e := el.(type) {
//	case *markup.Instantiation:
//	case *markup.Root:
//	case *markup.Define:
//	case *markup.Reference:
//	case *markup.Include:
//	case *markup.PropertyElement:
//	case *markup.PropertyValue:
//	case *markup.StaticProperty:
//	}
//
// The parser performs no name resolution; class names are kept as written
// and resolved later against the imports.
//
// String values on attributes and property text follow a small grammar
// (see [ParseValue]): "$id" references a named object, "${expr}" is a
// binding, "@path" a resource location, "#name" a controller method, and a
// leading backslash escapes any of those prefixes.
package markup
