package translate

import (
	"path"
	"strings"
	"unicode"
)

const loaderSuffix = "Loader"

// LoaderName derives the name of a generated loader from the logical path
// of its document, e.g. "views/main-window.fxml" yields "MainWindowLoader".
func LoaderName(p string) string {
	base := strings.TrimSuffix(path.Base(p), path.Ext(p))

	var sb strings.Builder

	for part := range strings.FieldsFuncSeq(base, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	}) {
		rs := []rune(part)
		rs[0] = unicode.ToUpper(rs[0])
		sb.WriteString(string(rs))
	}

	if sb.Len() == 0 {
		return loaderSuffix
	}

	if unicode.IsDigit([]rune(sb.String())[0]) {
		return "X" + sb.String() + loaderSuffix
	}

	return sb.String() + loaderSuffix
}
