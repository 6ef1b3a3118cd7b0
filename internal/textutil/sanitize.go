package textutil

import "strings"

// fileNameReplacer replaces filesystem-unsafe characters with safe alternatives.
var fileNameReplacer = strings.NewReplacer(
	"/", "",
	"\\", "",
	":", "",
	"*", "",
	"?", "",
	"\"", "",
	"<", "",
	">", "",
	"|", "",
)

// SanitizeFileName removes filesystem-unsafe characters from a file or
// directory name and collapses runs of whitespace. The result is trimmed of
// leading/trailing whitespace.
func SanitizeFileName(name string) string {
	name = fileNameReplacer.Replace(name)
	return strings.Join(strings.Fields(name), " ")
}
