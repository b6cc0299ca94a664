package storage

import "strings"

// SanitizeFilename приводит имя загружаемого файла к безопасному виду.
// Directory components are discarded and anything outside
// [A-Za-z0-9._-] becomes an underscore, so the result can never climb
// out of the bucket prefix. Returns "" when nothing usable is left.
func SanitizeFilename(name string) string {
	// drop any path components, whichever separator the client used
	if i := strings.LastIndexAny(name, `/\`); i >= 0 {
		name = name[i+1:]
	}

	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '.' || r == '-' || r == '_':
			b.WriteRune(r)
		case r == ' ':
			b.WriteByte('_')
		}
	}

	out := strings.Trim(b.String(), "._-")
	if out == "" {
		return ""
	}
	return out
}
