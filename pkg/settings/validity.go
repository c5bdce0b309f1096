package settings

import "encoding/json"

// IsValid reports whether text is a well-formed JSON document.
func IsValid(text string) bool {
	return json.Valid([]byte(text))
}
