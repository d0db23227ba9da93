package openai

import "strings"

// flattenResponse collapses a model reply to a single trimmed line, since
// replies are meant to be spoken aloud.
func flattenResponse(s string) string {
	fields := strings.Fields(s)
	return strings.Join(fields, " ")
}
