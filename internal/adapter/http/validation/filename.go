package validation

import (
	"path/filepath"
	"strings"
	"unicode/utf8"
)

// maxFilenameLength is the maximum allowed filename length (common filesystem limit).
const maxFilenameLength = 255

// dangerousChars contains characters that must be replaced in filenames.
// These characters can cause HTTP header injection or path traversal attacks.
var dangerousChars = map[rune]bool{
	'"':  true, // Can break Content-Disposition header quotes
	'\\': true, // Path separator on Windows, escape char
	'/':  true, // Path separator
	':':  true, // Windows drive separator, URI scheme
	'\n': true, // HTTP header injection
	'\r': true, // HTTP header injection
}

// SanitizeFilename sanitizes an uploaded video's filename before it is stored
// on disk or echoed back in job payloads. It:
//   - Replaces dangerous characters (quotes, backslash, newlines, control chars, path separators) with underscore
//   - Preserves Unicode characters (accented letters, CJK, emoji)
//   - Truncates to 255 bytes while preserving the file extension
//   - Returns "video" for empty or whitespace-only input
func SanitizeFilename(name string) string {
	var sb strings.Builder
	sb.Grow(len(name))

	for _, r := range name {
		if shouldReplace(r) {
			sb.WriteRune('_')
		} else {
			sb.WriteRune(r)
		}
	}

	result := strings.TrimSpace(sb.String())

	if result == "" || isOnlyUnderscores(result) {
		return "video"
	}

	if len(result) > maxFilenameLength {
		result = truncatePreservingExtension(result)
	}

	return result
}

// shouldReplace returns true if the character should be replaced with underscore.
func shouldReplace(r rune) bool {
	// Replace control characters (< 32 and DEL 127)
	if r < 32 || r == 127 {
		return true
	}
	return dangerousChars[r]
}

func isOnlyUnderscores(s string) bool {
	for _, r := range s {
		if r != '_' {
			return false
		}
	}
	return true
}

// truncatePreservingExtension truncates a filename to maxFilenameLength while
// preserving the file extension if possible.
func truncatePreservingExtension(name string) string {
	ext := filepath.Ext(name)
	extLen := len(ext)

	if extLen == 0 || extLen >= maxFilenameLength {
		return truncateToBytes(name, maxFilenameLength)
	}

	maxBaseLen := maxFilenameLength - extLen
	baseName := name[:len(name)-extLen]

	return truncateToBytes(baseName, maxBaseLen) + ext
}

// truncateToBytes truncates a UTF-8 string to at most maxBytes bytes,
// ensuring we don't cut in the middle of a multi-byte character.
func truncateToBytes(s string, maxBytes int) string {
	if len(s) <= maxBytes {
		return s
	}

	for maxBytes > 0 && !utf8.ValidString(s[:maxBytes]) {
		maxBytes--
	}

	for maxBytes > 0 {
		r, _ := utf8.DecodeLastRuneInString(s[:maxBytes])
		if r != utf8.RuneError {
			break
		}
		maxBytes--
	}

	return s[:maxBytes]
}
