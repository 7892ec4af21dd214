package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain name", "holiday.mp4", "holiday.mp4"},
		{"spaces kept", "party mix 2024.mp4", "party mix 2024.mp4"},
		{"unicode kept", "café_vidéo.mp4", "café_vidéo.mp4"},
		{"path separators replaced", "../../etc/passwd", ".._.._etc_passwd"},
		{"quotes replaced", `my "best" clip.mp4`, "my _best_ clip.mp4"},
		{"header injection replaced", "clip\r\nSet-Cookie: x.mp4", "clip__Set-Cookie_ x.mp4"},
		{"empty becomes video", "", "video"},
		{"whitespace only becomes video", "   ", "video"},
		{"only dangerous chars becomes video", `///\\\`, "video"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SanitizeFilename(tt.input))
		})
	}
}

func TestSanitizeFilenameTruncation(t *testing.T) {
	long := strings.Repeat("a", 300) + ".mp4"
	got := SanitizeFilename(long)

	assert.LessOrEqual(t, len(got), 255)
	assert.True(t, strings.HasSuffix(got, ".mp4"), "extension preserved: %q", got)
}

func TestSanitizeFilenameTruncationMultibyte(t *testing.T) {
	long := strings.Repeat("é", 200) + ".mp4"
	got := SanitizeFilename(long)

	assert.LessOrEqual(t, len(got), 255)
	assert.True(t, strings.HasSuffix(got, ".mp4"))
	// No broken runes at the cut point.
	assert.True(t, strings.ToValidUTF8(got, "") == got)
}
