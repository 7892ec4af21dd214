package validation

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mp4Header(brand string) []byte {
	buf := make([]byte, 32)
	copy(buf[4:], "ftyp")
	copy(buf[8:], brand)
	return buf
}

func TestValidateMagicBytes(t *testing.T) {
	tests := []struct {
		name        string
		content     []byte
		wantMIME    string
		wantAllowed bool
	}{
		{"mp4 isom", mp4Header("isom"), "video/mp4", true},
		{"mp4 mp42", mp4Header("mp42"), "video/mp4", true},
		{"quicktime", mp4Header("qt  "), "video/quicktime", true},
		{"webm", append([]byte{0x1A, 0x45, 0xDF, 0xA3}, make([]byte, 28)...), "video/webm", true},
		{"avi", append([]byte("RIFF\x00\x00\x00\x00AVI "), make([]byte, 20)...), "video/x-msvideo", true},
		{"plain text", []byte("this is not a video at all, just words"), "text/plain; charset=utf-8", false},
		{"png image", []byte("\x89PNG\r\n\x1a\n" + "0000000000000000"), "image/png", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mime, allowed, err := ValidateMagicBytes(bytes.NewReader(tt.content))
			require.NoError(t, err)
			assert.Equal(t, tt.wantMIME, mime)
			assert.Equal(t, tt.wantAllowed, allowed)
		})
	}
}

func TestValidateMagicBytesEmptyFile(t *testing.T) {
	mime, allowed, err := ValidateMagicBytes(bytes.NewReader(nil))
	require.NoError(t, err)
	assert.Equal(t, "application/octet-stream", mime)
	assert.False(t, allowed)
}

func TestValidateMagicBytesResetsReader(t *testing.T) {
	content := mp4Header("isom")
	r := bytes.NewReader(content)

	_, _, err := ValidateMagicBytes(r)
	require.NoError(t, err)

	rest := make([]byte, len(content))
	n, err := r.Read(rest)
	require.NoError(t, err)
	assert.Equal(t, len(content), n)
	assert.Equal(t, content, rest)
}
