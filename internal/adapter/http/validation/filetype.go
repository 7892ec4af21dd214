// Package validation provides upload validation utilities for the HTTP layer.
package validation

import (
	"errors"
	"io"
	"net/http"
)

// ErrDisallowedFileType is returned when a file type is not in the allowlist.
var ErrDisallowedFileType = errors.New("file type not allowed")

// allowedMIMETypes defines the allowlist of video MIME types accepted for
// identification. Audio decoding handles anything ffmpeg can open, but the
// upload surface only accepts common video containers.
var allowedMIMETypes = map[string]bool{
	"video/mp4":        true,
	"video/webm":       true,
	"video/quicktime":  true,
	"video/x-msvideo":  true,
	"video/x-matroska": true,
}

// magicBytesBufferSize is the number of bytes to read for content type detection.
const magicBytesBufferSize = 512

// ValidateMagicBytes validates a file's content type by reading its magic
// bytes. It uses http.DetectContentType for standard detection and includes
// custom detection for containers the standard library does not recognize.
//
// The function reads up to 512 bytes from the reader, detects the MIME type,
// and resets the reader position to the beginning.
func ValidateMagicBytes(reader io.ReadSeeker) (mime string, allowed bool, err error) {
	buf := make([]byte, magicBytesBufferSize)
	n, err := reader.Read(buf)
	if err != nil && !errors.Is(err, io.EOF) {
		return "", false, err
	}

	if _, err := reader.Seek(0, io.SeekStart); err != nil {
		return "", false, err
	}

	if n == 0 {
		return "application/octet-stream", false, nil
	}

	buf = buf[:n]

	mime = detectCustomMagicBytes(buf)
	if mime == "" {
		mime = http.DetectContentType(buf)
	}

	return mime, allowedMIMETypes[mime], nil
}

// detectCustomMagicBytes handles detection of container types that
// http.DetectContentType may not recognize correctly.
func detectCustomMagicBytes(buf []byte) string {
	if len(buf) < 4 {
		return ""
	}

	// WebM/Matroska: EBML header (0x1A 0x45 0xDF 0xA3). Matroska and WebM
	// share the header; WebM is the safer guess for uploads and both are
	// allowed anyway.
	if buf[0] == 0x1A && buf[1] == 0x45 && buf[2] == 0xDF && buf[3] == 0xA3 {
		return "video/webm"
	}

	// AVI: RIFF....AVI (bytes 0-3: RIFF, bytes 8-11: "AVI ")
	if len(buf) >= 12 {
		if buf[0] == 'R' && buf[1] == 'I' && buf[2] == 'F' && buf[3] == 'F' &&
			buf[8] == 'A' && buf[9] == 'V' && buf[10] == 'I' && buf[11] == ' ' {
			return "video/x-msvideo"
		}
	}

	// MP4/QuickTime: ftyp box at offset 4 (bytes 4-7: "ftyp")
	// The format is: [4 bytes size][4 bytes "ftyp"][brand...]
	if len(buf) >= 12 {
		if buf[4] == 'f' && buf[5] == 't' && buf[6] == 'y' && buf[7] == 'p' {
			brand := string(buf[8:12])
			if brand == "qt  " {
				return "video/quicktime"
			}
			// Default to MP4 for other ftyp brands (isom, mp42, avc1, ...)
			return "video/mp4"
		}
	}

	return ""
}
