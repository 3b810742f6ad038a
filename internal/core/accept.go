package core

import (
	"bytes"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/saintfish/chardet"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// binarySniffLen is how many leading bytes are checked for null bytes.
// Matches the window http.DetectContentType uses for sniffing.
const binarySniffLen = 512

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// AcceptText validates an uploaded payload and decodes it to UTF-8 text.
// It rejects empty, oversized, and binary payloads, strips a UTF-8 or
// UTF-16 byte order mark, and transcodes legacy single-byte encodings
// detected in the payload. Bytes that still fail UTF-8 validation after
// decoding are replaced rather than rejected, since a handful of mangled
// characters should not block plotting an otherwise good file.
func AcceptText(data []byte, maxSize int64) (string, error) {
	if len(data) == 0 {
		return "", ErrEmptyFile
	}
	if maxSize > 0 && int64(len(data)) > maxSize {
		return "", fmt.Errorf("%w: %d bytes exceeds limit of %d", ErrFileTooLarge, len(data), maxSize)
	}

	head := data
	if len(head) > binarySniffLen {
		head = head[:binarySniffLen]
	}
	if !hasUTF16BOM(data) && bytes.IndexByte(head, 0x00) >= 0 {
		return "", ErrBinaryFile
	}

	decoded, err := decodePayload(data)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(decoded) == "" {
		return "", ErrEmptyFile
	}
	return decoded, nil
}

func hasUTF16BOM(data []byte) bool {
	return len(data) >= 2 &&
		((data[0] == 0xFF && data[1] == 0xFE) || (data[0] == 0xFE && data[1] == 0xFF))
}

// decodePayload converts raw bytes to UTF-8 text. UTF-16 payloads are
// recognized by their BOM; otherwise the charset detector picks between
// UTF-8 and the common Windows code pages.
func decodePayload(data []byte) (string, error) {
	if hasUTF16BOM(data) {
		dec := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewDecoder()
		out, _, err := transform.Bytes(dec, data)
		if err != nil {
			return "", fmt.Errorf("encoding error: decode utf-16: %w", err)
		}
		return string(out), nil
	}

	data = bytes.TrimPrefix(data, utf8BOM)
	if utf8.Valid(data) {
		return string(data), nil
	}

	sample := data
	if len(sample) > 2048 {
		sample = sample[:2048]
	}
	if best, err := chardet.NewTextDetector().DetectBest(sample); err == nil {
		var cm *charmap.Charmap
		switch best.Charset {
		case "windows-1251":
			cm = charmap.Windows1251
		case "windows-1252", "ISO-8859-1":
			cm = charmap.Windows1252
		case "ISO-8859-5":
			cm = charmap.ISO8859_5
		case "KOI8-R":
			cm = charmap.KOI8R
		}
		if cm != nil {
			out, _, err := transform.Bytes(cm.NewDecoder(), data)
			if err == nil {
				return string(out), nil
			}
		}
	}

	// Unknown encoding: salvage what is valid instead of failing.
	return strings.ToValidUTF8(string(data), "�"), nil
}
