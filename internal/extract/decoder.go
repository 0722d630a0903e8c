// Package extract decodes uploaded plain-text content into a usable string.
package extract

import (
	"bytes"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

var (
	bomUTF8    = []byte{0xEF, 0xBB, 0xBF}
	bomUTF16LE = []byte{0xFF, 0xFE}
	bomUTF16BE = []byte{0xFE, 0xFF}
)

// Decode turns raw uploaded bytes into document text. UTF-8 and BOM-marked
// UTF-16 are decoded directly; anything else falls back to Windows-1252 so
// legacy exports still read. Decoding is total: no content makes it fail,
// binary input simply yields whatever text it decodes to. Line endings are
// normalized to LF.
func Decode(data []byte) string {
	var text string
	switch {
	case bytes.HasPrefix(data, bomUTF8):
		text = string(data[len(bomUTF8):])
	case bytes.HasPrefix(data, bomUTF16LE):
		text = decodeUTF16(data, unicode.LittleEndian)
	case bytes.HasPrefix(data, bomUTF16BE):
		text = decodeUTF16(data, unicode.BigEndian)
	case utf8.Valid(data):
		text = string(data)
	default:
		decoded, err := charmap.Windows1252.NewDecoder().Bytes(data)
		if err != nil {
			// Windows-1252 decoding cannot actually fail; replace invalid
			// sequences as a final safety net.
			text = strings.ToValidUTF8(string(data), "�")
		} else {
			text = string(decoded)
		}
	}
	return normalizeNewlines(text)
}

func decodeUTF16(data []byte, endianness unicode.Endianness) string {
	decoder := unicode.UTF16(endianness, unicode.UseBOM).NewDecoder()
	decoded, err := decoder.Bytes(data)
	if err != nil {
		return strings.ToValidUTF8(string(data), "�")
	}
	return string(decoded)
}

func normalizeNewlines(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}
