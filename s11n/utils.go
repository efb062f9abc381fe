// Package s11n contains the escaping helpers used when serializing
// element trees with escaping enabled.
package s11n

import (
	"io"
	"unicode/utf8"
)

var (
	escQuot = []byte("&#34;") // shorter than "&quot;"
	escAmp  = []byte("&amp;")
	escLt   = []byte("&lt;")
	escGt   = []byte("&gt;")
	escTab  = []byte("&#9;")
	escNl   = []byte("&#10;")
	escCr   = []byte("&#13;")
	escFFFD = []byte("�")
)

// isInCharacterRange checks if rune is in XML Character Range
func isInCharacterRange(r rune) bool {
	return r == 0x09 ||
		r == 0x0A ||
		r == 0x0D ||
		r >= 0x20 && r <= 0xD7FF ||
		r >= 0xE000 && r <= 0xFFFD ||
		r >= 0x10000 && r <= 0x10FFFF
}

type escapeFunc func(r rune) []byte

func escape(w io.Writer, s []byte, fn escapeFunc) error {
	last := 0
	for i := 0; i < len(s); {
		r, width := utf8.DecodeRune(s[i:])
		i += width

		var esc []byte
		if !isInCharacterRange(r) || (r == utf8.RuneError && width == 1) {
			esc = escFFFD
		} else if esc = fn(r); esc == nil {
			continue
		}

		if _, err := w.Write(s[last : i-width]); err != nil {
			return err
		}
		if _, err := w.Write(esc); err != nil {
			return err
		}
		last = i
	}

	_, err := w.Write(s[last:])
	return err
}

func textEscape(r rune) []byte {
	switch r {
	case '&':
		return escAmp
	case '<':
		return escLt
	case '>':
		return escGt
	case '\r':
		return escCr
	}
	return nil
}

func attrEscape(r rune) []byte {
	switch r {
	case '"':
		return escQuot
	case '\n':
		return escNl
	case '\t':
		return escTab
	}
	return textEscape(r)
}

// EscapeText writes s to w with &, <, > and carriage returns replaced
// by references. Invalid characters become U+FFFD.
func EscapeText(w io.Writer, s []byte) error {
	return escape(w, s, textEscape)
}

// EscapeAttrValue is EscapeText plus double quotes, tabs and newlines,
// for use inside a double-quoted attribute value.
func EscapeAttrValue(w io.Writer, s []byte) error {
	return escape(w, s, attrEscape)
}
