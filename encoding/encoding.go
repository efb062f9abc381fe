// Package encoding wraps around the various encoding stuff in
// golang.org/x/text/encoding. Part of the reason this exists is that
// the package names such as "unicode" clash with the stdlib, and
// it's rather easier if we just hide it from the rest of vel.
//
// It is used to write rendered markup in a charset other than UTF-8.
package encoding

import (
	"io"
	"strings"

	"github.com/pkg/errors"
	enc "golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/traditionalchinese"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

var ErrUnknownEncoding = errors.New("unknown encoding")

// names that the WHATWG index does not know, or maps differently
var aliases = map[string]enc.Encoding{
	"utf8":              unicode.UTF8,
	"utf-8":             unicode.UTF8,
	"euc-jp":            japanese.EUCJP,
	"shift_jis":         japanese.ShiftJIS,
	"shift-jis":         japanese.ShiftJIS,
	"shiftjis":          japanese.ShiftJIS,
	"cp932":             japanese.ShiftJIS,
	"jis":               japanese.ISO2022JP,
	"iso-2022-jp":       japanese.ISO2022JP,
	"big5":              traditionalchinese.Big5,
	"euc-kr":            korean.EUCKR,
	"hz-gb2312":         simplifiedchinese.HZGB2312,
	"cp437":             charmap.CodePage437,
	"cp866":             charmap.CodePage866,
	"iso-8859-1":        charmap.ISO8859_1,
	"koi8r":             charmap.KOI8R,
	"koi8u":             charmap.KOI8U,
	"macintosh":         charmap.Macintosh,
	"macintoshcyrillic": charmap.MacintoshCyrillic,
	"windows1250":       charmap.Windows1250,
	"windows1251":       charmap.Windows1251,
	"windows1252":       charmap.Windows1252,
	"windows1253":       charmap.Windows1253,
	"windows1254":       charmap.Windows1254,
	"windows1255":       charmap.Windows1255,
	"windows1256":       charmap.Windows1256,
	"windows1257":       charmap.Windows1257,
	"windows1258":       charmap.Windows1258,
	"windows874":        charmap.Windows874,
	"xuserdefined":      charmap.XUserDefined,
}

// Load returns the encoding called name, or nil if there is none. Names
// are matched case-insensitively, first against a small alias table and
// then against the WHATWG encoding labels.
func Load(name string) enc.Encoding {
	name = strings.ToLower(strings.TrimSpace(name))
	if e, ok := aliases[name]; ok {
		return e
	}
	if e, err := htmlindex.Get(name); err == nil {
		return e
	}
	return nil
}

// NewWriter returns a writer that converts UTF-8 written to it into the
// named encoding before writing to w. Close flushes any partial input;
// it does not close w.
func NewWriter(w io.Writer, name string) (io.WriteCloser, error) {
	e := Load(name)
	if e == nil {
		return nil, errors.Wrapf(ErrUnknownEncoding, `encoding %q`, name)
	}
	if e == unicode.UTF8 {
		return nopCloser{w}, nil
	}
	return transform.NewWriter(w, e.NewEncoder()), nil
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error {
	return nil
}
