package vel

import (
	"io"

	"github.com/lestrrat-go/pdebug/v3"
	"github.com/lestrrat-go/vel/internal/pool"
	"github.com/lestrrat-go/vel/s11n"
)

// Dumper serializes element trees to their HTML-like string form.
//
// By default no escaping is performed: attribute values and text are
// written verbatim, and namespaced attributes are written as
// `namespaceURI:name="value"`.
type Dumper struct {
	escape      bool
	selfClosing bool
}

var defaultDumper = NewDumper()

func NewDumper(options ...DumpOption) *Dumper {
	d := &Dumper{selfClosing: true}
	for _, option := range options {
		switch option.Ident() {
		case identEscaping{}:
			d.escape = option.Value().(bool)
		case identSelfClosing{}:
			d.selfClosing = option.Value().(bool)
		}
	}
	return d
}

// Dump writes the serialized form of c to out.
func (d *Dumper) Dump(out io.Writer, c Child) error {
	if pdebug.Enabled {
		g := pdebug.FuncMarker()
		defer g.End()
	}

	switch c := c.(type) {
	case *Element:
		if c == nil {
			return ErrNilNode
		}
		return d.dumpElement(out, c)
	case *Comment:
		if c == nil {
			return ErrNilNode
		}
		return d.writeString(out, c.String())
	case Value:
		return d.dumpText(out, c.String())
	case nil:
		return ErrNilNode
	}
	return nil
}

// DumpString returns the serialized form of c.
func (d *Dumper) DumpString(c Child) (string, error) {
	buf := pool.ByteSlice().Get()
	w := &sliceWriter{buf: buf}
	defer func() { pool.ByteSlice().Put(w.buf) }()

	if err := d.Dump(w, c); err != nil {
		return "", err
	}
	return string(w.buf), nil
}

func (d *Dumper) dumpElement(out io.Writer, e *Element) error {
	if err := d.writeString(out, "<"+e.name); err != nil {
		return err
	}

	for key, value := range e.attrs.Range() {
		if value.group != nil {
			for name, v := range value.group.Range() {
				if isNil(v) {
					continue
				}
				if err := d.dumpAttr(out, key+":"+name, stringify(v)); err != nil {
					return err
				}
			}
			continue
		}

		// function values are listeners; they have no string form
		if isHandler(value.scalar) {
			continue
		}
		if err := d.dumpAttr(out, key, stringify(value.scalar)); err != nil {
			return err
		}
	}

	if len(e.children) == 0 && d.selfClosing {
		return d.writeString(out, "/>")
	}

	if err := d.writeString(out, ">"); err != nil {
		return err
	}
	for _, child := range e.children {
		if err := d.Dump(out, child); err != nil {
			return err
		}
	}
	return d.writeString(out, "</"+e.name+">")
}

func (d *Dumper) dumpAttr(out io.Writer, name, value string) error {
	if err := d.writeString(out, " "+name+`="`); err != nil {
		return err
	}
	if d.escape {
		if err := s11n.EscapeAttrValue(out, []byte(value)); err != nil {
			return err
		}
	} else if err := d.writeString(out, value); err != nil {
		return err
	}
	return d.writeString(out, `"`)
}

func (d *Dumper) dumpText(out io.Writer, s string) error {
	if d.escape {
		return s11n.EscapeText(out, []byte(s))
	}
	return d.writeString(out, s)
}

func (d *Dumper) writeString(out io.Writer, s string) error {
	_, err := io.WriteString(out, s)
	return err
}

type sliceWriter struct {
	buf []byte
}

func (w *sliceWriter) Write(p []byte) (int, error) {
	w.buf = append(w.buf, p...)
	return len(p), nil
}

func (w *sliceWriter) WriteString(s string) (int, error) {
	w.buf = append(w.buf, s...)
	return len(s), nil
}

// String returns the serialized form of the element. Childless elements
// are self-closing.
func (e *Element) String() string {
	s, _ := defaultDumper.DumpString(e)
	return s
}

// OuterHTML is the same as String.
func (e *Element) OuterHTML() string {
	return e.String()
}

// InnerHTML returns the serialized children, concatenated in order.
func (e *Element) InnerHTML() string {
	buf := pool.ByteSlice().Get()
	w := &sliceWriter{buf: buf}
	defer func() { pool.ByteSlice().Put(w.buf) }()

	for _, child := range e.children {
		_ = defaultDumper.Dump(w, child)
	}
	return string(w.buf)
}
