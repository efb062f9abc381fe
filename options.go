package vel

import "github.com/lestrrat-go/option"

type Option = option.Interface

type identEscaping struct{}
type identSelfClosing struct{}

// DumpOption configures a Dumper.
type DumpOption interface {
	Option
	dumpOption()
}

type dumpOption struct{ Option }

func (*dumpOption) dumpOption() {}

// WithEscaping makes the Dumper escape markup characters in attribute
// values and text. The default output is unescaped.
func WithEscaping(v bool) DumpOption {
	return &dumpOption{option.New(identEscaping{}, v)}
}

// WithSelfClosing controls whether childless elements are written as
// <name/>. It is on by default; when off, <name></name> is written.
func WithSelfClosing(v bool) DumpOption {
	return &dumpOption{option.New(identSelfClosing{}, v)}
}
