// Package gojabuilder implements vel.Builder on top of a goja
// JavaScript runtime, so element trees can be handed to a JS
// createElement style function such as React.createElement.
package gojabuilder

import (
	"maps"
	"slices"

	"github.com/dop251/goja"
	"github.com/lestrrat-go/option"
	"github.com/lestrrat-go/pdebug/v3"
	"github.com/lestrrat-go/vel"
	"github.com/pkg/errors"
)

// DefaultGlobal is the global that Resolve looks up when no other name
// is given.
const DefaultGlobal = "React"

type Option = option.Interface

type identGlobal struct{}

// WithGlobal changes the global that Resolve looks up.
func WithGlobal(name string) Option {
	return option.New(identGlobal{}, name)
}

// Builder calls a JS function for every element. Values it returns are
// goja.Value.
type Builder struct {
	vm   *goja.Runtime
	fn   goja.Callable
	this goja.Value
}

var _ vel.Builder = (*Builder)(nil)

// New creates a Builder from fn, which is either a function called as
// fn(tag, props, ...children) or an object with a createElement method.
func New(vm *goja.Runtime, fn goja.Value) (*Builder, error) {
	if vm == nil {
		return nil, errors.New("nil goja runtime")
	}
	if fn == nil || goja.IsUndefined(fn) || goja.IsNull(fn) {
		return nil, vel.ErrNoBuilder
	}

	if call, ok := goja.AssertFunction(fn); ok {
		return &Builder{vm: vm, fn: call, this: goja.Undefined()}, nil
	}

	obj := fn.ToObject(vm)
	call, ok := goja.AssertFunction(obj.Get("createElement"))
	if !ok {
		return nil, errors.Wrap(vel.ErrNoBuilder, `object has no createElement function`)
	}
	return &Builder{vm: vm, fn: call, this: obj}, nil
}

// Resolve looks up the builder from a global of vm, React by default.
// It fails with an error wrapping vel.ErrNoBuilder if the global is not
// defined.
func Resolve(vm *goja.Runtime, options ...Option) (*Builder, error) {
	if vm == nil {
		return nil, errors.New("nil goja runtime")
	}

	name := DefaultGlobal
	for _, o := range options {
		switch o.Ident() {
		case identGlobal{}:
			name = o.Value().(string)
		}
	}

	v := vm.Get(name)
	if v == nil || goja.IsUndefined(v) || goja.IsNull(v) {
		return nil, errors.Wrapf(vel.ErrNoBuilder, `global %q is not defined`, name)
	}
	return New(vm, v)
}

func (b *Builder) CreateElement(tag string, props map[string]any, children ...any) (any, error) {
	if pdebug.Enabled {
		g := pdebug.FuncMarker()
		defer g.End()
		pdebug.Printf("tag=%q props=%d children=%d", tag, len(props), len(children))
	}

	args := make([]goja.Value, 0, len(children)+2)
	args = append(args, b.vm.ToValue(tag), b.object(props))
	for _, c := range children {
		args = append(args, b.value(c))
	}

	v, err := b.fn(b.this, args...)
	if err != nil {
		return nil, errors.Wrapf(err, `createElement(%q) failed`, tag)
	}
	return v, nil
}

// object builds a plain JS object. Keys are set in sorted order so the
// resulting property order does not depend on map iteration.
func (b *Builder) object(m map[string]any) goja.Value {
	obj := b.vm.NewObject()
	for _, k := range slices.Sorted(maps.Keys(m)) {
		_ = obj.Set(k, b.value(m[k]))
	}
	return obj
}

func (b *Builder) value(v any) goja.Value {
	switch v := v.(type) {
	case goja.Value:
		return v
	case map[string]any:
		return b.object(v)
	case nil:
		return goja.Null()
	}
	return b.vm.ToValue(v)
}
