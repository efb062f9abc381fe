package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/dop251/goja"
	"github.com/jessevdk/go-flags"
	"github.com/lestrrat-go/vel"
	"github.com/lestrrat-go/vel/dom"
	"github.com/lestrrat-go/vel/dom/htmldom"
	"github.com/lestrrat-go/vel/encoding"
	"github.com/lestrrat-go/vel/foreign/gojabuilder"
	"github.com/lestrrat-go/vel/internal/cliutil"
	"github.com/lestrrat-go/vel/internal/treedesc"
	"github.com/pkg/errors"
)

type cmdopts struct {
	Format        string `long:"format" default:"html" choice:"html" choice:"dom" choice:"x-html" choice:"foreign"`
	Escape        bool   `long:"escape"`
	BuilderScript string `long:"builder-script"`
	Global        string `long:"global" default:"React"`
	Encoding      string `long:"encoding" default:"utf-8"`
	Stats         bool   `long:"stats"`
	Trace         bool   `long:"trace"`
	Version       bool   `long:"version"`
}

func main() {
	os.Exit(_main())
}

func showVersion() {
	fmt.Printf("vel-render: using vel version %s\n", vel.Version)
}

func showUsage() {
	fmt.Printf(`Usage : vel-render [options] files ...
	Read element tree descriptions (JSON or YAML) and render them
	--format=FORMAT     : html (default), dom, x-html or foreign
	--escape            : escape markup characters in html output
	--builder-script=F  : JavaScript file defining the foreign builder
	--global=NAME       : global holding the foreign builder (default React)
	--encoding=NAME     : output charset (default utf-8)
	--stats             : print element and comment counts to stderr
	--trace             : log trace events to stderr
	--version           : display the version of the library used
`)
}

func _main() int {
	opts := cmdopts{}
	args, err := flags.ParseArgs(&opts, os.Args[1:])
	if err != nil {
		showUsage()
		return 1
	}

	if opts.Version {
		showVersion()
		return 0
	}

	inputCh := make(chan io.Reader)
	errCh := make(chan error, 1)
	switch {
	case len(args) > 0: // filename present
		go func() {
			defer close(inputCh)
			for _, f := range args {
				fh, err := os.Open(f)
				if err != nil {
					errCh <- err
					return
				}
				inputCh <- fh
			}
		}()
	case !cliutil.IsTty(os.Stdin.Fd()):
		go func() {
			defer close(inputCh)
			inputCh <- os.Stdin
		}()
	default:
		showUsage()
		return 1
	}

	ctx := context.Background()
	if opts.Trace {
		ctx = vel.WithTraceLogger(ctx, slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	out, err := encoding.NewWriter(os.Stdout, opts.Encoding)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", err)
		return 1
	}
	defer out.Close()

	r, err := newRenderer(opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", err)
		return 1
	}

	for in := range inputCh {
		trees, err := treedesc.Decode(in)
		if c, ok := in.(io.Closer); ok && in != os.Stdin {
			c.Close()
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s\n", err)
			return 1
		}

		for _, tree := range trees {
			if err := r.render(ctx, out, tree); err != nil {
				fmt.Fprintf(os.Stderr, "%s\n", err)
				return 1
			}
			if opts.Stats {
				printStats(os.Stderr, tree)
			}
		}
	}

	select {
	case err := <-errCh:
		fmt.Fprintf(os.Stderr, "%s\n", err)
		return 1
	default:
	}

	return 0
}

type renderer struct {
	format  string
	dumper  *vel.Dumper
	vm      *goja.Runtime
	builder *gojabuilder.Builder
}

func newRenderer(opts cmdopts) (*renderer, error) {
	var dumpOptions []vel.DumpOption
	if opts.Escape {
		dumpOptions = append(dumpOptions, vel.WithEscaping(true))
	}
	r := &renderer{
		format: opts.Format,
		dumper: vel.NewDumper(dumpOptions...),
	}

	if opts.Format != "foreign" {
		return r, nil
	}

	r.vm = goja.New()
	if opts.BuilderScript != "" {
		src, err := os.ReadFile(opts.BuilderScript)
		if err != nil {
			return nil, errors.Wrap(err, `failed to read builder script`)
		}
		if _, err := r.vm.RunScript(opts.BuilderScript, string(src)); err != nil {
			return nil, errors.Wrap(err, `failed to run builder script`)
		}
	}

	// the builder is resolved from the script's globals; without one
	// this is where rendering to a foreign tree fails
	b, err := gojabuilder.Resolve(r.vm, gojabuilder.WithGlobal(opts.Global))
	if err != nil {
		return nil, err
	}
	r.builder = b
	return r, nil
}

func (r *renderer) render(ctx context.Context, out io.Writer, tree vel.Child) error {
	switch r.format {
	case "dom":
		doc := dom.NewDocument()
		if err := materialize(ctx, doc, tree); err != nil {
			return err
		}
		if err := dom.Serialize(out, doc); err != nil {
			return err
		}
	case "x-html":
		doc := htmldom.New()
		if err := materialize(ctx, doc, tree); err != nil {
			return err
		}
		if err := htmldom.Render(out, doc); err != nil {
			return err
		}
	case "foreign":
		e, ok := tree.(*vel.Element)
		if !ok {
			return nil
		}
		v, err := e.ToForeign(ctx, r.builder)
		if err != nil {
			return err
		}
		if err := r.vm.Set("__vel_result", v); err != nil {
			return err
		}
		s, err := r.vm.RunString(`JSON.stringify(__vel_result)`)
		if err != nil {
			return errors.Wrap(err, `failed to serialize foreign tree`)
		}
		if _, err := io.WriteString(out, s.String()); err != nil {
			return err
		}
	default:
		if err := r.dumper.Dump(out, tree); err != nil {
			return err
		}
	}
	_, err := io.WriteString(out, "\n")
	return err
}

type appender interface {
	vel.Document
	AppendChild(vel.DOMNode) error
}

func materialize(ctx context.Context, doc appender, tree vel.Child) error {
	var node vel.DOMNode
	switch tree := tree.(type) {
	case *vel.Element:
		n, err := tree.Materialize(ctx, doc)
		if err != nil {
			return err
		}
		node = n
	case *vel.Comment:
		n, err := tree.Materialize(ctx, doc)
		if err != nil {
			return err
		}
		node = n
	case vel.Value:
		if tree.IsNil() {
			return nil
		}
		node = doc.CreateTextNode(tree.String())
	}
	return doc.AppendChild(node)
}

type stats struct {
	elements int
	comments int
	values   int
}

func countNodes(tree vel.Child) stats {
	var s stats
	_ = vel.Walk(tree, func(c vel.Child) error {
		switch c.ChildType() {
		case vel.ElementChild:
			s.elements++
		case vel.CommentChild:
			s.comments++
		case vel.ValueChild:
			s.values++
		}
		return nil
	})
	return s
}

func printStats(out io.Writer, tree vel.Child) {
	s := countNodes(tree)
	fmt.Fprintf(out, "elements=%d comments=%d values=%d\n", s.elements, s.comments, s.values)
}
