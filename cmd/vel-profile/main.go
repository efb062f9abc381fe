package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"runtime/pprof"
	"time"

	"github.com/jessevdk/go-flags"
	"github.com/lestrrat-go/vel"
	"github.com/lestrrat-go/vel/dom"
	"github.com/lestrrat-go/vel/internal/treedesc"
	"github.com/pkg/errors"
)

const usage = `vel-profile - Profile rendering of an element tree

Usage:
  vel-profile [options] <tree-file>

Options:
  --iterations=N     Number of render iterations (default: 2000)
  --profile=TYPE     Profile type: cpu, mem (default: cpu)
  --output=FILE      Profile file (default: vel_<type>.prof)
  --serve            Open the profile with go tool pprof -http
  --port=N           pprof HTTP port (default: 8080)
  --help             Show this help message

Each iteration renders every tree in the file to a string and
materializes it into an in-memory DOM.

Examples:
  vel-profile tree.json                   # CPU profile
  vel-profile --profile=mem tree.yaml     # Memory profile
  vel-profile --serve --port=9090 tree.json
`

type cmdopts struct {
	Iterations int    `long:"iterations" default:"2000"`
	Profile    string `long:"profile" default:"cpu" choice:"cpu" choice:"mem"`
	Output     string `long:"output"`
	Serve      bool   `long:"serve"`
	Port       int    `long:"port" default:"8080"`
	Help       bool   `long:"help"`
}

func main() {
	var opts cmdopts
	args, err := flags.NewParser(&opts, flags.PassDoubleDash).Parse()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n\n", err)
		fmt.Print(usage)
		os.Exit(1)
	}

	if opts.Help {
		fmt.Print(usage)
		os.Exit(0)
	}

	if len(args) != 1 {
		fmt.Fprintf(os.Stderr, "Error: tree file argument required\n\n")
		fmt.Print(usage)
		os.Exit(1)
	}

	if opts.Output == "" {
		opts.Output = fmt.Sprintf("vel_%s.prof", opts.Profile)
	}

	if err := run(args[0], opts); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(treeFile string, opts cmdopts) error {
	fmt.Printf("Tree file: %s\n", treeFile)
	fmt.Printf("Profile type: %s\n", opts.Profile)
	fmt.Printf("Iterations: %d\n\n", opts.Iterations)

	f, err := os.Open(treeFile)
	if err != nil {
		return errors.Wrap(err, `failed to open tree file`)
	}
	trees, err := treedesc.Decode(f)
	f.Close()
	if err != nil {
		return err
	}

	if err := generateProfile(trees, opts.Iterations, opts.Profile, opts.Output); err != nil {
		return errors.Wrap(err, `failed to generate profile`)
	}
	fmt.Printf("Profile generated: %s\n", opts.Output)

	if !opts.Serve {
		return nil
	}
	return startPprofServer(opts.Output, opts.Port)
}

func generateProfile(trees []vel.Child, iterations int, profileType, profileFile string) error {
	// Disable tracing for performance
	vel.SetTracingEnabled(false)
	ctx := context.Background()

	switch profileType {
	case "cpu":
		return generateCPUProfile(ctx, trees, iterations, profileFile)
	case "mem":
		return generateMemProfile(ctx, trees, iterations, profileFile)
	default:
		return errors.Errorf(`unsupported profile type: %s`, profileType)
	}
}

var dumper = vel.NewDumper()

// renderOnce runs one iteration of the workload and returns the
// document it built.
func renderOnce(ctx context.Context, trees []vel.Child) (*dom.Document, error) {
	doc := dom.NewDocument()
	for _, tree := range trees {
		if err := dumper.Dump(io.Discard, tree); err != nil {
			return nil, err
		}

		e, ok := tree.(*vel.Element)
		if !ok {
			continue
		}
		node, err := e.Materialize(ctx, doc)
		if err != nil {
			return nil, err
		}
		if doc.DocumentElement() == nil {
			if err := doc.AppendChild(node); err != nil {
				return nil, err
			}
		}
	}
	return doc, nil
}

func generateCPUProfile(ctx context.Context, trees []vel.Child, iterations int, profileFile string) error {
	f, err := os.Create(profileFile)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := pprof.StartCPUProfile(f); err != nil {
		return err
	}
	defer pprof.StopCPUProfile()

	for i := range iterations {
		if _, err := renderOnce(ctx, trees); err != nil {
			return errors.Wrapf(err, `render failed at iteration %d`, i)
		}
	}
	return nil
}

func generateMemProfile(ctx context.Context, trees []vel.Child, iterations int, profileFile string) error {
	// Keep the documents alive so that their allocations show up
	docs := make([]*dom.Document, 0, iterations)
	for i := range iterations {
		doc, err := renderOnce(ctx, trees)
		if err != nil {
			return errors.Wrapf(err, `render failed at iteration %d`, i)
		}
		docs = append(docs, doc)
	}

	f, err := os.Create(profileFile)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := pprof.WriteHeapProfile(f); err != nil {
		return err
	}

	_ = len(docs)
	return nil
}

func openBrowser(url string) error {
	var cmd *exec.Cmd

	switch {
	case commandExists("xdg-open"): // Linux
		cmd = exec.Command("xdg-open", url)
	case commandExists("open"): // macOS
		cmd = exec.Command("open", url)
	case commandExists("cmd"): // Windows
		cmd = exec.Command("cmd", "/c", "start", url)
	default:
		return errors.New("no suitable browser opener found")
	}

	return cmd.Start()
}

func commandExists(cmd string) bool {
	_, err := exec.LookPath(cmd)
	return err == nil
}

func startPprofServer(profileFile string, port int) error {
	fmt.Printf("Starting pprof server on port %d...\n", port)

	url := fmt.Sprintf("http://localhost:%d/ui/", port)
	cmd := exec.Command("go", "tool", "pprof", "-http", fmt.Sprintf(":%d", port), "-no_browser", profileFile)
	if err := cmd.Start(); err != nil {
		return errors.Wrap(err, `failed to start pprof server`)
	}

	// Wait a moment for server to start
	time.Sleep(2 * time.Second)

	if err := openBrowser(url); err != nil {
		fmt.Printf("Could not open browser automatically. Please open: %s\n", url)
	}
	fmt.Printf("Press Ctrl+C to stop the server when done\n")

	return cmd.Wait()
}
