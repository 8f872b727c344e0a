// Command rsdump prints a render state descriptor as YAML, as a readable
// listing, as the GL calls that establish it, or as the WebGPU state it
// translates to.
//
// Usage:
//
//	rsdump -preset opaque -format gl
//	rsdump -preset ./states/shadow.yaml -format webgpu
//	rsdump -preset transparent -from opaque -format gl
//	rsdump -list
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/gogpu/g3d"
	"github.com/gogpu/g3d/backend/glstate"
	"github.com/gogpu/g3d/pipeline"
	"github.com/gogpu/g3d/webgpu"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("rsdump: ")
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(2)
		}
		log.Fatal(err)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("rsdump", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		preset  = fs.String("preset", "default", "built-in preset name or path to a YAML descriptor")
		format  = fs.String("format", "text", "output format: text, yaml, gl or webgpu")
		from    = fs.String("from", "", "with -format gl, print only the calls needed to get here from this preset")
		list    = fs.Bool("list", false, "list the built-in presets and exit")
		verbose = fs.Bool("v", false, "debug logging to stderr")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *verbose {
		g3d.SetLogger(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
		defer g3d.SetLogger(nil)
	}

	if *list {
		for _, name := range pipeline.PresetNames() {
			fmt.Fprintln(stdout, name)
		}
		return nil
	}

	d, err := loadState(*preset)
	if err != nil {
		return err
	}

	switch *format {
	case "text":
		return writeText(stdout, d)
	case "yaml":
		return pipeline.WriteDescriptor(stdout, d)
	case "gl":
		cmds := glstate.Encode(d)
		if *from != "" {
			base, err := loadState(*from)
			if err != nil {
				return err
			}
			cmds = glstate.Diff(base, d)
		}
		for _, c := range cmds {
			fmt.Fprintln(stdout, c)
		}
		return nil
	case "webgpu":
		p, err := webgpu.Translate(d)
		if err != nil {
			return err
		}
		return writeWebGPU(stdout, p)
	}
	return fmt.Errorf("unknown format %q", *format)
}

// loadState resolves a built-in preset name, falling back to a file path.
func loadState(name string) (pipeline.RenderStateDescriptor, error) {
	d, err := pipeline.Preset(name)
	if err == nil {
		return d, nil
	}
	if strings.ContainsAny(name, `/\`) || strings.HasSuffix(name, ".yaml") || strings.HasSuffix(name, ".yml") {
		return pipeline.LoadDescriptorFile(name)
	}
	return d, err
}

// writeText lists every field with enum values by name.
func writeText(w io.Writer, d pipeline.RenderStateDescriptor) error {
	data, err := yaml.Marshal(d)
	if err != nil {
		return err
	}
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return err
	}
	if len(doc.Content) == 0 {
		return nil
	}
	fields := doc.Content[0].Content
	for i := 0; i+1 < len(fields); i += 2 {
		key, val := fields[i], fields[i+1]
		v := val.Value
		if c := val.LineComment + key.LineComment; c != "" {
			v = strings.TrimSpace(strings.TrimPrefix(c, "#"))
		}
		if _, err := fmt.Fprintf(w, "%-22s %s\n", key.Value, v); err != nil {
			return err
		}
	}
	return nil
}

func writeWebGPU(w io.Writer, p webgpu.Pipeline) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(p); err != nil {
		return err
	}
	return enc.Close()
}
