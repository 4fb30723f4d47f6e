package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"

	"github.com/gogpu/spvreflect"
)

type resolveCmd struct {
	entry string
}

func (*resolveCmd) Name() string     { return "resolve" }
func (*resolveCmd) Synopsis() string { return "Resolves symbols against an entry point." }
func (*resolveCmd) Usage() string {
	return `spvreflect resolve -entry <name> <file.spv> <symbol>...

A symbol is a dot-separated path. It starts with a descriptor, given as
"set.bind", its name, or an empty segment for the push-constant block, or
with a location or name prefixed by "in." or "out.". Descriptor symbols can
continue into struct members and array elements.
`
}

func (cmd *resolveCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&cmd.entry, "entry", "main", "entry point name")
}

func (cmd *resolveCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() < 2 {
		f.Usage()
		return subcommands.ExitUsageError
	}
	if err := cmd.execute(f.Arg(0), f.Args()[1:]); err != nil {
		logger(ctx).Error("resolve failed", "err", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

func (cmd *resolveCmd) execute(file string, symbols []string) error {
	ep, err := loadEntryPoint(file, cmd.entry)
	if err != nil {
		return err
	}
	for _, symbol := range symbols {
		line, ok := resolveSymbol(ep.Manifest, symbol)
		if !ok {
			return fmt.Errorf("%s: cannot resolve %q", file, symbol)
		}
		fmt.Fprintf(os.Stdout, "%s: %s\n", symbol, line)
	}
	return nil
}

func resolveSymbol(m *spvreflect.Manifest, symbol string) (string, bool) {
	if rest, ok := strings.CutPrefix(symbol, "in."); ok {
		res, ok := m.ResolveInput(rest)
		if !ok {
			return "", false
		}
		return fmt.Sprintf("input %s %s", res.Location, res.Type), true
	}
	if rest, ok := strings.CutPrefix(symbol, "out."); ok {
		res, ok := m.ResolveOutput(rest)
		if !ok {
			return "", false
		}
		return fmt.Sprintf("output %s %s", res.Location, res.Type), true
	}
	res, ok := m.ResolveDesc(symbol)
	if !ok {
		return "", false
	}
	if res.Member == nil {
		return fmt.Sprintf("%s %s", res.Binding, res.Desc), true
	}
	return fmt.Sprintf("%s offset=%d %s", res.Binding, res.Member.Offset, res.Member.Type), true
}

var errNoEntryPoint = errors.New("no such entry point")

// loadEntryPoint reflects file and returns its entry point called name.
func loadEntryPoint(file, name string) (spvreflect.EntryPoint, error) {
	b, err := readBinary(file)
	if err != nil {
		return spvreflect.EntryPoint{}, err
	}
	entryPoints, err := spvreflect.Reflect(b)
	if err != nil {
		return spvreflect.EntryPoint{}, fmt.Errorf("%s: %w", file, err)
	}
	for _, ep := range entryPoints {
		if ep.Name == name {
			return ep, nil
		}
	}
	return spvreflect.EntryPoint{}, fmt.Errorf("%s: %q: %w", file, name, errNoEntryPoint)
}
