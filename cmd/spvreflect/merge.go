package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"

	"github.com/gogpu/spvreflect"
)

type mergeCmd struct {
	format string
}

func (*mergeCmd) Name() string     { return "merge" }
func (*mergeCmd) Synopsis() string { return "Merges the manifests of consecutive pipeline stages." }
func (*mergeCmd) Usage() string {
	return "spvreflect merge [-format text|yaml] <file.spv:entry>...\n"
}

func (cmd *mergeCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&cmd.format, "format", "text", "output format, text or yaml")
}

func (cmd *mergeCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() < 2 {
		f.Usage()
		return subcommands.ExitUsageError
	}
	if err := cmd.execute(ctx, f.Args()); err != nil {
		logger(ctx).Error("merge failed", "err", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

func (cmd *mergeCmd) execute(ctx context.Context, stages []string) error {
	var merged *spvreflect.Manifest
	for _, stage := range stages {
		file, entry, ok := strings.Cut(stage, ":")
		if !ok {
			return fmt.Errorf("%q: want file:entry", stage)
		}
		ep, err := loadEntryPoint(file, entry)
		if err != nil {
			return err
		}
		if merged == nil {
			merged = ep.Manifest
			continue
		}
		logger(ctx).Debug("merging", "stage", stage)
		if merged, err = merged.Merge(ep.Manifest); err != nil {
			return fmt.Errorf("%s: %w", stage, err)
		}
	}

	r := report{
		File:        strings.Join(stages, " + "),
		EntryPoints: []entryReport{newEntryReport(merged)},
	}
	if cmd.format == "yaml" {
		return writeYAML(os.Stdout, []report{r})
	}
	return writeText(os.Stdout, []report{r})
}
