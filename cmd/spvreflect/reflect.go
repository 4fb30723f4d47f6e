package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"runtime"

	"github.com/google/subcommands"
	"golang.org/x/sync/errgroup"

	"github.com/gogpu/spvreflect"
)

type reflectCmd struct {
	format   string
	jobs     int
	all      bool
	builtins bool
}

func (*reflectCmd) Name() string     { return "reflect" }
func (*reflectCmd) Synopsis() string { return "Reports the resources used by each entry point." }
func (*reflectCmd) Usage() string {
	return "spvreflect reflect [-format text|yaml] [-j n] [-all] [-builtins] <file.spv>...\n"
}

func (cmd *reflectCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&cmd.format, "format", "text", "output format, text or yaml")
	f.IntVar(&cmd.jobs, "j", runtime.NumCPU(), "number of files reflected concurrently")
	f.BoolVar(&cmd.all, "all", false, "report every resource, used or not")
	f.BoolVar(&cmd.builtins, "builtins", false, "report built-in variables")
}

func (cmd *reflectCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		f.Usage()
		return subcommands.ExitUsageError
	}
	if cmd.format != "text" && cmd.format != "yaml" {
		logger(ctx).Error("unknown format", "format", cmd.format)
		return subcommands.ExitUsageError
	}
	if err := cmd.execute(ctx, f.Args()); err != nil {
		logger(ctx).Error("reflect failed", "err", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

func (cmd *reflectCmd) execute(ctx context.Context, files []string) error {
	opts := spvreflect.Options{
		IncludeBuiltins:       cmd.builtins,
		ReferenceAllResources: cmd.all,
	}
	reports, err := reflectFiles(ctx, files, opts, cmd.jobs)
	if err != nil {
		return err
	}
	if cmd.format == "yaml" {
		return writeYAML(os.Stdout, reports)
	}
	return writeText(os.Stdout, reports)
}

// reflectFiles reflects every file with at most jobs files in flight and
// returns the reports in argument order.
func reflectFiles(ctx context.Context, files []string, opts spvreflect.Options, jobs int) ([]report, error) {
	log := logger(ctx)
	reports := make([]report, len(files))

	eg, ctx := errgroup.WithContext(ctx)
	if jobs > 0 {
		eg.SetLimit(jobs)
	}
	for i, file := range files {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			b, err := readBinary(file)
			if err != nil {
				return err
			}
			entryPoints, err := spvreflect.ReflectWithOptions(b, opts)
			if err != nil {
				return fmt.Errorf("%s: %w", file, err)
			}
			log.Debug("reflected", "file", file, "entry_points", len(entryPoints))
			reports[i] = newReport(file, entryPoints)
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return reports, nil
}
