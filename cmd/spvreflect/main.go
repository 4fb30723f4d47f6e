// Command spvreflect inspects the resources used by SPIR-V shader modules.
//
// Usage:
//
//	spvreflect [-v] <command> [options] <args>
//
// Examples:
//
//	spvreflect reflect shader.spv                      # Text report
//	spvreflect reflect -format yaml *.spv             # YAML report
//	spvreflect resolve -entry main shader.spv light.0  # Resolve a symbol
//	spvreflect merge vert.spv:main frag.spv:main       # Merge two stages
//	spvreflect dis shader.spv                          # Disassemble
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	"github.com/google/subcommands"
)

var verbose = flag.Bool("v", false, "log debug output")

func main() {
	subcommands.Register(subcommands.HelpCommand(), "")
	subcommands.Register(subcommands.FlagsCommand(), "")
	subcommands.Register(subcommands.CommandsCommand(), "")
	subcommands.Register(&reflectCmd{}, "")
	subcommands.Register(&resolveCmd{}, "")
	subcommands.Register(&mergeCmd{}, "")
	subcommands.Register(&disCmd{}, "")

	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	ctx := withLogger(context.Background(), log)
	os.Exit(int(subcommands.Execute(ctx)))
}

type loggerKey struct{}

func withLogger(ctx context.Context, log *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, log)
}

func logger(ctx context.Context) *slog.Logger {
	if log, ok := ctx.Value(loggerKey{}).(*slog.Logger); ok {
		return log
	}
	return slog.Default()
}
