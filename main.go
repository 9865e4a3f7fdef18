package main

import (
	"context"
	"errors"
	"flag"
	"io/fs"
	"os"
	"strings"
	"time"

	"golang.org/x/term"

	"github.com/jcorbin/forsh/internal/config"
	"github.com/jcorbin/forsh/internal/fileinput"
	"github.com/jcorbin/forsh/internal/logio"
	"github.com/jcorbin/forsh/internal/shellexec"
)

func main() {
	ctx := context.Background()
	log := logio.New(os.Stderr)

	var (
		timeout    time.Duration
		trace      bool
		traceLevel int
		maxDepth   int
		configPath string
		noRC       bool
		command    string
	)
	flag.DurationVar(&timeout, "timeout", 0, "specify a time limit")
	flag.BoolVar(&trace, "trace", false, "enable interpreter debug logging")
	flag.IntVar(&traceLevel, "trace-level", 0, "evaluation trace level 0-3")
	flag.IntVar(&maxDepth, "max-depth", defaultMaxDepth, "maximum evaluation depth")
	flag.StringVar(&configPath, "config", config.Path(), "config file")
	flag.BoolVar(&noRC, "norc", false, "do not run the rc file")
	flag.StringVar(&command, "c", "", "evaluate a line of input and exit")
	flag.Parse()

	cfg, err := config.Load(configPath)
	log.ErrorIf(err)
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "trace-level":
			cfg.TraceLevel = traceLevel
		case "max-depth":
			cfg.MaxDepth = maxDepth
		}
	})

	var opts = []VMOption{
		WithOutput(os.Stdout),
		WithStderr(os.Stderr),
		WithRunner(shellexec.Exec{Stderr: os.Stderr}),
		WithTraceLevel(cfg.TraceLevel),
		WithMaxDepth(cfg.MaxDepth),
	}
	if trace {
		opts = append(opts, WithLogf(log.Leveledf("TRACE")))
	}
	vm := New(opts...)

	if timeout != 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	if !noRC && cfg.RCFile != "" {
		log.ErrorIf(runFile(ctx, vm, cfg.RCFile, true))
	}

	switch {
	case command != "":
		vm.Source(fileinput.NamedReader("-c", strings.NewReader(command)))
		log.ErrorIf(vm.Run(ctx))

	case flag.NArg() > 0:
		for _, name := range flag.Args() {
			if err := runFile(ctx, vm, name, false); err != nil {
				log.Errorf("%v", err)
				break
			}
		}

	case !term.IsTerminal(int(os.Stdin.Fd())):
		vm.Source(os.Stdin)
		log.ErrorIf(vm.Run(ctx))

	default:
		log.ErrorIf(interact(ctx, vm, log, cfg))
	}

	log.ErrorIf(vm.Close())
	os.Exit(log.ExitCode())
}

// runFile evaluates the named script; a missing file is fine if optional.
func runFile(ctx context.Context, vm *VM, name string, optional bool) error {
	f, err := os.Open(name)
	if optional && errors.Is(err, fs.ErrNotExist) {
		return nil
	} else if err != nil {
		return err
	}
	vm.Source(f)
	return vm.Run(ctx)
}

func interact(ctx context.Context, vm *VM, log *logio.Logger, cfg config.Config) error {
	r, err := newREPL(vm, log, cfg.Prompt, cfg.HistoryFile)
	if err != nil {
		return err
	}
	defer r.Close()
	return r.run(ctx)
}
