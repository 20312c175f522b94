// Command changegears ranks lathe change-gear trains for metric threads.
//
//	changegears [flags] <config.yaml> --mm=<pitch>[,<pitch>...]
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/lathegears/config"
	"github.com/katalvlaran/lathegears/logx"
	"github.com/katalvlaran/lathegears/report"
	"github.com/katalvlaran/lathegears/session"
)

const version = "1.0.0"

// errUsage marks argument problems that should print usage.
var errUsage = errors.New("usage error")

type arguments struct {
	configPath  string
	pitches     []float64
	format      report.Format
	logLevel    string
	parallelism int
	watch       bool
	version     bool
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func printUsage(w io.Writer, fs *flag.FlagSet) {
	fmt.Fprintf(w, "Usage:  changegears [flags] <config file> --mm=<desired metric pitch>[,<pitch>...]\n\nFlags:\n")
	fs.SetOutput(w)
	fs.PrintDefaults()
}

func newFlagSet(a *arguments, mm *string, format *string) *flag.FlagSet {
	fs := flag.NewFlagSet("changegears", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(mm, "mm", "", "desired metric pitch in mm/thread (comma separated for several)")
	fs.StringVar(format, "format", "text", "output format: text, yaml or json")
	fs.StringVar(&a.logLevel, "log-level", "", "debug, info, warn or error (overrides config)")
	fs.IntVar(&a.parallelism, "parallel", 0, "workers for the plus-one-gear search (overrides config)")
	fs.BoolVar(&a.watch, "watch", false, "re-run whenever the config file changes")
	fs.BoolVar(&a.version, "version", false, "print version and exit")

	return fs
}

// parseArguments accepts flags before and after the config path.
func parseArguments(args []string) (arguments, *flag.FlagSet, error) {
	var (
		a      arguments
		mm     string
		format string
	)
	fs := newFlagSet(&a, &mm, &format)
	if err := fs.Parse(args); err != nil {
		return a, fs, err
	}
	if a.version {
		return a, fs, nil
	}
	if fs.NArg() == 0 {
		return a, fs, fmt.Errorf("%w: missing config file", errUsage)
	}
	a.configPath = fs.Arg(0)
	if err := fs.Parse(fs.Args()[1:]); err != nil {
		return a, fs, err
	}
	if a.version {
		return a, fs, nil
	}
	if fs.NArg() > 0 {
		return a, fs, fmt.Errorf("%w: unexpected argument %q", errUsage, fs.Arg(0))
	}

	pitches, err := parsePitches(mm)
	if err != nil {
		return a, fs, err
	}
	a.pitches = pitches

	if a.format, err = report.ParseFormat(format); err != nil {
		return a, fs, fmt.Errorf("%w: %w", errUsage, err)
	}
	if a.parallelism < 0 {
		return a, fs, fmt.Errorf("%w: --parallel must not be negative", errUsage)
	}

	return a, fs, nil
}

func parsePitches(raw string) ([]float64, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, fmt.Errorf("%w: --mm is required", errUsage)
	}
	var out []float64
	for _, p := range strings.Split(raw, ",") {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, fmt.Errorf("%w: bad pitch %q", errUsage, p)
		}
		if v <= 0 {
			return nil, fmt.Errorf("%w: desired pitch must be strictly positive", errUsage)
		}
		out = append(out, v)
	}

	return out, nil
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	a, fs, err := parseArguments(args)
	switch {
	case errors.Is(err, flag.ErrHelp):
		printUsage(stdout, fs)
		return 0
	case errors.Is(err, errUsage):
		fmt.Fprintln(stderr, err)
		printUsage(stderr, fs)
		return 1
	case err != nil:
		fmt.Fprintln(stderr, err)
		printUsage(stderr, fs)
		return 2
	}
	if a.version {
		fmt.Fprintf(stdout, "changegears %s\n", version)
		return 0
	}

	if err = config.LoadEnvFiles(filepath.Join(filepath.Dir(a.configPath), ".env"), ".env"); err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	cfg, err := config.Load(a.configPath)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	log := logx.Console(stderr, "changegears", levelFor(cfg, a))
	sess, err := session.New(cfg, log, session.Options{Parallelism: a.parallelism})
	if err != nil {
		log.Error().Err(err).Msg("create session")
		return 1
	}

	if err = runOnce(ctx, sess, a, stdout); err != nil {
		log.Error().Err(err).Msg("run")
		return 1
	}
	if !a.watch {
		return 0
	}
	if err = watchConfig(ctx, sess, a, stdout, log); err != nil {
		log.Error().Err(err).Msg("watch")
		return 1
	}

	return 0
}

// levelFor prefers --log-level over the config; unknown names fall back to info.
func levelFor(cfg config.Config, a arguments) zerolog.Level {
	name := cfg.LogLevel
	if a.logLevel != "" {
		name = a.logLevel
	}
	lvl, err := logx.Level(name)
	if err != nil {
		return zerolog.InfoLevel
	}

	return lvl
}

func runOnce(ctx context.Context, sess *session.Session, a arguments, stdout io.Writer) error {
	sections, err := sess.Run(ctx, a.pitches)
	if err != nil {
		return err
	}

	return report.Write(stdout, a.format, sections)
}
