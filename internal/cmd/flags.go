package cmd

import (
	"fmt"
	"log/slog"
	"math"
	"os"
	"strings"

	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/lithammer/dedent"
	"github.com/mattn/go-isatty"
	"github.com/spf13/pflag"

	"github.com/QPC-github/secmgr/internal/perf"
)

var k = koanf.New(".")

func init() {
	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: %s [OPTIONS]\n\n", os.Args[0])
		pflag.PrintDefaults()
		os.Stderr.Write([]byte(dedent.Dedent(`

		secmgr expands a YAML parameter matrix into concrete combinations,
		one per line. Axes expand in name order, the last axis varying
		fastest. Each flag reads its default from a SECMGR_ prefixed
		environment variable.
		`)))
	}
}

func setupConfig() {
	pflag.StringP("config", "c", "matrix.yml", "Path to YAML matrix file. Use - for stdin.")
	pflag.StringP("format", "f", "text", "Output format: text, slug, json or yaml.")
	pflag.Bool("count", false, "Print the number of combinations and exit.")
	pflag.Int("limit", 0, "Stop after this many combinations. 0 means no limit.")
	pflag.Bool("color", defaultColor(), "Force color output.")
	pflag.CountP("quiet", "q", "Decrease log verbosity.")
	pflag.CountP("verbose", "v", "Increase log verbosity.")
	pflag.BoolP("help", "?", false, "Show this help message and exit.")
	pflag.BoolP("version", "V", false, "Show version and exit.")
	pflag.Parse()

	_ = k.Load(confmap.Provider(map[string]any{
		"config": "matrix.yml",
		"format": "text",
	}, k.Delim()), nil)
	_ = k.Load(env.Provider("SECMGR_", k.Delim(), func(key string) string {
		return strings.ToLower(strings.TrimPrefix(key, "SECMGR_"))
	}), nil)
	_ = k.Load(posflag.Provider(pflag.CommandLine, k.Delim(), k), nil)
}

func defaultColor() bool {
	plain := os.Getenv("NO_COLOR")
	if plain != "" {
		return false
	}
	return isatty.IsTerminal(os.Stderr.Fd())
}

// Controller holds flags/env values controlling the execution of secmgr.
type Controller struct {
	Color      bool
	Config     string
	Format     string
	Count      bool
	Limit      int
	Quiet      int
	Verbose    int
	Verbosity  string
	LogLevel   slog.Level
	PrintWatch perf.StopWatch
}

var levels = []slog.Level{
	slog.LevelDebug,
	slog.LevelInfo,
	slog.LevelWarn,
	slog.LevelError,
}

func unmarshalController() (controller Controller, err error) {
	err = k.Unmarshal("", &controller)
	var level slog.LevelVar
	switch controller.Verbosity {
	case "":
		// Default log level is INFO, which index is 1.
		levelIndex := 1 - controller.Verbose + controller.Quiet
		levelIndex = int(math.Max(0, float64(levelIndex)))
		levelIndex = int(math.Min(float64(levelIndex), float64(len(levels)-1)))
		controller.LogLevel = levels[levelIndex]
	default:
		err := level.UnmarshalText([]byte(controller.Verbosity))
		if err == nil {
			controller.LogLevel = level.Level()
		} else {
			controller.LogLevel = slog.LevelInfo
			slog.Warn("Bad verbosity.", "source", "env", "value", controller.Verbosity)
		}
	}
	return controller, err
}
