// Package cmd implements the secmgr command line.
package cmd

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"runtime/debug"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"github.com/QPC-github/secmgr/internal"
	"github.com/QPC-github/secmgr/internal/matrix"
	"github.com/QPC-github/secmgr/internal/perf"
)

func Main() {
	// .env tunes environment-driven settings before anything reads them.
	_ = godotenv.Load()
	err := internal.SetupLogging()
	if err != nil {
		slog.Error("Fatal error.", "err", err)
		os.Exit(1)
	}
	defer logPanic()

	err = run()
	if err != nil {
		slog.Error("Fatal error.", "err", err)
		exit, ok := err.(interface{ Exit() })
		if ok {
			exit.Exit()
		}
		os.Exit(1)
	}
}

func run() (err error) {
	setupConfig()
	if k.Bool("help") {
		pflag.Usage()
		return nil
	} else if k.Bool("version") {
		showVersion()
		return nil
	}

	controller, err := unmarshalController()
	if err != nil {
		return
	}
	internal.SetLoggingHandler(controller.LogLevel, controller.Color)
	slog.Info("Starting secmgr.",
		"version", version(),
		"runtime", runtime.Version(),
		"pid", os.Getpid(),
	)

	write, err := writer(controller.Format)
	if err != nil {
		return
	}

	start := time.Now()
	values, err := matrix.ReadYaml(controller.Config)
	if err != nil {
		return fmt.Errorf("configuration: %w", err)
	}
	slog.Info("Using YAML matrix file.", "path", controller.Config)
	m, err := matrix.Decode(values)
	if err != nil {
		return fmt.Errorf("configuration: %w", err)
	}
	err = m.Check()
	if err != nil {
		for _, e := range err.(interface{ Unwrap() []error }).Unwrap() {
			slog.Error("Bad matrix.", "err", e)
		}
		return fmt.Errorf("invalid matrix")
	}
	slog.Debug("Loaded matrix.", "axes", len(m.Axes), "excludes", len(m.Excludes))

	if controller.Count {
		fmt.Println(m.Count())
		return nil
	}

	count := 0
	for combination := range m.Combinations() {
		if controller.Limit > 0 && count >= controller.Limit {
			slog.Debug("Combination limit reached.", "limit", controller.Limit)
			break
		}
		controller.PrintWatch.TimeIt(func() {
			err = write(combination)
		})
		if err != nil {
			return fmt.Errorf("output: %w", err)
		}
		count++
	}

	vmPeak := perf.ReadVMPeak()
	slog.Info("Expansion complete.",
		"combinations", count,
		"elapsed", time.Since(start),
		"output", controller.PrintWatch.Total,
		"mempeak", perf.FormatBytes(vmPeak),
	)
	return nil
}

type writeFunc func(matrix.Combination) error

func writer(format string) (writeFunc, error) {
	switch format {
	case "text":
		return func(c matrix.Combination) error {
			_, err := fmt.Println(c)
			return err
		}, nil
	case "slug":
		return func(c matrix.Combination) error {
			_, err := fmt.Println(c.Slug())
			return err
		}, nil
	case "json":
		enc := json.NewEncoder(os.Stdout)
		return func(c matrix.Combination) error {
			return enc.Encode(c.Map())
		}, nil
	case "yaml":
		return func(c matrix.Combination) error {
			out, err := yaml.Marshal(c.Map())
			if err != nil {
				return err
			}
			_, err = fmt.Printf("---\n%s", out)
			return err
		}, nil
	}
	return nil, errorCode{code: 2, message: fmt.Sprintf("unknown format: %s", format)}
}

func logPanic() {
	p := recover()
	if p == nil {
		return
	}
	slog.Error("Panic!", "err", p)
	buf := debug.Stack()
	fmt.Fprintf(os.Stderr, "%s", buf)
	slog.Error("Aborting secmgr.", "err", p)
	if internal.CurrentLevel > slog.LevelDebug {
		slog.Error("Run secmgr with --verbose to get more informations.")
	}
	os.Exit(1)
}
