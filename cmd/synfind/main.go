// Command synfind builds a sequence store from one or more FASTA files,
// runs a configurable list of simplification stages against it, and
// writes a JSON run report.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"golang.org/x/term"

	"github.com/mpenrose/syntenystore/internal/app"
	"github.com/mpenrose/syntenystore/internal/fasta"
	"github.com/mpenrose/syntenystore/internal/report"
	"github.com/mpenrose/syntenystore/internal/sequence"
	"github.com/mpenrose/syntenystore/internal/simplify"
	"github.com/mpenrose/syntenystore/internal/stagescript"
)

type options struct {
	inputs     []string
	stagePath  string
	preset     string
	logLevel   string
	reportPath string
	capacity   int
}

func main() {
	os.Exit(run())
}

func run() int {
	opts := parseFlags()

	logger := app.NewLogger(app.LoggerConfig{
		Level:  app.ParseLogLevel(opts.logLevel),
		Output: os.Stderr,
		Prefix: "synfind",
	})

	stages, err := loadStages(opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}

	store, err := buildStore(opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}

	stop := make(chan struct{})
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-signals
		close(stop)
	}()

	isTerm := term.IsTerminal(int(os.Stdout.Fd()))
	start := time.Now()

	results, code := runStages(store, stages, logger, isTerm, stop)
	if code != 0 {
		return code
	}

	return writeReport(opts, store, results, time.Since(start))
}

// runStages runs CollapseRepeat once per chromosome for each stage,
// using the stage's vertex size as the repeat length to look for.
// Progress dots print only when stdout is a terminal, mirroring
// original_source/src/main.cpp's PutProgressChr.
func runStages(store *sequence.Store, stages []stagescript.Stage, logger *app.Logger, isTerm bool, stop <-chan struct{}) ([]report.StageResult, int) {
	results := make([]report.StageResult, 0, len(stages))

	for i, stage := range stages {
		select {
		case <-stop:
			fmt.Fprintln(os.Stderr, "interrupted")
			return nil, 130
		default:
		}

		logger.WithFields(map[string]any{"index": i + 1, "of": len(stages),
			"vertex_size": stage.VertexSize, "min_branch_size": stage.MinBranchSize}).Info("running simplification stage")
		if isTerm {
			fmt.Print("[")
		}

		var stageReplaceCount int
		for chr := 0; chr < store.ChrCount(); chr++ {
			res, err := simplify.CollapseRepeat(store, chr, stage.VertexSize, logger)
			switch {
			case err == nil:
				stageReplaceCount += res.ReplaceCount
			case errors.Is(err, simplify.ErrNoRepeatFound):
				// nothing to collapse in this chromosome at this stage.
			default:
				if isTerm {
					fmt.Println("]")
				}
				fmt.Fprintf(os.Stderr, "error: stage %d: %v\n", i+1, err)
				return nil, 1
			}
			if isTerm {
				fmt.Print(".")
			}
		}

		if isTerm {
			fmt.Println("]")
		}

		results = append(results, report.StageResult{
			VertexSize:    stage.VertexSize,
			MinBranchSize: stage.MinBranchSize,
			ReplaceCount:  stageReplaceCount,
		})
	}

	return results, 0
}

func writeReport(opts options, store *sequence.Store, results []report.StageResult, elapsed time.Duration) int {
	doc, err := report.Build(report.Run{
		ChrCount:  store.ChrCount(),
		TotalSize: store.TotalSize(),
		Stages:    results,
		Elapsed:   elapsed,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: building report: %v\n", err)
		return 1
	}

	out := os.Stdout
	if opts.reportPath != "" {
		f, err := os.Create(opts.reportPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			return 1
		}
		defer f.Close()
		out = f
	}

	if err := report.Write(out, doc, elapsed.Seconds()); err != nil {
		fmt.Fprintf(os.Stderr, "error: writing report: %v\n", err)
		return 1
	}
	return 0
}

// buildStore reads every input FASTA file and concatenates their
// records into one store, in file order.
func buildStore(opts options) (*sequence.Store, error) {
	var records []sequence.Record
	var total int

	for _, path := range opts.inputs {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("opening %s: %w", path, err)
		}
		recs, err := fasta.Read(f)
		f.Close()
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}
		for _, r := range recs {
			total += len(r.Bases)
			if total > sequence.MaxInputBytes {
				return nil, sequence.ErrInputTooLarge
			}
			records = append(records, sequence.Record{Name: r.Name, Bases: r.Bases})
		}
	}

	if len(records) == 0 {
		return nil, errors.New("no input records: pass at least one FASTA file")
	}

	return sequence.NewStore(records, opts.capacity)
}

// loadStages resolves the stage list from a preset name or a stage file,
// auto-detecting the file format from its extension.
func loadStages(opts options) ([]stagescript.Stage, error) {
	switch opts.preset {
	case "loose":
		return stagescript.LooseStages(), nil
	case "fine":
		return stagescript.FineStages(), nil
	case "":
		// fall through to stagePath
	default:
		return nil, fmt.Errorf("unknown stage preset %q (want loose or fine)", opts.preset)
	}

	if opts.stagePath == "" {
		return nil, errors.New("one of -stages or -preset is required")
	}

	switch strings.ToLower(filepath.Ext(opts.stagePath)) {
	case ".json":
		doc, err := os.ReadFile(opts.stagePath)
		if err != nil {
			return nil, err
		}
		return stagescript.LoadJSON(doc)
	case ".lua":
		return stagescript.LoadLuaFile(opts.stagePath)
	default:
		f, err := os.Open(opts.stagePath)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		return stagescript.LoadText(f)
	}
}

func parseFlags() options {
	var opts options

	flag.StringVar(&opts.stagePath, "stages", "", "Path to a stage list file (.txt, .json, or .lua)")
	flag.StringVar(&opts.preset, "preset", "", "Built-in stage list to use instead of -stages (loose or fine)")
	flag.StringVar(&opts.logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	flag.StringVar(&opts.reportPath, "report", "", "Path to write the JSON report (default: stdout)")
	flag.IntVar(&opts.capacity, "chunk-capacity", 0, "Buffer chunk capacity (0 selects the default)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "synfind - sequence store simplification driver\n\n")
		fmt.Fprintf(os.Stderr, "Usage: synfind [options] file.fasta [file2.fasta ...]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
	}

	flag.Parse()
	opts.inputs = flag.Args()

	if len(opts.inputs) == 0 {
		flag.Usage()
		os.Exit(1)
	}

	switch opts.logLevel {
	case "debug", "info", "warn", "error":
	default:
		fmt.Fprintf(os.Stderr, "error: invalid log level %q (must be debug, info, warn, or error)\n", opts.logLevel)
		os.Exit(1)
	}

	return opts
}
