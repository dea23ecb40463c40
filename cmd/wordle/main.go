// Package main provides the Wordle helper CLI.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/verte-zerg/wordhelp/internal/cli"
	"github.com/verte-zerg/wordhelp/internal/config"
	"github.com/verte-zerg/wordhelp/internal/model"
	"github.com/verte-zerg/wordhelp/internal/progress"
	"github.com/verte-zerg/wordhelp/internal/report"
	"github.com/verte-zerg/wordhelp/internal/scan"
	"github.com/verte-zerg/wordhelp/internal/wordle"
)

const (
	defaultWordsFile = "wordle-La.txt"
	defaultBeeWords  = "words_alpha.txt"
)

var (
	wordleBoard     []string
	wordleWordsFile string
	wordleClean     bool
	wordleRelaxed   bool
	wordleExplain   bool
	wordleWorkers   int
	wordleProgress  bool
	wordleLogLevel  string
)

func main() {
	rootCmd := newRootCmd()
	rootCmd.SetArgs(cli.NormalizeArgs(os.Args[1:], cli.LongFlagNames(rootCmd), []string{"board"}))
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "wordle -board <guess> <feedback> ...",
		Short: "Wordle helper",
		Long: `Lists dictionary words consistent with the feedback of previous guesses.
Feedback uses X for gray, Y for yellow and G for green.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE:         runWordle,
	}

	flags := rootCmd.Flags()
	flags.SetNormalizeFunc(cli.NormalizeFlagName)
	flags.StringArrayVar(&wordleBoard, "board", nil, "alternating guesses and feedback (X, Y, G)")
	flags.StringVar(&wordleWordsFile, "words_file", defaultWordsFile, "list of words")
	flags.BoolVar(&wordleClean, "clean", false, "drop word list tokens that are not lowercase a-z")
	flags.BoolVar(&wordleRelaxed, "relaxed", false, "ignore gray letters that are green or yellow in another row")
	flags.BoolVar(&wordleExplain, "explain", false, "print the derived constraints to stderr")
	flags.IntVar(&wordleWorkers, "workers", 0, "scan workers (0 = number of CPUs)")
	flags.BoolVar(&wordleProgress, "progress", true, "show a progress bar on interactive terminals")
	flags.StringVar(&wordleLogLevel, "log-level", cli.DefaultLogLevel, "log level (trace, debug, info, warn, error)")

	rootCmd.AddCommand(newFeedbackCmd())
	rootCmd.AddCommand(cli.NewConfigCmd(config.DefaultTemplate(defaultBeeWords, defaultWordsFile)))
	return rootCmd
}

func newFeedbackCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "feedback <guess> <answer>",
		Short: "Print the feedback a guess would receive against an answer",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := wordle.Score(strings.ToLower(args[0]), strings.ToLower(args[1]))
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), out)
			return err
		},
	}
}

func runWordle(cmd *cobra.Command, _ []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	cli.ApplyString(cmd, "words-file", &wordleWordsFile, fileCfg.Wordle.WordsFile)
	cli.ApplyBool(cmd, "clean", &wordleClean, fileCfg.Wordle.Clean)
	cli.ApplyBool(cmd, "relaxed", &wordleRelaxed, fileCfg.Wordle.Relaxed)
	cli.ApplyBool(cmd, "explain", &wordleExplain, fileCfg.Wordle.Explain)
	cli.ApplyInt(cmd, "workers", &wordleWorkers, fileCfg.Scan.Workers)
	cli.ApplyBool(cmd, "progress", &wordleProgress, fileCfg.Scan.Progress)
	cli.ApplyString(cmd, "log-level", &wordleLogLevel, fileCfg.Log.Level)

	if err := cli.SetupLogging(cmd.ErrOrStderr(), wordleLogLevel); err != nil {
		return err
	}

	cfg := model.WordleConfig{
		Board:     wordleBoard,
		WordsFile: wordleWordsFile,
		Clean:     wordleClean,
		Relaxed:   wordleRelaxed,
		Explain:   wordleExplain,
		Scan: model.ScanConfig{
			Workers:  wordleWorkers,
			Progress: wordleProgress,
		},
	}
	if cfg.Scan.Workers < 0 {
		return fmt.Errorf("--workers must be >= 0")
	}

	cs, err := wordle.Build(cfg.Board)
	if err != nil {
		var verr *wordle.ValidationError
		if errors.As(err, &verr) {
			log.Debug().Int("pair", verr.Pair).Strs("board", cfg.Board).Msg("invalid board")
		}
		return err
	}
	mode := wordle.ExcludeStrict
	if cfg.Relaxed {
		mode = wordle.ExcludeRelaxed
	}
	log.Debug().
		Int("rows", len(cfg.Board)/2).
		Int("excluded", len(cs.Excluded())).
		Int("positions", len(cs.Positions())).
		Stringer("mode", mode).
		Msg("constraints built")
	if cfg.Explain {
		if err := report.RenderConstraints(cmd.ErrOrStderr(), cs); err != nil {
			return fmt.Errorf("failed to write constraints: %w", err)
		}
	}

	dict, err := cli.LoadDictionary(cfg.WordsFile, cfg.Clean)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	start := time.Now()
	var matches []string
	err = progress.Run(ctx, "Scanning "+cfg.WordsFile, cfg.Scan.Progress, func(observe scan.Observer) error {
		var ferr error
		matches, ferr = wordle.Filter(ctx, dict, cs, wordle.MatchOptions{
			Mode: mode,
			Scan: scan.Options{
				Workers:  cfg.Scan.Workers,
				Observer: observe,
			},
		})
		return ferr
	})
	if err != nil {
		return fmt.Errorf("failed to scan word list: %w", err)
	}
	log.Info().
		Int("matches", len(matches)).
		Int("words", dict.Len()).
		Int("workers", cfg.Scan.Workers).
		Dur("elapsed", time.Since(start)).
		Msg("scan finished")

	out := cmd.OutOrStdout()
	if _, err := fmt.Fprintf(out, "%d valid words found!\n", len(matches)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	for _, word := range matches {
		if _, err := fmt.Fprintln(out, word); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return nil
}
