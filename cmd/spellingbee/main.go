// Package main provides the Spelling Bee solver CLI.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/verte-zerg/wordhelp/internal/cli"
	"github.com/verte-zerg/wordhelp/internal/config"
	"github.com/verte-zerg/wordhelp/internal/model"
	"github.com/verte-zerg/wordhelp/internal/progress"
	"github.com/verte-zerg/wordhelp/internal/report"
	"github.com/verte-zerg/wordhelp/internal/scan"
	"github.com/verte-zerg/wordhelp/internal/spellingbee"
)

const (
	defaultWordsFile   = "words_alpha.txt"
	defaultWordleWords = "wordle-La.txt"
)

var (
	beeRequired  string
	beeOptional  string
	beeWordsFile string
	beeClean     bool
	beeLengths   bool
	beeWorkers   int
	beeProgress  bool
	beeLogLevel  string
)

func main() {
	rootCmd := newRootCmd()
	rootCmd.SetArgs(cli.NormalizeArgs(os.Args[1:], cli.LongFlagNames(rootCmd), nil))
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "spellingbee -req <letter> -opt <letters>",
		Short: "Spelling Bee solver",
		Long: `Lists dictionary words of four or more letters that contain the required
letter and use only the required and optional letters. Letters may repeat.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		RunE:          runSpellingBee,
	}

	flags := rootCmd.Flags()
	flags.SetNormalizeFunc(cli.NormalizeFlagName)
	flags.StringVar(&beeRequired, "req", "", "required letter")
	flags.StringVar(&beeOptional, "opt", "", "optional letters")
	flags.StringVar(&beeWordsFile, "words_file", defaultWordsFile, "list of words")
	flags.BoolVar(&beeClean, "clean", false, "drop word list tokens that are not lowercase a-z")
	flags.BoolVar(&beeLengths, "lengths", false, "print a word-length table to stderr")
	flags.IntVar(&beeWorkers, "workers", 0, "scan workers (0 = number of CPUs)")
	flags.BoolVar(&beeProgress, "progress", true, "show a progress bar on interactive terminals")
	flags.StringVar(&beeLogLevel, "log-level", cli.DefaultLogLevel, "log level (trace, debug, info, warn, error)")
	if err := rootCmd.MarkFlagRequired("req"); err != nil {
		panic(err)
	}

	rootCmd.AddCommand(cli.NewConfigCmd(config.DefaultTemplate(defaultWordsFile, defaultWordleWords)))
	return rootCmd
}

func runSpellingBee(cmd *cobra.Command, _ []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	cli.ApplyString(cmd, "words-file", &beeWordsFile, fileCfg.SpellingBee.WordsFile)
	cli.ApplyBool(cmd, "clean", &beeClean, fileCfg.SpellingBee.Clean)
	cli.ApplyBool(cmd, "lengths", &beeLengths, fileCfg.SpellingBee.Lengths)
	cli.ApplyInt(cmd, "workers", &beeWorkers, fileCfg.Scan.Workers)
	cli.ApplyBool(cmd, "progress", &beeProgress, fileCfg.Scan.Progress)
	cli.ApplyString(cmd, "log-level", &beeLogLevel, fileCfg.Log.Level)

	if err := cli.SetupLogging(cmd.ErrOrStderr(), beeLogLevel); err != nil {
		return err
	}

	cfg := model.BeeConfig{
		Required:  beeRequired,
		Optional:  beeOptional,
		WordsFile: beeWordsFile,
		Clean:     beeClean,
		Lengths:   beeLengths,
		Scan: model.ScanConfig{
			Workers:  beeWorkers,
			Progress: beeProgress,
		},
	}
	if err := validateConfig(cfg); err != nil {
		return err
	}
	required, err := spellingbee.ParseRequired(cfg.Required)
	if err != nil {
		return fmt.Errorf("invalid -req: %w", err)
	}

	dict, err := cli.LoadDictionary(cfg.WordsFile, cfg.Clean)
	if err != nil {
		return err
	}
	letters := spellingbee.NewLetterSet(required, cfg.Optional)
	log.Debug().Str("letters", letters.String()).Str("required", string(required)).Msg("letter set built")

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	start := time.Now()
	var matches []string
	err = progress.Run(ctx, "Scanning "+cfg.WordsFile, cfg.Scan.Progress, func(observe scan.Observer) error {
		var ferr error
		matches, ferr = spellingbee.Filter(ctx, dict, letters, required, scan.Options{
			Workers:  cfg.Scan.Workers,
			Observer: observe,
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
	if cfg.Lengths {
		if err := report.RenderLengthTable(cmd.ErrOrStderr(), matches); err != nil {
			return fmt.Errorf("failed to write length table: %w", err)
		}
	}
	return nil
}

func validateConfig(cfg model.BeeConfig) error {
	if cfg.Required == "" {
		return fmt.Errorf("-req must not be empty")
	}
	if cfg.Scan.Workers < 0 {
		return fmt.Errorf("--workers must be >= 0")
	}
	return nil
}
