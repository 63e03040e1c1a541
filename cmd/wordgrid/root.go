package main

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/wordgrid/config"
	"github.com/katalvlaran/wordgrid/logging"
	"github.com/katalvlaran/wordgrid/trie"
)

var errNoDictionary = errors.New("no dictionary configured: pass --dict or set WORDGRID_DICTIONARY")

// app carries state shared by every subcommand once PersistentPreRunE
// has run.
type app struct {
	configPath string
	dictPath   string
	logLevel   string
	minLength  int
	rows       int
	columns    int
	parallel   int

	cfg    config.Config
	logger *slog.Logger
	dict   *trie.Dictionary
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "wordgrid",
		Short:         "Find every dictionary word on a letter grid or tile rack",
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "YAML configuration file")
	pf.StringVar(&a.dictPath, "dict", "", "newline-separated word list")
	pf.IntVar(&a.minLength, "min-length", 0, "shortest accepted word")
	pf.IntVar(&a.rows, "rows", 0, "board rows")
	pf.IntVar(&a.columns, "columns", 0, "board columns")
	pf.IntVar(&a.parallel, "parallel", 0, "goroutines used per solve")
	pf.StringVar(&a.logLevel, "log-level", "", "debug|info|warn|error")

	root.AddCommand(
		newSolveCmd(a),
		newWordsCmd(a),
		newPlayCmd(a),
		newLookupCmd(a),
	)
	return root
}

// setup resolves configuration (file, env, then flags), builds the
// logger and loads the dictionary.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("dict") {
		cfg.DictionaryPath = a.dictPath
	}
	if flags.Changed("min-length") {
		cfg.MinWordLength = a.minLength
	}
	if flags.Changed("rows") {
		cfg.Rows = a.rows
	}
	if flags.Changed("columns") {
		cfg.Columns = a.columns
	}
	if flags.Changed("parallel") {
		cfg.Parallelism = a.parallel
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = a.logLevel
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg

	a.logger, err = logging.New(logging.Options{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
		Writer: cmd.ErrOrStderr(),
	})
	if err != nil {
		return err
	}

	if cfg.DictionaryPath == "" {
		return errNoDictionary
	}
	a.dict = trie.New()
	n, err := a.dict.LoadFile(cfg.DictionaryPath)
	if err != nil {
		return err
	}
	a.logger.Debug("dictionary loaded", "path", cfg.DictionaryPath, "words", n)
	return nil
}

// printWords writes one word per line followed by a count.
func printWords(cmd *cobra.Command, words []string) {
	out := cmd.OutOrStdout()
	for _, w := range words {
		fmt.Fprintln(out, w)
	}
	fmt.Fprintf(out, "%d words\n", len(words))
}
