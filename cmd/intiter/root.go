/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package main

import (
	"errors"
	"fmt"

	"dirpx.dev/intiter/internal/config"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// errFailed is returned when at least one input was rejected. The
// rejection itself has already been printed.
var errFailed = errors.New("one or more inputs were rejected")

type app struct {
	configPath string
	verbose    bool
	target     string
	source     string
	separator  string

	cfg    *config.Config
	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "intiter",
		Short: "Parse integers from digit sequences with exact error categories",
		Long: `intiter parses decimal integers into a fixed-width target type and
reports failures as one of four categories: empty, invalid digit, overflow
or underflow.

Examples:
  intiter parse --target i8 -- 127 128 -129
  intiter parse 1_000_000 --separator _
  intiter ident abc '\abc\' 1abc
  intiter explain overflow`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(*cobra.Command, []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	f := root.PersistentFlags()
	f.StringVarP(&a.configPath, "config", "c", "intiter.yaml", "Path to the YAML configuration file")
	f.BoolVarP(&a.verbose, "verbose", "v", false, "Enable debug logging")
	f.StringVarP(&a.target, "target", "t", "", "Target type: int8..int64, uint8..uint64 (or i8..u64)")
	f.StringVar(&a.source, "source", "", "Element kind fed to the parser: runes or bytes")
	f.StringVar(&a.separator, "separator", "", "Single character to drop from input before parsing")

	root.AddCommand(a.parseCmd(), a.identCmd(), a.explainCmd())
	return root
}

// setup loads the configuration, applies flag overrides and builds the
// logger. Flags win over the file and the environment.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("target") {
		cfg.Target = a.target
	}
	if flags.Changed("source") {
		cfg.Source = a.source
	}
	if flags.Changed("separator") {
		cfg.Separator = a.separator
	}
	if a.verbose {
		cfg.LogLevel = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg

	level, err := zapcore.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(level)
	zc.OutputPaths = []string{"stderr"}
	a.logger, err = zc.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	a.logger.Debug("configuration loaded",
		zap.String("path", a.configPath),
		zap.String("target", cfg.Target),
		zap.String("source", cfg.Source),
		zap.String("separator", cfg.Separator),
	)
	return nil
}
