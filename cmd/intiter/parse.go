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
	"bufio"
	"fmt"
	"iter"
	"slices"
	"unicode/utf8"

	"dirpx.dev/intiter"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// maxLineSize bounds one line of standard input. Longer lines stop the
// command with an error instead of being dropped.
const maxLineSize = 1 << 20

func (a *app) parseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "parse [values...]",
		Short: "Parse each value into the target type",
		Long: `Parses every argument, or every line of standard input when no
arguments are given, and prints one result per line. Rejected inputs are
printed as "error: <code>:<reason>: <message>" and make the command exit
with a non-zero status. A line of standard input longer than 1 MiB stops
the command with an error.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return a.parseAll(cmd, slices.Values(args))
			}

			sc := bufio.NewScanner(cmd.InOrStdin())
			sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)
			err := a.parseAll(cmd, func(yield func(string) bool) {
				for sc.Scan() {
					if !yield(sc.Text()) {
						return
					}
				}
			})
			if serr := sc.Err(); serr != nil {
				a.logger.Error("reading standard input failed", zap.Error(serr))
				return fmt.Errorf("reading standard input: %w", serr)
			}
			return err
		},
	}
}

func (a *app) parseAll(cmd *cobra.Command, inputs iter.Seq[string]) error {
	out := cmd.OutOrStdout()
	failed := 0
	for s := range inputs {
		v, err := a.parseOne(s)
		if err != nil {
			failed++
			a.logger.Debug("parse rejected",
				zap.String("input", s),
				zap.String("target", a.cfg.Target),
				zap.Error(err),
			)
			fmt.Fprintf(out, "error: %v\n", err)
			continue
		}
		fmt.Fprintln(out, v)
	}
	if failed > 0 {
		a.logger.Info("parse finished with rejections", zap.Int("rejected", failed))
		return errFailed
	}
	return nil
}

// parseOne parses s into the configured target and returns its decimal
// form. Errors are enriched with the input and target.
func (a *app) parseOne(s string) (string, error) {
	v, err := dispatch(a.cfg.Target, a.cfg.Source, a.cfg.Separator, s)
	if e, ok := err.(*intiter.Error); ok {
		return "", e.WithDetails(map[string]any{"input": s, "target": a.cfg.Target})
	}
	return v, err
}

func dispatch(target, source, sep, s string) (string, error) {
	switch target {
	case "int8":
		return parseAs[int8](source, sep, s)
	case "int16":
		return parseAs[int16](source, sep, s)
	case "int32":
		return parseAs[int32](source, sep, s)
	case "int64":
		return parseAs[int64](source, sep, s)
	case "uint8":
		return parseAs[uint8](source, sep, s)
	case "uint16":
		return parseAs[uint16](source, sep, s)
	case "uint32":
		return parseAs[uint32](source, sep, s)
	case "uint64":
		return parseAs[uint64](source, sep, s)
	}
	return "", fmt.Errorf("unknown target %q", target)
}

func parseAs[T intiter.Integer](source, sep, s string) (string, error) {
	var (
		v   T
		err error
	)
	if source == "bytes" {
		v, err = intiter.Parse[T](skip(intiter.StringBytes(s), sep))
	} else {
		v, err = intiter.Parse[T](skip(intiter.Runes(s), sep))
	}
	if err != nil {
		return "", err
	}
	return fmt.Sprint(v), nil
}

func skip[E intiter.Element](seq iter.Seq[E], sep string) iter.Seq[E] {
	if sep == "" {
		return seq
	}
	r, _ := utf8.DecodeRuneInString(sep)
	return intiter.Skip(seq, E(r))
}
