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
	"encoding/json"
	"fmt"
	"strings"

	"dirpx.dev/intiter"
	"dirpx.dev/intiter/adapter"
	"dirpx.dev/intiter/code"
	"dirpx.dev/intiter/mapper"
	"dirpx.dev/intiter/reason"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var sentinels = map[intiter.Kind]*intiter.Error{
	intiter.KindEmpty:        intiter.ErrEmpty,
	intiter.KindInvalidDigit: intiter.ErrInvalidDigit,
	intiter.KindOverflow:     intiter.ErrOverflow,
	intiter.KindUnderflow:    intiter.ErrUnderflow,
}

func (a *app) explainCmd() *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "explain <kind | code[:reason]>",
		Short: "Show how an error resolves to HTTP and gRPC statuses",
		Long: `Resolves a parser error kind (empty, invalid-digit, overflow,
underflow) or an arbitrary code and reason through the status mapper
configured in the "mapper" section of the configuration file.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := a.cfg.Mapper.Options()
			if err != nil {
				return err
			}
			m, err := mapper.New(opts...)
			if err != nil {
				return err
			}

			e, err := lookup(args[0])
			if err != nil {
				return err
			}
			a.logger.Debug("explaining", zap.String("code", string(e.Code)), zap.String("reason", string(e.Reason)))

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(adapter.ToDescriptor(e, m.Status(e.Code, e.Reason)))
			}
			_, err = fmt.Fprintln(out, m.Explain(e.Code, e.Reason))
			return err
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the resolved error descriptor as JSON")
	return cmd
}

// lookup resolves a kind name or a "code[:reason]" pair into an error.
func lookup(arg string) (*intiter.Error, error) {
	if k, ok := intiter.ParseKind(arg); ok {
		return sentinels[k], nil
	}
	cs, rs, _ := strings.Cut(arg, ":")
	c, err := code.Parse(cs)
	if err != nil || c == code.Empty {
		return nil, fmt.Errorf("%q is neither an error kind nor a valid code", cs)
	}
	r, err := reason.Parse(rs)
	if err != nil {
		return nil, fmt.Errorf("invalid reason %q: %w", rs, err)
	}
	return intiter.New(c, r, ""), nil
}
