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
	"fmt"

	"dirpx.dev/intiter/ident"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func (a *app) identCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ident [texts...]",
		Short: "Recognize identifiers, stripping a surrounding escape marker",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			failed := 0
			for _, text := range args {
				id, err := ident.Recognize(text)
				if err != nil {
					failed++
					a.logger.Debug("identifier rejected", zap.String("text", text), zap.Error(err))
					fmt.Fprintf(out, "error: %v\n", err)
					continue
				}
				fmt.Fprintln(out, id)
			}
			if failed > 0 {
				return errFailed
			}
			return nil
		},
	}
}
