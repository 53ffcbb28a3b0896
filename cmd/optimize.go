/*
Copyright © 2025 Dmitry Mozzherin <dmozzherin@gmail.com>

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"github.com/gnames/gn"
	"github.com/gnames/gnfmt"
	"github.com/gnames/pokedb/internal/iooptimize"
	"github.com/spf13/cobra"
)

func getOptimizeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "optimize",
		Short: "Repair and tune the database after bulk loads",
		Long: `Optimize cleans up what bulk loads and older databases leave
behind.

Steps:
  1. Remove type assignments of pokemon that do not exist
  2. Remove species that no pokemon refers to
  3. Move id sequences past the largest ids of their tables
  4. Run VACUUM ANALYZE

Prerequisites:
  - Database must be created (run 'pokedb create' first)

Examples:
  pokedb optimize`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runOptimize(cmd)
		},
	}
}

func runOptimize(cmd *cobra.Command) error {
	ctx := cmd.Context()

	op, err := connect(ctx)
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}
	defer op.Close()

	ok, err := requireSchema(ctx, op)
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}
	if !ok {
		return nil
	}

	rep, err := iooptimize.NewOptimizer(op).Optimize(ctx)
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	gn.Info("Database optimization is complete in <em>%s</em>",
		gnfmt.TimeString(rep.Duration))
	return nil
}
