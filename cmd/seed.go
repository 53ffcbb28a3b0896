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
	"github.com/gnames/pokedb/internal/ioseed"
	"github.com/gnames/pokedb/pkg/config"
	"github.com/spf13/cobra"
)

func getSeedCmd() *cobra.Command {
	var force bool

	seedCmd := &cobra.Command{
		Use:   "seed",
		Short: "Load CSV files of the Pokemon data dump",
		Long: `Seed loads pokemon_species.csv, pokemon.csv and pokemon_types.csv
into an empty database.

Rows keep the ids of the files. Id sequences are not touched, new
records continue after the largest seeded id anyway.

The directory comes from --dir, POKEDB_SEED_DIR or the seed.dir
setting of config.yaml. Use --force to replace existing records.

Examples:
  pokedb seed --dir ./pokeapi/data/v2/csv
  pokedb seed --force`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSeed(cmd, force)
		},
	}

	seedCmd.Flags().StringP("dir", "d", "",
		"directory with the CSV files")
	seedCmd.Flags().BoolVarP(&force, "force", "f", false,
		"truncate tables that already have records")

	return seedCmd
}

func runSeed(cmd *cobra.Command, force bool) error {
	ctx := cmd.Context()
	cfg.Update(flagOptions(cmd))
	cfg.Update([]config.Option{config.OptSeedForce(force)})

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

	rep, err := ioseed.New(cfg, op).Seed(ctx)
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	gn.Info("Seed is complete in <em>%s</em>", gnfmt.TimeString(rep.Duration))
	return nil
}
