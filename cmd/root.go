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
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/gnames/gn"
	"github.com/gnames/pokedb/internal/iodb"
	"github.com/gnames/pokedb/internal/iofs"
	"github.com/gnames/pokedb/internal/iologger"
	app "github.com/gnames/pokedb/pkg"
	"github.com/gnames/pokedb/pkg/config"
	"github.com/gnames/pokedb/pkg/db"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfg       *config.Config
	logCloser io.Closer
)

// getRootCmd builds the command tree. A fresh tree is created on every
// call.
func getRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Version: fmt.Sprintf("version: %s\nbuild:   %s", app.Version, app.Build),
		Use:     "pokedb",
		Short:   "PokeDB keeps a Pokedex in PostgreSQL and serves it over HTTP",
		Long: `PokeDB stores pokemon records in PostgreSQL and exposes them as a
JSON API.

Every record is kept in two tables, pokemon and pokemon_species, and
each write touches both inside one transaction.

Commands:
  create    create the schema (tables and foreign keys)
  migrate   bring an existing schema up to date
  seed      load CSV files of the public Pokemon data dumps
  optimize  remove orphans, reconcile id sequences, VACUUM ANALYZE
  serve     run the HTTP API`,
		PersistentPreRunE: bootstrap,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	rootCmd.SetVersionTemplate("{{.Version}}\n")
	rootCmd.Flags().BoolP("version", "V", false, "version for pokedb")

	rootCmd.AddCommand(
		getCreateCmd(),
		getMigrateCmd(),
		getSeedCmd(),
		getOptimizeCmd(),
		getServeCmd(),
	)
	return rootCmd
}

// Execute runs the command line application. It is called by main.main().
func Execute() {
	err := getRootCmd().ExecuteContext(context.Background())
	if logCloser != nil {
		_ = logCloser.Close()
	}
	if err != nil {
		os.Exit(1)
	}
}

func bootstrap(_ *cobra.Command, _ []string) error {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if err = iofs.EnsureDirs(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if err = iofs.EnsureConfigFile(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	cfgViper, err := initConfig(homeDir)
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	cfg = config.New()
	cfg.Update(cfgViper.ToOptions())
	cfg.Update([]config.Option{config.OptHomeDir(homeDir)})

	logCloser, err = iologger.Init(config.LogDir(homeDir), cfg.Log, false)
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	slog.Info("Configuration loaded",
		"config_file", config.ConfigFilePath(homeDir))
	return nil
}

// initConfig reads config.yaml and POKEDB_* environment variables.
func initConfig(home string) (*config.Config, error) {
	cfgPath := config.ConfigFilePath(home)
	v := viper.New()
	v.SetConfigFile(cfgPath)

	initEnvVars(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, iofs.ReadFileError(cfgPath, err)
	}

	var res config.Config
	if err := v.Unmarshal(&res); err != nil {
		return nil, iofs.ReadFileError(cfgPath, err)
	}
	return &res, nil
}

// initEnvVars binds the environment variables of persistent settings,
// the same fields config.ToOptions() returns.
func initEnvVars(v *viper.Viper) {
	v.SetEnvPrefix("POKEDB")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	for _, key := range []string{
		"database.host",
		"database.port",
		"database.user",
		"database.password",
		"database.database",
		"database.ssl_mode",
		"database.max_conns",
		"database.min_conns",

		"server.host",
		"server.port",
		"server.read_timeout",
		"server.write_timeout",
		"server.per_page",
		"server.access_log",
		"server.cors_origins",

		"seed.dir",

		"log.level",
		"log.format",
		"log.destination",
	} {
		_ = v.BindEnv(key)
	}

	v.AutomaticEnv()
}

// connect opens the database of the configuration.
func connect(ctx context.Context) (db.Operator, error) {
	op := iodb.NewPgxOperator()
	if err := op.Connect(ctx, &cfg.Database); err != nil {
		return nil, err
	}

	gn.Info("Connected to database: <em>%s@%s:%d/%s</em>",
		cfg.Database.User, cfg.Database.Host,
		cfg.Database.Port, cfg.Database.Database)
	return op, nil
}

// requireSchema warns and reports false when the database has no tables.
func requireSchema(ctx context.Context, op db.Operator) (bool, error) {
	hasTables, err := op.HasTables(ctx)
	if err != nil {
		return false, err
	}
	if !hasTables {
		gn.Warn(`Warning: Database appears to be empty.
Run 'pokedb create' first to initialize the schema.`)
	}
	return hasTables, nil
}
