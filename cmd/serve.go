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
	"os"
	"os/signal"
	"syscall"

	"github.com/gnames/gn"
	"github.com/gnames/pokedb/internal/iohttp"
	"github.com/gnames/pokedb/internal/iostore"
	"github.com/spf13/cobra"
)

func getServeCmd() *cobra.Command {
	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Long: `Serve starts the JSON API.

Routes:
  GET    /api/pokemons?page=N&per_page=M
  POST   /api/pokemons
  GET    /api/pokemons/{id}
  PUT    /api/pokemons/{id}
  DELETE /api/pokemons/{id}
  GET    /health
  GET    /metrics

The server stops on SIGINT or SIGTERM after in-flight requests finish.

Examples:
  pokedb serve
  pokedb serve --port 8080 --access-log`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd)
		},
	}

	serveCmd.Flags().IntP("port", "p", 0, "port of the HTTP server")
	serveCmd.Flags().String("host", "", "address to listen on")
	serveCmd.Flags().Bool("access-log", false, "log every request to STDERR")

	return serveCmd
}

func runServe(cmd *cobra.Command) error {
	ctx, stop := signal.NotifyContext(cmd.Context(),
		os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg.Update(flagOptions(cmd))

	op, err := connect(ctx)
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}
	defer op.Close()

	srv := iohttp.New(&cfg.Server, iostore.New(op))
	gn.Info("PokeDB API is listening on <em>%s</em>", srv.Addr())

	if err = srv.Run(ctx); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}
	gn.Info("Server stopped")
	return nil
}
