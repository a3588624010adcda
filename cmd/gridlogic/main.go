// Command gridlogic runs the puzzle engine, either as a one-shot JSON pipe
// (solve) or as an HTTP service (serve).
package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/gitrdm/gridlogic/internal/server"
	"github.com/gitrdm/gridlogic/pkg/sudoku"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var logLevel string

	root := &cobra.Command{
		Use:           "gridlogic",
		Short:         "Constraint-propagation solver for variant sudoku",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&logLevel, "log-level", "info", "zerolog level (trace..disabled)")

	logger := func() (zerolog.Logger, error) {
		level, err := zerolog.ParseLevel(logLevel)
		if err != nil {
			return zerolog.Nop(), fmt.Errorf("invalid log level %q: %w", logLevel, err)
		}
		return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
			Level(level).With().Timestamp().Logger(), nil
	}

	root.AddCommand(newSolveCmd(logger))
	root.AddCommand(newServeCmd(logger))
	return root
}

func newSolveCmd(logger func() (zerolog.Logger, error)) *cobra.Command {
	return &cobra.Command{
		Use:   "solve",
		Short: "Read one JSON request from stdin and write the response to stdout",
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := logger()
			if err != nil {
				return err
			}

			var req sudoku.Request
			if err := json.NewDecoder(cmd.InOrStdin()).Decode(&req); err != nil {
				return fmt.Errorf("decoding request: %w", err)
			}

			resp, err := sudoku.Solve(req)
			if err != nil {
				return fmt.Errorf("solving: %w", err)
			}
			log.Info().
				Str("result", resp.Result).
				Int64("duration_ms", resp.DurationMS).
				Msg("solved request")

			return json.NewEncoder(cmd.OutOrStdout()).Encode(resp)
		},
	}
}

func newServeCmd(logger func() (zerolog.Logger, error)) *cobra.Command {
	var addr string
	var workers int

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve POST /solve over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := logger()
			if err != nil {
				return err
			}

			srv := server.New(log, workers)
			defer srv.Close()

			log.Info().Str("addr", addr).Int("workers", workers).Msg("listening")
			return http.ListenAndServe(addr, srv.Handler())
		},
	}
	cmd.Flags().StringVar(&addr, "addr", ":8000", "listen address")
	cmd.Flags().IntVar(&workers, "workers", 0, "solve workers (0 = all cores)")
	return cmd
}
