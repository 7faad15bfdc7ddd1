package cli

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/matzehuels/easybox/pkg/api"
	"github.com/matzehuels/easybox/pkg/board"
	"github.com/matzehuels/easybox/pkg/observability"
)

const shutdownTimeout = 5 * time.Second

func (c *CLI) serveCommand() *cobra.Command {
	var (
		bf   boardFlags
		addr string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve a board over HTTP",
		Long: `Serve a board over HTTP.

Clients post browser-shaped pointer events to /events:

  {"type":"mousedown","clientX":12,"clientY":4}
  {"type":"touchmove","touches":[{"identifier":0,"clientX":20,"clientY":9}]}

and read the layout back from /boxes.`,
		Example: `  easybox serve --addr :8080
  easybox serve --board boards/kanban.toml -v`,
		RunE: func(cmd *cobra.Command, args []string) error {
			def, err := bf.load(cmd)
			if err != nil {
				return err
			}
			logger := loggerFromContext(cmd.Context())
			restore := installHooks(logger)
			defer restore()
			stats := newRequestStats()
			observability.SetHTTPHooks(stats)

			b, err := board.New(def)
			if err != nil {
				return err
			}
			defer b.Close()

			err = serve(cmd.Context(), addr, api.NewRouter(b, logger), func(bound net.Addr) {
				printSuccess(cmd.OutOrStdout(), "Serving %d boxes on %s", len(b.Boxes()), StyleValue.Render(bound.String()))
			})
			printInfo(cmd.OutOrStdout(), "%s", stats.summary())
			return err
		},
	}

	bf.register(cmd)
	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")

	return cmd
}

// serve binds addr and runs an HTTP server until ctx is cancelled, then
// shuts it down gracefully. ready is called with the bound address once the
// listener accepts connections.
func serve(ctx context.Context, addr string, h http.Handler, ready func(net.Addr)) error {
	logger := loggerFromContext(ctx)
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", addr, err)
	}
	srv := &http.Server{
		Handler:           h,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	if ready != nil {
		ready(ln.Addr())
	}

	return g.Wait()
}
