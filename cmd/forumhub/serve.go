package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"forumhub/internal/app"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the JSON API",
	RunE: withApp("serve", func(cmd *cobra.Command, a *app.ForumApp, args []string) error {
		ctx := cmd.Context()
		if err := a.Check(ctx); err != nil {
			return fmt.Errorf("store not ready: %w", err)
		}

		addr, _ := cmd.Flags().GetString("addr")
		if addr == "" {
			addr = a.Addr()
		}
		if !verbose {
			gin.SetMode(gin.ReleaseMode)
		}
		srv := a.Server().NewHTTPServer(addr)

		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			a.Logger().Info("listening", "addr", addr)
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("serving: %w", err)
			}
			return nil
		})
		g.Go(func() error {
			<-gctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			a.Logger().Info("shutting down")
			return srv.Shutdown(shutdownCtx)
		})
		return g.Wait()
	}),
}

func init() {
	serveCmd.Flags().String("addr", "", "Listen address (default from config)")
	rootCmd.AddCommand(serveCmd)
}
