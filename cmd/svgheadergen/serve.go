package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	svgheadergen "github.com/ryugen-io/svgheadergen"
	"github.com/ryugen-io/svgheadergen/internal/adapters/httpapi"
	"github.com/ryugen-io/svgheadergen/internal/adapters/rediscache"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP header-rendering server",
	Long: `Starts an HTTP server that renders SVG headers on demand:

  GET /header.svg?text=Hello&font=banner3&gradient=cyber_cyan&scale=10&mode=pixel
  GET /healthz
  GET /metrics

With --redis, rendered documents are cached so repeated requests skip the
external engine.`,
	Run: func(cmd *cobra.Command, args []string) {
		logger := newLogger(cmd)

		port, _ := cmd.Flags().GetString("port")
		redisAddr, _ := cmd.Flags().GetString("redis")
		cacheTTL, _ := cmd.Flags().GetDuration("cache-ttl")

		gen := svgheadergen.New(svgheadergen.WithLogger(logger))

		opts := []httpapi.ServerOption{httpapi.WithLogger(logger)}
		if extra, err := filePresets(cmd); err != nil {
			exitWith(logger, err)
		} else if extra != nil {
			opts = append(opts, httpapi.WithPresets(extra))
		}
		if redisAddr != "" {
			cache := rediscache.New(redisAddr, "", 0, rediscache.WithTTL(cacheTTL))
			opts = append(opts, httpapi.WithCache(cache))
			logger.Info("response cache enabled", "redis", redisAddr, "ttl", cacheTTL)
		}

		srv := &http.Server{
			Addr:    ":" + port,
			Handler: httpapi.NewHandler(gen, opts...),
		}

		serverErrors := make(chan error, 1)
		go func() {
			logger.Info("starting server", "addr", srv.Addr)
			serverErrors <- srv.ListenAndServe()
		}()

		shutdown := make(chan os.Signal, 1)
		signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

		select {
		case err := <-serverErrors:
			logger.Error("server error", "error", err)
			os.Exit(1)

		case sig := <-shutdown:
			fmt.Fprintln(os.Stderr)
			logger.Info("shutting down", "signal", sig.String())

			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			if err := srv.Shutdown(ctx); err != nil {
				logger.Error("graceful shutdown did not complete", "error", err)
				if err := srv.Close(); err != nil {
					logger.Error("forced close failed", "error", err)
				}
			}
			logger.Info("server stopped")
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringP("port", "p", "8080", "port to listen on")
	serveCmd.Flags().String("redis", "", "redis address for response caching (e.g. localhost:6379)")
	serveCmd.Flags().Duration("cache-ttl", time.Hour, "cached document lifetime (with --redis)")
}
