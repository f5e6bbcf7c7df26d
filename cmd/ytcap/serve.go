package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/famomatic/ytcap/client"
)

func newServeCommand(ctx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run an HTTP API exposing subtitle and metadata lookups",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c := client.New(ctx.clientConfig())
			logger := ctx.logger()

			gin.SetMode(gin.ReleaseMode)
			router := gin.New()
			router.Use(gin.Recovery())

			api := router.Group("/api")
			api.GET("/subtitles", subtitlesHandler(c))
			api.GET("/details", detailsHandler(c))
			api.GET("/tracks", tracksHandler(c))
			router.GET("/healthz", func(gc *gin.Context) {
				gc.JSON(http.StatusOK, gin.H{"status": "ok"})
			})

			addr := ctx.v.GetString("listen")
			srv := &http.Server{
				Addr:         addr,
				Handler:      router,
				ReadTimeout:  30 * time.Second,
				WriteTimeout: 60 * time.Second,
			}

			runCtx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			errCh := make(chan error, 1)
			go func() {
				logger.Info().Str("addr", addr).Msg("listening")
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					errCh <- err
				}
			}()

			select {
			case err := <-errCh:
				return err
			case <-runCtx.Done():
			}

			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			logger.Info().Msg("shutting down")
			return srv.Shutdown(shutdownCtx)
		},
	}

	cmd.Flags().String("listen", ":8080", "Listen address")
	_ = ctx.v.BindPFlag("listen", cmd.Flags().Lookup("listen"))
	return cmd
}

func subtitlesHandler(c *client.Client) gin.HandlerFunc {
	return func(gc *gin.Context) {
		videoID := gc.Query("videoID")
		if videoID == "" {
			gc.JSON(http.StatusBadRequest, gin.H{"error": "videoID is required"})
			return
		}
		cues, err := c.GetSubtitles(gc.Request.Context(), videoID, gc.Query("lang"))
		if err != nil {
			gc.JSON(statusForError(err), gin.H{"error": err.Error()})
			return
		}
		gc.JSON(http.StatusOK, gin.H{"subtitles": cues})
	}
}

func detailsHandler(c *client.Client) gin.HandlerFunc {
	return func(gc *gin.Context) {
		videoID := gc.Query("videoID")
		if videoID == "" {
			gc.JSON(http.StatusBadRequest, gin.H{"error": "videoID is required"})
			return
		}
		details, err := c.GetVideoDetails(gc.Request.Context(), videoID, gc.Query("lang"))
		if err != nil {
			gc.JSON(statusForError(err), gin.H{"error": err.Error()})
			return
		}
		gc.JSON(http.StatusOK, details)
	}
}

func tracksHandler(c *client.Client) gin.HandlerFunc {
	return func(gc *gin.Context) {
		videoID := gc.Query("videoID")
		if videoID == "" {
			gc.JSON(http.StatusBadRequest, gin.H{"error": "videoID is required"})
			return
		}
		tracks, err := c.ListTracks(gc.Request.Context(), videoID)
		if err != nil {
			gc.JSON(statusForError(err), gin.H{"error": err.Error()})
			return
		}
		gc.JSON(http.StatusOK, gin.H{"tracks": tracks})
	}
}

func statusForError(err error) int {
	switch {
	case errors.Is(err, client.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, client.ErrUnavailable):
		return http.StatusNotFound
	case errors.Is(err, client.ErrLoginRequired):
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}
