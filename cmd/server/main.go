package main

import (
	"fmt"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/rhyrak/schedule-extractor/internal/config"
	"github.com/rhyrak/schedule-extractor/internal/formatter"
	"github.com/rhyrak/schedule-extractor/internal/logging"
)

func main() {
	cfg, err := config.Load(os.Getenv("EXTRACTOR_CONFIG"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	logger := logging.Setup(cfg.Environment, nil)
	if cfg.Environment != "development" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := newRouter(cfg, logger)
	addr := ":" + cfg.Server.Port
	logger.Info().Str("addr", addr).Msg("HTTP server listening")
	if err := r.Run(addr); err != nil {
		logger.Fatal().Err(err).Msg("http server error")
	}
}

func newRouter(cfg *config.Configuration, logger zerolog.Logger) *gin.Engine {
	h := &handler{
		formatter: formatter.Formatter{Indent: &cfg.Indent, Escape: cfg.Escape},
		comma:     cfg.Comma(),
		logger:    logger,
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	r.GET("/example", h.handleGetExample)
	r.POST("/entries", h.handlePostEntries)
	r.POST("/entries/csv", h.handlePostEntriesCSV)
	return r
}
