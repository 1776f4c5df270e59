package http

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/chitchat/signaling/internal/adapters/signal"
	"github.com/chitchat/signaling/internal/app/orch"
	"github.com/chitchat/signaling/internal/config"
	"github.com/chitchat/signaling/internal/turnrest"
)

func SetupRouter(ctx context.Context, cfg *config.Config, o *orch.Orchestrator) *gin.Engine {
	if cfg.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	if cfg.Mode == "debug" {
		r.Use(gin.Logger())
	}
	r.Use(gin.Recovery())

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"api": "chitchat-api"})
	})

	r.GET("/api/get-turn-credentials", turnCredentialsHandler(cfg))

	ctl := signal.NewController(o, cfg)
	r.GET("/ws", func(c *gin.Context) {
		ctl.Handle(ctx, c)
	})

	log.Info().Str("module", "adapters.http").Msg("router setup")
	return r
}

// turnCredentialsHandler serves ephemeral TURN credentials for the media
// negotiation layer. The signaling core never depends on this endpoint.
func turnCredentialsHandler(cfg *config.Config) gin.HandlerFunc {
	gen, err := turnrest.NewGenerator(
		cfg.Turn.Secret,
		cfg.Turn.TTL,
		cfg.Turn.UsernamePrefix,
		cfg.Turn.URIs,
	)
	if err != nil {
		log.Warn().Err(err).Str("module", "adapters.http").Msg("turn credentials disabled")
		return func(c *gin.Context) {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "turn credentials unavailable"})
		}
	}
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"token": gen.Generate("")})
	}
}
