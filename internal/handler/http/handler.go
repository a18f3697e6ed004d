package http

import (
	"github.com/csmblade/PANfm/internal/config"
	"github.com/csmblade/PANfm/internal/logger"
	"github.com/csmblade/PANfm/internal/service"
)

type Handler struct {
	services *service.Services

	// secureCookies marks the session cookie Secure.
	secureCookies bool

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.Server, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:      services,
		secureCookies: cfg.SecureCookies,
		logger:        logger,
	}
}
