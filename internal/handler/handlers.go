package handler

import (
	"github.com/csmblade/PANfm/internal/config"
	"github.com/csmblade/PANfm/internal/handler/http"
	"github.com/csmblade/PANfm/internal/logger"
	"github.com/csmblade/PANfm/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{
		HTTP: http.NewHandler(services, cfg, logger),
	}, nil
}
