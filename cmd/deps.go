package cmd

import (
	"marketboard/api"
	"marketboard/internal"
	"marketboard/internal/app"
	"marketboard/internal/config"
	"marketboard/internal/logger"
	"marketboard/internal/repository"
	"marketboard/pkg/fred"
)

// InitializeDependencies wires every handler the binary needs from config.
// The FRED client is wired even without an api key; the rate repository
// reports ErrNotConfigured on use and only the central-bank table goes dark.
func InitializeDependencies(cfg *config.Config) (*api.ApiHandler, error) {
	log := logger.New()

	quoteRepository := repository.NewYahooQuoteRepository(cfg.QuoteTTL(), cfg.NameTTL())

	fredClient := fred.NewClient(cfg.Fred.APIKey)
	if cfg.Fred.BaseURL != "" {
		fredClient.BaseURL = cfg.Fred.BaseURL
	}
	rateRepository := repository.NewFredRateRepository(fredClient, cfg.RateTTL())

	dashboardHandler := app.DashboardHandler{
		QuoteRepository: quoteRepository,
		RateRepository:  rateRepository,
		Logger:          log,
	}

	apiHandler := &api.ApiHandler{
		DashboardHandler: dashboardHandler,
		CorrelationHandler: internal.CorrelationHandler{
			QuoteRepository: quoteRepository,
		},
		Sessions: api.NewSessionStore(),
		Decimals: int32(cfg.Display.Decimals),
		Logger:   log,
	}

	return apiHandler, nil
}
