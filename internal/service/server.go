package service

import (
	"payroast/internal/app"
	"payroast/internal/pkg/auth"
	"payroast/internal/pkg/logger"

	"github.com/go-chi/chi/v5"
)

// Service encapsulates the HTTP server configuration, including the application's
// business logic, HTTP handlers, the server's run address, and a logger for event
// and error logging.
type Service struct {
	handlers   *handlers
	app        *app.App
	runAddress string
	log        *logger.Logger
}

// NewService creates and initializes a new Service instance.
// It sets up the handlers using the provided application and logger,
// and configures the server's run address.
func NewService(app *app.App, runAddress string, l *logger.Logger) *Service {
	handlers := newHandlers(app, l)
	return &Service{handlers: handlers, app: app, runAddress: runAddress, log: l}
}

// NewRouter sets up and returns a new chi.Router instance with the necessary
// middleware and routes. It applies logging middleware globally, and JWT
// authentication middleware for routes acting on behalf of a wallet.
func (service *Service) NewRouter() chi.Router {
	router := chi.NewRouter()
	router.Use(service.log.WithLogging())

	router.Post("/api/auth", service.handlers.authHandler)
	router.Get("/api/feed", service.handlers.feedHandler)
	router.Get("/api/currencies", service.handlers.currenciesHandler)
	router.Get("/api/roast/{id}", service.handlers.getRoastHandler)
	router.Post("/api/roast/{id}/engage", service.handlers.engageHandler)
	router.Get("/api/roast/{id}/minted", service.handlers.mintedHandler)
	router.Get("/api/nfts", service.handlers.recentNFTsHandler)
	router.Get("/api/nfts/owner/{address}", service.handlers.nftsByOwnerHandler)
	router.Get("/api/nft/{id}", service.handlers.getNFTHandler)

	router.Group(func(r chi.Router) {
		r.Use(auth.CheckJWTMiddleware())
		r.Post("/api/roast", service.handlers.createRoastHandler)
		r.Post("/api/roast/{id}/accept", service.handlers.acceptRoastHandler)
		r.Post("/api/roast/{id}/reject", service.handlers.rejectRoastHandler)
		r.Post("/api/roast/{id}/share", service.handlers.shareRoastHandler)
		r.Post("/api/nft/mint", service.handlers.mintHandler)
	})
	return router
}
