// Package service contains HTTP handler implementations for the pay-to-roast API
// endpoints. It orchestrates request parsing, calls the underlying business logic
// in the app package, maps application errors to HTTP statuses, and writes
// appropriate HTTP responses.
package service

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"math"
	"net/http"
	"strconv"
	"time"

	"payroast/internal/app"
	"payroast/internal/models"
	"payroast/internal/pkg/auth"
	"payroast/internal/pkg/logger"

	"github.com/go-chi/chi/v5"
)

const requestTimeout = 10 * time.Second

// handlers aggregates dependencies needed by HTTP handlers,
// including the application business logic and logger.
type handlers struct {
	app *app.App
	log *logger.Logger
}

// newHandlers initializes a new handlers instance with the provided app and logger dependencies.
func newHandlers(app *app.App, l *logger.Logger) *handlers {
	return &handlers{app: app, log: l}
}

// authHandler handles session token requests. It reads the wallet address from
// the request body and returns a JSON response with a signed token for it.
func (handlers *handlers) authHandler(res http.ResponseWriter, req *http.Request) {
	var authRequest models.AuthRequest
	var authResponse models.AuthResponse

	requestBody, err := io.ReadAll(req.Body)
	if err != nil {
		writeErrorResponse(res, err.Error(), http.StatusBadRequest)
		return
	}

	if err = json.Unmarshal(requestBody, &authRequest); err != nil {
		writeErrorResponse(res, err.Error(), http.StatusBadRequest)
		return
	}

	if authRequest.WalletAddress == "" {
		writeErrorResponse(res, "missing wallet address", http.StatusBadRequest)
		return
	}

	authResponse.Token, err = auth.GenerateToken(authRequest.WalletAddress)
	if err != nil {
		writeErrorResponse(res, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSONResponse(res, authResponse, http.StatusOK)
}

// createRoastHandler processes requests to create a new roast.
// The sender address is the wallet address bound to the caller's session token.
func (handlers *handlers) createRoastHandler(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), requestTimeout)
	defer cancel()

	walletAddress, ok := req.Context().Value(auth.ContextWalletAddress).(string)
	if !ok || walletAddress == "" {
		writeErrorResponse(res, "unauthorized", http.StatusUnauthorized)
		return
	}

	var createRequest models.CreateRoastRequest

	requestBody, err := io.ReadAll(req.Body)
	if err != nil {
		writeErrorResponse(res, err.Error(), http.StatusBadRequest)
		return
	}

	if err = json.Unmarshal(requestBody, &createRequest); err != nil {
		writeErrorResponse(res, err.Error(), http.StatusBadRequest)
		return
	}

	roast, err := handlers.app.CreateRoast(ctx, walletAddress, createRequest)
	if err != nil {
		handlers.writeAppError(res, err)
		return
	}

	writeJSONResponse(res, roast, http.StatusCreated)
}

// acceptRoastHandler transitions a pending roast to accepted on behalf of the
// authenticated receiver.
func (handlers *handlers) acceptRoastHandler(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), requestTimeout)
	defer cancel()

	walletAddress, ok := req.Context().Value(auth.ContextWalletAddress).(string)
	if !ok || walletAddress == "" {
		writeErrorResponse(res, "unauthorized", http.StatusUnauthorized)
		return
	}

	roast, err := handlers.app.AcceptRoast(ctx, chi.URLParam(req, "id"), walletAddress)
	if err != nil {
		handlers.writeAppError(res, err)
		return
	}

	writeJSONResponse(res, roast, http.StatusOK)
}

// rejectRoastHandler transitions a pending roast to rejected.
func (handlers *handlers) rejectRoastHandler(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), requestTimeout)
	defer cancel()

	roast, err := handlers.app.RejectRoast(ctx, chi.URLParam(req, "id"))
	if err != nil {
		handlers.writeAppError(res, err)
		return
	}

	writeJSONResponse(res, roast, http.StatusOK)
}

// getRoastHandler retrieves a single roast by its identifier.
func (handlers *handlers) getRoastHandler(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), requestTimeout)
	defer cancel()

	roast, err := handlers.app.GetRoast(ctx, chi.URLParam(req, "id"))
	if err != nil {
		handlers.writeAppError(res, err)
		return
	}

	writeJSONResponse(res, roast, http.StatusOK)
}

// engageHandler records likes and comments on a roast. Every call also counts
// one view.
func (handlers *handlers) engageHandler(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), requestTimeout)
	defer cancel()

	var engageRequest models.EngageRequest

	requestBody, err := io.ReadAll(req.Body)
	if err != nil {
		writeErrorResponse(res, err.Error(), http.StatusBadRequest)
		return
	}

	if err = json.Unmarshal(requestBody, &engageRequest); err != nil {
		writeErrorResponse(res, err.Error(), http.StatusBadRequest)
		return
	}

	roast, err := handlers.app.RecordEngagement(ctx, chi.URLParam(req, "id"), engageRequest.Likes, engageRequest.Comments)
	if err != nil {
		handlers.writeAppError(res, err)
		return
	}

	writeJSONResponse(res, roast, http.StatusOK)
}

// shareRoastHandler hands the roast to the sharing collaborator and returns the
// post URL.
func (handlers *handlers) shareRoastHandler(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), requestTimeout)
	defer cancel()

	var shareRequest models.ShareRequest

	requestBody, err := io.ReadAll(req.Body)
	if err != nil {
		writeErrorResponse(res, err.Error(), http.StatusBadRequest)
		return
	}

	if len(requestBody) > 0 {
		if err = json.Unmarshal(requestBody, &shareRequest); err != nil {
			writeErrorResponse(res, err.Error(), http.StatusBadRequest)
			return
		}
	}

	postURL, err := handlers.app.ShareRoast(ctx, chi.URLParam(req, "id"), shareRequest.TwitterUsername)
	if err != nil {
		handlers.writeAppError(res, err)
		return
	}

	writeJSONResponse(res, models.ShareResponse{PostURL: postURL}, http.StatusOK)
}

// feedHandler serves the ranked feed. The category query parameter selects the
// ordering; limit defaults to 10.
func (handlers *handlers) feedHandler(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), requestTimeout)
	defer cancel()

	limit := parseLimit(req.URL.Query().Get("limit"))

	var roasts []models.Roast
	var err error
	switch category := req.URL.Query().Get("category"); category {
	case "", "recent":
		roasts, err = handlers.app.RecentRoasts(ctx, limit)
	case "trending":
		roasts, err = handlers.app.TrendingRoasts(ctx, limit)
	case "highest-paid":
		roasts, err = handlers.app.HighestPaidRoasts(ctx, limit)
	default:
		writeErrorResponse(res, "unknown feed category: "+category, http.StatusBadRequest)
		return
	}
	if err != nil {
		handlers.writeAppError(res, err)
		return
	}

	writeJSONResponse(res, roasts, http.StatusOK)
}

// currenciesHandler serves the static currency table.
func (handlers *handlers) currenciesHandler(res http.ResponseWriter, req *http.Request) {
	writeJSONResponse(res, models.Currencies, http.StatusOK)
}

// mintHandler mints a roast as an NFT on behalf of the authenticated buyer.
func (handlers *handlers) mintHandler(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), requestTimeout)
	defer cancel()

	walletAddress, ok := req.Context().Value(auth.ContextWalletAddress).(string)
	if !ok || walletAddress == "" {
		writeErrorResponse(res, "unauthorized", http.StatusUnauthorized)
		return
	}

	var mintRequest models.MintRequest

	requestBody, err := io.ReadAll(req.Body)
	if err != nil {
		writeErrorResponse(res, err.Error(), http.StatusBadRequest)
		return
	}

	if err = json.Unmarshal(requestBody, &mintRequest); err != nil {
		writeErrorResponse(res, err.Error(), http.StatusBadRequest)
		return
	}

	nft, err := handlers.app.MintNFT(ctx, mintRequest.RoastID, walletAddress, mintRequest.Price)
	if err != nil {
		handlers.writeAppError(res, err)
		return
	}

	writeJSONResponse(res, nft, http.StatusCreated)
}

// mintedHandler reports whether a roast has already been minted.
func (handlers *handlers) mintedHandler(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), requestTimeout)
	defer cancel()

	minted, err := handlers.app.IsMinted(ctx, chi.URLParam(req, "id"))
	if err != nil {
		handlers.writeAppError(res, err)
		return
	}

	writeJSONResponse(res, models.MintedResponse{Minted: minted}, http.StatusOK)
}

// recentNFTsHandler lists minted claims, newest purchases first. When minPrice
// or maxPrice is supplied, the result is filtered by price range instead.
func (handlers *handlers) recentNFTsHandler(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), requestTimeout)
	defer cancel()

	query := req.URL.Query()
	if query.Get("minPrice") != "" || query.Get("maxPrice") != "" {
		minPrice, err := parsePrice(query.Get("minPrice"), 0)
		if err != nil {
			writeErrorResponse(res, "invalid minPrice", http.StatusBadRequest)
			return
		}
		maxPrice, err := parsePrice(query.Get("maxPrice"), math.MaxFloat64)
		if err != nil {
			writeErrorResponse(res, "invalid maxPrice", http.StatusBadRequest)
			return
		}

		nfts, err := handlers.app.NFTsInPriceRange(ctx, minPrice, maxPrice)
		if err != nil {
			handlers.writeAppError(res, err)
			return
		}
		writeJSONResponse(res, nfts, http.StatusOK)
		return
	}

	nfts, err := handlers.app.RecentNFTs(ctx, parseLimit(query.Get("limit")))
	if err != nil {
		handlers.writeAppError(res, err)
		return
	}

	writeJSONResponse(res, nfts, http.StatusOK)
}

// nftsByOwnerHandler lists every claim held by a wallet address.
func (handlers *handlers) nftsByOwnerHandler(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), requestTimeout)
	defer cancel()

	nfts, err := handlers.app.NFTsByOwner(ctx, chi.URLParam(req, "address"))
	if err != nil {
		handlers.writeAppError(res, err)
		return
	}

	writeJSONResponse(res, nfts, http.StatusOK)
}

// getNFTHandler retrieves a single claim by its identifier.
func (handlers *handlers) getNFTHandler(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), requestTimeout)
	defer cancel()

	nft, err := handlers.app.GetNFT(ctx, chi.URLParam(req, "id"))
	if err != nil {
		handlers.writeAppError(res, err)
		return
	}

	writeJSONResponse(res, nft, http.StatusOK)
}

// writeAppError maps application error kinds to HTTP statuses.
func (handlers *handlers) writeAppError(res http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, app.ErrValidation):
		writeErrorResponse(res, err.Error(), http.StatusBadRequest)
	case errors.Is(err, app.ErrNotFound):
		writeErrorResponse(res, err.Error(), http.StatusNotFound)
	case errors.Is(err, app.ErrInvalidState), errors.Is(err, app.ErrAlreadyMinted):
		writeErrorResponse(res, err.Error(), http.StatusConflict)
	default:
		writeErrorResponse(res, err.Error(), http.StatusInternalServerError)
	}
}

func parseLimit(raw string) int {
	if raw == "" {
		return 0
	}
	limit, err := strconv.Atoi(raw)
	if err != nil {
		return 0
	}
	return limit
}

func parsePrice(raw string, fallback float64) (float64, error) {
	if raw == "" {
		return fallback, nil
	}
	return strconv.ParseFloat(raw, 64)
}

func writeJSONResponse(res http.ResponseWriter, payload interface{}, statusCode int) {
	result, err := json.Marshal(payload)
	if err != nil {
		writeErrorResponse(res, err.Error(), http.StatusInternalServerError)
		return
	}

	res.Header().Set("Content-Type", "application/json")
	res.WriteHeader(statusCode)
	res.Write(result)
}

func writeErrorResponse(res http.ResponseWriter, errorInfo string, statusCode int) {
	res.Header().Set("Content-Type", "application/json")
	res.WriteHeader(statusCode)
	json.NewEncoder(res).Encode(models.ErrorResponse{Errors: errorInfo})
}
