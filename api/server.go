// Package api exposes the marketplace over HTTP. Endpoints are a thin
// translation layer: domain rejections become 400s carrying the rejection
// reason, infrastructure faults become 500s, and records whose id is empty
// are reported as 404.
package api

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/artblock-labs/plinth/market"
)

// Server handles marketplace HTTP requests.
type Server struct {
	market *market.Market
	logger *slog.Logger
}

// NewServer creates the HTTP handler for a market.
func NewServer(m *market.Market, logger *slog.Logger) http.Handler {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Server{
		market: m,
		logger: logger,
	}

	r := chi.NewRouter()
	r.Get("/health", s.health)

	r.Route("/api", func(r chi.Router) {
		r.Get("/users", s.listUsers)
		r.Get("/collections", s.listCollections)
		r.Get("/nfts", s.listNFTs)
		r.Get("/nfts/{id}", s.getNFT)
		r.Post("/nfts/{id}/bid", s.placeBid)
		r.Post("/nfts/{id}/buy", s.buyNow)
		r.Get("/chats", s.listChats)
		r.Get("/chats/{id}/messages", s.listMessages)
		r.Post("/chats/{id}/messages", s.sendMessage)
	})

	return r
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}

func (s *Server) listUsers(w http.ResponseWriter, r *http.Request) {
	users, err := s.market.Users(r.Context())
	if err != nil {
		s.serverError(w, "list users", err)
		return
	}
	ok(w, users)
}

func (s *Server) listCollections(w http.ResponseWriter, r *http.Request) {
	cols, err := s.market.Collections(r.Context())
	if err != nil {
		s.serverError(w, "list collections", err)
		return
	}
	ok(w, cols)
}

func (s *Server) listNFTs(w http.ResponseWriter, r *http.Request) {
	nfts, err := s.market.Listings(r.Context())
	if err != nil {
		s.serverError(w, "list nfts", err)
		return
	}
	ok(w, nfts)
}

func (s *Server) getNFT(w http.ResponseWriter, r *http.Request) {
	nft, err := s.market.Listing(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.serverError(w, "get nft", err)
		return
	}
	if nft.ID == "" {
		fail(w, http.StatusNotFound, "Listing not found")
		return
	}
	ok(w, nft)
}

func (s *Server) placeBid(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Bidder string  `json:"bidder"`
		Amount float64 `json:"amount"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		fail(w, http.StatusBadRequest, "invalid request body")
		return
	}

	nft, err := s.market.PlaceBid(r.Context(), chi.URLParam(r, "id"), body.Bidder, body.Amount)
	if err != nil {
		s.domainOrServerError(w, "place bid", err)
		return
	}
	ok(w, nft)
}

func (s *Server) buyNow(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Buyer string `json:"buyer"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		fail(w, http.StatusBadRequest, "invalid request body")
		return
	}

	nft, err := s.market.BuyNow(r.Context(), chi.URLParam(r, "id"), body.Buyer)
	if err != nil {
		s.domainOrServerError(w, "buy now", err)
		return
	}
	ok(w, nft)
}

func (s *Server) listChats(w http.ResponseWriter, r *http.Request) {
	boards, err := s.market.Boards(r.Context())
	if err != nil {
		s.serverError(w, "list chats", err)
		return
	}
	ok(w, boards)
}

func (s *Server) listMessages(w http.ResponseWriter, r *http.Request) {
	msgs, err := s.market.Messages(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.domainOrServerError(w, "list messages", err)
		return
	}
	ok(w, msgs)
}

func (s *Server) sendMessage(w http.ResponseWriter, r *http.Request) {
	var body struct {
		UserID string `json:"userId"`
		Text   string `json:"text"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		fail(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if body.Text == "" {
		fail(w, http.StatusBadRequest, "text is required")
		return
	}

	msg, err := s.market.SendMessage(r.Context(), chi.URLParam(r, "id"), body.UserID, body.Text)
	if err != nil {
		s.domainOrServerError(w, "send message", err)
		return
	}
	ok(w, msg)
}

// domainOrServerError maps a market error to 400 with its user-facing reason,
// and anything else to 500.
func (s *Server) domainOrServerError(w http.ResponseWriter, op string, err error) {
	if market.IsDomain(err) {
		fail(w, http.StatusBadRequest, err.Error())
		return
	}
	s.serverError(w, op, err)
}

func (s *Server) serverError(w http.ResponseWriter, op string, err error) {
	s.logger.Error("request failed",
		"op", op,
		"error", err,
	)
	fail(w, http.StatusInternalServerError, "internal error")
}
