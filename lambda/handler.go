// Package lambda adapts the marketplace operations to AWS Lambda behind an
// API Gateway HTTP API. The route set mirrors the api package; this handler
// exists for deployments where the store's DynamoDB backend and the request
// path should live in the same region with no server to run.
package lambda

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/aws/aws-lambda-go/events"

	"github.com/artblock-labs/plinth/market"
)

// Handler processes API Gateway V2 HTTP events.
type Handler struct {
	market *market.Market
	logger *slog.Logger
}

// NewHandler creates a new Lambda handler.
func NewHandler(m *market.Market, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{
		market: m,
		logger: logger,
	}
}

type envelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

// Handle routes one API Gateway event. Designed to be passed to lambda.Start
// from a main package.
func (h *Handler) Handle(ctx context.Context, event events.APIGatewayV2HTTPRequest) (events.APIGatewayV2HTTPResponse, error) {
	id := event.PathParameters["id"]

	switch event.RouteKey {
	case "GET /api/users":
		users, err := h.market.Users(ctx)
		return h.respond(users, err)

	case "GET /api/collections":
		cols, err := h.market.Collections(ctx)
		return h.respond(cols, err)

	case "GET /api/nfts":
		nfts, err := h.market.Listings(ctx)
		return h.respond(nfts, err)

	case "GET /api/nfts/{id}":
		nft, err := h.market.Listing(ctx, id)
		if err == nil && nft.ID == "" {
			return reply(http.StatusNotFound, envelope{Success: false, Error: "Listing not found"}), nil
		}
		return h.respond(nft, err)

	case "POST /api/nfts/{id}/bid":
		var body struct {
			Bidder string  `json:"bidder"`
			Amount float64 `json:"amount"`
		}
		if err := json.Unmarshal([]byte(event.Body), &body); err != nil {
			return reply(http.StatusBadRequest, envelope{Success: false, Error: "invalid request body"}), nil
		}
		nft, err := h.market.PlaceBid(ctx, id, body.Bidder, body.Amount)
		return h.respond(nft, err)

	case "POST /api/nfts/{id}/buy":
		var body struct {
			Buyer string `json:"buyer"`
		}
		if err := json.Unmarshal([]byte(event.Body), &body); err != nil {
			return reply(http.StatusBadRequest, envelope{Success: false, Error: "invalid request body"}), nil
		}
		nft, err := h.market.BuyNow(ctx, id, body.Buyer)
		return h.respond(nft, err)

	case "GET /api/chats":
		boards, err := h.market.Boards(ctx)
		return h.respond(boards, err)

	case "GET /api/chats/{id}/messages":
		msgs, err := h.market.Messages(ctx, id)
		return h.respond(msgs, err)

	case "POST /api/chats/{id}/messages":
		var body struct {
			UserID string `json:"userId"`
			Text   string `json:"text"`
		}
		if err := json.Unmarshal([]byte(event.Body), &body); err != nil || body.Text == "" {
			return reply(http.StatusBadRequest, envelope{Success: false, Error: "text is required"}), nil
		}
		msg, err := h.market.SendMessage(ctx, id, body.UserID, body.Text)
		return h.respond(msg, err)

	default:
		return reply(http.StatusNotFound, envelope{Success: false, Error: "no such route"}), nil
	}
}

// respond maps a market result to an HTTP response: domain rejections are
// 400s carrying the rejection reason, infrastructure faults are 500s.
func (h *Handler) respond(data any, err error) (events.APIGatewayV2HTTPResponse, error) {
	switch {
	case err == nil:
		return reply(http.StatusOK, envelope{Success: true, Data: data}), nil
	case market.IsDomain(err):
		return reply(http.StatusBadRequest, envelope{Success: false, Error: err.Error()}), nil
	default:
		h.logger.Error("request failed", "error", err)
		return reply(http.StatusInternalServerError, envelope{Success: false, Error: "internal error"}), nil
	}
}

func reply(status int, body envelope) events.APIGatewayV2HTTPResponse {
	encoded, _ := json.Marshal(body)
	return events.APIGatewayV2HTTPResponse{
		StatusCode: status,
		Headers:    map[string]string{"Content-Type": "application/json"},
		Body:       string(encoded),
	}
}
