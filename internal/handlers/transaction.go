package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"

	apperrors "github.com/tropicaldog17/fxledger/internal/errors"
	"github.com/tropicaldog17/fxledger/internal/models"
	"github.com/tropicaldog17/fxledger/internal/services"
)

type TransactionHandler struct {
	service services.TransactionService
}

func NewTransactionHandler(service services.TransactionService) *TransactionHandler {
	return &TransactionHandler{service: service}
}

type tradeRequest struct {
	CurrencyID uint            `json:"currency_id"`
	Amount     decimal.Decimal `json:"amount"`
	Rate       decimal.Decimal `json:"rate"`
	Note       *string         `json:"note"`
}

// Buy records a purchase transaction.
// @Summary Buy currency
// @Tags transactions
// @Accept json
// @Produce json
// @Success 201 {object} models.Transaction
// @Failure 400 {object} errorResponse
// @Failure 404 {object} errorResponse
// @Router /transactions/buy [post]
func (h *TransactionHandler) Buy(w http.ResponseWriter, r *http.Request) {
	var req tradeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, &apperrors.ErrValidation{Field: "body", Message: "invalid JSON: " + err.Error()})
		return
	}

	tx, err := h.service.ProcessBuy(r.Context(), &services.BuyRequest{
		CurrencyID: req.CurrencyID,
		Amount:     req.Amount,
		Rate:       req.Rate,
		Note:       req.Note,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, tx)
}

// Sell records a sale transaction with realized profit.
// @Summary Sell currency
// @Tags transactions
// @Accept json
// @Produce json
// @Success 201 {object} models.Transaction
// @Failure 400 {object} errorResponse
// @Failure 404 {object} errorResponse
// @Failure 422 {object} errorResponse "insufficient stock, body carries available amount"
// @Router /transactions/sell [post]
func (h *TransactionHandler) Sell(w http.ResponseWriter, r *http.Request) {
	var req tradeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, &apperrors.ErrValidation{Field: "body", Message: "invalid JSON: " + err.Error()})
		return
	}

	tx, err := h.service.ProcessSell(r.Context(), &services.SellRequest{
		CurrencyID: req.CurrencyID,
		Amount:     req.Amount,
		Rate:       req.Rate,
		Note:       req.Note,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, tx)
}

// ListTransactions returns transactions newest-first.
// @Summary List transactions
// @Tags transactions
// @Produce json
// @Param currency_id query int false "Filter by currency"
// @Param type query string false "Filter by type (buy|sell)"
// @Param limit query int false "Limit"
// @Param offset query int false "Offset"
// @Success 200 {array} models.Transaction
// @Router /transactions [get]
func (h *TransactionHandler) ListTransactions(w http.ResponseWriter, r *http.Request) {
	filter := &models.TransactionFilter{}

	if raw := r.URL.Query().Get("currency_id"); raw != "" {
		if id, err := strconv.ParseUint(raw, 10, 32); err == nil {
			cid := uint(id)
			filter.CurrencyID = &cid
		}
	}
	if txType := r.URL.Query().Get("type"); txType != "" {
		filter.Type = &txType
	}
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if limit, err := strconv.Atoi(raw); err == nil {
			filter.Limit = limit
		}
	}
	if raw := r.URL.Query().Get("offset"); raw != "" {
		if offset, err := strconv.Atoi(raw); err == nil {
			filter.Offset = offset
		}
	}

	transactions, err := h.service.ListTransactions(r.Context(), filter)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, transactions)
}

// GetTransaction returns one transaction by id.
// @Summary Get transaction
// @Tags transactions
// @Produce json
// @Param id path string true "Transaction ID"
// @Success 200 {object} models.Transaction
// @Failure 404 {object} errorResponse
// @Router /transactions/{id} [get]
func (h *TransactionHandler) GetTransaction(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	tx, err := h.service.GetTransaction(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, tx)
}
