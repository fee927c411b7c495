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

type CurrencyHandler struct {
	service services.CurrencyService
}

func NewCurrencyHandler(service services.CurrencyService) *CurrencyHandler {
	return &CurrencyHandler{service: service}
}

type createCurrencyRequest struct {
	Code    string          `json:"code"`
	Name    string          `json:"name"`
	Country string          `json:"country"`
	Rate    decimal.Decimal `json:"rate"`
}

type updateRateRequest struct {
	Rate decimal.Decimal `json:"rate"`
}

// CreateCurrency creates a currency and its zeroed inventory position.
// @Summary Create currency
// @Tags currencies
// @Accept json
// @Produce json
// @Success 201 {object} models.CurrencyInventory
// @Failure 400 {object} errorResponse
// @Failure 409 {object} errorResponse
// @Router /currencies [post]
func (h *CurrencyHandler) CreateCurrency(w http.ResponseWriter, r *http.Request) {
	var req createCurrencyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, &apperrors.ErrValidation{Field: "body", Message: "invalid JSON: " + err.Error()})
		return
	}

	currency := &models.Currency{
		Code:    req.Code,
		Name:    req.Name,
		Country: req.Country,
		Rate:    req.Rate,
	}

	inventory, err := h.service.CreateCurrency(r.Context(), currency)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, inventory)
}

// ListCurrencies returns every currency with its inventory position.
// @Summary List currencies with inventory
// @Tags currencies
// @Produce json
// @Success 200 {array} models.CurrencyInventory
// @Router /currencies [get]
func (h *CurrencyHandler) ListCurrencies(w http.ResponseWriter, r *http.Request) {
	inventories, err := h.service.ListCurrenciesWithInventory(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, inventories)
}

// GetCurrency returns a single currency by id.
// @Summary Get currency
// @Tags currencies
// @Produce json
// @Param id path int true "Currency ID"
// @Success 200 {object} models.Currency
// @Failure 404 {object} errorResponse
// @Router /currencies/{id} [get]
func (h *CurrencyHandler) GetCurrency(w http.ResponseWriter, r *http.Request) {
	id, err := currencyID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	currency, err := h.service.GetCurrency(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, currency)
}

// UpdateRate sets the current market rate for a currency.
// @Summary Update currency rate
// @Tags currencies
// @Accept json
// @Produce json
// @Param id path int true "Currency ID"
// @Success 200 {object} models.Currency
// @Failure 400 {object} errorResponse
// @Failure 404 {object} errorResponse
// @Router /currencies/{id}/rate [put]
func (h *CurrencyHandler) UpdateRate(w http.ResponseWriter, r *http.Request) {
	id, err := currencyID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var req updateRateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, &apperrors.ErrValidation{Field: "body", Message: "invalid JSON: " + err.Error()})
		return
	}

	currency, err := h.service.UpdateRate(r.Context(), id, req.Rate)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, currency)
}

func currencyID(r *http.Request) (uint, error) {
	raw := mux.Vars(r)["id"]
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, &apperrors.ErrValidation{Field: "id", Message: "must be a positive integer"}
	}
	return uint(id), nil
}
