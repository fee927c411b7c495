package handlers

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/tropicaldog17/fxledger/internal/services"
)

type AdminHandler struct {
	service services.AdminService
}

func NewAdminHandler(service services.AdminService) *AdminHandler {
	return &AdminHandler{service: service}
}

// Reset zeroes all positions, deletes the transaction history and resets
// today's stat. Destructive; the UI is expected to confirm before calling.
// @Summary Reset ledger
// @Tags admin
// @Success 204
// @Router /admin/reset [post]
func (h *AdminHandler) Reset(w http.ResponseWriter, r *http.Request) {
	if err := h.service.ResetAll(r.Context()); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// DeleteTransaction removes a transaction row without reversing accounting.
// @Summary Delete transaction (administrative correction)
// @Tags admin
// @Param id path string true "Transaction ID"
// @Success 204
// @Failure 404 {object} errorResponse
// @Router /transactions/{id} [delete]
func (h *AdminHandler) DeleteTransaction(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if err := h.service.DeleteTransaction(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
