package handlers

import (
	"net/http"
	"strconv"

	"github.com/tropicaldog17/fxledger/internal/services"
)

type StatsHandler struct {
	service services.StatsService
}

func NewStatsHandler(service services.StatsService) *StatsHandler {
	return &StatsHandler{service: service}
}

// GetTodayStat returns today's realized profit aggregate, 204 when no
// transaction has been recorded today.
// @Summary Today's stat
// @Tags stats
// @Produce json
// @Success 200 {object} models.DailyStat
// @Success 204 "no stats yet"
// @Router /stats/today [get]
func (h *StatsHandler) GetTodayStat(w http.ResponseWriter, r *http.Request) {
	stat, err := h.service.GetTodayStat(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	if stat == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	writeJSON(w, http.StatusOK, stat)
}

// ListStats returns the daily stat history, newest-first.
// @Summary Stat history
// @Tags stats
// @Produce json
// @Param limit query int false "Limit"
// @Success 200 {array} models.DailyStat
// @Router /stats [get]
func (h *StatsHandler) ListStats(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil {
			limit = n
		}
	}

	stats, err := h.service.ListStats(r.Context(), limit)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}
