// internal/handler/log.go
package handler

import (
	"net/http"
	"strconv"

	"github.com/opshrm/hrms/internal/service"
)

type LogHandler struct {
	logService *service.LogService
	dev        bool
}

func NewLogHandler(logService *service.LogService, dev bool) *LogHandler {
	return &LogHandler{
		logService: logService,
		dev:        dev,
	}
}

func (h *LogHandler) ListLogs(w http.ResponseWriter, r *http.Request) {
	principal, ok := principalFrom(w, r)
	if !ok {
		return
	}

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil {
			limit = parsed
		}
	}

	logs, err := h.logService.List(r.Context(), principal, limit)
	if err != nil {
		respondInternalError(w, r, h.dev, err)
		return
	}

	respondWithJSON(w, http.StatusOK, logs)
}
