package httpadapter

import (
	"fmt"
	"net/http"
	"time"

	"snaplink/internal/core/domain"
	"snaplink/internal/core/port"
)

// handleAnalytics returns the clicks of a link, newest first. It expects a
// linkId query parameter and optional RFC3339 from and to bounds; the window
// only applies when both are given.
func (h *Handler) handleAnalytics(w http.ResponseWriter, r *http.Request) {
	actor, err := ActorFromContext(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	q := r.URL.Query()
	req := port.AnalyticsReq{LinkID: q.Get("linkId")}
	if req.From, err = timeParam(q.Get("from"), "from"); err != nil {
		h.writeError(w, r, err)
		return
	}
	if req.To, err = timeParam(q.Get("to"), "to"); err != nil {
		h.writeError(w, r, err)
		return
	}

	clicks, err := h.svc.GetAnalytics(r.Context(), actor, req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, clicks)
}

func timeParam(raw, name string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid '%s' timestamp", domain.ErrBadRequest, name)
	}
	return &t, nil
}
