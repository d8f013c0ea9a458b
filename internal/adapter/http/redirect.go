package httpadapter

import (
	"net"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"snaplink/internal/core/port"
)

// handleRedirect counts the visit and sends the visitor to the link's
// original URL with 302 Found.
func (h *Handler) handleRedirect(w http.ResponseWriter, r *http.Request) {
	target, err := h.svc.Redirect(r.Context(), port.RedirectReq{
		LinkID:    chi.URLParam(r, "id"),
		IP:        h.clientIP(r),
		UserAgent: r.UserAgent(),
		Referrer:  r.Referer(),
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	http.Redirect(w, r, target, http.StatusFound)
}

// clientIP returns the visitor address: the configured development IP, else
// the first X-Forwarded-For entry, else the connection's remote host.
func (h *Handler) clientIP(r *http.Request) string {
	if h.opts.DevIP != "" {
		return h.opts.DevIP
	}
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		first, _, _ := strings.Cut(fwd, ",")
		if ip := strings.TrimSpace(first); ip != "" {
			return ip
		}
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
