package httpadapter

import (
	"net/http"
	"time"
)

// handleUploadSignature signs a direct thumbnail upload for the caller.
func (h *Handler) handleUploadSignature(w http.ResponseWriter, r *http.Request) {
	sig, err := h.signer.Sign(time.Now())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, sig)
}
