package httpadapter

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	"snaplink/internal/core/domain"
	"snaplink/internal/core/port"
)

// linkRequest is the body of link create and update calls.
type linkRequest struct {
	CampaignTitle string  `json:"campaign_title"`
	OriginalURL   string  `json:"original_url"`
	Category      string  `json:"category"`
	Thumbnail     *string `json:"thumbnail"`
}

func (req linkRequest) Validate() error {
	return validation.ValidateStruct(&req,
		validation.Field(&req.CampaignTitle, validation.Required, validation.Length(1, 200)),
		validation.Field(&req.OriginalURL, validation.Required, is.URL, validation.By(absoluteHTTPURL)),
		validation.Field(&req.Category, validation.Required, validation.Length(1, 100)),
		validation.Field(&req.Thumbnail, is.URL),
	)
}

func (req linkRequest) fields() domain.LinkFields {
	return domain.LinkFields{
		CampaignTitle: req.CampaignTitle,
		OriginalURL:   req.OriginalURL,
		Category:      req.Category,
		Thumbnail:     req.Thumbnail,
	}
}

func absoluteHTTPURL(value any) error {
	s, _ := value.(string)
	u, err := url.Parse(s)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return errors.New("must be an absolute http or https URL")
	}
	return nil
}

func decodeLinkRequest(r *http.Request) (linkRequest, error) {
	var req linkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return req, fmt.Errorf("%w: invalid JSON", domain.ErrBadRequest)
	}
	if err := req.Validate(); err != nil {
		return req, err
	}
	return req, nil
}

// handleCreateLink bills the tenant and stores a new link.
func (h *Handler) handleCreateLink(w http.ResponseWriter, r *http.Request) {
	actor, err := ActorFromContext(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	req, err := decodeLinkRequest(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	id, err := h.svc.CreateLink(r.Context(), actor, req.fields())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, dataResponse{
		Data:    map[string]string{"id": id.String()},
		Message: "Link Created",
	})
}

// handleListLinks returns a page of the tenant's links. Query parameters:
// currentPage (zero based), pageSize, searchTerm, sortField and sortOrder.
// page and search are accepted as short aliases. Unknown sort values fall
// back to the defaults.
func (h *Handler) handleListLinks(w http.ResponseWriter, r *http.Request) {
	actor, err := ActorFromContext(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	q := r.URL.Query()
	params := port.ListParams{
		Search:    firstParam(q, "searchTerm", "search"),
		SortField: port.ParseLinkSortField(q.Get("sortField")),
		SortOrder: port.ParseSortOrder(q.Get("sortOrder")),
	}
	pageName := "currentPage"
	if !q.Has(pageName) {
		pageName = "page"
	}
	if params.Page, err = intParam(q, pageName); err != nil {
		h.writeError(w, r, err)
		return
	}
	if params.PageSize, err = intParam(q, "pageSize"); err != nil {
		h.writeError(w, r, err)
		return
	}

	page, err := h.svc.ListLinks(r.Context(), actor, params)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, dataResponse{Data: page})
}

func (h *Handler) handleGetLink(w http.ResponseWriter, r *http.Request) {
	actor, err := ActorFromContext(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	link, err := h.svc.GetLink(r.Context(), actor, chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, dataResponse{Data: link})
}

func (h *Handler) handleUpdateLink(w http.ResponseWriter, r *http.Request) {
	actor, err := ActorFromContext(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	req, err := decodeLinkRequest(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	link, err := h.svc.UpdateLink(r.Context(), actor, chi.URLParam(r, "id"), req.fields())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, dataResponse{Data: link})
}

func (h *Handler) handleDeleteLink(w http.ResponseWriter, r *http.Request) {
	actor, err := ActorFromContext(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if err = h.svc.DeleteLink(r.Context(), actor, chi.URLParam(r, "id")); err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, dataResponse{Message: "Link deleted"})
}

func firstParam(q url.Values, names ...string) string {
	for _, name := range names {
		if q.Has(name) {
			return q.Get(name)
		}
	}
	return ""
}

func intParam(q url.Values, name string) (int, error) {
	raw := q.Get(name)
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid %s", domain.ErrBadRequest, name)
	}
	return v, nil
}
