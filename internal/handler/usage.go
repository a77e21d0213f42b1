package handler

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/usagechallenge/challenge/internal/challenge"
)

// PageServer streams one page of the challenge.
type PageServer interface {
	Serve(w http.ResponseWriter, r *http.Request, difficulty int, pageNo uint64)
}

// UsageHandler serves the paginated usage endpoint.
type UsageHandler struct {
	pages PageServer
}

// NewUsageHandler creates a new UsageHandler.
func NewUsageHandler(pages PageServer) *UsageHandler {
	return &UsageHandler{pages: pages}
}

// Usage serves a page of usage records. The difficulty is derived from the
// page number alone; a page number that is not a non-negative integer is
// treated like an unknown route.
//
// GET /usage/{pageNo}
func (h *UsageHandler) Usage(w http.ResponseWriter, r *http.Request) {
	pageNo, err := strconv.ParseUint(chi.URLParam(r, "pageNo"), 10, 64)
	if err != nil {
		writeNotFound(w)
		return
	}

	h.pages.Serve(w, r, challenge.DifficultyForPage(pageNo), pageNo)
}
