// Package handler provides HTTP request handlers.
package handler

import (
	"net/http"

	"github.com/goccy/go-json"

	"github.com/usagechallenge/challenge/internal/challenge"
)

// Version is reported by the info endpoint.
const Version = "1.0.0"

// Handler serves the service-level endpoints.
type Handler struct{}

// New creates a new Handler instance.
func New() *Handler {
	return &Handler{}
}

// InfoResponse describes the service and its difficulty table.
type InfoResponse struct {
	Service  string            `json:"service"`
	Version  string            `json:"version"`
	Endpoint string            `json:"endpoint"`
	Levels   []challenge.Level `json:"levels"`
	Complete uint64            `json:"complete_from_page"`
}

// Info describes how to use the API.
// GET /
func (h *Handler) Info(w http.ResponseWriter, r *http.Request) {
	levels := challenge.Levels()
	writeJSON(w, http.StatusOK, InfoResponse{
		Service:  "usage-challenge",
		Version:  Version,
		Endpoint: "/usage/{pageNo}",
		Levels:   levels,
		Complete: levels[len(levels)-1].LastPage + 1,
	})
}

// NotFound handles 404 responses.
func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	writeNotFound(w)
}

// MethodNotAllowed handles 405 responses.
func (h *Handler) MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	response := map[string]string{
		"error": "method not allowed",
	}
	writeJSON(w, http.StatusMethodNotAllowed, response)
}

func writeNotFound(w http.ResponseWriter) {
	response := map[string]string{
		"error": "resource not found",
	}
	writeJSON(w, http.StatusNotFound, response)
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}
