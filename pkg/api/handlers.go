package api

import (
	"net/http"

	"github.com/joeydtaylor/steeze-identity/pkg/claims"
	"github.com/joeydtaylor/steeze-identity/pkg/codec"
	"github.com/joeydtaylor/steeze-identity/pkg/middleware/auth"
	"go.uber.org/zap"
)

type Handlers struct {
	adapter *claims.Adapter
	auth    *auth.Middleware
	log     *zap.Logger
}

func NewHandlers(a *claims.Adapter, am *auth.Middleware, log *zap.Logger) *Handlers {
	if log == nil {
		log = zap.NewNop()
	}
	return &Handlers{adapter: a, auth: am, log: log}
}

// AuthSetup serves the client bootstrap flags.
func (h *Handlers) AuthSetup(w http.ResponseWriter, _ *http.Request) {
	h.writeJSON(w, http.StatusOK, h.adapter.ClientAuthSetup())
}

// Claims echoes the caller's claims; {} when unauthenticated.
func (h *Handlers) Claims(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, h.auth.GetClaims(r.Context()))
}

type securityFiltersRequest struct {
	Overrides map[string]any `json:"overrides"`
}

type securityFiltersResponse struct {
	Filter *string `json:"filter"`
}

// SecurityFilters reports the search filter for the caller. A null filter
// means none applies.
func (h *Handlers) SecurityFilters(w http.ResponseWriter, r *http.Request) {
	var req securityFiltersRequest
	if err := codec.DecodeReader(codec.JSONStrict, r.Body, &req); err != nil {
		h.writeError(w, http.StatusBadRequest, err)
		return
	}
	filter := h.adapter.BuildSecurityFilters(req.Overrides, h.auth.GetClaims(r.Context()))
	h.writeJSON(w, http.StatusOK, securityFiltersResponse{Filter: filter})
}

func (h *Handlers) writeJSON(w http.ResponseWriter, status int, v any) {
	b, err := codec.JSONStrict.Marshal(v)
	if err != nil {
		h.log.Error("response encode failed", zap.Error(err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", codec.JSONStrict.ContentType())
	w.WriteHeader(status)
	_, _ = w.Write(b)
}

func (h *Handlers) writeError(w http.ResponseWriter, status int, err error) {
	h.writeJSON(w, status, map[string]string{"error": err.Error()})
}
