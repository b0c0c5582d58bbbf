package main

import (
	"crypto/subtle"
	"encoding/json"
	"io"
	"net/http"

	"github.com/cockroachdb/errors"
	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	"github.com/openkita/finance/pkg/common"
	"github.com/openkita/finance/pkg/database"
	"github.com/openkita/finance/pkg/reconcile"
)

const maxUploadSize = 10 << 20

type Handler struct {
	reconcileSvc ReconcileService
	registry     IBANRegistry
	syncSvc      SyncService
	uploadSvc    UploadService
	apiKey       string
}

func NewHandler(
	reconcileSvc ReconcileService,
	registry IBANRegistry,
	syncSvc SyncService,
	uploadSvc UploadService,
	apiKey string,
) *Handler {
	return &Handler{
		reconcileSvc: reconcileSvc,
		registry:     registry,
		syncSvc:      syncSvc,
		uploadSvc:    uploadSvc,
		apiKey:       apiKey,
	}
}

func (h *Handler) Register(r *mux.Router) {
	api := r.PathPrefix("/api").Subrouter()
	api.Use(h.requireAPIKey)

	api.HandleFunc("/transactions/unmatched", h.listUnmatched).Methods(http.MethodGet)
	api.HandleFunc("/transactions/matched", h.listMatched).Methods(http.MethodGet)
	api.HandleFunc("/transactions/{id}/suggestions", h.listSuggestions).Methods(http.MethodGet)
	api.HandleFunc("/transactions/{id}/match", h.manualMatch).Methods(http.MethodPost)
	api.HandleFunc("/transactions/{id}/unmatch", h.unmatch).Methods(http.MethodPost)
	api.HandleFunc("/transactions/{id}/allocate", h.allocate).Methods(http.MethodPost)
	api.HandleFunc("/transactions/{id}/dismiss", h.dismiss).Methods(http.MethodPost)
	api.HandleFunc("/transactions/{id}/hide", h.hide).Methods(http.MethodPost)

	api.HandleFunc("/children/{id}/suggestions", h.suggestionsForChild).Methods(http.MethodGet)

	api.HandleFunc("/warnings", h.listWarnings).Methods(http.MethodGet)
	api.HandleFunc("/warnings/{id}/resolve", h.resolveWarning).Methods(http.MethodPost)
	api.HandleFunc("/warnings/{id}/dismiss", h.dismissWarning).Methods(http.MethodPost)

	api.HandleFunc("/ibans", h.listIBANs).Methods(http.MethodGet)
	api.HandleFunc("/ibans", h.addIBAN).Methods(http.MethodPost)
	api.HandleFunc("/ibans/{iban}", h.removeIBAN).Methods(http.MethodDelete)

	api.HandleFunc("/sync/{configId}", h.triggerSync).Methods(http.MethodPost)
	api.HandleFunc("/sync/{configId}/history", h.syncHistory).Methods(http.MethodGet)
	api.HandleFunc("/rescan", h.rescan).Methods(http.MethodPost)

	api.HandleFunc("/imports", h.uploadStatement).Methods(http.MethodPost)
	api.HandleFunc("/imports", h.importHistory).Methods(http.MethodGet)
}

// requireAPIKey accepts either an operator session's key or the scoped
// credential unattended import pipelines use. Both arrive the same way.
func (h *Handler) requireAPIKey(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := r.Header.Get("X-Api-Key")
		if key == "" {
			key = r.URL.Query().Get("api_key")
		}

		if subtle.ConstantTimeCompare([]byte(key), []byte(h.apiKey)) != 1 {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (h *Handler) listUnmatched(w http.ResponseWriter, r *http.Request) {
	transactions, err := h.reconcileSvc.Unmatched(r.Context())
	h.respond(w, r, transactions, err)
}

func (h *Handler) listMatched(w http.ResponseWriter, r *http.Request) {
	transactions, err := h.reconcileSvc.Matched(r.Context())
	h.respond(w, r, transactions, err)
}

func (h *Handler) listSuggestions(w http.ResponseWriter, r *http.Request) {
	candidates, err := h.reconcileSvc.Suggestions(r.Context(), mux.Vars(r)["id"])
	h.respond(w, r, candidates, err)
}

func (h *Handler) suggestionsForChild(w http.ResponseWriter, r *http.Request) {
	transactions, err := h.reconcileSvc.SuggestionsForChild(r.Context(), mux.Vars(r)["id"])
	h.respond(w, r, transactions, err)
}

func (h *Handler) manualMatch(w http.ResponseWriter, r *http.Request) {
	var request matchRequest
	if !h.decode(w, r, &request) {
		return
	}

	err := h.reconcileSvc.ManualMatch(r.Context(), mux.Vars(r)["id"], request.FeeID)
	h.respondStatus(w, r, err)
}

func (h *Handler) unmatch(w http.ResponseWriter, r *http.Request) {
	err := h.reconcileSvc.Unmatch(r.Context(), mux.Vars(r)["id"])
	h.respondStatus(w, r, err)
}

func (h *Handler) allocate(w http.ResponseWriter, r *http.Request) {
	var request allocateRequest
	if !h.decode(w, r, &request) {
		return
	}

	requests := make([]reconcile.AllocationRequest, 0, len(request.Allocations))
	for _, slice := range request.Allocations {
		requests = append(requests, reconcile.AllocationRequest{
			FeeID:  slice.FeeID,
			Amount: slice.Amount,
		})
	}

	err := h.reconcileSvc.Allocate(r.Context(), mux.Vars(r)["id"], requests)
	h.respondStatus(w, r, err)
}

func (h *Handler) dismiss(w http.ResponseWriter, r *http.Request) {
	err := h.reconcileSvc.Dismiss(r.Context(), mux.Vars(r)["id"])
	h.respondStatus(w, r, err)
}

func (h *Handler) hide(w http.ResponseWriter, r *http.Request) {
	var request hideRequest
	if !h.decode(w, r, &request) {
		return
	}

	err := h.reconcileSvc.SetHidden(r.Context(), mux.Vars(r)["id"], request.Hidden)
	h.respondStatus(w, r, err)
}

func (h *Handler) listWarnings(w http.ResponseWriter, r *http.Request) {
	warnings, err := h.reconcileSvc.OpenWarnings(r.Context())
	h.respond(w, r, warnings, err)
}

func (h *Handler) resolveWarning(w http.ResponseWriter, r *http.Request) {
	err := h.reconcileSvc.ResolveWarning(r.Context(), mux.Vars(r)["id"])
	h.respondStatus(w, r, err)
}

func (h *Handler) dismissWarning(w http.ResponseWriter, r *http.Request) {
	err := h.reconcileSvc.DismissWarning(r.Context(), mux.Vars(r)["id"])
	h.respondStatus(w, r, err)
}

func (h *Handler) listIBANs(w http.ResponseWriter, r *http.Request) {
	status := database.IBANStatus(r.URL.Query().Get("status"))
	if status == "" {
		status = database.IBANBlacklisted
	}

	entries, err := h.registry.List(r.Context(), status)
	h.respond(w, r, entries, err)
}

func (h *Handler) addIBAN(w http.ResponseWriter, r *http.Request) {
	var request ibanRequest
	if !h.decode(w, r, &request) {
		return
	}

	err := h.registry.Add(r.Context(), request.IBAN,
		database.IBANStatus(request.Status), request.ChildID)
	h.respondStatus(w, r, err)
}

func (h *Handler) removeIBAN(w http.ResponseWriter, r *http.Request) {
	err := h.registry.Remove(r.Context(), mux.Vars(r)["iban"])
	h.respondStatus(w, r, err)
}

func (h *Handler) triggerSync(w http.ResponseWriter, r *http.Request) {
	err := h.syncSvc.Start(r.Context(), mux.Vars(r)["configId"])
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusAccepted)
}

func (h *Handler) syncHistory(w http.ResponseWriter, r *http.Request) {
	runs, err := h.syncSvc.History(r.Context(), mux.Vars(r)["configId"])
	h.respond(w, r, runs, err)
}

func (h *Handler) rescan(w http.ResponseWriter, r *http.Request) {
	resolved, err := h.reconcileSvc.Rescan(r.Context())
	h.respond(w, r, rescanResponse{Resolved: resolved}, err)
}

func (h *Handler) uploadStatement(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		h.writeError(w, r, common.NewValidationError("invalid multipart request"))
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		h.writeError(w, r, common.NewValidationError("missing statement file"))
		return
	}
	defer func() { _ = file.Close() }()

	data, err := io.ReadAll(io.LimitReader(file, maxUploadSize))
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	batch, err := h.uploadSvc.ImportFile(r.Context(), header.Filename,
		r.FormValue("format"), data)
	h.respond(w, r, batch, err)
}

func (h *Handler) importHistory(w http.ResponseWriter, r *http.Request) {
	batches, err := h.uploadSvc.History(r.Context(), 0)
	h.respond(w, r, batches, err)
}

func (h *Handler) decode(w http.ResponseWriter, r *http.Request, target interface{}) bool {
	b, err := io.ReadAll(r.Body)
	if err != nil {
		h.writeError(w, r, err)
		return false
	}

	if err = json.Unmarshal(b, target); err != nil {
		h.writeError(w, r, common.NewValidationError("invalid request body"))
		return false
	}

	return true
}

func (h *Handler) respond(w http.ResponseWriter, r *http.Request, payload interface{}, err error) {
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if encodeErr := json.NewEncoder(w).Encode(payload); encodeErr != nil {
		zerolog.Ctx(r.Context()).Error().Err(encodeErr).Msg("failed to encode response")
	}
}

func (h *Handler) respondStatus(w http.ResponseWriter, r *http.Request, err error) {
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError

	switch {
	case common.IsValidation(err):
		status = http.StatusUnprocessableEntity
	case errors.Is(err, common.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, common.ErrSyncInProgress):
		status = http.StatusConflict
	case errors.Is(err, common.ErrSyncDisabled), errors.Is(err, common.ErrNotConfigured):
		status = http.StatusPreconditionFailed
	}

	if status == http.StatusInternalServerError {
		zerolog.Ctx(r.Context()).Error().Err(err).Str("path", r.URL.Path).
			Msg("request failed")
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(errorResponse{Error: err.Error()})
}
