package server

import (
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
)

type handlers struct {
	store *Store
	log   zerolog.Logger
}

func newRouter(store *Store, token string, log zerolog.Logger) *mux.Router {
	h := &handlers{store: store, log: log}

	r := mux.NewRouter()
	r.Use(requestLogger(log))
	if token != "" {
		r.Use(bearerAuth(token))
	}

	r.HandleFunc("/api/orders", h.listOrders).Methods(http.MethodGet)
	r.HandleFunc("/api/orders", h.createOrder).Methods(http.MethodPost)
	r.HandleFunc("/api/orders/{id}/status", h.updateStatus).Methods(http.MethodPatch)
	return r
}

func (h *handlers) listOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.store.ListBoardOrders(r.Context())
	if err != nil {
		h.serverError(w, err)
		return
	}
	if orders == nil {
		orders = []OrderRecord{}
	}
	writeJSON(w, http.StatusOK, orders)
}

func (h *handlers) createOrder(w http.ResponseWriter, r *http.Request) {
	var in CreateOrderInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if strings.TrimSpace(in.Title) == "" {
		writeError(w, http.StatusBadRequest, "title is required")
		return
	}
	if in.Status != "" && !validStatus(in.Status) {
		writeError(w, http.StatusBadRequest, "unknown status: "+in.Status)
		return
	}

	created, err := h.store.CreateOrder(r.Context(), in)
	if err != nil {
		h.serverError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *handlers) updateStatus(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var body struct {
		Status  string `json:"status"`
		Comment string `json:"comment"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if !validStatus(body.Status) {
		writeError(w, http.StatusBadRequest, "unknown status: "+body.Status)
		return
	}

	err := h.store.UpdateStatus(r.Context(), id, body.Status, body.Comment)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		writeError(w, http.StatusNotFound, "order not found")
	case err != nil:
		h.serverError(w, err)
	default:
		w.WriteHeader(http.StatusNoContent)
	}
}

func (h *handlers) serverError(w http.ResponseWriter, err error) {
	h.log.Error().Err(err).Msg("request failed")
	writeError(w, http.StatusInternalServerError, "internal error")
}

var boardStatuses = map[string]bool{
	"FAZER": true, "AJUSTES": true, "APROVACAO": true,
	"APROVADO": true, "PRODUCAO": true, "ENVIADO": true,
}

func validStatus(s string) bool {
	return boardStatuses[s]
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, map[string]string{"error": msg})
}

// bearerAuth rejects requests whose Authorization header does not carry
// the configured token.
func bearerAuth(token string) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
			if got != token {
				writeError(w, http.StatusUnauthorized, "invalid or missing token")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func requestLogger(log zerolog.Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			next.ServeHTTP(w, r)
			log.Info().
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Dur("elapsed", time.Since(start)).
				Msg("request")
		})
	}
}
