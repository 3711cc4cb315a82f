package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewRouter собирает маршрутизатор устройства: API, точка входа
// WebSocket для других устройств и метрики.
func NewRouter(h *Handler, ws http.Handler, logger *slog.Logger) *mux.Router {
	r := mux.NewRouter()

	r.Use(LoggingMiddleware(logger, []string{"/metrics", "/api/v1/health"}))

	r.Handle("/ws", ws)
	r.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	api := r.PathPrefix("/api/v1").Subrouter()
	api.HandleFunc("/health", h.Health).Methods(http.MethodGet)
	api.HandleFunc("/state", h.State).Methods(http.MethodGet)
	api.HandleFunc("/totals", h.Totals).Methods(http.MethodGet)
	api.HandleFunc("/status", h.Status).Methods(http.MethodGet)

	api.HandleFunc("/entries/outparty", h.AddOutPartyEntry).Methods(http.MethodPost)
	api.HandleFunc("/entries/outparty/{id}", h.UpdateOutPartyEntry).Methods(http.MethodPut)
	api.HandleFunc("/entries/main", h.AddMainEntry).Methods(http.MethodPost)
	api.HandleFunc("/entries/main/{id}", h.UpdateMainEntry).Methods(http.MethodPut)

	api.HandleFunc("/dayend", h.DayEnd).Methods(http.MethodPost)
	api.HandleFunc("/pair", h.Pair).Methods(http.MethodPost)

	return r
}
