// Package api предоставляет HTTP-интерфейс устройства: чтение состояния,
// правки редактора, закрытие дня и сопряжение.
package api

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"

	"github.com/iudanet/cashbook/internal/models"
	"github.com/iudanet/cashbook/internal/pairing"
	"github.com/iudanet/cashbook/internal/replication"
	"github.com/iudanet/cashbook/internal/totals"
)

// Replicator — контроллер репликации, как его видит HTTP-слой.
type Replicator interface {
	Role() replication.Role
	Current() *models.Document
	Status() string
	ApplyLocalEdit(ctx context.Context, mutate replication.Mutator) *models.Document
	DayEnd(ctx context.Context) *models.Document
}

// Pairer — управление сопряжением с редактором.
type Pairer interface {
	Pair(ctx context.Context, editorID string)
	State() pairing.State
}

// SessionInfo — сведения о локальном узле и его соединениях.
type SessionInfo interface {
	LocalID() string
	Peers() int
}

// Handler обрабатывает HTTP запросы API.
type Handler struct {
	repl    Replicator
	pairer  Pairer
	session SessionInfo
	logger  *slog.Logger
}

func NewHandler(repl Replicator, pairer Pairer, session SessionInfo, logger *slog.Logger) *Handler {
	return &Handler{
		repl:    repl,
		pairer:  pairer,
		session: session,
		logger:  logger,
	}
}

// HealthResponse представляет ответ health check.
type HealthResponse struct {
	Status string `json:"status"`
}

// Health обрабатывает GET /api/v1/health
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, HealthResponse{Status: "ok"})
}

// State обрабатывает GET /api/v1/state
// Возвращает полный документ устройства.
func (h *Handler) State(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, h.repl.Current())
}

// Totals обрабатывает GET /api/v1/totals
// Возвращает вычисленные итоги открытой кассовой книги.
func (h *Handler) Totals(w http.ResponseWriter, r *http.Request) {
	doc := h.repl.Current()
	h.writeJSON(w, http.StatusOK, totals.Compute(doc.CurrentData))
}

// StatusResponse представляет ответ GET /api/v1/status.
type StatusResponse struct {
	PeerID  string `json:"peerId"`  // PeerID идентификатор локального узла
	Role    string `json:"role"`    // Role роль устройства
	Status  string `json:"status"`  // Status строка состояния подключения
	Pairing string `json:"pairing"` // Pairing состояние сопряжения
	Peers   int    `json:"peers"`   // Peers число активных соединений
}

// Status обрабатывает GET /api/v1/status
func (h *Handler) Status(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, StatusResponse{
		PeerID:  h.session.LocalID(),
		Role:    string(h.repl.Role()),
		Status:  h.repl.Status(),
		Pairing: h.pairer.State().String(),
		Peers:   h.session.Peers(),
	})
}

// AddOutPartyEntry обрабатывает POST /api/v1/entries/outparty
func (h *Handler) AddOutPartyEntry(w http.ResponseWriter, r *http.Request) {
	if !h.requireEditor(w) {
		return
	}
	doc := h.repl.ApplyLocalEdit(r.Context(), replication.AddOutPartyEntry())
	h.writeJSON(w, http.StatusOK, doc.CurrentData)
}

// outPartyUpdateRequest тело запроса обновления сторонней выручки.
type outPartyUpdateRequest struct {
	Amount decimal.Decimal      `json:"amount"`
	Method models.PaymentMethod `json:"method"`
}

// UpdateOutPartyEntry обрабатывает PUT /api/v1/entries/outparty/{id}
func (h *Handler) UpdateOutPartyEntry(w http.ResponseWriter, r *http.Request) {
	if !h.requireEditor(w) {
		return
	}

	var req outPartyUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if !req.Method.Valid() {
		http.Error(w, "Invalid payment method", http.StatusBadRequest)
		return
	}

	id := mux.Vars(r)["id"]
	doc := h.repl.ApplyLocalEdit(r.Context(),
		replication.UpdateOutPartyEntry(id, req.Amount, req.Method))
	h.writeJSON(w, http.StatusOK, doc.CurrentData)
}

// AddMainEntry обрабатывает POST /api/v1/entries/main
func (h *Handler) AddMainEntry(w http.ResponseWriter, r *http.Request) {
	if !h.requireEditor(w) {
		return
	}
	doc := h.repl.ApplyLocalEdit(r.Context(), replication.AddMainEntry())
	h.writeJSON(w, http.StatusOK, doc.CurrentData)
}

// mainEntryUpdateRequest тело запроса обновления основной записи.
// Незаданные поля не изменяются.
type mainEntryUpdateRequest struct {
	RoomNo      *string               `json:"roomNo,omitempty"`
	Description *string               `json:"description,omitempty"`
	Method      *models.PaymentMethod `json:"method,omitempty"`
	CashIn      *decimal.Decimal      `json:"cashIn,omitempty"`
	CashOut     *decimal.Decimal      `json:"cashOut,omitempty"`
}

// UpdateMainEntry обрабатывает PUT /api/v1/entries/main/{id}
func (h *Handler) UpdateMainEntry(w http.ResponseWriter, r *http.Request) {
	if !h.requireEditor(w) {
		return
	}

	var req mainEntryUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if req.Method != nil && !req.Method.Valid() {
		http.Error(w, "Invalid payment method", http.StatusBadRequest)
		return
	}

	id := mux.Vars(r)["id"]
	doc := h.repl.ApplyLocalEdit(r.Context(), replication.UpdateMainEntry(id, replication.MainEntryUpdate{
		RoomNo:      req.RoomNo,
		Description: req.Description,
		Method:      req.Method,
		CashIn:      req.CashIn,
		CashOut:     req.CashOut,
	}))
	h.writeJSON(w, http.StatusOK, doc.CurrentData)
}

// DayEnd обрабатывает POST /api/v1/dayend
// Закрывает текущий день и открывает следующий.
func (h *Handler) DayEnd(w http.ResponseWriter, r *http.Request) {
	if !h.requireEditor(w) {
		return
	}
	doc := h.repl.DayEnd(r.Context())
	h.writeJSON(w, http.StatusOK, doc)
}

// pairRequest тело запроса сопряжения.
type pairRequest struct {
	EditorID string `json:"editor_id"`
}

// Pair обрабатывает POST /api/v1/pair
// Доступно только устройству-просмотру.
func (h *Handler) Pair(w http.ResponseWriter, r *http.Request) {
	if h.repl.Role().IsEditor() {
		http.Error(w, "Editor device does not pair", http.StatusConflict)
		return
	}

	var req pairRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if req.EditorID == "" {
		http.Error(w, "Missing editor_id", http.StatusBadRequest)
		return
	}

	h.pairer.Pair(r.Context(), req.EditorID)
	h.writeJSON(w, http.StatusAccepted, map[string]string{"pairing": h.pairer.State().String()})
}

// requireEditor отклоняет правки на устройстве-просмотре.
func (h *Handler) requireEditor(w http.ResponseWriter) bool {
	if !h.repl.Role().IsEditor() {
		http.Error(w, "Viewer device is read-only", http.StatusConflict)
		return false
	}
	return true
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("failed to encode response", slog.Any("error", err))
	}
}
