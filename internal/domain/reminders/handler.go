package reminders

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/reminders", func(rr chi.Router) {
		rr.Get("/", listRemindersHandler(svc))
		rr.Post("/", createReminderHandler(svc))
		rr.Get("/{id}", getReminderHandler(svc))
	})
}

type createReminderRequest struct {
	ClientID string  `json:"clientId"`
	Channel  Channel `json:"channel"`
	Date     string  `json:"date"`
	Subject  string  `json:"subject"`
	Message  string  `json:"message"`
}

type createdResponse struct {
	ID     string   `json:"id"`
	Record Reminder `json:"record"`
}

type errorResponse struct {
	Message string `json:"message"`
}

// listRemindersHandler godoc
// @Summary Listar recordatorios
// @Tags reminders
// @Produce json
// @Param clientId query string false "Filtrar por cliente"
// @Success 200 {array} Reminder
// @Router /reminders [get]
func listRemindersHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context(), r.URL.Query().Get("clientId"))
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, items)
	}
}

// createReminderHandler godoc
// @Summary Crear recordatorio
// @Description Canal Email: se envía en el momento al correo del cliente; record.status queda sent o failed. La creación responde 201 aunque el envío falle.
// @Tags reminders
// @Accept json
// @Produce json
// @Param payload body createReminderRequest true "Datos del recordatorio"
// @Success 201 {object} createdResponse
// @Failure 400 {object} errorResponse
// @Router /reminders [post]
func createReminderHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createReminderRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		rem, err := svc.Create(r.Context(), CreateInput{
			ClientID: req.ClientID,
			Channel:  req.Channel,
			Date:     req.Date,
			Subject:  req.Subject,
			Message:  req.Message,
		})
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, createdResponse{ID: rem.ID, Record: rem})
	}
}

// getReminderHandler godoc
// @Summary Obtener recordatorio
// @Tags reminders
// @Produce json
// @Param id path string true "ID del recordatorio"
// @Success 200 {object} Reminder
// @Failure 404 {object} errorResponse
// @Router /reminders/{id} [get]
func getReminderHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rem, err := svc.GetByID(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, rem)
	}
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		writeJSON(w, http.StatusBadRequest, errorResponse{Message: err.Error()})
	case errors.Is(err, ErrNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse{Message: err.Error()})
	default:
		writeJSON(w, http.StatusInternalServerError, errorResponse{Message: "internal error"})
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
