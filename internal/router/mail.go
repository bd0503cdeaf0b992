package router

import (
	"encoding/json"
	"net/http"
	"strings"

	"manolos-gestion/internal/platform/logger"
	"manolos-gestion/internal/ports/mailer"
)

type mailResponse struct {
	OK      bool   `json:"ok"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

// verifyMailHandler godoc
// @Summary Verificar conexión SMTP
// @Tags mail
// @Produce json
// @Success 200 {object} mailResponse
// @Failure 500 {object} mailResponse
// @Router /mail/verify [get]
func verifyMailHandler(m mailer.Mailer, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := m.Verify(r.Context()); err != nil {
			log.Warn("smtp verify failed", map[string]any{"error": err})
			writeJSON(w, http.StatusInternalServerError, mailResponse{OK: false, Error: err.Error()})
			return
		}
		writeJSON(w, http.StatusOK, mailResponse{OK: true, Message: "SMTP connection verified"})
	}
}

// testMailHandler godoc
// @Summary Enviar correo de prueba
// @Tags mail
// @Produce json
// @Param to query string true "Destinatario"
// @Success 200 {object} mailResponse
// @Failure 400 {object} mailResponse
// @Failure 500 {object} mailResponse
// @Router /mail/test [get]
func testMailHandler(m mailer.Mailer, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		to := strings.TrimSpace(r.URL.Query().Get("to"))
		if to == "" {
			writeJSON(w, http.StatusBadRequest, mailResponse{OK: false, Error: "email recipient required"})
			return
		}

		if err := m.Send(r.Context(), to, "Test Email", "This is a test email from Manolo's Gestión"); err != nil {
			log.Warn("test email failed", map[string]any{"error": err, "to": to})
			writeJSON(w, http.StatusInternalServerError, mailResponse{OK: false, Error: err.Error()})
			return
		}
		writeJSON(w, http.StatusOK, mailResponse{OK: true, Message: "sent to " + to})
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
