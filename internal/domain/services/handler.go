package services

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, catalog *Catalog) {
	r.Route("/services", func(sr chi.Router) {
		sr.Get("/", listServicesHandler(catalog))
		sr.Post("/", createServiceHandler(catalog))
		sr.Get("/{id}", getServiceHandler(catalog))
		sr.Put("/{id}", updateServiceHandler(catalog))
		sr.Delete("/{id}", deleteServiceHandler(catalog))
	})
}

type createServiceRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Rate        int64  `json:"rate"`
	Duration    string `json:"duration"`
	Active      *bool  `json:"active"`
}

type updateServiceRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Rate        *int64  `json:"rate"`
	Duration    *string `json:"duration"`
	Active      *bool   `json:"active"`
}

type createdResponse struct {
	ID     string  `json:"id"`
	Record Service `json:"record"`
}

type ackResponse struct {
	OK bool `json:"ok"`
}

type errorResponse struct {
	Message string `json:"message"`
}

// listServicesHandler godoc
// @Summary Listar servicios
// @Tags services
// @Produce json
// @Success 200 {array} Service
// @Router /services [get]
func listServicesHandler(catalog *Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := catalog.List(r.Context())
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, items)
	}
}

// createServiceHandler godoc
// @Summary Crear servicio
// @Description rate en pesos (entero, >= 0). active por defecto true.
// @Tags services
// @Accept json
// @Produce json
// @Param payload body createServiceRequest true "Datos del servicio"
// @Success 201 {object} createdResponse
// @Failure 400 {object} errorResponse
// @Router /services [post]
func createServiceHandler(catalog *Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createServiceRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		s, err := catalog.Create(r.Context(), CreateInput{
			Name:        req.Name,
			Description: req.Description,
			Rate:        req.Rate,
			Duration:    req.Duration,
			Active:      req.Active,
		})
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, createdResponse{ID: s.ID, Record: s})
	}
}

// getServiceHandler godoc
// @Summary Obtener servicio
// @Tags services
// @Produce json
// @Param id path string true "ID del servicio"
// @Success 200 {object} Service
// @Failure 404 {object} errorResponse
// @Router /services/{id} [get]
func getServiceHandler(catalog *Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s, err := catalog.GetByID(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, s)
	}
}

// updateServiceHandler godoc
// @Summary Actualizar servicio (parcial)
// @Description Cambiar rate no afecta cobros ya creados.
// @Tags services
// @Accept json
// @Produce json
// @Param id path string true "ID del servicio"
// @Param payload body updateServiceRequest true "Campos a modificar"
// @Success 200 {object} Service
// @Failure 400 {object} errorResponse
// @Failure 404 {object} errorResponse
// @Router /services/{id} [put]
func updateServiceHandler(catalog *Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req updateServiceRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		s, err := catalog.Update(r.Context(), chi.URLParam(r, "id"), UpdateInput{
			Name:        req.Name,
			Description: req.Description,
			Rate:        req.Rate,
			Duration:    req.Duration,
			Active:      req.Active,
		})
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, s)
	}
}

// deleteServiceHandler godoc
// @Summary Eliminar servicio
// @Tags services
// @Produce json
// @Param id path string true "ID del servicio"
// @Success 200 {object} ackResponse
// @Failure 404 {object} errorResponse
// @Router /services/{id} [delete]
func deleteServiceHandler(catalog *Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := catalog.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, ackResponse{OK: true})
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
