package clients

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/clients", func(cr chi.Router) {
		cr.Get("/", listClientsHandler(svc))
		cr.Post("/", createClientHandler(svc))
		cr.Get("/{id}", getClientHandler(svc))
		cr.Put("/{id}", updateClientHandler(svc))
		cr.Delete("/{id}", deleteClientHandler(svc))
	})
}

type createClientRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

type updateClientRequest struct {
	Name    *string `json:"name"`
	Email   *string `json:"email"`
	Phone   *string `json:"phone"`
	Address *string `json:"address"`
}

type createdResponse struct {
	ID     string `json:"id"`
	Record Client `json:"record"`
}

type deletedResponse struct {
	OK      bool `json:"ok"`
	Removed int  `json:"removed"`
}

type errorResponse struct {
	Message string `json:"message"`
}

// listClientsHandler godoc
// @Summary Listar clientes
// @Tags clients
// @Produce json
// @Param Authorization header string false "Bearer token"
// @Success 200 {array} Client
// @Failure 500 {object} errorResponse
// @Router /clients [get]
func listClientsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, items)
	}
}

// createClientHandler godoc
// @Summary Crear cliente
// @Description name, email y phone son obligatorios; email debe ser válido.
// @Tags clients
// @Accept json
// @Produce json
// @Param Authorization header string false "Bearer token"
// @Param payload body createClientRequest true "Datos del cliente"
// @Success 201 {object} createdResponse
// @Failure 400 {object} errorResponse
// @Router /clients [post]
func createClientHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createClientRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		c, err := svc.Create(r.Context(), CreateInput{
			Name:    req.Name,
			Email:   req.Email,
			Phone:   req.Phone,
			Address: req.Address,
		})
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, createdResponse{ID: c.ID, Record: c})
	}
}

// getClientHandler godoc
// @Summary Obtener cliente
// @Tags clients
// @Produce json
// @Param id path string true "ID del cliente"
// @Success 200 {object} Client
// @Failure 404 {object} errorResponse
// @Router /clients/{id} [get]
func getClientHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c, err := svc.GetByID(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, c)
	}
}

// updateClientHandler godoc
// @Summary Actualizar cliente (parcial)
// @Description Solo se modifican los campos enviados.
// @Tags clients
// @Accept json
// @Produce json
// @Param id path string true "ID del cliente"
// @Param payload body updateClientRequest true "Campos a modificar"
// @Success 200 {object} Client
// @Failure 400 {object} errorResponse
// @Failure 404 {object} errorResponse
// @Router /clients/{id} [put]
func updateClientHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req updateClientRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		c, err := svc.Update(r.Context(), chi.URLParam(r, "id"), UpdateInput{
			Name:    req.Name,
			Email:   req.Email,
			Phone:   req.Phone,
			Address: req.Address,
		})
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, c)
	}
}

// deleteClientHandler godoc
// @Summary Eliminar cliente
// @Description Borra también sus mascotas, cobros y recordatorios.
// @Tags clients
// @Produce json
// @Param id path string true "ID del cliente"
// @Success 200 {object} deletedResponse
// @Failure 404 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router /clients/{id} [delete]
func deleteClientHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		n, err := svc.Delete(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, deletedResponse{OK: true, Removed: n})
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
