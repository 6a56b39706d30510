package patient

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
)

type Handler struct {
	repo Repository
}

func NewHandler(repo Repository) *Handler {
	return &Handler{repo: repo}
}

func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	patients, err := h.repo.Search(r.Context(), r.URL.Query().Get("cpf"))
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, patients)
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var p Patient
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}
	if p.Name == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "nome is required"})
		return
	}

	if err := h.repo.Create(r.Context(), p); err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"message": "patient created"})
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	var p Patient
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}
	p.CPF = chi.URLParam(r, "cpf")
	if p.CPF == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "cpf is required"})
		return
	}

	n, err := h.repo.UpdateByCPF(r.Context(), p)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	if n == 0 {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "patient not found"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "patient updated"})
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	cpf := chi.URLParam(r, "cpf")
	if cpf == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "cpf is required"})
		return
	}

	n, err := h.repo.DeleteByCPF(r.Context(), cpf)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	if n == 0 {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "patient not found"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "patient deleted"})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func RegisterRoutes(r chi.Router, h *Handler) {
	r.Get("/pacientes", h.Search)
	r.Post("/pacientes", h.Create)
	r.Put("/pacientes/{cpf}", h.Update)
	r.Delete("/pacientes/{cpf}", h.Delete)
}
