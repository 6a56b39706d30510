package lookup

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

func (h *Handler) Patients(w http.ResponseWriter, r *http.Request) {
	opts, err := h.repo.ListPatients(r.Context())
	if err != nil {
		http.Error(w, "Failed to load patients: "+err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(opts)
}

func (h *Handler) Doctors(w http.ResponseWriter, r *http.Request) {
	opts, err := h.repo.ListDoctors(r.Context())
	if err != nil {
		http.Error(w, "Failed to load doctors: "+err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(opts)
}

func RegisterRoutes(r chi.Router, h *Handler) {
	r.Get("/pacientes/selecao", h.Patients)
	r.Get("/medicos/selecao", h.Doctors)
}
