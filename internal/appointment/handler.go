package appointment

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

type Handler struct {
	svc Service
}

func NewHandler(svc Service) *Handler {
	return &Handler{svc: svc}
}

// draftRequest is the full field set the edit/insert forms submit. Patient
// and doctor arrive as the "ID - Name" labels the pickers display.
type draftRequest struct {
	Patient   string        `json:"paciente"`
	Doctor    string        `json:"medico"`
	Date      string        `json:"data"`
	StartTime string        `json:"hora_inicio"`
	EndTime   string        `json:"hora_fim"`
	Diagnosis string        `json:"diagnostico"`
	Lines     []lineRequest `json:"prescricao"`
}

type lineRequest struct {
	MedicationID *int64 `json:"id_medicamento"`
	Dosage       string `json:"dosagem"`
	Frequency    string `json:"frequencia"`
}

func (req draftRequest) toDraft() Draft {
	d := Draft{
		Patient:   ParseSelection(req.Patient),
		Doctor:    ParseSelection(req.Doctor),
		Date:      req.Date,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Diagnosis: req.Diagnosis,
	}
	for _, l := range req.Lines {
		line := LineEdit{Dosage: l.Dosage, Frequency: l.Frequency}
		if l.MedicationID != nil && *l.MedicationID > 0 {
			line.Medication = RefTo(*l.MedicationID)
		}
		d.Lines = append(d.Lines, line)
	}
	return d
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	f := Filter{
		Patient: ParseSelection(r.URL.Query().Get("paciente")),
		Doctor:  ParseSelection(r.URL.Query().Get("medico")),
		Date:    r.URL.Query().Get("data"),
	}

	rows, err := h.svc.List(r.Context(), f)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rows)
}

func (h *Handler) Prescription(w http.ResponseWriter, r *http.Request) {
	id := pathID(r)
	lines, err := h.svc.Prescription(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, lines)
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req draftRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}

	id, err := h.svc.Create(r.Context(), req.toDraft())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"id_consulta": id,
		"message":     "appointment created",
	})
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	var req draftRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}

	if err := h.svc.Update(r.Context(), pathID(r), req.toDraft()); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "appointment updated"})
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Delete(r.Context(), pathID(r)); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "appointment deleted"})
}

func pathID(r *http.Request) int64 {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		return 0
	}
	return id
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, err error) {
	var verr *ValidationError
	if errors.As(err, &verr) {
		writeJSON(w, http.StatusBadRequest, map[string]string{
			"code":  verr.Code,
			"error": verr.Message,
		})
		return
	}
	if errors.Is(err, ErrNotFound) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
}

func RegisterRoutes(r chi.Router, h *Handler) {
	r.Get("/consultas", h.List)
	r.Post("/consultas", h.Create)
	r.Put("/consultas/{id}", h.Update)
	r.Delete("/consultas/{id}", h.Delete)
	r.Get("/consultas/{id}/prescricao", h.Prescription)
}
