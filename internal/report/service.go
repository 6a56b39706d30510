package report

import (
	"bytes"
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/signintech/gopdf"

	"clinic-records/internal/appointment"
)

// AppointmentSource is the slice of the appointment module the report
// needs: one denormalized row and its prescription lines.
type AppointmentSource interface {
	Get(ctx context.Context, id int64) (*appointment.Row, error)
	Prescription(ctx context.Context, appointmentID int64) ([]appointment.LineView, error)
}

// Document is a rendered prescription sheet ready to download.
type Document struct {
	FileName string
	Data     []byte
}

type Service struct {
	appointments AppointmentSource
}

func NewService(appointments AppointmentSource) *Service {
	return &Service{appointments: appointments}
}

// Common font locations; DejaVuSans covers the accented names the
// registry holds.
var fontPaths = []string{
	"/usr/share/fonts/ttf-dejavu/DejaVuSans.ttf",
	"/usr/share/fonts/dejavu/DejaVuSans.ttf",
	"/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf",
}

// Generate renders the prescription sheet for one appointment.
func (s *Service) Generate(ctx context.Context, appointmentID int64) (*Document, error) {
	row, err := s.appointments.Get(ctx, appointmentID)
	if err != nil {
		return nil, err
	}
	lines, err := s.appointments.Prescription(ctx, appointmentID)
	if err != nil {
		return nil, err
	}

	pdf := gopdf.GoPdf{}
	pdf.Start(gopdf.Config{PageSize: *gopdf.PageSizeA4})
	pdf.AddPage()

	var fontErr error
	fontLoaded := false
	for _, path := range fontPaths {
		if err := pdf.AddTTFFont("DejaVu", path); err == nil {
			fontLoaded = true
			break
		} else {
			fontErr = err
		}
	}
	if !fontLoaded {
		return nil, fmt.Errorf("failed to load font for PDF: %w", fontErr)
	}

	if err := pdf.SetFont("DejaVu", "", 20); err != nil {
		return nil, err
	}
	pdf.Cell(nil, "Prescrição Médica")
	pdf.Br(30)

	if err := pdf.SetFont("DejaVu", "", 12); err != nil {
		return nil, err
	}
	pdf.Cell(nil, fmt.Sprintf("Consulta: %d", row.ID))
	pdf.Br(15)
	pdf.Cell(nil, fmt.Sprintf("Paciente: %s", row.PatientName))
	pdf.Br(15)
	pdf.Cell(nil, fmt.Sprintf("Médico: %s", row.DoctorName))
	pdf.Br(15)
	pdf.Cell(nil, fmt.Sprintf("Data: %s %s", row.Date, row.StartTime))
	pdf.Br(25)

	if row.Diagnosis != "" {
		if err := pdf.SetFont("DejaVu", "", 14); err != nil {
			return nil, err
		}
		pdf.Cell(nil, "Diagnóstico:")
		pdf.Br(15)
		if err := pdf.SetFont("DejaVu", "", 11); err != nil {
			return nil, err
		}
		wrapped, _ := pdf.SplitText(row.Diagnosis, 500)
		for _, l := range wrapped {
			pdf.Cell(nil, l)
			pdf.Br(12)
		}
		pdf.Br(15)
	}

	if err := pdf.SetFont("DejaVu", "", 14); err != nil {
		return nil, err
	}
	pdf.Cell(nil, "Medicamentos:")
	pdf.Br(15)

	if err := pdf.SetFont("DejaVu", "", 11); err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		pdf.Cell(nil, "- Nenhum medicamento prescrito.")
		pdf.Br(15)
	}
	for _, line := range lines {
		text := fmt.Sprintf("- %s | %s, %s", line.MedicationName, line.Dosage, line.Frequency)
		wrapped, _ := pdf.SplitText(text, 500)
		for _, l := range wrapped {
			pdf.Cell(nil, l)
			pdf.Br(12)
		}
		pdf.Br(5)
	}

	var buf bytes.Buffer
	if _, err := pdf.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("failed to write PDF: %w", err)
	}

	return &Document{
		FileName: fmt.Sprintf("prescricao_%d_%s.pdf", row.ID, uuid.New().String()),
		Data:     buf.Bytes(),
	}, nil
}
