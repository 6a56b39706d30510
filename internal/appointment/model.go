package appointment

// Ref is an optional reference to a row in a lookup table.
// The zero value means "nothing selected".
type Ref struct {
	ID  int64
	Set bool
}

func RefTo(id int64) Ref { return Ref{ID: id, Set: true} }

// Row is the denormalized appointment projection the dashboard displays:
// patient and doctor names are inlined, dates and times are already
// rendered as text (empty string when the column is NULL).
type Row struct {
	ID          int64  `json:"id_consulta"`
	PatientID   int64  `json:"id_paciente"`
	PatientName string `json:"paciente_nome"`
	DoctorID    int64  `json:"id_medico"`
	DoctorName  string `json:"medico_nome"`
	Date        string `json:"data"`
	StartTime   string `json:"hora_inicio"`
	EndTime     string `json:"hora_fim"`
	Diagnosis   string `json:"diagnostico"`
}

// Filter selects appointments by any combination of patient, doctor and
// date. Unset fields impose no predicate.
type Filter struct {
	Patient Ref
	Doctor  Ref
	Date    string
}

// LineEdit is one row of the prescription editor. A row without a
// medication is a blank the user never filled in.
type LineEdit struct {
	Medication Ref
	Dosage     string
	Frequency  string
}

// LineView is a prescription line joined with its medication name.
type LineView struct {
	MedicationID   int64  `json:"id_medicamento"`
	MedicationName string `json:"nome_medicamento"`
	Dosage         string `json:"dosagem"`
	Frequency      string `json:"frequencia"`
}

// Draft carries the full field set for an insert or update. Date and time
// fields are display-format strings ("2006-01-02", "15:04:05"); empty
// strings persist as NULL.
type Draft struct {
	Patient   Ref
	Doctor    Ref
	Date      string
	StartTime string
	EndTime   string
	Diagnosis string
	Lines     []LineEdit
}
