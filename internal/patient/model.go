package patient

// Patient mirrors the paciente table. BirthDate travels as "2006-01-02"
// text; an empty string persists as NULL.
type Patient struct {
	ID        int64  `json:"id_paciente"`
	Name      string `json:"nome"`
	CPF       string `json:"cpf"`
	RG        string `json:"rg"`
	BirthDate string `json:"data_nascimento"`
	Gender    string `json:"genero"`
	Street    string `json:"endereco_rua"`
	Number    string `json:"endereco_numero"`
	District  string `json:"endereco_bairro"`
	City      string `json:"endereco_cidade"`
}
