package inventory

// Item mirrors the item_estoque table. Dates travel as "2006-01-02" text.
type Item struct {
	ID              int64  `json:"id_itemestoque"`
	Name            string `json:"nome"`
	ManufactureDate string `json:"data_fabricacao"`
	ExpiryDate      string `json:"data_validade"`
	Batch           string `json:"lote"`
	Manufacturer    string `json:"fabricante"`
}

// Complete reports whether every field the stock form requires is filled.
func (i Item) Complete() bool {
	return i.Name != "" && i.ManufactureDate != "" && i.ExpiryDate != "" &&
		i.Batch != "" && i.Manufacturer != ""
}
