package inventory

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/jask/revenda/internal/database/repository"
)

const (
	CSVFileName    = "estoque_veiculos.csv"
	CSVContentType = "text/csv;charset=utf-8"
)

// utf8BOM makes spreadsheet tools detect the encoding.
const utf8BOM = "\ufeff"

// CSVHeader is the fixed first row of the export.
var CSVHeader = []string{"ID", "Modelo", "Placa", "Status", "Preço", "Ano", "Cor", "KM"}

// WriteCSV writes a BOM, the header row and one semicolon-separated row per
// vehicle. Absent optional fields are left empty. Fields that contain the
// separator or quotes are quoted rather than corrupting the row.
func WriteCSV(w io.Writer, vehicles []repository.Vehicle) error {
	if _, err := io.WriteString(w, utf8BOM); err != nil {
		return err
	}
	cw := csv.NewWriter(w)
	cw.Comma = ';'
	if err := cw.Write(CSVHeader); err != nil {
		return err
	}
	for _, v := range vehicles {
		if err := cw.Write(csvRow(v)); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func csvRow(v repository.Vehicle) []string {
	return []string{
		strconv.FormatInt(v.ID, 10),
		v.Model,
		v.Plate,
		string(v.Status),
		PlainAmount(v.PriceCents),
		optInt(v.Year),
		optString(v.Color),
		optInt(v.Odometer),
	}
}

func optInt(v *int) string {
	if v == nil {
		return ""
	}
	return strconv.Itoa(*v)
}

func optString(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}
