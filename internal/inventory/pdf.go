package inventory

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/jask/revenda/internal/database/repository"
)

const (
	PDFFileName    = "relatorio_estoque.pdf"
	PDFContentType = "application/pdf"

	// PDFTitle heads the first page of the report.
	PDFTitle = "Relatório de Estoque - Revenda Fácil"
)

// PDFColumns are the report table headings.
var PDFColumns = []string{"Modelo", "Placa", "Ano", "Status", "Preço"}

// column widths in mm; they add up to the A4 width minus both margins.
var pdfColumnWidths = []float64{62, 30, 18, 32, 40}

const (
	pdfMargin    = 14.0
	pdfRowHeight = 8.0
)

// WritePDF renders the vehicles as a grid table under a title and a
// generation timestamp. Long lists continue on further pages, each starting
// with the table heading. It returns the number of pages written.
func WritePDF(w io.Writer, vehicles []repository.Vehicle, generatedAt time.Time) (int, error) {
	return renderPDF(w, vehicles, generatedAt, true)
}

// renderPDF is WritePDF with control over stream compression; tests read the
// uncompressed page content.
func renderPDF(w io.Writer, vehicles []repository.Vehicle, generatedAt time.Time, compress bool) (int, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetCompression(compress)
	pdf.SetMargins(pdfMargin, pdfMargin, pdfMargin)
	pdf.SetAutoPageBreak(true, pdfMargin)
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	inTable := false
	pdf.SetHeaderFunc(func() {
		if inTable {
			drawTableHeading(pdf, tr)
		}
	})

	pdf.AddPage()
	pdf.SetFont("Helvetica", "", 18)
	pdf.SetTextColor(0, 0, 0)
	pdf.CellFormat(0, 10, tr(PDFTitle), "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	stamp := fmt.Sprintf("Gerado em: %s às %s", generatedAt.Format("02/01/2006"), generatedAt.Format("15:04:05"))
	pdf.CellFormat(0, 7, tr(stamp), "", 1, "L", false, 0, "")
	pdf.Ln(3)

	drawTableHeading(pdf, tr)
	inTable = true

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(0, 0, 0)
	for _, v := range vehicles {
		cells := pdfRow(v)
		for i, text := range cells {
			align := "L"
			if i == len(cells)-1 {
				align = "R"
			}
			pdf.CellFormat(pdfColumnWidths[i], pdfRowHeight, fitCell(pdf, tr(text), pdfColumnWidths[i]), "1", 0, align, false, 0, "")
		}
		pdf.Ln(-1)
	}

	pages := pdf.PageNo()
	if err := pdf.Output(w); err != nil {
		return 0, fmt.Errorf("render pdf: %w", err)
	}
	return pages, nil
}

func drawTableHeading(pdf *fpdf.Fpdf, tr func(string) string) {
	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(37, 99, 235)
	pdf.SetTextColor(255, 255, 255)
	for i, h := range PDFColumns {
		pdf.CellFormat(pdfColumnWidths[i], pdfRowHeight, tr(h), "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(0, 0, 0)
}

func pdfRow(v repository.Vehicle) []string {
	year := "-"
	if v.Year != nil {
		year = strconv.Itoa(*v.Year)
	}
	return []string{
		v.Model,
		v.Plate,
		year,
		strings.ToUpper(string(v.Status)),
		FormatBRL(v.PriceCents),
	}
}

// fitCell shortens s until it fits inside a cell of width w.
func fitCell(pdf *fpdf.Fpdf, s string, w float64) string {
	const padding = 2.0
	if pdf.GetStringWidth(s) <= w-padding {
		return s
	}
	for len(s) > 0 && pdf.GetStringWidth(s+"...") > w-padding {
		s = s[:len(s)-1]
	}
	return s + "..."
}
