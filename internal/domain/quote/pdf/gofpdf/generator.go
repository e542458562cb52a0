package gofpdf

import (
	"bytes"

	"github.com/jung-kurt/gofpdf"
	"quote-genius/go_backend/internal/domain/quote"
)

// Generator renders the document projection onto a single A4 page. Core fonts
// only; currency glyphs go through the cp1252 translator.
type Generator struct{}

func New() *Generator { return &Generator{} }

func (g *Generator) Generate(doc quote.Document) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Quotation "+doc.Number, true)
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	// Header: title and number on the left, business identity on the right.
	top := pdf.GetY()
	pdf.SetFont("Helvetica", "B", 24)
	pdf.Cell(100, 10, doc.Title)
	pdf.Ln(10)
	pdf.SetFont("Helvetica", "", 11)
	pdf.SetTextColor(100, 116, 139)
	pdf.Cell(100, 6, tr(doc.Number))
	pdf.SetTextColor(0, 0, 0)

	pdf.SetXY(110, top)
	pdf.SetFont("Helvetica", "B", 13)
	pdf.CellFormat(90, 6, tr(doc.Business.Name), "", 2, "R", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	pdf.SetTextColor(100, 116, 139)
	for _, line := range doc.Business.Lines {
		pdf.CellFormat(90, 4.5, tr(line), "", 2, "R", false, 0, "")
	}
	pdf.SetTextColor(0, 0, 0)

	pdf.SetXY(10, 52)

	// Bill-to block on the left, validity block on the right.
	pdf.SetFont("Helvetica", "B", 8)
	pdf.SetTextColor(148, 163, 184)
	pdf.Cell(120, 5, "BILL TO")
	pdf.CellFormat(35, 5, "DATE", "", 0, "R", false, 0, "")
	pdf.CellFormat(35, 5, "VALID UNTIL", "", 1, "R", false, 0, "")
	pdf.SetTextColor(0, 0, 0)

	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(120, 6, tr(doc.BillTo.Name))
	pdf.CellFormat(35, 6, tr(doc.Date), "", 0, "R", false, 0, "")
	pdf.CellFormat(35, 6, tr(doc.ValidUntil), "", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "", 9)
	pdf.SetTextColor(100, 116, 139)
	for _, line := range []string{doc.BillTo.Company, doc.BillTo.Address, doc.BillTo.Email} {
		if line != "" {
			pdf.Cell(0, 4.5, tr(line))
			pdf.Ln(4.5)
		}
	}
	pdf.SetTextColor(0, 0, 0)
	pdf.Ln(8)

	// Item table.
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(95, 8, "Description", "B", 0, "L", false, 0, "")
	pdf.CellFormat(25, 8, "Qty", "B", 0, "C", false, 0, "")
	pdf.CellFormat(35, 8, "Price", "B", 0, "R", false, 0, "")
	pdf.CellFormat(35, 8, "Total", "B", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	for _, row := range doc.Rows {
		pdf.CellFormat(95, 8, tr(row.Description), "B", 0, "L", false, 0, "")
		pdf.CellFormat(25, 8, tr(row.Quantity), "B", 0, "C", false, 0, "")
		pdf.CellFormat(35, 8, tr(row.UnitPrice), "B", 0, "R", false, 0, "")
		pdf.CellFormat(35, 8, tr(row.LineTotal), "B", 1, "R", false, 0, "")
	}
	pdf.Ln(4)

	// Totals column, right-aligned. Tax line only when present.
	pdf.CellFormat(155, 7, "Subtotal", "", 0, "R", false, 0, "")
	pdf.CellFormat(35, 7, tr(doc.Subtotal), "", 1, "R", false, 0, "")
	if doc.TaxLabel != "" {
		pdf.CellFormat(155, 7, tr(doc.TaxLabel), "", 0, "R", false, 0, "")
		pdf.CellFormat(35, 7, tr(doc.TaxAmount), "", 1, "R", false, 0, "")
	}
	pdf.SetFont("Helvetica", "B", 13)
	pdf.CellFormat(155, 10, "Total", "T", 0, "R", false, 0, "")
	pdf.CellFormat(35, 10, tr(doc.Total), "T", 1, "R", false, 0, "")
	pdf.Ln(6)

	pdf.SetFont("Helvetica", "", 9)
	if doc.Notes != "" {
		g.section(pdf, tr, "NOTES", doc.Notes)
	}
	if doc.Terms != "" {
		g.section(pdf, tr, "TERMS & CONDITIONS", doc.Terms)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (g *Generator) section(pdf *gofpdf.Fpdf, tr func(string) string, label, body string) {
	pdf.SetFont("Helvetica", "B", 8)
	pdf.SetTextColor(148, 163, 184)
	pdf.Cell(0, 5, label)
	pdf.Ln(5)
	pdf.SetTextColor(71, 85, 105)
	pdf.SetFont("Helvetica", "", 9)
	pdf.MultiCell(0, 4.5, tr(body), "", "L", false)
	pdf.SetTextColor(0, 0, 0)
	pdf.Ln(3)
}
