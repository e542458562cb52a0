package quote

import (
	"fmt"
	"strconv"
)

// Document is the display-ready, print-formatted projection of a Quotation.
// It is derived wholesale after every mutation and is a pure function of the
// model: rendering twice with no intervening edit yields identical values.
type Document struct {
	Title      string        `json:"title"`
	Number     string        `json:"number"`
	Business   BusinessBlock `json:"business"`
	BillTo     BillToBlock   `json:"bill_to"`
	Date       string        `json:"date"`
	ValidUntil string        `json:"valid_until"`
	Rows       []Row         `json:"rows"`
	Subtotal   string        `json:"subtotal"`
	TaxLabel   string        `json:"tax_label,omitempty"`
	TaxAmount  string        `json:"tax_amount,omitempty"`
	Total      string        `json:"total"`
	Notes      string        `json:"notes,omitempty"`
	Terms      string        `json:"terms,omitempty"`
}

// BusinessBlock is the sender identity header. Lines holds address, email,
// phone and website, each included only when non-blank.
type BusinessBlock struct {
	Name  string   `json:"name"`
	Lines []string `json:"lines,omitempty"`
}

type BillToBlock struct {
	Name    string `json:"name"`
	Company string `json:"company,omitempty"`
	Address string `json:"address,omitempty"`
	Email   string `json:"email,omitempty"`
}

// Row is one item line. Rows are keyed by ItemID, not position, so edits on
// one row survive additions and removals elsewhere in the table.
type Row struct {
	ItemID      string `json:"item_id"`
	Description string `json:"description"`
	Quantity    string `json:"quantity"`
	UnitPrice   string `json:"unit_price"`
	LineTotal   string `json:"line_total"`
}

// Document builds the print projection of the quotation.
func (q *Quotation) Document() Document {
	totals := q.ComputeTotals()

	doc := Document{
		Title:      "QUOTATION",
		Number:     "#" + q.ID,
		Date:       q.Date,
		ValidUntil: q.DueDate,
		Business: BusinessBlock{
			Name:  q.Business.Name,
			Lines: businessLines(q.Business),
		},
		BillTo: BillToBlock{
			Name:    q.Client.Name,
			Company: q.Client.Company,
			Address: q.Client.Address,
			Email:   q.Client.Email,
		},
		Rows:     make([]Row, 0, len(q.Items)),
		Subtotal: FormatMoney(q.Currency, totals.Subtotal),
		Total:    FormatMoney(q.Currency, totals.Total),
		Notes:    q.Notes,
		Terms:    q.Terms,
	}

	if doc.BillTo.Name == "" {
		doc.BillTo.Name = "Client Name"
	}

	for _, it := range q.Items {
		doc.Rows = append(doc.Rows, Row{
			ItemID:      it.ID,
			Description: it.Description,
			Quantity:    formatNumber(it.Quantity),
			UnitPrice:   FormatMoney(q.Currency, it.UnitPrice),
			LineTotal:   FormatMoney(q.Currency, it.Quantity*it.UnitPrice),
		})
	}

	if q.TaxRate > 0 {
		doc.TaxLabel = fmt.Sprintf("Tax (%s%%)", formatNumber(q.TaxRate))
		doc.TaxAmount = FormatMoney(q.Currency, totals.TaxAmount)
	}

	return doc
}

// FormatMoney renders a money value as the currency glyph followed by the
// amount rounded to exactly two decimals. Display-only: stored values keep
// their full precision.
func FormatMoney(symbol string, v float64) string {
	return fmt.Sprintf("%s%.2f", symbol, v)
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func businessLines(b BusinessDetails) []string {
	var lines []string
	for _, s := range []string{b.Address, b.Email, b.Phone, b.Website} {
		if s != "" {
			lines = append(lines, s)
		}
	}
	return lines
}
