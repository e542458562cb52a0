package quote

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

type LineItem struct {
	ID          string
	Description string
	Quantity    float64
	UnitPrice   float64
}

type ClientDetails struct {
	Name    string
	Company string
	Email   string
	Address string
}

type BusinessDetails struct {
	Name    string
	Email   string
	Phone   string
	Address string
	Website string
	LogoURL string
}

// Quotation is the single source of truth for one editing session.
// Dates are ISO YYYY-MM-DD strings stored verbatim. Currency is a display
// glyph, not an ISO code. TaxRate is a percentage: 10 means 10%.
type Quotation struct {
	ID       string
	Date     string
	DueDate  string
	Client   ClientDetails
	Business BusinessDetails
	Items    []LineItem
	Currency string
	TaxRate  float64
	Notes    string
	Terms    string
}

// Totals are derived, never stored.
type Totals struct {
	Subtotal  float64 `json:"subtotal"`
	TaxAmount float64 `json:"tax_amount"`
	Total     float64 `json:"total"`
}

type Currency struct {
	Symbol string `json:"symbol"`
	Code   string `json:"code"`
	Name   string `json:"name"`
}

// Currencies is the static selection table. Selecting one sets
// Quotation.Currency to the symbol string.
var Currencies = []Currency{
	{Symbol: "$", Code: "USD", Name: "US Dollar"},
	{Symbol: "€", Code: "EUR", Name: "Euro"},
	{Symbol: "£", Code: "GBP", Name: "British Pound"},
	{Symbol: "¥", Code: "JPY", Name: "Japanese Yen"},
	{Symbol: "₹", Code: "INR", Name: "Indian Rupee"},
}

const dateLayout = "2006-01-02"

// NewDefault returns the starting template: one sample line item, blank
// client, placeholder business identity, due date one week out.
func NewDefault() *Quotation {
	now := time.Now()
	return &Quotation{
		ID:       fmt.Sprintf("QT-%d-001", now.Year()),
		Date:     now.Format(dateLayout),
		DueDate:  now.AddDate(0, 0, 7).Format(dateLayout),
		Currency: "$",
		TaxRate:  0,
		Business: BusinessDetails{
			Name:    "My Awesome Business",
			Email:   "contact@mybusiness.com",
			Phone:   "+1 (555) 123-4567",
			Address: "123 Innovation Dr, Tech City, TC 90210",
			Website: "www.mybusiness.com",
		},
		Items: []LineItem{
			{
				ID:          uuid.NewString(),
				Description: "Consulting Services",
				Quantity:    1,
				UnitPrice:   150.00,
			},
		},
		Notes: "Thank you for your business!",
		Terms: "Payment is due within 14 days. Please include the quote number on your check.",
	}
}

// ParseNumber coerces free-form numeric input. Unparseable, NaN and infinite
// values all become 0 so the stored model never carries a non-finite number.
func ParseNumber(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return sanitize(v)
}

func sanitize(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// ScalarPatch updates top-level and nested scalar fields. Nil fields are left
// untouched. Numeric fields arrive as raw input strings and are coerced.
type ScalarPatch struct {
	ID       *string        `json:"id,omitempty"`
	Date     *string        `json:"date,omitempty"`
	DueDate  *string        `json:"due_date,omitempty"`
	Currency *string        `json:"currency,omitempty"`
	TaxRate  *string        `json:"tax_rate,omitempty"`
	Notes    *string        `json:"notes,omitempty"`
	Terms    *string        `json:"terms,omitempty"`
	Business *BusinessPatch `json:"business,omitempty"`
	Client   *ClientPatch   `json:"client,omitempty"`
}

type BusinessPatch struct {
	Name    *string `json:"name,omitempty"`
	Email   *string `json:"email,omitempty"`
	Phone   *string `json:"phone,omitempty"`
	Address *string `json:"address,omitempty"`
	Website *string `json:"website,omitempty"`
	LogoURL *string `json:"logo_url,omitempty"`
}

type ClientPatch struct {
	Name    *string `json:"name,omitempty"`
	Company *string `json:"company,omitempty"`
	Email   *string `json:"email,omitempty"`
	Address *string `json:"address,omitempty"`
}

// Apply sets every non-nil field of the patch. It never fails: malformed
// numeric input normalizes to 0.
func (q *Quotation) Apply(p ScalarPatch) {
	if p.ID != nil {
		q.ID = *p.ID
	}
	if p.Date != nil {
		q.Date = *p.Date
	}
	if p.DueDate != nil {
		q.DueDate = *p.DueDate
	}
	if p.Currency != nil {
		q.Currency = *p.Currency
	}
	if p.TaxRate != nil {
		q.TaxRate = ParseNumber(*p.TaxRate)
	}
	if p.Notes != nil {
		q.Notes = *p.Notes
	}
	if p.Terms != nil {
		q.Terms = *p.Terms
	}
	if p.Business != nil {
		q.applyBusiness(*p.Business)
	}
	if p.Client != nil {
		q.applyClient(*p.Client)
	}
}

func (q *Quotation) applyBusiness(p BusinessPatch) {
	if p.Name != nil {
		q.Business.Name = *p.Name
	}
	if p.Email != nil {
		q.Business.Email = *p.Email
	}
	if p.Phone != nil {
		q.Business.Phone = *p.Phone
	}
	if p.Address != nil {
		q.Business.Address = *p.Address
	}
	if p.Website != nil {
		q.Business.Website = *p.Website
	}
	if p.LogoURL != nil {
		q.Business.LogoURL = *p.LogoURL
	}
}

func (q *Quotation) applyClient(p ClientPatch) {
	if p.Name != nil {
		q.Client.Name = *p.Name
	}
	if p.Company != nil {
		q.Client.Company = *p.Company
	}
	if p.Email != nil {
		q.Client.Email = *p.Email
	}
	if p.Address != nil {
		q.Client.Address = *p.Address
	}
}

// ItemPatch updates fields of one line item. Numeric fields arrive as raw
// input strings and are coerced.
type ItemPatch struct {
	Description *string `json:"description,omitempty"`
	Quantity    *string `json:"quantity,omitempty"`
	UnitPrice   *string `json:"unit_price,omitempty"`
}

// AddItem appends a fresh line item and returns it. IDs are random UUIDs, so
// they stay unique no matter how quickly items are added and are never reused
// after deletion.
func (q *Quotation) AddItem() LineItem {
	it := LineItem{
		ID:          uuid.NewString(),
		Description: "New Item",
		Quantity:    1,
		UnitPrice:   0,
	}
	q.Items = append(q.Items, it)
	return it
}

// RemoveItem deletes the item with the given id. Absent ids are a no-op.
func (q *Quotation) RemoveItem(id string) {
	for i, it := range q.Items {
		if it.ID == id {
			q.Items = append(q.Items[:i], q.Items[i+1:]...)
			return
		}
	}
}

// ApplyItem patches the item with the given id. Absent ids are a no-op.
func (q *Quotation) ApplyItem(id string, p ItemPatch) {
	it := q.item(id)
	if it == nil {
		return
	}
	if p.Description != nil {
		it.Description = *p.Description
	}
	if p.Quantity != nil {
		it.Quantity = ParseNumber(*p.Quantity)
	}
	if p.UnitPrice != nil {
		it.UnitPrice = ParseNumber(*p.UnitPrice)
	}
}

// Item returns a copy of the item with the given id.
func (q *Quotation) Item(id string) (LineItem, bool) {
	if it := q.item(id); it != nil {
		return *it, true
	}
	return LineItem{}, false
}

func (q *Quotation) item(id string) *LineItem {
	for i := range q.Items {
		if q.Items[i].ID == id {
			return &q.Items[i]
		}
	}
	return nil
}

// ComputeTotals derives subtotal, tax amount and grand total from the items
// currently present. Pure, no side effects.
func (q *Quotation) ComputeTotals() Totals {
	var subtotal float64
	for _, it := range q.Items {
		subtotal += it.Quantity * it.UnitPrice
	}
	tax := subtotal * q.TaxRate / 100
	return Totals{
		Subtotal:  subtotal,
		TaxAmount: tax,
		Total:     subtotal + tax,
	}
}
