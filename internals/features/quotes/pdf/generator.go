// file: internals/features/quotes/pdf/generator.go
package pdf

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"

	model "decofilm_backend/internals/features/quotes/model"
)

type Generator struct{}

func New() *Generator { return &Generator{} }

// Generate renders a printable estimate sheet for one quote.
func (g *Generator) Generate(q *model.Quote) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Interior Film Estimate", false)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(0, 10, "Interior Film Estimate")
	pdf.Ln(8)

	pdf.SetFont("Arial", "", 11)
	pdf.Cell(0, 6, fmt.Sprintf("No. %s / %s", q.QuoteID.String()[:8], q.QuoteCreatedAt.Format("2006-01-02")))
	pdf.Ln(6)

	if q.QuoteCustomerName != "" || q.QuotePhone != "" {
		pdf.Cell(0, 6, fmt.Sprintf("Customer: %s %s", q.QuoteCustomerName, q.QuotePhone))
		pdf.Ln(6)
	}
	if q.QuoteAddress != nil && *q.QuoteAddress != "" {
		pdf.Cell(0, 6, fmt.Sprintf("Site: %s", trim(*q.QuoteAddress, 70)))
		pdf.Ln(6)
	}

	var items []model.QuoteLineItem
	if len(q.QuoteLineItems) > 0 {
		_ = json.Unmarshal(q.QuoteLineItems, &items)
	}

	if len(items) > 0 {
		pdf.Ln(4)
		pdf.SetFont("Arial", "B", 11)
		pdf.Cell(60, 7, "Space")
		pdf.Cell(60, 7, "Material")
		pdf.Cell(30, 7, "Area")
		pdf.Cell(40, 7, "Amount (KRW)")
		pdf.Ln(8)

		pdf.SetFont("Arial", "", 10)
		for _, it := range items {
			pdf.Cell(60, 6, trim(it.Space, 30))
			pdf.Cell(60, 6, trim(it.Material, 30))
			pdf.Cell(30, 6, it.Area)
			pdf.Cell(40, 6, fmtWon(it.Amount))
			pdf.Ln(6)
		}
	}

	pdf.Ln(4)
	pdf.SetFont("Arial", "", 11)
	pdf.Cell(0, 6, fmt.Sprintf("Material: %s   Labor: %s   Fees: %s",
		fmtWon(q.QuoteMaterialCost), fmtWon(q.QuoteLaborCost), fmtWon(q.QuoteAdditionalFees)))
	pdf.Ln(7)
	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(0, 7, fmt.Sprintf("Total: %s KRW", fmtWon(q.QuoteTotalAmount)))
	pdf.Ln(8)

	pdf.SetFont("Arial", "", 9)
	pdf.Cell(0, 5, "DecoFilm Interior")
	pdf.Ln(5)
	pdf.Cell(0, 5, fmt.Sprintf("Generated: %s", time.Now().Format(time.RFC3339)))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func fmtWon(n int64) string {
	s := fmt.Sprintf("%d", n)
	if n < 0 {
		return s
	}
	var out []byte
	for i, c := range []byte(s) {
		if i > 0 && (len(s)-i)%3 == 0 {
			out = append(out, ',')
		}
		out = append(out, c)
	}
	return string(out)
}

func trim(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-1]) + "..."
}
