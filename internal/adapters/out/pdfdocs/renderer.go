// Package pdfdocs renders the rental agreement and the deposit receipt as
// PDF documents.
package pdfdocs

import (
	"bytes"
	"fmt"

	"github.com/mapsensemedia/betterrental/internal/core/domain/model/kernel"
	"github.com/mapsensemedia/betterrental/internal/core/ports"

	"github.com/jung-kurt/gofpdf"
)

const (
	pageMargin = 15.0
	lineHeight = 7.0
)

// Renderer draws the documents with a fixed sequential layout. Rendering is
// pure: the caller stores the returned bytes.
type Renderer struct {
	companyName string
}

// NewRenderer creates a PDF renderer. The company name appears in the
// document headers.
func NewRenderer(companyName string) *Renderer {
	return &Renderer{companyName: companyName}
}

// RenderAgreement renders the rental agreement handed to the customer at
// checkout.
func (r *Renderer) RenderAgreement(data ports.AgreementData) ([]byte, error) {
	pdf := r.newPage("Rental Agreement")

	pdf.SetFont("Helvetica", "", 11)
	r.row(pdf, "Booking", data.BookingID.String())
	r.row(pdf, "Customer", data.CustomerName)
	r.row(pdf, "Vehicle category", data.CategoryName)
	r.row(pdf, "Rental period", fmt.Sprintf("%s - %s (%d days)",
		data.Period.Start().Format("02 Jan 2006 15:04"),
		data.Period.End().Format("02 Jan 2006 15:04"),
		data.Period.Days(),
	))
	r.row(pdf, "Pickup address", data.PickupAddress)
	r.row(pdf, "Return address", data.ReturnAddress)
	pdf.Ln(lineHeight)

	pdf.SetFont("Helvetica", "B", 11)
	pdf.Cell(0, lineHeight, "Charges")
	pdf.Ln(lineHeight)

	pdf.SetFont("Helvetica", "", 11)
	r.amountRow(pdf, "Time charge", data.Subtotal)
	r.row(pdf, "Duration discount", "-"+formatMoney(data.Discount))
	r.amountRow(pdf, "Delivery fee", data.DeliveryFee)
	r.amountRow(pdf, "Total", data.Total)
	r.amountRow(pdf, "Security deposit (held)", data.Deposit)
	pdf.Ln(lineHeight)

	pdf.SetFont("Helvetica", "I", 9)
	pdf.Cell(0, lineHeight, fmt.Sprintf("Issued %s by %s.",
		data.IssuedAt.Format("02 Jan 2006 15:04 MST"), r.companyName))

	return r.output(pdf)
}

// RenderDepositReceipt renders the deposit statement produced at return
// settlement, with one line per ledger row.
func (r *Renderer) RenderDepositReceipt(data ports.ReceiptData) ([]byte, error) {
	pdf := r.newPage("Deposit Receipt")

	pdf.SetFont("Helvetica", "", 11)
	r.row(pdf, "Booking", data.BookingID.String())
	r.row(pdf, "Customer", data.CustomerName)
	r.amountRow(pdf, "Deposit held", data.Held)
	pdf.Ln(lineHeight)

	pdf.SetFont("Helvetica", "B", 11)
	pdf.Cell(0, lineHeight, "Ledger")
	pdf.Ln(lineHeight)

	pdf.SetFont("Helvetica", "", 10)
	for _, entry := range data.Entries {
		line := fmt.Sprintf("%s  %s  %s",
			entry.At().Format("02 Jan 2006 15:04"),
			entry.Kind().String(),
			formatMoney(entry.Amount()),
		)
		if entry.Reason() != "" {
			line += "  (" + entry.Reason() + ")"
		}
		pdf.Cell(0, lineHeight-1, line)
		pdf.Ln(lineHeight - 1)
	}
	pdf.Ln(lineHeight)

	pdf.SetFont("Helvetica", "I", 9)
	pdf.Cell(0, lineHeight, fmt.Sprintf("Issued %s by %s.",
		data.IssuedAt.Format("02 Jan 2006 15:04 MST"), r.companyName))

	return r.output(pdf)
}

func (r *Renderer) newPage(title string) *gofpdf.Fpdf {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(pageMargin, pageMargin, pageMargin)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, r.companyName)
	pdf.Ln(10)
	pdf.SetFont("Helvetica", "B", 13)
	pdf.Cell(0, 9, title)
	pdf.Ln(12)

	return pdf
}

func (r *Renderer) row(pdf *gofpdf.Fpdf, label string, value string) {
	pdf.CellFormat(55, lineHeight, label, "", 0, "L", false, 0, "")
	pdf.CellFormat(0, lineHeight, value, "", 1, "L", false, 0, "")
}

func (r *Renderer) amountRow(pdf *gofpdf.Fpdf, label string, amount kernel.Money) {
	r.row(pdf, label, formatMoney(amount))
}

func (r *Renderer) output(pdf *gofpdf.Fpdf) ([]byte, error) {
	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}

	return buf.Bytes(), nil
}

func formatMoney(m kernel.Money) string {
	return fmt.Sprintf("%s %d.%02d", m.Currency(), m.Amount()/100, m.Amount()%100)
}
