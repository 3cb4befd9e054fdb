package services

import (
	"bytes"
	"fmt"
	"log"
	"strconv"
	"time"

	"github.com/go-pdf/fpdf"
	"github.com/mannancrackers/shop/app/models"
	"github.com/shopspring/decimal"
)

// InvoiceService renders order invoices as downloadable PDFs. Core PDF
// fonts cover cp1252 only, so amounts carry a "Rs." prefix instead of the
// rupee sign used elsewhere.
type InvoiceService struct{}

func NewInvoiceService() *InvoiceService {
	return &InvoiceService{}
}

// Filename is the download name offered to the browser.
func (s *InvoiceService) Filename(order *models.Order) string {
	return fmt.Sprintf("invoice-%s.pdf", order.ID)
}

func pdfAmount(amount decimal.Decimal) string {
	return "Rs. " + amount.StringFixed(2)
}

// BuildInvoicePDF renders the invoice for one order: title block, order
// info grid, itemised table with a total row and a small footer.
func (s *InvoiceService) BuildInvoicePDF(order *models.Order) ([]byte, error) {
	if order == nil {
		return nil, fmt.Errorf("cannot render invoice without an order")
	}

	pdf := fpdf.New("P", "mm", "Letter", "")
	pdf.SetMargins(15, 20, 15)
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pageWidth, _ := pdf.GetPageSize()
	left, _, right, _ := pdf.GetMargins()
	contentWidth := pageWidth - left - right

	pdf.SetFont("Helvetica", "B", 24)
	pdf.CellFormat(0, 12, "INVOICE", "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 10, "The Mannan Crackers", "", 1, "L", false, 0, "")
	pdf.Ln(6)

	half := contentWidth / 2
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetDrawColor(0, 0, 0)
	pdf.SetFillColor(211, 211, 211)

	pdf.CellFormat(half, 8, "Date: "+order.CreatedAt.Format("January 02, 2006"), "1", 0, "L", true, 0, "")
	pdf.CellFormat(half, 8, "Status: "+order.Status.Label(), "1", 1, "L", true, 0, "")
	pdf.CellFormat(half, 8, tr("Customer: "+order.FullName), "1", 0, "L", false, 0, "")
	pdf.CellFormat(half, 8, "", "1", 1, "L", false, 0, "")
	pdf.CellFormat(half, 8, tr("Phone: "+order.Phone), "1", 0, "L", false, 0, "")
	pdf.CellFormat(half, 8, tr("Email: "+order.Email), "1", 1, "L", false, 0, "")
	pdf.MultiCell(contentWidth, 8, tr("Shipping Address: "+order.Address), "1", "L", false)
	pdf.Ln(6)

	colWidths := []float64{contentWidth * 0.5, contentWidth * 0.17, contentWidth * 0.17, contentWidth * 0.16}
	headings := []string{"Product", "Quantity", "Price", "Total"}
	aligns := []string{"L", "R", "R", "R"}

	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetFillColor(128, 128, 128)
	pdf.SetTextColor(245, 245, 245)
	for i, heading := range headings {
		pdf.CellFormat(colWidths[i], 10, heading, "1", 0, aligns[i], true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(0, 0, 0)
	for _, item := range order.OrderItems {
		lineTotal := item.Price.Mul(decimal.NewFromInt(int64(item.Quantity)))
		pdf.CellFormat(colWidths[0], 8, tr(item.ProductName), "1", 0, "L", false, 0, "")
		pdf.CellFormat(colWidths[1], 8, strconv.Itoa(item.Quantity), "1", 0, "R", false, 0, "")
		pdf.CellFormat(colWidths[2], 8, pdfAmount(item.Price), "1", 0, "R", false, 0, "")
		pdf.CellFormat(colWidths[3], 8, pdfAmount(lineTotal), "1", 1, "R", false, 0, "")
	}

	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(211, 211, 211)
	pdf.CellFormat(colWidths[0], 8, "", "1", 0, "L", true, 0, "")
	pdf.CellFormat(colWidths[1], 8, "", "1", 0, "R", true, 0, "")
	pdf.CellFormat(colWidths[2], 8, "Total Amount:", "1", 0, "R", true, 0, "")
	pdf.CellFormat(colWidths[3], 8, pdfAmount(order.TotalAmount), "1", 1, "R", true, 0, "")

	pdf.Ln(10)
	pdf.SetFont("Helvetica", "", 8)
	pdf.SetTextColor(128, 128, 128)
	pdf.CellFormat(0, 5, "Thank you for shopping with The Mannan Crackers!", "", 1, "C", false, 0, "")
	pdf.CellFormat(0, 5, "Generated on: "+time.Now().Format("January 02, 2006 15:04"), "", 1, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render invoice for order %s: %w", order.ID, err)
	}

	log.Printf("InvoiceService: ✅ Rendered invoice for order %s", order.Code())
	return buf.Bytes(), nil
}
