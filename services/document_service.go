package services

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"

	"hotel-frontdesk/models"
)

// GuestDetails is the contact block printed on an invoice. Only the
// name is kept on the room itself.
type GuestDetails struct {
	GuestName       string
	Email           string
	Phone           string
	SpecialRequests string
}

// DocumentService renders invoices and receipts as PDF files under two
// output directories. It never mutates the rooms it is handed.
type DocumentService struct {
	hotelName  string
	invoiceDir string
	receiptDir string
}

func NewDocumentService(hotelName, invoiceDir, receiptDir string) *DocumentService {
	return &DocumentService{
		hotelName:  hotelName,
		invoiceDir: invoiceDir,
		receiptDir: receiptDir,
	}
}

// filePrefix derives the file name prefix from the hotel name.
func (d *DocumentService) filePrefix() string {
	return strings.ReplaceAll(d.hotelName, " ", "_")
}

// GenerateInvoice writes the booking invoice for an occupied room and
// returns the file path. The name embeds room number and timestamp so
// repeated bookings never collide.
func (d *DocumentService) GenerateInvoice(room *models.Room, guest GuestDetails) (string, error) {
	if err := os.MkdirAll(d.invoiceDir, 0o755); err != nil {
		return "", fmt.Errorf("create invoice dir: %w", err)
	}

	now := time.Now()
	filename := filepath.Join(d.invoiceDir,
		fmt.Sprintf("%s_Invoice_%s_%s.pdf", d.filePrefix(), room.RoomNumber, now.Format("20060102_150405")))

	pdf := newDocument(d.hotelName, fmt.Sprintf("%s Room Invoice", room.RoomType))

	writeDetailsTable(pdf, [][2]string{
		{"Invoice Date:", now.Format("2006-01-02 15:04")},
		{"Invoice Number:", fmt.Sprintf("INV-%s-%s", room.RoomNumber, now.Format("200601021504"))},
		{"Room Number:", room.RoomNumber},
		{"Room Type:", string(room.RoomType)},
		{"Amenities:", strings.Join(room.Amenities, ", ")},
		{"Guest Name:", guest.GuestName},
		{"Email:", guest.Email},
		{"Phone:", guest.Phone},
	})

	if req := strings.TrimSpace(guest.SpecialRequests); req != "" {
		writeDetailsTable(pdf, [][2]string{{"Special Requests:", req}})
	}

	base := room.BasePrice()
	total := room.CalculatePrice()
	writeChargesTable(pdf, base, total, "Total Price:")

	if err := pdf.OutputFileAndClose(filename); err != nil {
		return "", fmt.Errorf("write invoice: %w", err)
	}
	return filename, nil
}

// GenerateReceipt writes the checkout receipt. It must run before the
// room is released, while nights and guest data are still populated.
func (d *DocumentService) GenerateReceipt(room *models.Room, checkoutTime time.Time, total float64) (string, error) {
	if err := os.MkdirAll(d.receiptDir, 0o755); err != nil {
		return "", fmt.Errorf("create receipt dir: %w", err)
	}

	filename := filepath.Join(d.receiptDir,
		fmt.Sprintf("%s_Checkout_%s_%s.pdf", d.filePrefix(), room.RoomNumber, checkoutTime.Format("20060102_150405")))

	pdf := newDocument(d.hotelName, "Checkout Receipt")

	checkin := "-"
	if room.CheckinTime != nil {
		checkin = room.CheckinTime.Format("2006-01-02 15:04")
	}
	writeDetailsTable(pdf, [][2]string{
		{"Receipt Number:", fmt.Sprintf("RCP-%s-%s", room.RoomNumber, checkoutTime.Format("200601021504"))},
		{"Checkout Date:", checkoutTime.Format("2006-01-02 15:04")},
		{"Room Number:", room.RoomNumber},
		{"Room Type:", string(room.RoomType)},
		{"Guest Name:", room.GuestName},
		{"Check-in:", checkin},
		{"Check-out:", checkoutTime.Format("2006-01-02 15:04")},
		{"Duration:", fmt.Sprintf("%d nights", room.Nights)},
		{"Base Rate:", fmt.Sprintf("Rp%.2f per night", room.Price)},
	})

	writeChargesTable(pdf, room.BasePrice(), total, "Total Amount:")

	pdf.Ln(24)
	pdf.SetFont("Helvetica", "B", 13)
	pdf.CellFormat(0, 16, fmt.Sprintf("Thank you for staying at %s!", d.hotelName), "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 14, "We hope to see you again soon.", "", 1, "L", false, 0, "")

	if err := pdf.OutputFileAndClose(filename); err != nil {
		return "", fmt.Errorf("write receipt: %w", err)
	}
	return filename, nil
}

func newDocument(title, subtitle string) *gofpdf.Fpdf {
	pdf := gofpdf.New("P", "pt", "Letter", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 24)
	pdf.CellFormat(0, 30, title, "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "B", 15)
	pdf.CellFormat(0, 20, subtitle, "", 1, "L", false, 0, "")
	pdf.Ln(16)
	return pdf
}

func writeDetailsTable(pdf *gofpdf.Fpdf, rows [][2]string) {
	pdf.SetFont("Helvetica", "", 10)
	for _, row := range rows {
		pdf.CellFormat(144, 18, row[0], "", 0, "L", false, 0, "")
		pdf.MultiCell(0, 18, row[1], "", "L", false)
	}
	pdf.Ln(12)
}

func writeChargesTable(pdf *gofpdf.Fpdf, base, total float64, totalLabel string) {
	pdf.SetFont("Helvetica", "B", 12)
	rows := [][2]string{
		{"Base Charges:", fmt.Sprintf("Rp%.2f", base)},
		{"Additional Charges:", fmt.Sprintf("Rp%.2f", total-base)},
		{totalLabel, fmt.Sprintf("Rp%.2f", total)},
	}
	for i, row := range rows {
		border := ""
		if i == len(rows)-1 {
			border = "TB"
		}
		pdf.CellFormat(144, 20, row[0], border, 0, "L", false, 0, "")
		pdf.CellFormat(288, 20, row[1], border, 1, "L", false, 0, "")
	}
}
