package presenter

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"vetapp-api/internal/models"
)

// descriptionBudget is the fixed character budget for the description
// column; longer text is truncated to keep the table aligned.
const descriptionBudget = 40

// PDFFileName returns the artifact name for an invoice document.
func PDFFileName(inv *models.Invoice) string {
	return fmt.Sprintf("Invoice_%s.pdf", inv.InvoiceNumber)
}

func truncate(s string, budget int) string {
	runes := []rune(s)
	if len(runes) <= budget {
		return s
	}
	return string(runes[:budget])
}

// RenderPDF lays out the printable invoice document: header band, client
// block, item table, totals block and footer. Every money string comes
// from the same DetailView the on-screen detail renders.
func RenderPDF(inv *models.Invoice) ([]byte, error) {
	view := DetailFor(inv)

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	// Header band
	pdf.SetFillColor(99, 102, 241)
	pdf.Rect(0, 0, 210, 40, "F")
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Helvetica", "B", 24)
	pdf.Text(20, 20, "VetApp")
	pdf.SetFont("Helvetica", "", 12)
	pdf.Text(20, 30, tr("Sistema de Gestión Veterinaria"))
	pdf.SetFont("Helvetica", "", 16)
	pdf.Text(130, 25, tr(fmt.Sprintf("Factura: %s", view.InvoiceNumber)))

	// Client block
	pdf.SetTextColor(0, 0, 0)
	y := 55.0
	pdf.SetFont("Helvetica", "B", 14)
	pdf.Text(20, y, "Datos del Cliente")
	pdf.SetFont("Helvetica", "", 11)
	y += 10
	pdf.Text(20, y, tr(fmt.Sprintf("Propietario: %s", view.OwnerName)))
	y += 7
	pdf.Text(20, y, tr(fmt.Sprintf("Email: %s", view.OwnerEmail)))
	y += 7
	pdf.Text(20, y, tr(fmt.Sprintf("Mascota: %s", view.PetName)))
	y += 7
	pdf.Text(20, y, tr(fmt.Sprintf("Fecha: %s", view.IssuedAt)))
	y += 7
	pdf.Text(20, y, tr(fmt.Sprintf("Estado: %s", view.Status)))

	y += 10
	pdf.SetDrawColor(200, 200, 200)
	pdf.Line(20, y, 190, y)

	// Item table
	y += 10
	pdf.SetFont("Helvetica", "B", 14)
	pdf.Text(20, y, "Detalle de Servicios")
	y += 10
	pdf.SetFillColor(240, 240, 240)
	pdf.Rect(20, y-5, 170, 8, "F")
	pdf.SetFont("Helvetica", "B", 10)
	pdf.Text(22, y, tr("Descripción"))
	pdf.Text(110, y, "Cant.")
	pdf.Text(130, y, "P. Unit.")
	pdf.Text(160, y, "Subtotal")

	pdf.SetFont("Helvetica", "", 10)
	for _, line := range view.Lines {
		y += 8
		pdf.Text(22, y, tr(truncate(line.Description, descriptionBudget)))
		pdf.Text(115, y, line.Quantity)
		pdf.Text(130, y, tr(line.UnitPrice))
		pdf.Text(160, y, tr(line.Subtotal))
	}

	// Totals block
	y += 15
	pdf.Line(20, y, 190, y)
	y += 10
	pdf.SetFont("Helvetica", "", 11)
	pdf.Text(130, y, "Subtotal:")
	pdf.Text(160, y, tr(view.Subtotal))
	y += 7
	pdf.Text(130, y, tr(view.TaxLabel+":"))
	pdf.Text(160, y, tr(view.TaxAmount))
	y += 10
	pdf.SetFont("Helvetica", "B", 14)
	pdf.Text(130, y, "TOTAL:")
	pdf.SetTextColor(99, 102, 241)
	pdf.Text(160, y, tr(view.Total))

	// Footer
	pdf.SetTextColor(150, 150, 150)
	pdf.SetFont("Helvetica", "", 9)
	pdf.Text(55, 280, "Gracias por confiar en VetApp para el cuidado de su mascota.")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render invoice PDF: %w", err)
	}
	return buf.Bytes(), nil
}
