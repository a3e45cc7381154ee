// Package notification delivers owner-facing emails. Delivery failures are
// logged and swallowed so they never break the appointment or billing flow.
package notification

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"vetapp-api/internal/money"
)

// Message is a plain-text email ready for delivery.
type Message struct {
	To      string
	Subject string
	Body    string
}

// Sender delivers a single message.
type Sender interface {
	Send(msg Message) error
}

const dateTimeLayout = "02/01/2006 15:04"

// AppointmentConfirmation builds the email sent when an appointment is booked.
func AppointmentConfirmation(to, petName string, dateTime time.Time, reason string) Message {
	const divider = "═══════════════════════════════════════════════════════════\n"
	body := divider +
		"           CONFIRMACIÓN DE CITA VETERINARIA                \n" +
		divider + "\n" +
		"Estimado propietario,\n\n" +
		fmt.Sprintf("Se ha agendado una cita para su mascota %s.\n\n", petName) +
		fmt.Sprintf("Fecha: %s\n", dateTime.Format(dateTimeLayout)) +
		fmt.Sprintf("Motivo: %s\n\n", reason) +
		"Por favor llegue 10 minutos antes de su cita.\n\n" +
		divider +
		"Saludos cordiales,\n" +
		"VetApp - Sistema de Gestión Veterinaria\n" +
		divider

	return Message{
		To:      to,
		Subject: "Confirmación de Cita Veterinaria - VetApp",
		Body:    body,
	}
}

// AppointmentRescheduled builds the email sent when an appointment's date changes.
func AppointmentRescheduled(to, petName string, newDateTime time.Time, reason string) Message {
	body := "Estimado propietario,\n\n" +
		fmt.Sprintf("La cita de %s ha sido reprogramada.\n", petName) +
		fmt.Sprintf("Nueva fecha: %s\n", newDateTime.Format(dateTimeLayout)) +
		fmt.Sprintf("Motivo: %s\n\n", reason) +
		"Saludos,\nVetApp"

	return Message{
		To:      to,
		Subject: "Cambio en su Cita Veterinaria",
		Body:    body,
	}
}

// InvoiceIssued builds the email sent when a new invoice is created.
func InvoiceIssued(to, ownerName, invoiceNumber string, total decimal.Decimal) Message {
	body := fmt.Sprintf("Estimado(a) %s,\n\n", ownerName) +
		fmt.Sprintf("Se ha generado la factura %s por un total de %s.\n\n", invoiceNumber, money.FormatCOP(total)) +
		"Gracias por confiar en nosotros.\n\n" +
		"Saludos,\nVetApp"

	return Message{
		To:      to,
		Subject: fmt.Sprintf("Factura %s - VetApp", invoiceNumber),
		Body:    body,
	}
}
