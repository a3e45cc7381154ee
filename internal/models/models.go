package models

import (
	"database/sql/driver"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	// Money fields travel as plain JSON numbers, matching the wire contract
	// the browser client consumes.
	decimal.MarshalJSONWithoutQuotes = true
}

// --- Appointment Status Enum ---
type AppointmentStatus string

const (
	AppointmentScheduled  AppointmentStatus = "SCHEDULED"
	AppointmentConfirmed  AppointmentStatus = "CONFIRMED"
	AppointmentInProgress AppointmentStatus = "IN_PROGRESS"
	AppointmentCompleted  AppointmentStatus = "COMPLETED"
	AppointmentCancelled  AppointmentStatus = "CANCELLED"
)

// Scan implements the sql.Scanner interface for AppointmentStatus
func (s *AppointmentStatus) Scan(value interface{}) error {
	strVal, ok := value.(string)
	if !ok {
		byteVal, ok := value.([]byte)
		if !ok {
			return fmt.Errorf("failed to scan AppointmentStatus: value is not string or []byte")
		}
		strVal = string(byteVal)
	}
	v := AppointmentStatus(strVal)
	switch v {
	case AppointmentScheduled, AppointmentConfirmed, AppointmentInProgress, AppointmentCompleted, AppointmentCancelled:
		*s = v
		return nil
	default:
		return fmt.Errorf("invalid AppointmentStatus value: %s", strVal)
	}
}

// Value implements the driver.Valuer interface for AppointmentStatus
func (s AppointmentStatus) Value() (driver.Value, error) {
	return string(s), nil
}

// --- Invoice Status Enum ---
type InvoiceStatus string

const (
	InvoicePending   InvoiceStatus = "PENDING"
	InvoicePaid      InvoiceStatus = "PAID"
	InvoiceCancelled InvoiceStatus = "CANCELLED"
)

// Scan implements the sql.Scanner interface for InvoiceStatus
func (s *InvoiceStatus) Scan(value interface{}) error {
	strVal, ok := value.(string)
	if !ok {
		byteVal, ok := value.([]byte)
		if !ok {
			return fmt.Errorf("failed to scan InvoiceStatus: value is not string or []byte")
		}
		strVal = string(byteVal)
	}
	v := InvoiceStatus(strVal)
	switch v {
	case InvoicePending, InvoicePaid, InvoiceCancelled:
		*s = v
		return nil
	default:
		return fmt.Errorf("invalid InvoiceStatus value: %s", strVal)
	}
}

// Value implements the driver.Valuer interface for InvoiceStatus
func (s InvoiceStatus) Value() (driver.Value, error) {
	return string(s), nil
}

// CanTransitionTo reports whether a status change is allowed.
// PENDING is the only non-terminal status.
func (s InvoiceStatus) CanTransitionTo(next InvoiceStatus) bool {
	return s == InvoicePending && (next == InvoicePaid || next == InvoiceCancelled)
}

// Owner represents a pet owner registered at the clinic.
type Owner struct {
	ID        int64     `json:"id" db:"id"`
	FirstName string    `json:"firstName" db:"first_name"`
	LastName  string    `json:"lastName" db:"last_name"`
	Document  string    `json:"document" db:"document"`
	Phone     string    `json:"phone" db:"phone"`
	Email     string    `json:"email" db:"email"`
	Address   string    `json:"address,omitempty" db:"address"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

// FullName returns the display name used in denormalized invoice and
// appointment fields.
func (o *Owner) FullName() string {
	return o.FirstName + " " + o.LastName
}

// Pet represents an animal belonging to an Owner.
type Pet struct {
	ID        int64      `json:"id" db:"id"`
	Name      string     `json:"name" db:"name"`
	Species   string     `json:"species" db:"species"`
	Breed     string     `json:"breed,omitempty" db:"breed"`
	BirthDate *time.Time `json:"birthDate,omitempty" db:"birth_date"`
	Sex       string     `json:"sex,omitempty" db:"sex"`
	Color     string     `json:"color,omitempty" db:"color"`
	Weight    *float64   `json:"weight,omitempty" db:"weight"`
	OwnerID   int64      `json:"ownerId" db:"owner_id"`
	CreatedAt time.Time  `json:"createdAt" db:"created_at"`

	// Denormalized for responses
	OwnerName  string `json:"ownerName,omitempty" db:"-"`
	OwnerEmail string `json:"ownerEmail,omitempty" db:"-"`
}

// Appointment represents a scheduled visit for a pet.
type Appointment struct {
	ID        int64             `json:"id" db:"id"`
	DateTime  time.Time         `json:"dateTime" db:"date_time"`
	Reason    string            `json:"reason" db:"reason"`
	Notes     string            `json:"notes,omitempty" db:"notes"`
	Status    AppointmentStatus `json:"status" db:"status"`
	PetID     int64             `json:"petId" db:"pet_id"`
	CreatedAt time.Time         `json:"createdAt" db:"created_at"`

	PetName    string `json:"petName,omitempty" db:"-"`
	OwnerName  string `json:"ownerName,omitempty" db:"-"`
	OwnerEmail string `json:"ownerEmail,omitempty" db:"-"`
}

// ClinicalRecord represents one consultation entry in a pet's history.
type ClinicalRecord struct {
	ID               int64     `json:"id" db:"id"`
	ConsultationDate time.Time `json:"consultationDate" db:"consultation_date"`
	Diagnosis        string    `json:"diagnosis" db:"diagnosis"`
	Symptoms         string    `json:"symptoms,omitempty" db:"symptoms"`
	Treatment        string    `json:"treatment,omitempty" db:"treatment"`
	Notes            string    `json:"notes,omitempty" db:"notes"`
	Weight           *float64  `json:"weight,omitempty" db:"weight"`
	Temperature      *float64  `json:"temperature,omitempty" db:"temperature"`
	PetID            int64     `json:"petId" db:"pet_id"`
	CreatedAt        time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt        time.Time `json:"updatedAt" db:"updated_at"`

	PetName   string `json:"petName,omitempty" db:"-"`
	OwnerName string `json:"ownerName,omitempty" db:"-"`
}

// Prescription represents medication prescribed to a pet, optionally linked
// to the clinical record it came from.
type Prescription struct {
	ID               int64      `json:"id" db:"id"`
	Medication       string     `json:"medication" db:"medication"`
	Dosage           string     `json:"dosage" db:"dosage"`
	Frequency        string     `json:"frequency" db:"frequency"`
	DurationDays     int        `json:"durationDays,omitempty" db:"duration_days"`
	Instructions     string     `json:"instructions,omitempty" db:"instructions"`
	StartDate        *time.Time `json:"startDate,omitempty" db:"start_date"`
	EndDate          *time.Time `json:"endDate,omitempty" db:"end_date"`
	PetID            int64      `json:"petId" db:"pet_id"`
	ClinicalRecordID *int64     `json:"clinicalRecordId,omitempty" db:"clinical_record_id"`
	CreatedAt        time.Time  `json:"createdAt" db:"created_at"`

	PetName string `json:"petName,omitempty" db:"-"`
}

// InvoiceItem is one billable line on an invoice. The wire keys keep the
// Spanish names the browser client has always sent and received.
// Subtotal is server-computed, never trusted from input.
type InvoiceItem struct {
	ID           int64           `json:"id,omitempty" db:"id"`
	Description  string          `json:"descripcion" db:"description"`
	Quantity     int             `json:"cantidad" db:"quantity"`
	UnitPrice    decimal.Decimal `json:"precioUnitario" db:"unit_price"`
	LineSubtotal decimal.Decimal `json:"subtotal" db:"line_subtotal"`
}

// Invoice is the canonical, server-owned billing record. Owner and pet
// fields are denormalized at creation time so rendering needs no joins.
type Invoice struct {
	ID            int64           `json:"id" db:"id"`
	InvoiceNumber string          `json:"invoiceNumber" db:"invoice_number"`
	OwnerID       int64           `json:"ownerId" db:"owner_id"`
	OwnerName     string          `json:"ownerName" db:"owner_name"`
	OwnerEmail    string          `json:"ownerEmail" db:"owner_email"`
	PetID         int64           `json:"petId" db:"pet_id"`
	PetName       string          `json:"petName" db:"pet_name"`
	AppointmentID *int64          `json:"appointmentId,omitempty" db:"appointment_id"`
	IssuedAt      time.Time       `json:"issuedAt" db:"issued_at"`
	Notes         string          `json:"notes,omitempty" db:"notes"`
	Items         []InvoiceItem   `json:"detalles" db:"-"`
	Subtotal      decimal.Decimal `json:"subtotal" db:"subtotal"`
	TaxRate       decimal.Decimal `json:"taxRate" db:"tax_rate"`
	TaxAmount     decimal.Decimal `json:"taxAmount" db:"tax_amount"`
	Total         decimal.Decimal `json:"total" db:"total"`
	Status        InvoiceStatus   `json:"status" db:"status"`
}
