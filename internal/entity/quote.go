package entity

import (
	"time"

	"github.com/google/uuid"
)

// TransportQuote is the generalized quote-request record. A row is
// created once at submission and afterwards only its status and notes
// change; the reference number is immutable once assigned.
type TransportQuote struct {
	ID              uuid.UUID `json:"id"`
	ReferenceNumber string    `json:"referenceNumber"`
	QuoteType       string    `json:"quoteType"`
	Status          Status    `json:"status"`
	Notes           *string   `json:"notes,omitempty"`

	BusinessName string  `json:"businessName"`
	DBA          *string `json:"dba,omitempty"`
	ContactName  string  `json:"contactName"`
	Email        string  `json:"email"`
	Phone        string  `json:"phone"`
	Website      *string `json:"website,omitempty"`

	Street *string `json:"street,omitempty"`
	City   *string `json:"city,omitempty"`
	State  *string `json:"state,omitempty"`
	Zip    *string `json:"zip,omitempty"`

	CPUCNumber *string `json:"cpucNumber,omitempty"`
	TCPNumber  *string `json:"tcpNumber,omitempty"`

	EffectiveDate     *string  `json:"effectiveDate,omitempty"`
	LiabilityLimit    *string  `json:"liabilityLimit,omitempty"`
	CurrentCarrier    *string  `json:"currentCarrier,omitempty"`
	CurrentPremium    *string  `json:"currentPremium,omitempty"`
	ExpirationDate    *string  `json:"expirationDate,omitempty"`
	OperatingRadius   *string  `json:"operatingRadius,omitempty"`
	StatesOfOperation *string  `json:"statesOfOperation,omitempty"`
	FilingsNeeded     []string `json:"filingsNeeded,omitempty"`

	// Vehicle and driver schedules arrive as client-serialized text and
	// are stored opaque, not normalized.
	VehicleInfo *string `json:"vehicleInfo,omitempty"`
	DriverInfo  *string `json:"driverInfo,omitempty"`

	LossHistory    *string  `json:"lossHistory,omitempty"`
	Documents      []string `json:"documents,omitempty"`
	AdditionalInfo *string  `json:"additionalInfo,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
}

// LineQuote is the shared shape of the per-line quote tables
// (limousine, tnc, nemt, public-auto, workers-comp, excess-liability,
// cyber-liability, ambulance, captive). The tables predate
// transport_quotes and are still written by the per-line intake
// endpoints.
type LineQuote struct {
	ID              uuid.UUID `json:"id"`
	ReferenceNumber string    `json:"referenceNumber"`
	Line            string    `json:"line"`
	Status          Status    `json:"status"`

	BusinessName string  `json:"businessName"`
	DBA          *string `json:"dba,omitempty"`
	ContactName  string  `json:"contactName"`
	Email        string  `json:"email"`
	Phone        string  `json:"phone"`
	Address      *string `json:"address,omitempty"`

	EffectiveDate  *string  `json:"effectiveDate,omitempty"`
	LiabilityLimit *string  `json:"liabilityLimit,omitempty"`
	CurrentCarrier *string  `json:"currentCarrier,omitempty"`
	Documents      []string `json:"documents,omitempty"`
	AdditionalInfo *string  `json:"additionalInfo,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
}
