package entity

import (
	"time"

	"github.com/google/uuid"
)

// ContactMessage is a general inquiry submitted through the contact form.
type ContactMessage struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     *string   `json:"phone,omitempty"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	Status    Status    `json:"status"`
	Notes     *string   `json:"notes,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// ServiceRequest is a policy-service ask from an existing insured. The
// same shape backs all twelve request types; only RequestType varies.
type ServiceRequest struct {
	ID             uuid.UUID   `json:"id"`
	RequestType    RequestType `json:"requestType"`
	PolicyNumber   string      `json:"policyNumber"`
	InsuredName    string      `json:"insuredName"`
	ContactName    string      `json:"contactName"`
	Email          string      `json:"email"`
	Phone          string      `json:"phone"`
	EffectiveDate  *string     `json:"effectiveDate,omitempty"`
	Details        string      `json:"details"`
	AdditionalInfo *string     `json:"additionalInfo,omitempty"`
	Status         Status      `json:"status"`
	Notes          *string     `json:"notes,omitempty"`
	CreatedAt      time.Time   `json:"createdAt"`
}
