package dto

// TransportQuoteRequest is the payload for the generalized quote
// endpoint. Optional fields may arrive as empty strings; they are
// stored as NULL.
type TransportQuoteRequest struct {
	QuoteType string `json:"quoteType"`

	BusinessName string `json:"businessName"`
	DBA          string `json:"dba"`
	ContactName  string `json:"contactName"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	Website      string `json:"website"`

	Street string `json:"street"`
	City   string `json:"city"`
	State  string `json:"state"`
	Zip    string `json:"zip"`

	CPUCNumber string `json:"cpucNumber"`
	TCPNumber  string `json:"tcpNumber"`

	EffectiveDate     string   `json:"effectiveDate"`
	LiabilityLimit    string   `json:"liabilityLimit"`
	CurrentCarrier    string   `json:"currentCarrier"`
	CurrentPremium    string   `json:"currentPremium"`
	ExpirationDate    string   `json:"expirationDate"`
	OperatingRadius   string   `json:"operatingRadius"`
	StatesOfOperation string   `json:"statesOfOperation"`
	FilingsNeeded     []string `json:"filingsNeeded"`

	VehicleInfo string `json:"vehicleInfo"`
	DriverInfo  string `json:"driverInfo"`

	LossHistory    string   `json:"lossHistory"`
	Documents      []string `json:"documents"`
	AdditionalInfo string   `json:"additionalInfo"`
}

// LineQuoteRequest is the payload shared by the per-line quote
// endpoints; the line tag comes from the URL, not the body.
type LineQuoteRequest struct {
	BusinessName string `json:"businessName"`
	DBA          string `json:"dba"`
	ContactName  string `json:"contactName"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`

	Street string `json:"street"`
	City   string `json:"city"`
	State  string `json:"state"`
	Zip    string `json:"zip"`

	EffectiveDate  string   `json:"effectiveDate"`
	LiabilityLimit string   `json:"liabilityLimit"`
	CurrentCarrier string   `json:"currentCarrier"`
	Documents      []string `json:"documents"`
	AdditionalInfo string   `json:"additionalInfo"`
}

// QuoteRef carries the customer-facing tracking identifier back to the
// submitting form.
type QuoteRef struct {
	ReferenceNumber string `json:"referenceNumber"`
}

// QuoteResponse is the intake success envelope:
// {"success": true, "quote": {"referenceNumber": "..."}}.
type QuoteResponse struct {
	Success bool     `json:"success"`
	Quote   QuoteRef `json:"quote"`
}

// IntakeError is the intake failure envelope.
type IntakeError struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// StatusUpdateRequest patches the triage state of a record. Notes is
// optional; the "save notes" flow sends the current status unchanged
// alongside new notes text.
type StatusUpdateRequest struct {
	Status string  `json:"status"`
	Notes  *string `json:"notes,omitempty"`
}
