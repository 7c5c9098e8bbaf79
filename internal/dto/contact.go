package dto

// ContactRequest is the contact-form payload. Subject defaults to
// "General Inquiry" when blank.
type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// ServiceRequestPayload is the shared payload for all twelve service
// request types; only RequestType varies per submitting page.
type ServiceRequestPayload struct {
	RequestType    string `json:"requestType"`
	PolicyNumber   string `json:"policyNumber"`
	InsuredName    string `json:"insuredName"`
	ContactName    string `json:"contactName"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	EffectiveDate  string `json:"effectiveDate"`
	Details        string `json:"details"`
	AdditionalInfo string `json:"additionalInfo"`
}

// SubmitResponse is the generic intake success envelope for contact
// messages and service requests.
type SubmitResponse struct {
	Success bool   `json:"success"`
	ID      string `json:"id,omitempty"`
	Message string `json:"message,omitempty"`
}
