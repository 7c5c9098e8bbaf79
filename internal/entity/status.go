package entity

// Status is the closed triage state shared by quotes, contact messages
// and service requests. Transitions are unconstrained within the set.
type Status string

const (
	StatusNew        Status = "new"
	StatusInProgress Status = "in-progress"
	StatusQuoted     Status = "quoted"
	StatusClosed     Status = "closed"
)

// Valid reports whether s is one of the known triage states.
func (s Status) Valid() bool {
	switch s {
	case StatusNew, StatusInProgress, StatusQuoted, StatusClosed:
		return true
	}
	return false
}

// RequestType tags a service request with the kind of policy service
// being asked for.
type RequestType string

const (
	RequestAddDriver       RequestType = "add_driver"
	RequestAddVehicle      RequestType = "add_vehicle"
	RequestCertificate     RequestType = "certificate_request"
	RequestChangeAddress   RequestType = "change_address"
	RequestClaimForm       RequestType = "claim_form"
	RequestIDCard          RequestType = "id_card_request"
	RequestPaymentsClaims  RequestType = "payments_claims"
	RequestPolicyChange    RequestType = "policy_change"
	RequestQuestions       RequestType = "questions_comments"
	RequestRemoveDriver    RequestType = "remove_driver"
	RequestRemoveVehicle   RequestType = "remove_vehicle"
	RequestRenewalReview   RequestType = "renewal_review"
)

var requestTypes = map[RequestType]struct{}{
	RequestAddDriver:      {},
	RequestAddVehicle:     {},
	RequestCertificate:    {},
	RequestChangeAddress:  {},
	RequestClaimForm:      {},
	RequestIDCard:         {},
	RequestPaymentsClaims: {},
	RequestPolicyChange:   {},
	RequestQuestions:      {},
	RequestRemoveDriver:   {},
	RequestRemoveVehicle:  {},
	RequestRenewalReview:  {},
}

// Valid reports whether t is one of the supported request types.
func (t RequestType) Valid() bool {
	_, ok := requestTypes[t]
	return ok
}
