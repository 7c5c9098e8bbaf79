package dto

import "github.com/charterpoint/transport-leads-api/internal/entity"

// DashboardStats are the aggregate counts shown at the top of the admin
// dashboard.
type DashboardStats struct {
	TotalQuotes          int `json:"totalQuotes"`
	NewQuotes            int `json:"newQuotes"`
	TotalContacts        int `json:"totalContacts"`
	NewContacts          int `json:"newContacts"`
	TotalServiceRequests int `json:"totalServiceRequests"`
	NewServiceRequests   int `json:"newServiceRequests"`
}

// StatsResponse wraps DashboardStats in the dashboard envelope.
type StatsResponse struct {
	Success bool           `json:"success"`
	Stats   DashboardStats `json:"stats"`
}

// DashboardData is the full unpaginated row set the dashboard renders.
type DashboardData struct {
	Quotes          []entity.TransportQuote `json:"quotes"`
	Contacts        []entity.ContactMessage `json:"contacts"`
	ServiceRequests []entity.ServiceRequest `json:"serviceRequests"`
}

// DataResponse wraps DashboardData in the dashboard envelope.
type DataResponse struct {
	Success bool          `json:"success"`
	Data    DashboardData `json:"data"`
}
