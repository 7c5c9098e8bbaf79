package entity

import (
	"time"

	"github.com/google/uuid"
)

// PageView is a single tracked page load.
type PageView struct {
	ID        uuid.UUID `json:"id"`
	SessionID string    `json:"sessionId"`
	Path      string    `json:"path"`
	Referrer  *string   `json:"referrer,omitempty"`
	UTMSource *string   `json:"utmSource,omitempty"`
	UTMMedium *string   `json:"utmMedium,omitempty"`
	UTMTerm   *string   `json:"utmTerm,omitempty"`
	Device    *string   `json:"device,omitempty"`
	Browser   *string   `json:"browser,omitempty"`
	OS        *string   `json:"os,omitempty"`
	IP        *string   `json:"ip,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// VisitorSession aggregates page views per browser session. Rows are
// deduplicated by session id; repeat views bump the page count and
// advance the last-visit timestamp.
type VisitorSession struct {
	SessionID    string    `json:"sessionId"`
	IP           *string   `json:"ip,omitempty"`
	Referrer     *string   `json:"referrer,omitempty"`
	UTMSource    *string   `json:"utmSource,omitempty"`
	Device       *string   `json:"device,omitempty"`
	Browser      *string   `json:"browser,omitempty"`
	OS           *string   `json:"os,omitempty"`
	PageCount    int       `json:"pageCount"`
	FirstVisitAt time.Time `json:"firstVisitAt"`
	LastVisitAt  time.Time `json:"lastVisitAt"`
}
