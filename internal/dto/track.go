package dto

// TrackRequest is the analytics beacon payload posted on page load.
type TrackRequest struct {
	SessionID string `json:"sessionId"`
	Path      string `json:"path"`
	Referrer  string `json:"referrer"`
	UTMSource string `json:"utmSource"`
	UTMMedium string `json:"utmMedium"`
	UTMTerm   string `json:"utmTerm"`
	Device    string `json:"device"`
	Browser   string `json:"browser"`
	OS        string `json:"os"`
}
