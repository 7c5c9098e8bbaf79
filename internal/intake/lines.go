// Package intake holds the per-line form configuration. Each coverage
// line the brokerage quotes is described by one Line entry; a single
// handler/service path executes all of them, so adding a line is a
// registry edit rather than a new endpoint implementation.
package intake

// Line describes one coverage line accepted by the per-line quote
// endpoints.
type Line struct {
	// Tag is the URL segment and quote-type identifier, e.g. "tnc".
	Tag string
	// Table is the backing per-line table name. Only values from this
	// registry ever reach SQL.
	Table string
	// Display is the human-readable line name used in notification
	// emails and reference-number prefixes.
	Display string
	// RefPrefix is the reference-number prefix for the line.
	RefPrefix string
}

var lines = []Line{
	{Tag: "limousine", Table: "limo_quotes", Display: "Limousine", RefPrefix: "LIM"},
	{Tag: "tnc", Table: "tnc_quotes", Display: "TNC / Rideshare", RefPrefix: "TNC"},
	{Tag: "nemt", Table: "nemt_quotes", Display: "NEMT", RefPrefix: "NMT"},
	{Tag: "public-auto", Table: "public_auto_quotes", Display: "Public Auto", RefPrefix: "PUB"},
	{Tag: "workers-comp", Table: "workers_comp_quotes", Display: "Workers' Compensation", RefPrefix: "WRC"},
	{Tag: "excess-liability", Table: "excess_liability_quotes", Display: "Excess Liability", RefPrefix: "EXL"},
	{Tag: "cyber-liability", Table: "cyber_liability_quotes", Display: "Cyber Liability", RefPrefix: "CYB"},
	{Tag: "ambulance", Table: "ambulance_quotes", Display: "Ambulance", RefPrefix: "AMB"},
	{Tag: "captive", Table: "captive_quotes", Display: "Captive Program", RefPrefix: "CAP"},
}

var byTag = func() map[string]Line {
	m := make(map[string]Line, len(lines))
	for _, l := range lines {
		m[l.Tag] = l
	}
	return m
}()

// Lookup resolves a line tag to its configuration.
func Lookup(tag string) (Line, bool) {
	l, ok := byTag[tag]
	return l, ok
}

// All returns every registered line in declaration order.
func All() []Line {
	out := make([]Line, len(lines))
	copy(out, lines)
	return out
}

// TransportQuoteTypes are the quote-type tags accepted by the
// generalized transport quote endpoint.
var TransportQuoteTypes = map[string]struct{}{
	"limousine":   {},
	"tnc":         {},
	"nemt":        {},
	"public-auto": {},
	"taxi":        {},
	"school-bus":  {},
	"motorcoach":  {},
	"ambulance":   {},
	"captive":     {},
}

// ValidTransportQuoteType reports whether tag is a known quote type for
// the generalized transport quote table.
func ValidTransportQuoteType(tag string) bool {
	_, ok := TransportQuoteTypes[tag]
	return ok
}
