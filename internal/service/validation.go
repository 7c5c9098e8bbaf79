package service

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/nyaruka/phonenumbers"
	"golang.org/x/net/idna"
)

var (
	emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+\-']+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	idnaProfile  = idna.Lookup
)

const defaultPhoneRegion = "US"

// ValidationError reports a rejected intake field. It maps to HTTP 400;
// nothing is persisted when one is returned.
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func invalidField(field, message string) ValidationError {
	return ValidationError{Field: field, Message: message}
}

// Validator normalizes and checks intake payload fields.
type Validator struct {
	// DefaultRegion is the phonenumbers region used for numbers
	// submitted without a country prefix.
	DefaultRegion string
}

// NewValidator builds a validator with the given default phone region.
func NewValidator(region string) *Validator {
	r := strings.ToUpper(strings.TrimSpace(region))
	if r == "" {
		r = defaultPhoneRegion
	}
	return &Validator{DefaultRegion: r}
}

// Email validates syntax and the IDNA form of the domain. The cleaned
// address is returned lowercased.
func (v *Validator) Email(field, raw string) (string, error) {
	email := strings.ToLower(strings.TrimSpace(raw))
	if email == "" {
		return "", invalidField(field, "is required")
	}
	if !emailPattern.MatchString(email) {
		return "", invalidField(field, "must be a valid email address")
	}
	domain := email[strings.LastIndex(email, "@")+1:]
	if ascii, err := idnaProfile.ToASCII(domain); err != nil || ascii == "" {
		return "", invalidField(field, "has an invalid domain")
	}
	return email, nil
}

// Phone normalizes a phone number to E.164 when it parses for the
// default region; unparseable input is kept as submitted since lead
// forms frequently carry extensions or free-text numbers.
func (v *Validator) Phone(field, raw string) (string, error) {
	phone := strings.TrimSpace(raw)
	if phone == "" {
		return "", invalidField(field, "is required")
	}
	parsed, err := phonenumbers.Parse(phone, v.DefaultRegion)
	if err == nil && phonenumbers.IsValidNumber(parsed) {
		return phonenumbers.Format(parsed, phonenumbers.E164), nil
	}
	return phone, nil
}

// Required trims and checks a mandatory text field.
func (v *Validator) Required(field, raw string) (string, error) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return "", invalidField(field, "is required")
	}
	return value, nil
}

// MinLen trims and enforces a minimum character count.
func (v *Validator) MinLen(field, raw string, min int) (string, error) {
	value := strings.TrimSpace(raw)
	if len(value) < min {
		return "", invalidField(field, fmt.Sprintf("must be at least %d characters", min))
	}
	return value, nil
}

// Optional trims an optional field, returning nil for empty input so it
// is stored as NULL rather than an empty string.
func Optional(raw string) *string {
	value := strings.TrimSpace(raw)
	if value == "" {
		return nil
	}
	return &value
}
