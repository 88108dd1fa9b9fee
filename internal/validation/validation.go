package validation

import (
	"fmt"
	"net/mail"
	"net/url"
	"regexp"
	"sort"
	"strings"
	"time"
	"unicode"
)

// Errors maps a field name to the list of messages for every rule it
// violated. It implements error so services can hand it straight back to
// the handler boundary, where it becomes a 400 with the mapping as body.
type Errors map[string][]string

func (e Errors) Add(field, message string) {
	e[field] = append(e[field], message)
}

func (e Errors) Any() bool { return len(e) > 0 }

// Err returns e as an error, or nil when no rule failed. Field-level rules
// are collected; callers run cross-field and store-dependent checks only
// after Err() comes back nil.
func (e Errors) Err() error {
	if len(e) == 0 {
		return nil
	}
	return e
}

func (e Errors) Error() string {
	fields := make([]string, 0, len(e))
	for f := range e {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	return fmt.Sprintf("validation failed on %s", strings.Join(fields, ", "))
}

var (
	slugRe        = regexp.MustCompile(`^[a-z0-9-]+$`)
	badFilenameRe = regexp.MustCompile(`[<>:"/\\|?*]`)
	httpURLRe     = regexp.MustCompile(`^https?://`)
	timeOfDayRe   = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)
	nonDigitRe    = regexp.MustCompile(`\D`)
)

func Required(e Errors, field, value string) {
	if strings.TrimSpace(value) == "" {
		e.Add(field, "This field is required")
	}
}

func Length(e Errors, field, value string, min, max int) {
	if value == "" {
		return
	}
	n := len([]rune(value))
	if n < min || n > max {
		e.Add(field, fmt.Sprintf("Length must be between %d and %d", min, max))
	}
}

func MaxLength(e Errors, field, value string, max int) {
	if len([]rune(value)) > max {
		e.Add(field, fmt.Sprintf("Length must be at most %d", max))
	}
}

func OneOf(e Errors, field, value string, allowed ...string) {
	if value == "" {
		return
	}
	for _, a := range allowed {
		if value == a {
			return
		}
	}
	e.Add(field, fmt.Sprintf("Must be one of: %s", strings.Join(allowed, ", ")))
}

func IntRange(e Errors, field string, value, min, max int) {
	if value < min || value > max {
		e.Add(field, fmt.Sprintf("Must be between %d and %d", min, max))
	}
}

func Min(e Errors, field string, value, min int) {
	if value < min {
		e.Add(field, fmt.Sprintf("Must be at least %d", min))
	}
}

func Email(e Errors, field, value string) {
	if value == "" {
		return
	}
	addr, err := mail.ParseAddress(value)
	if err != nil || addr.Address != value {
		e.Add(field, "Not a valid email address")
	}
}

// HTTPURL restricts URLs to the http and https schemes.
func HTTPURL(e Errors, field, value string) {
	if value == "" {
		return
	}
	u, err := url.Parse(value)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		e.Add(field, "Not a valid URL (http or https only)")
	}
}

// PathOrHTTPURL accepts site-relative paths (/about) or full http(s) URLs.
func PathOrHTTPURL(e Errors, field, value string) {
	if value == "" {
		return
	}
	if !strings.HasPrefix(value, "/") && !httpURLRe.MatchString(value) {
		e.Add(field, "URL must start with / or be a full URL (http:// or https://)")
	}
}

func Slug(e Errors, field, value string) {
	if value == "" {
		return
	}
	if !slugRe.MatchString(value) {
		e.Add(field, "Slug must contain only lowercase letters, numbers, and hyphens")
	}
}

func SafeFilename(e Errors, field, value string) {
	if value == "" {
		return
	}
	if badFilenameRe.MatchString(value) {
		e.Add(field, "Filename contains invalid characters")
	}
}

// Phone strips common separators and requires at least ten digits.
func Phone(e Errors, field, value string) {
	if value == "" {
		return
	}
	cleaned := strings.NewReplacer("-", "", "(", "", ")", "", " ", "", "+", "").Replace(value)
	if nonDigitRe.MatchString(cleaned) {
		e.Add(field, "Phone number must contain only digits and common separators")
		return
	}
	if len(cleaned) < 10 {
		e.Add(field, "Phone number must be at least 10 digits")
	}
}

// TimeOfDay validates an HH:MM string and keeps it within waking hours.
func TimeOfDay(e Errors, field, value string) {
	if value == "" {
		return
	}
	if !timeOfDayRe.MatchString(value) {
		e.Add(field, "Invalid time format. Use HH:MM")
		return
	}
	hour := int(value[0]-'0')*10 + int(value[1]-'0')
	if hour < 6 {
		e.Add(field, "Meeting time should be between 6:00 AM and 11:00 PM")
	}
}

func NotInFuture(e Errors, field string, value *time.Time) {
	if value != nil && value.After(time.Now()) {
		e.Add(field, "Date cannot be in the future")
	}
}

// Password enforces the registration policy: minimum 8 characters with at
// least one digit, one uppercase and one lowercase letter.
func Password(e Errors, field, value string) {
	if len(value) < 8 {
		e.Add(field, "Password must be at least 8 characters long")
	}
	if len(value) > 100 {
		e.Add(field, "Password must be at most 100 characters long")
	}
	var hasDigit, hasUpper, hasLower bool
	for _, r := range value {
		switch {
		case unicode.IsDigit(r):
			hasDigit = true
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		}
	}
	if !hasDigit {
		e.Add(field, "Password must contain at least one digit")
	}
	if !hasUpper {
		e.Add(field, "Password must contain at least one uppercase letter")
	}
	if !hasLower {
		e.Add(field, "Password must contain at least one lowercase letter")
	}
}

// ContainsDigit is used for scripture references, which should carry
// chapter/verse numbers.
func ContainsDigit(e Errors, field, value, message string) {
	if value == "" {
		return
	}
	for _, r := range value {
		if unicode.IsDigit(r) {
			return
		}
	}
	e.Add(field, message)
}
