package validation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRequired(t *testing.T) {
	errs := Errors{}
	Required(errs, "name", "")
	Required(errs, "title", "   ")
	Required(errs, "ok", "value")

	assert.Equal(t, []string{"This field is required"}, errs["name"])
	assert.Equal(t, []string{"This field is required"}, errs["title"])
	assert.NotContains(t, errs, "ok")
}

func TestErrCollectsAllViolations(t *testing.T) {
	errs := Errors{}
	Required(errs, "username", "")
	Required(errs, "email", "")
	Email(errs, "email", "")

	err := errs.Err()
	assert.Error(t, err)
	assert.Len(t, errs, 2)
	assert.Contains(t, err.Error(), "email")
	assert.Contains(t, err.Error(), "username")

	assert.NoError(t, Errors{}.Err())
}

func TestPassword(t *testing.T) {
	cases := []struct {
		name     string
		password string
		messages []string
	}{
		{"valid", "Abc12345", nil},
		{"no uppercase", "abc12345", []string{"Password must contain at least one uppercase letter"}},
		{"no digit", "Abcdefgh", []string{"Password must contain at least one digit"}},
		{"too short", "Ab1", []string{
			"Password must be at least 8 characters long",
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			errs := Errors{}
			Password(errs, "password", tc.password)
			if tc.messages == nil {
				assert.Empty(t, errs["password"])
				return
			}
			for _, m := range tc.messages {
				assert.Contains(t, errs["password"], m)
			}
		})
	}
}

func TestEmail(t *testing.T) {
	errs := Errors{}
	Email(errs, "email", "alice@example.com")
	assert.Empty(t, errs)

	Email(errs, "email", "not-an-email")
	assert.Equal(t, []string{"Not a valid email address"}, errs["email"])
}

func TestSlug(t *testing.T) {
	errs := Errors{}
	Slug(errs, "slug", "about-us-2024")
	assert.Empty(t, errs)

	Slug(errs, "slug", "About Us")
	assert.Equal(t, []string{"Slug must contain only lowercase letters, numbers, and hyphens"}, errs["slug"])
}

func TestSafeFilename(t *testing.T) {
	errs := Errors{}
	SafeFilename(errs, "filename", "sermon-2026.mp3")
	assert.Empty(t, errs)

	SafeFilename(errs, "filename", "../etc/passwd")
	assert.Equal(t, []string{"Filename contains invalid characters"}, errs["filename"])
}

func TestHTTPURL(t *testing.T) {
	errs := Errors{}
	HTTPURL(errs, "audio_url", "https://cdn.example.com/a.mp3")
	HTTPURL(errs, "skipped", "")
	assert.Empty(t, errs)

	HTTPURL(errs, "audio_url", "ftp://example.com/a.mp3")
	assert.Len(t, errs["audio_url"], 1)
}

func TestPathOrHTTPURL(t *testing.T) {
	errs := Errors{}
	PathOrHTTPURL(errs, "url", "/about")
	PathOrHTTPURL(errs, "url", "https://example.com")
	assert.Empty(t, errs)

	PathOrHTTPURL(errs, "url", "about")
	assert.Equal(t, []string{"URL must start with / or be a full URL (http:// or https://)"}, errs["url"])
}

func TestPhone(t *testing.T) {
	errs := Errors{}
	Phone(errs, "phone", "+1 (555) 123-4567")
	assert.Empty(t, errs)

	Phone(errs, "phone", "12345")
	assert.Equal(t, []string{"Phone number must be at least 10 digits"}, errs["phone"])

	errs = Errors{}
	Phone(errs, "phone", "555-CALL-NOW")
	assert.Equal(t, []string{"Phone number must contain only digits and common separators"}, errs["phone"])
}

func TestTimeOfDay(t *testing.T) {
	errs := Errors{}
	TimeOfDay(errs, "meeting_time", "19:30")
	assert.Empty(t, errs)

	TimeOfDay(errs, "meeting_time", "25:00")
	assert.Equal(t, []string{"Invalid time format. Use HH:MM"}, errs["meeting_time"])

	errs = Errors{}
	TimeOfDay(errs, "meeting_time", "05:00")
	assert.Equal(t, []string{"Meeting time should be between 6:00 AM and 11:00 PM"}, errs["meeting_time"])
}

func TestNotInFuture(t *testing.T) {
	errs := Errors{}
	past := time.Now().Add(-24 * time.Hour)
	NotInFuture(errs, "join_date", &past)
	NotInFuture(errs, "nil_date", nil)
	assert.Empty(t, errs)

	future := time.Now().Add(24 * time.Hour)
	NotInFuture(errs, "join_date", &future)
	assert.Equal(t, []string{"Date cannot be in the future"}, errs["join_date"])
}

func TestContainsDigit(t *testing.T) {
	errs := Errors{}
	ContainsDigit(errs, "scripture_reference", "John 3:16", "needs numbers")
	ContainsDigit(errs, "empty", "", "needs numbers")
	assert.Empty(t, errs)

	ContainsDigit(errs, "scripture_reference", "John", "needs numbers")
	assert.Equal(t, []string{"needs numbers"}, errs["scripture_reference"])
}

func TestOneOfAndRanges(t *testing.T) {
	errs := Errors{}
	OneOf(errs, "status", "confirmed", "confirmed", "pending", "cancelled")
	IntRange(errs, "guests_count", 5, 0, 10)
	Min(errs, "order", 0, 0)
	assert.Empty(t, errs)

	OneOf(errs, "status", "maybe", "confirmed", "pending", "cancelled")
	IntRange(errs, "guests_count", 11, 0, 10)
	Min(errs, "order", -1, 0)
	assert.Equal(t, []string{"Must be one of: confirmed, pending, cancelled"}, errs["status"])
	assert.Equal(t, []string{"Must be between 0 and 10"}, errs["guests_count"])
	assert.Equal(t, []string{"Must be at least 0"}, errs["order"])
}
