// Package validation contains write-time validation rules for domain fields.
package validation

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"murmur/internal/models"
)

const emailMaxLen = 50

// NormalizeUsername trims surrounding whitespace; the trimmed form is the
// canonical one stored and matched against.
func NormalizeUsername(username string) string {
	return strings.TrimSpace(username)
}

// ValidateUsername checks that a username is non-empty after trimming.
func ValidateUsername(username string) error {
	if NormalizeUsername(username) == "" {
		return fmt.Errorf("username is required")
	}
	return nil
}

// ValidateEmail checks length and a basic local@domain.tld shape. Anything
// stricter belongs to a verification flow, not schema validation.
func ValidateEmail(email string) error {
	if email == "" {
		return fmt.Errorf("email is required")
	}
	if len(email) > emailMaxLen {
		return fmt.Errorf("email must be at most %d characters", emailMaxLen)
	}
	at := strings.Index(email, "@")
	if at <= 0 || at == len(email)-1 {
		return fmt.Errorf("%q is not a valid email address", email)
	}
	local, domain := email[:at], email[at+1:]
	if strings.ContainsAny(local, " @") {
		return fmt.Errorf("%q is not a valid email address", email)
	}
	dot := strings.LastIndex(domain, ".")
	if dot <= 0 || len(domain)-dot-1 < 2 {
		return fmt.Errorf("%q is not a valid email address", email)
	}
	if strings.ContainsAny(domain, " @") || strings.Contains(domain, "..") {
		return fmt.Errorf("%q is not a valid email address", email)
	}
	return nil
}

// ValidateThoughtText checks the 1-280 character bound on thought text.
// Length is counted in runes so multibyte text is not penalized.
func ValidateThoughtText(text string) error {
	n := utf8.RuneCountInString(text)
	if n < models.ThoughtTextMinLen {
		return fmt.Errorf("thought text is required")
	}
	if n > models.ThoughtTextMaxLen {
		return fmt.Errorf("thought text must be at most %d characters", models.ThoughtTextMaxLen)
	}
	return nil
}

// ValidateReactionBody checks the 1-280 character bound on reaction bodies.
func ValidateReactionBody(body string) error {
	n := utf8.RuneCountInString(body)
	if n < models.ReactionBodyMinLen {
		return fmt.Errorf("reaction body is required")
	}
	if n > models.ReactionBodyMaxLen {
		return fmt.Errorf("reaction body must be at most %d characters", models.ReactionBodyMaxLen)
	}
	return nil
}
