package httpapi

import (
	"html"
	"regexp"
	"strings"
)

// Contact form constraints carried over from the public site's schema.
var (
	nameRe  = regexp.MustCompile(`^[a-zA-Z\s]+$`)
	emailRe = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	tagRe   = regexp.MustCompile(`<[^>]*>`)
)

// validateContact checks the submission fields and returns per-field
// message lists, empty when everything passes.
func validateContact(name, email, message string) map[string][]string {
	errs := make(map[string][]string)

	switch {
	case name == "":
		errs["name"] = append(errs["name"], "Name is required")
	case len(name) < 2 || len(name) > 100:
		errs["name"] = append(errs["name"], "Name must be between 2 and 100 characters")
	case !nameRe.MatchString(name):
		errs["name"] = append(errs["name"], "Name can only contain letters and spaces")
	}

	switch {
	case email == "":
		errs["email"] = append(errs["email"], "Email is required")
	case !emailRe.MatchString(email):
		errs["email"] = append(errs["email"], "Invalid email format")
	}

	switch {
	case message == "":
		errs["message"] = append(errs["message"], "Message is required")
	case len(message) < 10:
		errs["message"] = append(errs["message"], "Message must be at least 10 characters long")
	case len(message) > 1000:
		errs["message"] = append(errs["message"], "Message must not exceed 1000 characters")
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

// sanitizeInput strips markup and escapes what remains before anything
// user-supplied is stored or mailed.
func sanitizeInput(s string) string {
	s = tagRe.ReplaceAllString(s, "")
	return strings.TrimSpace(html.EscapeString(s))
}
