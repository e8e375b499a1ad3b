package validation

import (
	"regexp"
	"strings"
)

var emailPattern = regexp.MustCompile(`^.+@.+\..+$`)

// CredentialsPayload is a validated register/login body.
type CredentialsPayload struct {
	Email    string
	Password string
}

// ParseCredentials validates an auth payload. Emails are trimmed and
// lowercased; passwords must be at least five characters.
func ParseCredentials(body []byte) (*CredentialsPayload, error) {
	var raw struct {
		Email    *string `json:"email"`
		Password *string `json:"password"`
	}
	if err := decodeStrict(body, &raw); err != nil {
		return nil, errorf("malformed body")
	}

	var problems []string
	var email, password string

	if raw.Email == nil {
		problems = append(problems, "email is required")
	} else {
		email = strings.ToLower(strings.TrimSpace(*raw.Email))
		if !emailPattern.MatchString(email) {
			problems = append(problems, "email is not a valid address")
		}
	}

	switch {
	case raw.Password == nil:
		problems = append(problems, "password is required")
	case len(strings.TrimSpace(*raw.Password)) < 5:
		problems = append(problems, "password should be at least 5 characters")
	default:
		password = strings.TrimSpace(*raw.Password)
	}

	if len(problems) > 0 {
		return nil, &Error{Problems: problems}
	}
	return &CredentialsPayload{Email: email, Password: password}, nil
}
