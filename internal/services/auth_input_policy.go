package services

import (
	"errors"
	"net/mail"
	"strings"
)

var ErrIncompleteInput = errors.New("incomplete input")

type RegistrationInput struct {
	Nome     string
	Email    string
	Password string
}

func NormalizeAuthEmail(raw string) string {
	email := strings.ToLower(strings.TrimSpace(raw))
	if email == "" {
		return ""
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return ""
	}
	return email
}

// NormalizeCredentialsInput trims and validates a login pair. Both fields are
// required; the email must be well formed.
func NormalizeCredentialsInput(emailRaw string, passwordRaw string) (string, string, error) {
	email := NormalizeAuthEmail(emailRaw)
	password := strings.TrimSpace(passwordRaw)
	if email == "" || password == "" {
		return "", "", ErrIncompleteInput
	}
	return email, password, nil
}

// NormalizeRegistrationInput fails when any of name, email, or password is
// missing or blank.
func NormalizeRegistrationInput(nomeRaw string, emailRaw string, passwordRaw string) (RegistrationInput, error) {
	nome := strings.TrimSpace(nomeRaw)
	email, password, err := NormalizeCredentialsInput(emailRaw, passwordRaw)
	if err != nil || nome == "" {
		return RegistrationInput{}, ErrIncompleteInput
	}
	return RegistrationInput{Nome: nome, Email: email, Password: password}, nil
}
