package user

import (
	"errors"
	"regexp"
	"strings"
	"unicode/utf8"
)

var (
	ErrInvalidEmail    = errors.New("email must be valid (e.g. user@domain.com)")
	ErrInvalidRole     = errors.New("invalid role")
	ErrPasswordTooWeak = errors.New("password must be at least 4 characters long")
	ErrNameRequired    = errors.New("first name and last name are required")
	ErrPhoneRequired   = errors.New("phone is required")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
)

const (
	MinPasswordLength = 4
	MaxNameLength     = 100
	MaxPhoneLength    = 30
)

var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

type Email struct {
	value string
}

func NewEmail(s string) (Email, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if !emailRegex.MatchString(s) {
		return Email{}, ErrInvalidEmail
	}
	return Email{value: s}, nil
}

func (e Email) Value() string {
	return e.value
}

type Password struct {
	value string
}

func NewPassword(s string) (Password, error) {
	if utf8.RuneCountInString(s) < MinPasswordLength {
		return Password{}, ErrPasswordTooWeak
	}
	return Password{value: s}, nil
}

func (p Password) Value() string {
	return p.value
}

type Profile struct {
	firstName string
	lastName  string
	phone     string
}

// NewProfile requires a phone only for accounts created by staff at the desk.
func NewProfile(firstName, lastName, phone string, phoneRequired bool) (Profile, error) {
	firstName = strings.TrimSpace(firstName)
	lastName = strings.TrimSpace(lastName)
	phone = strings.TrimSpace(phone)

	if firstName == "" || lastName == "" {
		return Profile{}, ErrNameRequired
	}
	if phoneRequired && phone == "" {
		return Profile{}, ErrPhoneRequired
	}
	if utf8.RuneCountInString(firstName) > MaxNameLength ||
		utf8.RuneCountInString(lastName) > MaxNameLength ||
		utf8.RuneCountInString(phone) > MaxPhoneLength {
		return Profile{}, ErrFieldTooLong
	}
	return Profile{firstName: firstName, lastName: lastName, phone: phone}, nil
}

func (p Profile) FirstName() string { return p.firstName }
func (p Profile) LastName() string  { return p.lastName }
func (p Profile) Phone() string     { return p.phone }

func (p Profile) FullName() string {
	return p.firstName + " " + p.lastName
}

type Credentials struct {
	email    Email
	password Password
}

func NewCredentials(emailStr, passwordStr string) (Credentials, error) {
	email, err := NewEmail(emailStr)
	if err != nil {
		return Credentials{}, err
	}

	password, err := NewPassword(passwordStr)
	if err != nil {
		return Credentials{}, err
	}

	return Credentials{
		email:    email,
		password: password,
	}, nil
}

func (c Credentials) Email() Email       { return c.email }
func (c Credentials) Password() Password { return c.password }
