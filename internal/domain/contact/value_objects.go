package contact

import (
	"errors"
	"regexp"
	"strings"
)

var (
	ErrInvalidEmail = errors.New("invalid email format")
	ErrInvalidPhone = errors.New("invalid phone number")
)

var (
	emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	phoneRegex = regexp.MustCompile(`^\+?[0-9 ()\-]{7,20}$`)
)

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

// NewOptionalEmail treats nil and blank as absent.
func NewOptionalEmail(s *string) (*Email, error) {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil, nil
	}
	e, err := NewEmail(*s)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

type Phone struct {
	value string
}

func NewPhone(s string) (Phone, error) {
	s = strings.TrimSpace(s)
	if !phoneRegex.MatchString(s) {
		return Phone{}, ErrInvalidPhone
	}
	return Phone{value: s}, nil
}

func (p Phone) Value() string {
	return p.value
}

func NewOptionalPhone(s *string) (*Phone, error) {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil, nil
	}
	p, err := NewPhone(*s)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Text trims and drops blank optional values.
func Text(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	if t == "" {
		return nil
	}
	return &t
}

func EmailValue(e *Email) *string {
	if e == nil {
		return nil
	}
	v := e.value
	return &v
}

func PhoneValue(p *Phone) *string {
	if p == nil {
		return nil
	}
	v := p.value
	return &v
}
