package voucher

import (
	"errors"
	"strings"
	"unicode/utf8"

	"airvoucher-admin/internal/pkg/money"
)

var (
	ErrNameRequired      = errors.New("voucher name is required")
	ErrNameTooLong       = errors.New("voucher name is too long")
	ErrCategoryRequired  = errors.New("voucher category is required")
	ErrVendorRequired    = errors.New("voucher vendor is required")
	ErrSupplierRequired  = errors.New("voucher supplier is required")
	ErrInvalidAmount     = errors.New("voucher amount must be greater than zero")
	ErrInvalidStatus     = errors.New("invalid voucher status")
	ErrInvalidTransition = errors.New("voucher status transition not allowed")
)

const MaxNameLength = 120

type Status string

const (
	StatusActive  Status = "active"
	StatusSold    Status = "sold"
	StatusExpired Status = "expired"
)

func NewStatus(s string) (Status, error) {
	status := Status(strings.ToLower(strings.TrimSpace(s)))
	switch status {
	case StatusActive, StatusSold, StatusExpired:
		return status, nil
	default:
		return "", ErrInvalidStatus
	}
}

func (s Status) String() string {
	return string(s)
}

// Only an available voucher can leave the pool; sold and expired are terminal.
func (s Status) CanTransitionTo(next Status) bool {
	return s == StatusActive && (next == StatusSold || next == StatusExpired)
}

type Name string

func NewName(s string) (Name, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", ErrNameRequired
	}
	if utf8.RuneCountInString(s) > MaxNameLength {
		return "", ErrNameTooLong
	}
	return Name(s), nil
}

func (n Name) String() string {
	return string(n)
}

// Amount is a positive value in cents.
type Amount int64

func NewAmount(cents int64) (Amount, error) {
	if cents <= 0 {
		return 0, ErrInvalidAmount
	}
	return Amount(cents), nil
}

func (a Amount) Cents() int64 {
	return int64(a)
}

func (a Amount) String() string {
	return money.FormatRand(int64(a))
}

func requiredText(s string, missing error) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", missing
	}
	return s, nil
}

func optionalText(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
