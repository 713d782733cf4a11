package request

import "errors"

var ErrInvalidExpiry = errors.New("expires_at must be a YYYY-MM-DD date")
