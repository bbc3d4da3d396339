package page

import "errors"

var (
	ErrParsePage   = errors.New("failed to parse page")
	ErrInvalidCard = errors.New("invalid product card")
	ErrNoDropdown  = errors.New("page has no product select")
)
