package domain

import "errors"

var (
	ErrMissingCredentials = errors.New("missing ebay credentials")
	ErrAuthFailed         = errors.New("ebay auth failed")
	ErrSearchFailed       = errors.New("ebay search failed")
)

var (
	ErrInvalidLimit      = errors.New("limit must be positive")
	ErrInvalidOffset     = errors.New("offset must be non-negative")
	ErrInvalidPriceRange = errors.New("invalid price range")
	ErrInvalidEra        = errors.New("invalid era")
	ErrInvalidGender     = errors.New("invalid gender")
	ErrInvalidCondition  = errors.New("invalid condition")
	ErrInvalidSortBy     = errors.New("invalid sort policy")
	ErrInvalidStrictness = errors.New("invalid strictness level")
)
