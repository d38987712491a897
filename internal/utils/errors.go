package utils

import "errors"

// Common application errors used across services.
var (
	ErrInvalidToken        = errors.New("INVALID_TOKEN")
	ErrInvalidCredentials  = errors.New("INVALID_CREDENTIALS")
	ErrAccountInactive     = errors.New("ACCOUNT_INACTIVE")
	ErrProductNotFound     = errors.New("PRODUCT_NOT_FOUND")
	ErrCategoryNotFound    = errors.New("CATEGORY_NOT_FOUND")
	ErrInvalidCategoryRef  = errors.New("INVALID_CATEGORY_REFERENCE")
	ErrModerationDisabled  = errors.New("MODERATION_DISABLED")
	ErrModerationFetchFail = errors.New("MODERATION_IMAGE_FETCH_FAILED")
)
