package constants

// Context keys
const (
	ContextKeyUser  = "current_user"
	ContextKeyToken = "access_token"
)

// Password policy
const MinPasswordLength = 8

// Pagination limits
const (
	MinPageSize     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100
)
