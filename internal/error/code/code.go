package code

// HTTP status codes used by the API.
const (
	StatusOK                  = 200
	StatusBadRequest          = 400
	StatusUnauthorized        = 401
	StatusNotFound            = 404
	StatusTooManyRequests     = 429
	StatusInternalServerError = 500
	StatusServiceUnavailable  = 503
)

// Generic error codes (100xxx).
const (
	// ErrSuccess - 200: success.
	ErrSuccess int = iota + 100000
	// ErrUnknown - 500: unexpected fault.
	ErrUnknown
	// ErrBind - 400: malformed request body.
	ErrBind
	// ErrValidation - 400: input failed shape validation.
	ErrValidation
	// ErrTokenInvalid - 401: missing, malformed or expired token.
	ErrTokenInvalid
	// ErrTooManyRequests - 429: rate limit exceeded.
	ErrTooManyRequests
	// ErrRouteNotFound - 404: unknown endpoint.
	ErrRouteNotFound
)

// Authentication error codes (101xxx).
const (
	// ErrBadCredentials - 401: wrong phone/PIN or email/password. One code
	// for both "no such account" and "wrong secret" so responses never
	// reveal whether an account exists.
	ErrBadCredentials int = iota + 101000
	// ErrInvalidPhone - 400: phone does not match the mobile pattern.
	ErrInvalidPhone
	// ErrInvalidPIN - 400: PIN is not exactly 4 digits.
	ErrInvalidPIN
	// ErrInvalidEmail - 400: email does not match local@domain.
	ErrInvalidEmail
	// ErrInvalidPassword - 400: password shorter than 6 characters.
	ErrInvalidPassword
)

// Actor error codes (102xxx).
const (
	// ErrWorkerNotFound - 404: worker does not exist.
	ErrWorkerNotFound int = iota + 102000
	// ErrHostNotFound - 404: host does not exist.
	ErrHostNotFound
	// ErrPhoneAlreadyUsed - 400: phone already registered in the table.
	ErrPhoneAlreadyUsed
)

// Store error codes (105xxx).
const (
	// ErrDatabase - 500: store query failed.
	ErrDatabase int = iota + 105000
	// ErrStoreUnavailable - 503: store unreachable, degraded mode.
	ErrStoreUnavailable
)
