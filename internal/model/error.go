package model

// ErrorResponse represents a standardised error response.
type ErrorResponse struct {
	Error         string `json:"error"`
	Message       string `json:"message"`
	CorrelationID string `json:"correlationId,omitempty"`
}

// Standard error codes for API responses
const (
	ErrCodeInvalidJSON          = "INVALID_JSON"
	ErrCodeMissingField         = "MISSING_FIELD"
	ErrCodeProductNotFound      = "PRODUCT_NOT_FOUND"
	ErrCodeReviewNotFound       = "REVIEW_NOT_FOUND"
	ErrCodeUserNotFound         = "USER_NOT_FOUND"
	ErrCodeInvalidRating        = "INVALID_RATING"
	ErrCodeEmptyComment         = "EMPTY_COMMENT"
	ErrCodeCatalogueUnavailable = "CATALOGUE_UNAVAILABLE"
	ErrCodeUnauthorised         = "UNAUTHORIZED"
	ErrCodeInternalError        = "INTERNAL_ERROR"
)

// Domain errors for business logic
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Common domain errors
var (
	ErrProductNotFound      = NewDomainError(ErrCodeProductNotFound, "Product not found")
	ErrReviewNotFound       = NewDomainError(ErrCodeReviewNotFound, "Review not found")
	ErrUserNotFound         = NewDomainError(ErrCodeUserNotFound, "User not found")
	ErrInvalidRating        = NewDomainError(ErrCodeInvalidRating, "Rating must be between 1 and 5")
	ErrEmptyComment         = NewDomainError(ErrCodeEmptyComment, "Comment must not be empty")
	ErrCatalogueUnavailable = NewDomainError(ErrCodeCatalogueUnavailable, "Remote catalogue is unavailable")
)
