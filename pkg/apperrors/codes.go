package apperrors

// ErrorCode identifies a failure kind independent of its message.
type ErrorCode string

const (
	// System and unknown failures
	CodeInternalError        ErrorCode = "INTERNAL_ERROR"
	CodeDatabaseError        ErrorCode = "DATABASE_ERROR"
	CodeExternalServiceError ErrorCode = "EXTERNAL_SERVICE_ERROR"
	CodeOperationFailed      ErrorCode = "OPERATION_FAILED"

	// Session and identity
	CodeMissingCredential  ErrorCode = "MISSING_CREDENTIAL"
	CodeTokenExpired       ErrorCode = "TOKEN_EXPIRED"
	CodeTokenMalformed     ErrorCode = "TOKEN_MALFORMED"
	CodeMissingIdentity    ErrorCode = "MISSING_IDENTITY"
	CodeOnboardingRequired ErrorCode = "ONBOARDING_REQUIRED"
	CodeUpstreamAuthFailed ErrorCode = "UPSTREAM_AUTH_FAILED"

	// Taxonomy and query parameters
	CodeInvalidCategory    ErrorCode = "INVALID_CATEGORY"
	CodeInvalidSubcategory ErrorCode = "INVALID_SUBCATEGORY"
	CodeCategoryMismatch   ErrorCode = "CATEGORY_MISMATCH"
	CodeInvalidPage        ErrorCode = "INVALID_PAGE"
	CodeInvalidSort        ErrorCode = "INVALID_SORT"
	CodeInvalidCount       ErrorCode = "INVALID_COUNT"
	CodeValidationFailed   ErrorCode = "VALIDATION_FAILED"

	// Uniqueness and ownership
	CodeDuplicateCartEntry ErrorCode = "DUPLICATE_CART_ENTRY"
	CodeDuplicateQuestion  ErrorCode = "DUPLICATE_QUESTION"
	CodeDuplicateNickname  ErrorCode = "DUPLICATE_NICKNAME"
	CodeNotFound           ErrorCode = "NOT_FOUND"
	CodeNotFoundOrNotOwned ErrorCode = "NOT_FOUND_OR_NOT_OWNED"
)
