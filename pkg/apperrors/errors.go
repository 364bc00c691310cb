package apperrors

import (
	stderrors "errors"
	"fmt"
	"net/http"
)

// AppError is the application error carried through every layer. The HTTP
// translator maps it onto the {status, message} error envelope.
type AppError struct {
	Code     ErrorCode   `json:"code"`
	Domain   string      `json:"domain"`
	Message  string      `json:"message"`
	Details  interface{} `json:"details,omitempty"`
	Err      error       `json:"-"`
	HTTPCode int         `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s:%s] %s (%v)", e.Domain, e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s:%s] %s", e.Domain, e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New - base constructor
func New(code ErrorCode, domain, message string, httpCode int) *AppError {
	return &AppError{
		Code:     code,
		Domain:   domain,
		Message:  message,
		HTTPCode: httpCode,
	}
}

// Wrap wraps an existing error into an AppError
func Wrap(err error, code ErrorCode, domain, message string, httpCode int) *AppError {
	return &AppError{
		Code:     code,
		Domain:   domain,
		Message:  message,
		Err:      err,
		HTTPCode: httpCode,
	}
}

func (e *AppError) WithDetails(details interface{}) *AppError {
	e.Details = details
	return e
}

func (e *AppError) WithError(err error) *AppError {
	e.Err = err
	return e
}

// Is - wrapper over the standard errors.Is
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

// As - wrapper over the standard errors.As
func As(err error, target interface{}) bool {
	return stderrors.As(err, target)
}

// --- Cross-domain helpers ---

// InternalError wraps an unexpected lower-layer error. The cause stays
// attached for server-side logging; the client only ever sees the generic
// message.
func InternalError(err error) *AppError {
	return Wrap(err, CodeInternalError, "system", "SERVER ERROR", http.StatusInternalServerError)
}

// OperationFailed wraps an unexpected failure of a named operation.
func OperationFailed(operation string, err error) *AppError {
	return Wrap(err, CodeOperationFailed, "system", operation+" failed", http.StatusInternalServerError)
}

// ValidationError creates a validation error with field details.
func ValidationError(details interface{}) *AppError {
	return New(CodeValidationFailed, "validation", "Validation failed", http.StatusBadRequest).WithDetails(details)
}

func NewBadRequestError(message string) *AppError {
	return New(CodeValidationFailed, "request", message, http.StatusBadRequest)
}

// --- Session / identity ---

// MissingCredential: no session cookie on a protected route.
func MissingCredential() *AppError {
	return New(CodeMissingCredential, "session", "no session token", http.StatusUnauthorized)
}

// TokenExpired: signature valid, expiry passed. 403 is the documented choice
// for expired sessions (one revision of the source used 402).
func TokenExpired(err error) *AppError {
	return Wrap(err, CodeTokenExpired, "session", "session expired", http.StatusForbidden)
}

// TokenMalformed: signature or structure invalid.
func TokenMalformed(err error) *AppError {
	return Wrap(err, CodeTokenMalformed, "session", "malformed session token", http.StatusNotAcceptable)
}

// MissingIdentity: the OAuth provider profile carried no usable id.
func MissingIdentity(provider string) *AppError {
	return New(CodeMissingIdentity, "identity", "provider "+provider+" returned no identity", http.StatusUnauthorized)
}

// OnboardingRequired signals that the member exists but has no nickname yet.
// The member id rides in Details so the client can route to onboarding.
func OnboardingRequired(memberID string) *AppError {
	return New(CodeOnboardingRequired, "identity", "nickname registration required", http.StatusGone).
		WithDetails(memberID)
}

// UpstreamAuthFailed: the provider token or profile endpoint rejected us.
func UpstreamAuthFailed(provider string, err error) *AppError {
	return Wrap(err, CodeUpstreamAuthFailed, "identity", provider+" authentication failed", http.StatusUnauthorized)
}

func DuplicateNickname(nickname string) *AppError {
	return New(CodeDuplicateNickname, "identity", "nickname already in use: "+nickname, http.StatusBadRequest)
}

// --- Taxonomy and query parameters ---

func InvalidCategory(name string) *AppError {
	return New(CodeInvalidCategory, "taxonomy", "not a top-level category: "+name, http.StatusBadRequest)
}

func InvalidSubcategory(name string) *AppError {
	return New(CodeInvalidSubcategory, "taxonomy", "no such subcategory: "+name, http.StatusBadRequest)
}

func CategoryMismatch(category, subcategory string) *AppError {
	return New(CodeCategoryMismatch, "taxonomy",
		"subcategory "+subcategory+" does not belong to "+category, http.StatusBadRequest)
}

func InvalidPage() *AppError {
	return New(CodeInvalidPage, "query", "page must be a positive number", http.StatusBadRequest)
}

func InvalidSort(sort string) *AppError {
	return New(CodeInvalidSort, "query", "sort must be 'latest' or 'like', got: "+sort, http.StatusBadRequest)
}

func InvalidCount(count string) *AppError {
	return New(CodeInvalidCount, "query", "question count must be one of 2, 4, 6, 8, 10, got: "+count, http.StatusBadRequest)
}

// --- Uniqueness and ownership ---

func DuplicateCartEntry() *AppError {
	return New(CodeDuplicateCartEntry, "cart", "question already in cart", http.StatusBadRequest)
}

func DuplicateQuestion() *AppError {
	return New(CodeDuplicateQuestion, "question", "identical question already exists", http.StatusBadRequest)
}

func NotFound(what string) *AppError {
	return New(CodeNotFound, "content", what+" not found", http.StatusBadRequest)
}

func NotFoundOrNotOwned(what string) *AppError {
	return New(CodeNotFoundOrNotOwned, "content", what+" not found or not owned by caller", http.StatusBadRequest)
}
