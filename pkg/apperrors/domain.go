package apperrors

import (
	"net/http"
)

// Factories and predefined errors for the marketplace business rules.

// =========================================================================
// Factory functions (wrap repository errors)
// =========================================================================

// ErrNotFound converts a repository not-found error into a 404.
func ErrNotFound(err error) *AppError {
	return Wrap(err, CodeNotFound, "resource", "Resource not found", http.StatusNotFound)
}

// ErrAlreadyExists converts a duplicate-record error into a 409.
func ErrAlreadyExists(err error) *AppError {
	return Wrap(err, CodeAlreadyExists, "resource", "Resource already exists", http.StatusConflict)
}

// ErrConflict builds a domain-specific 409.
func ErrConflict(err error, domain, message string) *AppError {
	return Wrap(err, CodeConflict, domain, message, http.StatusConflict)
}

// ErrInvalidOperation builds a 400 for operations the business rules forbid.
func ErrInvalidOperation(domain, message string) *AppError {
	return New(CodeInvalidOperation, domain, message, http.StatusBadRequest)
}

// ErrInvalidStatus builds a 400 for illegal state transitions.
func ErrInvalidStatus(domain, message string) *AppError {
	return New(CodeInvalidStatus, domain, message, http.StatusBadRequest)
}

// =========================================================================
// Predefined errors
// =========================================================================

// ErrInvalidUserRole is returned when an operation is not defined for the
// caller's role at all (as opposed to being owned by someone else).
var ErrInvalidUserRole = New(
	CodeInvalidOperation,
	"business_logic",
	"Invalid user role for this operation",
	http.StatusBadRequest,
)

// ErrInsufficientPermissions is the standard role/ownership rejection.
var ErrInsufficientPermissions = New(
	CodeForbidden,
	"auth",
	"Insufficient permissions",
	http.StatusForbidden,
)

// ErrCannotModifySelf guards admin operations against self-mutation.
var ErrCannotModifySelf = New(
	CodeForbidden,
	"business_logic",
	"Operation on self is not allowed",
	http.StatusForbidden,
)

// --- Authentication ---

var ErrInvalidCredentials = New(
	CodeInvalidCredentials,
	"auth",
	"Invalid email or password",
	http.StatusUnauthorized,
)

var ErrAccountSuspended = New(
	CodeForbidden,
	"auth",
	"Account is suspended",
	http.StatusForbidden,
)

var ErrAccountInactive = New(
	CodeForbidden,
	"auth",
	"Account is deactivated",
	http.StatusForbidden,
)

var ErrEmailAlreadyExists = New(
	CodeAlreadyExists,
	"auth",
	"Email is already registered",
	http.StatusConflict,
)

var ErrWeakPassword = New(
	CodeValidationFailed,
	"auth",
	"Password must be at least 8 characters long",
	http.StatusBadRequest,
)

// --- Subscriptions & Payments ---

// ErrSubscriptionRequired gates job applications on an active subscription.
var ErrSubscriptionRequired = New(
	CodeForbidden,
	"subscription",
	"Active subscription required to apply for jobs",
	http.StatusForbidden,
)

// ErrDirectAmount: the direct package has a fixed yearly price of $10.
var ErrDirectAmount = New(
	CodeValidationFailed,
	"subscription",
	"Direct package must be $10",
	http.StatusBadRequest,
)

// ErrIndirectAmount: the in-direct package has a $5 yearly minimum.
var ErrIndirectAmount = New(
	CodeValidationFailed,
	"subscription",
	"In-Direct package minimum is $5",
	http.StatusBadRequest,
)

var ErrInvalidSubscriptionType = New(
	CodeValidationFailed,
	"subscription",
	"Subscription type must be DIRECT or INDIRECT",
	http.StatusBadRequest,
)

// ErrPaymentAlreadyReviewed blocks re-reviewing a payment that already left
// PENDING, so an approval cannot be replayed onto the subscription.
var ErrPaymentAlreadyReviewed = New(
	CodeInvalidStatus,
	"payment",
	"Payment has already been reviewed",
	http.StatusBadRequest,
)

var ErrInvalidPaymentDecision = New(
	CodeValidationFailed,
	"payment",
	"Payment status must be APPROVED or REJECTED",
	http.StatusBadRequest,
)

// --- Applications ---

// ErrAlreadyApplied: one application per (user, job post).
var ErrAlreadyApplied = New(
	CodeConflict,
	"application",
	"You have already applied for this job",
	http.StatusConflict,
)

var ErrJobPostInactive = New(
	CodeInvalidOperation,
	"application",
	"This job post is no longer accepting applications",
	http.StatusBadRequest,
)
