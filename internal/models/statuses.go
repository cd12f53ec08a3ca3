package models

type UserRole string
type SubscriptionType string
type SubscriptionStatus string
type PaymentStatus string
type ApplicationStatus string
type JobType string

const (
	UserRoleJobSeeker    UserRole = "JOB_SEEKER"
	UserRoleCompany      UserRole = "COMPANY"
	UserRoleOrganization UserRole = "ORGANIZATION"
	UserRoleAdmin        UserRole = "ADMIN"

	SubscriptionTypeDirect   SubscriptionType = "DIRECT"
	SubscriptionTypeIndirect SubscriptionType = "INDIRECT"

	SubscriptionStatusPending SubscriptionStatus = "PENDING"
	SubscriptionStatusActive  SubscriptionStatus = "ACTIVE"
	// Terminal status used only under the mark_rejected policy.
	SubscriptionStatusRejected SubscriptionStatus = "REJECTED"

	PaymentStatusPending  PaymentStatus = "PENDING"
	PaymentStatusApproved PaymentStatus = "APPROVED"
	PaymentStatusRejected PaymentStatus = "REJECTED"

	ApplicationStatusPending  ApplicationStatus = "PENDING"
	ApplicationStatusReviewed ApplicationStatus = "REVIEWED"
	ApplicationStatusAccepted ApplicationStatus = "ACCEPTED"
	ApplicationStatusRejected ApplicationStatus = "REJECTED"

	JobTypeFullTime   JobType = "FULL_TIME"
	JobTypePartTime   JobType = "PART_TIME"
	JobTypeContract   JobType = "CONTRACT"
	JobTypeInternship JobType = "INTERNSHIP"
)

// ValidUserRole reports whether role is one of the four account roles.
func ValidUserRole(role UserRole) bool {
	switch role {
	case UserRoleJobSeeker, UserRoleCompany, UserRoleOrganization, UserRoleAdmin:
		return true
	}
	return false
}

// ValidApplicationStatus reports whether s is an acceptable application
// status. Transitions between these values are a flat overwrite under
// organization control; only the value set is enforced.
func ValidApplicationStatus(s ApplicationStatus) bool {
	switch s {
	case ApplicationStatusPending, ApplicationStatusReviewed,
		ApplicationStatusAccepted, ApplicationStatusRejected:
		return true
	}
	return false
}

// ValidJobType reports whether t is a known job type.
func ValidJobType(t JobType) bool {
	switch t {
	case JobTypeFullTime, JobTypePartTime, JobTypeContract, JobTypeInternship:
		return true
	}
	return false
}

// CanReviewPayment reports whether a payment in status from may still be
// reviewed. Only PENDING payments accept a decision; re-reviewing would
// replay the subscription activation.
func CanReviewPayment(from PaymentStatus) bool {
	return from == PaymentStatusPending
}
