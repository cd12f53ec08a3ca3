package dto

import "jobbridge_backend/internal/models"

// CreateSubscriptionRequest opens the manual payment flow. DIRECT is the
// fixed $10 package, INDIRECT starts at $5.
type CreateSubscriptionRequest struct {
	Type   models.SubscriptionType `json:"type" validate:"required,is-subscription-type"`
	Amount float64                 `json:"amount" validate:"required,gt=0"`
}

// ReviewPaymentRequest is the admin decision on a pending payment.
type ReviewPaymentRequest struct {
	Status models.PaymentStatus `json:"status" validate:"required,is-payment-decision"`
	Notes  string               `json:"notes" validate:"omitempty,max=2000"`
}

type PaymentsQuery struct {
	Status models.PaymentStatus `form:"status" validate:"omitempty,oneof=PENDING APPROVED REJECTED"`
}
