package services

import (
	"errors"
	"time"

	"jobbridge_backend/internal/config"
	"jobbridge_backend/internal/models"
	"jobbridge_backend/internal/repositories"
	"jobbridge_backend/internal/services/dto"
	"jobbridge_backend/pkg/apperrors"

	"gorm.io/gorm"
)

// Package prices. DIRECT is a fixed yearly fee, INDIRECT is pay-what-you-want
// above the minimum.
const (
	DirectPackageAmount    = 10.0
	IndirectPackageMinimum = 5.0
)

// SubscriptionPeriod is how long an approved subscription stays active.
const SubscriptionPeriod = 365 * 24 * time.Hour

// SubscriptionCreated pairs the new subscription with its companion payment,
// the shape the create endpoint responds with.
type SubscriptionCreated struct {
	Subscription *models.Subscription `json:"subscription"`
	Payment      *models.Payment      `json:"payment"`
}

type SubscriptionService interface {
	Create(db *gorm.DB, userID string, role models.UserRole, req *dto.CreateSubscriptionRequest) (*SubscriptionCreated, error)
	ListByUser(db *gorm.DB, userID string) ([]models.Subscription, error)
	ListPayments(db *gorm.DB, query *dto.PaymentsQuery) ([]models.Payment, error)
	ReviewPayment(db *gorm.DB, adminID, paymentID string, req *dto.ReviewPaymentRequest) (*models.Payment, error)
}

type SubscriptionServiceImpl struct {
	subscriptionRepo repositories.SubscriptionRepository
	rejectPolicy     config.RejectPolicy
	// inTx wraps the multi-write sections; unit tests swap it for a
	// pass-through so the flows run against in-memory repositories.
	inTx func(db *gorm.DB, fn func(tx *gorm.DB) error) error
}

func NewSubscriptionService(subscriptionRepo repositories.SubscriptionRepository, rejectPolicy config.RejectPolicy) SubscriptionService {
	if rejectPolicy == "" {
		rejectPolicy = config.RejectPolicyKeepPending
	}
	return &SubscriptionServiceImpl{
		subscriptionRepo: subscriptionRepo,
		rejectPolicy:     rejectPolicy,
		inTx: func(db *gorm.DB, fn func(tx *gorm.DB) error) error {
			return db.Transaction(fn)
		},
	}
}

// Create opens the manual payment flow: the subscription and its companion
// payment are written in one transaction, both PENDING, and stay that way
// until an admin reviews the payment.
func (s *SubscriptionServiceImpl) Create(db *gorm.DB, userID string, role models.UserRole, req *dto.CreateSubscriptionRequest) (*SubscriptionCreated, error) {
	if role == models.UserRoleAdmin {
		return nil, apperrors.ErrInvalidUserRole
	}

	switch req.Type {
	case models.SubscriptionTypeDirect:
		if req.Amount != DirectPackageAmount {
			return nil, apperrors.ErrDirectAmount
		}
	case models.SubscriptionTypeIndirect:
		if req.Amount < IndirectPackageMinimum {
			return nil, apperrors.ErrIndirectAmount
		}
	default:
		return nil, apperrors.ErrInvalidSubscriptionType
	}

	subscription := &models.Subscription{
		UserID: userID,
		Type:   req.Type,
		Amount: req.Amount,
		Status: models.SubscriptionStatusPending,
	}

	payment := &models.Payment{
		UserID: userID,
		Amount: req.Amount,
		Status: models.PaymentStatusPending,
	}

	err := s.inTx(db, func(tx *gorm.DB) error {
		if err := s.subscriptionRepo.CreateSubscription(tx, subscription); err != nil {
			return err
		}
		payment.SubscriptionID = subscription.ID
		return s.subscriptionRepo.CreatePayment(tx, payment)
	})
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &SubscriptionCreated{Subscription: subscription, Payment: payment}, nil
}

func (s *SubscriptionServiceImpl) ListByUser(db *gorm.DB, userID string) ([]models.Subscription, error) {
	subscriptions, err := s.subscriptionRepo.ListByUser(db, userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return subscriptions, nil
}

func (s *SubscriptionServiceImpl) ListPayments(db *gorm.DB, query *dto.PaymentsQuery) ([]models.Payment, error) {
	payments, err := s.subscriptionRepo.ListPayments(db, query.Status)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return payments, nil
}

// ReviewPayment applies the admin decision. An approval activates the
// subscription for one year in the same transaction as the payment update, so
// a crash can never leave an approved payment with a dormant subscription.
// Only PENDING payments are reviewable; a second decision is rejected.
func (s *SubscriptionServiceImpl) ReviewPayment(db *gorm.DB, adminID, paymentID string, req *dto.ReviewPaymentRequest) (*models.Payment, error) {
	payment, err := s.subscriptionRepo.FindPaymentByID(db, paymentID)
	if err != nil {
		if errors.Is(err, repositories.ErrPaymentNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	if !models.CanReviewPayment(payment.Status) {
		return nil, apperrors.ErrPaymentAlreadyReviewed
	}

	switch req.Status {
	case models.PaymentStatusApproved, models.PaymentStatusRejected:
	default:
		return nil, apperrors.ErrInvalidPaymentDecision
	}

	now := time.Now()
	payment.Status = req.Status
	payment.ApprovedBy = &adminID
	payment.ApprovedAt = &now
	if req.Notes != "" {
		payment.Notes = &req.Notes
	}

	err = s.inTx(db, func(tx *gorm.DB) error {
		if err := s.subscriptionRepo.SavePayment(tx, payment); err != nil {
			return err
		}

		subscription, err := s.subscriptionRepo.FindSubscriptionByID(tx, payment.SubscriptionID)
		if err != nil {
			return err
		}

		switch req.Status {
		case models.PaymentStatusApproved:
			end := now.Add(SubscriptionPeriod)
			subscription.Status = models.SubscriptionStatusActive
			subscription.StartDate = &now
			subscription.EndDate = &end
			return s.subscriptionRepo.SaveSubscription(tx, subscription)
		case models.PaymentStatusRejected:
			if s.rejectPolicy == config.RejectPolicyMarkRejected {
				subscription.Status = models.SubscriptionStatusRejected
				return s.subscriptionRepo.SaveSubscription(tx, subscription)
			}
			// keep_pending: the subscription record stays untouched.
			return nil
		}
		return nil
	})
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return s.subscriptionRepo.FindPaymentByID(db, paymentID)
}
