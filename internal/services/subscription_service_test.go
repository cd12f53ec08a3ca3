package services

import (
	"testing"

	"jobbridge_backend/internal/config"
	"jobbridge_backend/internal/models"
	"jobbridge_backend/internal/services/dto"
	"jobbridge_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// newSubscriptionService builds the service over the fake repo with the
// transaction seam replaced by a pass-through, so the write flows run against
// the in-memory repository.
func newSubscriptionService(repo *fakeSubscriptionRepo, policy config.RejectPolicy) SubscriptionService {
	svc := NewSubscriptionService(repo, policy).(*SubscriptionServiceImpl)
	svc.inTx = func(_ *gorm.DB, fn func(tx *gorm.DB) error) error { return fn(nil) }
	return svc
}

func TestSubscriptionCreate_AmountRules(t *testing.T) {
	t.Parallel()

	repo := newFakeSubscriptionRepo()
	svc := NewSubscriptionService(repo, config.RejectPolicyKeepPending)

	tests := []struct {
		name    string
		subType models.SubscriptionType
		amount  float64
		wantErr *apperrors.AppError
	}{
		{"direct wrong amount", models.SubscriptionTypeDirect, 15, apperrors.ErrDirectAmount},
		{"direct too low", models.SubscriptionTypeDirect, 5, apperrors.ErrDirectAmount},
		{"indirect below minimum", models.SubscriptionTypeIndirect, 4.99, apperrors.ErrIndirectAmount},
		{"unknown type", models.SubscriptionType("PREMIUM"), 10, apperrors.ErrInvalidSubscriptionType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(nil, "user-1", models.UserRoleJobSeeker, &dto.CreateSubscriptionRequest{
				Type:   tt.subType,
				Amount: tt.amount,
			})
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestSubscriptionCreate_AdminRejected(t *testing.T) {
	t.Parallel()

	repo := newFakeSubscriptionRepo()
	svc := NewSubscriptionService(repo, config.RejectPolicyKeepPending)

	_, err := svc.Create(nil, "admin-1", models.UserRoleAdmin, &dto.CreateSubscriptionRequest{
		Type:   models.SubscriptionTypeDirect,
		Amount: DirectPackageAmount,
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidUserRole)
}

func TestSubscriptionCreate_PendingPair(t *testing.T) {
	t.Parallel()

	repo := newFakeSubscriptionRepo()
	svc := newSubscriptionService(repo, config.RejectPolicyKeepPending)

	created, err := svc.Create(nil, "user-1", models.UserRoleCompany, &dto.CreateSubscriptionRequest{
		Type:   models.SubscriptionTypeDirect,
		Amount: DirectPackageAmount,
	})
	require.NoError(t, err)

	assert.Equal(t, models.SubscriptionStatusPending, created.Subscription.Status)
	assert.Equal(t, models.PaymentStatusPending, created.Payment.Status)
	assert.Equal(t, created.Subscription.ID, created.Payment.SubscriptionID)
	assert.Equal(t, created.Subscription.Amount, created.Payment.Amount)
	assert.Nil(t, created.Subscription.StartDate)
}

func TestReviewPayment_ApproveActivates(t *testing.T) {
	t.Parallel()

	repo := newFakeSubscriptionRepo()
	svc := newSubscriptionService(repo, config.RejectPolicyKeepPending)

	created, err := svc.Create(nil, "user-1", models.UserRoleJobSeeker, &dto.CreateSubscriptionRequest{
		Type:   models.SubscriptionTypeIndirect,
		Amount: 25,
	})
	require.NoError(t, err)

	payment, err := svc.ReviewPayment(nil, "admin-1", created.Payment.ID, &dto.ReviewPaymentRequest{
		Status: models.PaymentStatusApproved,
		Notes:  "bank transfer confirmed",
	})
	require.NoError(t, err)

	assert.Equal(t, models.PaymentStatusApproved, payment.Status)
	require.NotNil(t, payment.ApprovedBy)
	assert.Equal(t, "admin-1", *payment.ApprovedBy)
	require.NotNil(t, payment.ApprovedAt)
	require.NotNil(t, payment.Notes)
	assert.Equal(t, "bank transfer confirmed", *payment.Notes)

	subscription, err := repo.FindSubscriptionByID(nil, created.Subscription.ID)
	require.NoError(t, err)
	assert.Equal(t, models.SubscriptionStatusActive, subscription.Status)
	require.NotNil(t, subscription.StartDate)
	require.NotNil(t, subscription.EndDate)
	assert.Equal(t, subscription.StartDate.Add(SubscriptionPeriod), *subscription.EndDate)
}

func TestReviewPayment_RejectPolicies(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		policy config.RejectPolicy
		want   models.SubscriptionStatus
	}{
		{"keep_pending leaves the subscription pending", config.RejectPolicyKeepPending, models.SubscriptionStatusPending},
		{"mark_rejected moves it to rejected", config.RejectPolicyMarkRejected, models.SubscriptionStatusRejected},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newFakeSubscriptionRepo()
			svc := newSubscriptionService(repo, tt.policy)

			created, err := svc.Create(nil, "user-1", models.UserRoleCompany, &dto.CreateSubscriptionRequest{
				Type:   models.SubscriptionTypeDirect,
				Amount: DirectPackageAmount,
			})
			require.NoError(t, err)

			payment, err := svc.ReviewPayment(nil, "admin-1", created.Payment.ID, &dto.ReviewPaymentRequest{
				Status: models.PaymentStatusRejected,
			})
			require.NoError(t, err)
			assert.Equal(t, models.PaymentStatusRejected, payment.Status)

			subscription, err := repo.FindSubscriptionByID(nil, created.Subscription.ID)
			require.NoError(t, err)
			assert.Equal(t, tt.want, subscription.Status)
			assert.Nil(t, subscription.StartDate)
		})
	}
}

func TestReviewPayment_NotFound(t *testing.T) {
	t.Parallel()

	repo := newFakeSubscriptionRepo()
	svc := NewSubscriptionService(repo, config.RejectPolicyKeepPending)

	_, err := svc.ReviewPayment(nil, "admin-1", "missing", &dto.ReviewPaymentRequest{
		Status: models.PaymentStatusApproved,
	})

	var appErr *apperrors.AppError
	require.True(t, apperrors.As(err, &appErr))
	assert.Equal(t, apperrors.CodeNotFound, appErr.Code)
}

func TestReviewPayment_AlreadyReviewed(t *testing.T) {
	t.Parallel()

	repo := newFakeSubscriptionRepo()
	svc := NewSubscriptionService(repo, config.RejectPolicyKeepPending)

	payment := &models.Payment{
		UserID:         "user-1",
		SubscriptionID: "sub-1",
		Amount:         DirectPackageAmount,
		Status:         models.PaymentStatusApproved,
	}
	require.NoError(t, repo.CreatePayment(nil, payment))

	_, err := svc.ReviewPayment(nil, "admin-1", payment.ID, &dto.ReviewPaymentRequest{
		Status: models.PaymentStatusRejected,
	})
	assert.ErrorIs(t, err, apperrors.ErrPaymentAlreadyReviewed)
}

func TestReviewPayment_InvalidDecision(t *testing.T) {
	t.Parallel()

	repo := newFakeSubscriptionRepo()
	svc := NewSubscriptionService(repo, config.RejectPolicyKeepPending)

	payment := &models.Payment{
		UserID:         "user-1",
		SubscriptionID: "sub-1",
		Amount:         DirectPackageAmount,
		Status:         models.PaymentStatusPending,
	}
	require.NoError(t, repo.CreatePayment(nil, payment))

	_, err := svc.ReviewPayment(nil, "admin-1", payment.ID, &dto.ReviewPaymentRequest{
		Status: models.PaymentStatusPending,
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidPaymentDecision)
}
