package repositories

import (
	"errors"

	"jobbridge_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrSubscriptionNotFound = errors.New("subscription not found")
	ErrPaymentNotFound      = errors.New("payment not found")
)

type SubscriptionRepository interface {
	CreateSubscription(db *gorm.DB, subscription *models.Subscription) error
	FindSubscriptionByID(db *gorm.DB, id string) (*models.Subscription, error)
	ListByUser(db *gorm.DB, userID string) ([]models.Subscription, error)
	HasActiveSubscription(db *gorm.DB, userID string) (bool, error)
	SaveSubscription(db *gorm.DB, subscription *models.Subscription) error

	CreatePayment(db *gorm.DB, payment *models.Payment) error
	FindPaymentByID(db *gorm.DB, id string) (*models.Payment, error)
	ListPayments(db *gorm.DB, status models.PaymentStatus) ([]models.Payment, error)
	SavePayment(db *gorm.DB, payment *models.Payment) error
}

type SubscriptionRepositoryImpl struct{}

func NewSubscriptionRepository() SubscriptionRepository {
	return &SubscriptionRepositoryImpl{}
}

func (r *SubscriptionRepositoryImpl) CreateSubscription(db *gorm.DB, subscription *models.Subscription) error {
	return db.Create(subscription).Error
}

func (r *SubscriptionRepositoryImpl) FindSubscriptionByID(db *gorm.DB, id string) (*models.Subscription, error) {
	var subscription models.Subscription
	err := db.First(&subscription, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSubscriptionNotFound
		}
		return nil, err
	}
	return &subscription, nil
}

func (r *SubscriptionRepositoryImpl) ListByUser(db *gorm.DB, userID string) ([]models.Subscription, error) {
	var subscriptions []models.Subscription
	err := db.
		Preload("Payments", func(db *gorm.DB) *gorm.DB { return db.Order("created_at DESC") }).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&subscriptions).Error
	return subscriptions, err
}

// HasActiveSubscription is the application gate: it is satisfied by any
// subscription with status ACTIVE regardless of how many PENDING or
// REJECTED ones the user has accumulated.
func (r *SubscriptionRepositoryImpl) HasActiveSubscription(db *gorm.DB, userID string) (bool, error) {
	var count int64
	err := db.Model(&models.Subscription{}).
		Where("user_id = ? AND status = ?", userID, models.SubscriptionStatusActive).
		Count(&count).Error
	return count > 0, err
}

func (r *SubscriptionRepositoryImpl) SaveSubscription(db *gorm.DB, subscription *models.Subscription) error {
	return db.Save(subscription).Error
}

func (r *SubscriptionRepositoryImpl) CreatePayment(db *gorm.DB, payment *models.Payment) error {
	return db.Create(payment).Error
}

func (r *SubscriptionRepositoryImpl) FindPaymentByID(db *gorm.DB, id string) (*models.Payment, error) {
	var payment models.Payment
	err := db.Preload("Subscription").First(&payment, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPaymentNotFound
		}
		return nil, err
	}
	return &payment, nil
}

func (r *SubscriptionRepositoryImpl) ListPayments(db *gorm.DB, status models.PaymentStatus) ([]models.Payment, error) {
	query := db.Model(&models.Payment{})
	if status != "" {
		query = query.Where("status = ?", status)
	}

	var payments []models.Payment
	err := query.
		Preload("User").
		Preload("Subscription").
		Order("created_at DESC").
		Find(&payments).Error
	return payments, err
}

func (r *SubscriptionRepositoryImpl) SavePayment(db *gorm.DB, payment *models.Payment) error {
	return db.Save(payment).Error
}
