package models

import (
	"time"
)

type Subscription struct {
	BaseModel
	UserID string           `gorm:"not null;index" json:"userId"`
	Type   SubscriptionType `gorm:"type:varchar(20);not null" json:"type"`
	Amount float64          `gorm:"not null" json:"amount"`
	Status SubscriptionStatus `gorm:"type:varchar(20);default:'PENDING'" json:"status"`
	// Set only on activation; EndDate = StartDate + 1 year.
	StartDate *time.Time `json:"startDate"`
	EndDate   *time.Time `json:"endDate"`

	// Relations
	Payments []Payment `gorm:"foreignKey:SubscriptionID;constraint:OnDelete:CASCADE" json:"payments,omitempty"`
	User     *User     `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

// IsCurrent reports whether the subscription is active.
func (s *Subscription) IsCurrent() bool {
	return s.Status == SubscriptionStatusActive
}

type Payment struct {
	BaseModel
	UserID         string        `gorm:"not null;index" json:"userId"`
	SubscriptionID string        `gorm:"not null;index" json:"subscriptionId"`
	Amount         float64       `gorm:"not null" json:"amount"`
	Status         PaymentStatus `gorm:"type:varchar(20);default:'PENDING'" json:"status"`
	// Review fields, set only by an admin decision.
	ApprovedBy *string    `json:"approvedBy"`
	ApprovedAt *time.Time `json:"approvedAt"`
	Notes      *string    `json:"notes"`

	// Relations
	Subscription *Subscription `gorm:"foreignKey:SubscriptionID" json:"subscription,omitempty"`
	User         *User         `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"user,omitempty"`
}
