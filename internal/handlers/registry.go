package handlers

import (
	"jobbridge_backend/internal/services"
	"jobbridge_backend/internal/validator"
)

// AppHandlers holds every HTTP handler.
type AppHandlers struct {
	AuthHandler         *AuthHandler
	UserHandler         *UserHandler
	ProfileHandler      *ProfileHandler
	JobHandler          *JobHandler
	ApplicationHandler  *ApplicationHandler
	SubscriptionHandler *SubscriptionHandler
}

// NewAppHandlers wires services into handlers behind a shared BaseHandler.
func NewAppHandlers(sc *services.ServiceContainer, v *validator.Validator) *AppHandlers {
	base := NewBaseHandler(v)

	return &AppHandlers{
		AuthHandler:         NewAuthHandler(base, sc.AuthService),
		UserHandler:         NewUserHandler(base, sc.UserService),
		ProfileHandler:      NewProfileHandler(base, sc.ProfileService),
		JobHandler:          NewJobHandler(base, sc.JobService),
		ApplicationHandler:  NewApplicationHandler(base, sc.ApplicationService),
		SubscriptionHandler: NewSubscriptionHandler(base, sc.SubscriptionService),
	}
}
