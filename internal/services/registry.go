package services

import (
	"jobbridge_backend/internal/config"
	"jobbridge_backend/internal/repositories"
)

// ServiceContainer holds every application service.
type ServiceContainer struct {
	AuthService         AuthService
	UserService         UserService
	ProfileService      ProfileService
	JobService          JobService
	ApplicationService  ApplicationService
	SubscriptionService SubscriptionService
}

// NewServiceContainer wires repositories into services.
func NewServiceContainer(cfg *config.Config) *ServiceContainer {
	userRepo := repositories.NewUserRepository()
	profileRepo := repositories.NewProfileRepository()
	jobRepo := repositories.NewJobRepository()
	applicationRepo := repositories.NewApplicationRepository()
	subscriptionRepo := repositories.NewSubscriptionRepository()

	return &ServiceContainer{
		AuthService:         NewAuthService(userRepo),
		UserService:         NewUserService(userRepo),
		ProfileService:      NewProfileService(profileRepo),
		JobService:          NewJobService(jobRepo, profileRepo),
		ApplicationService:  NewApplicationService(applicationRepo, jobRepo, subscriptionRepo, profileRepo),
		SubscriptionService: NewSubscriptionService(subscriptionRepo, cfg.Subscription.RejectPolicy),
	}
}
