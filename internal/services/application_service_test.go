package services

import (
	"testing"

	"jobbridge_backend/internal/models"
	"jobbridge_backend/internal/services/dto"
	"jobbridge_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newApplicationFixture() (*fakeApplicationRepo, *fakeJobRepo, *fakeSubscriptionRepo, *fakeProfileRepo, ApplicationService) {
	applicationRepo := newFakeApplicationRepo()
	jobRepo := newFakeJobRepo()
	subscriptionRepo := newFakeSubscriptionRepo()
	profileRepo := newFakeProfileRepo()
	svc := NewApplicationService(applicationRepo, jobRepo, subscriptionRepo, profileRepo)
	return applicationRepo, jobRepo, subscriptionRepo, profileRepo, svc
}

func seedActiveJob(t *testing.T, jobRepo *fakeJobRepo) *models.JobPost {
	t.Helper()
	post := &models.JobPost{
		OrganizationID: "org-1",
		UserID:         "org-user",
		Title:          "Backend Engineer",
		Description:    "Go services",
		IsActive:       true,
	}
	require.NoError(t, jobRepo.Create(nil, post))
	return post
}

func seedActiveSubscription(t *testing.T, subscriptionRepo *fakeSubscriptionRepo, userID string) {
	t.Helper()
	require.NoError(t, subscriptionRepo.CreateSubscription(nil, &models.Subscription{
		UserID: userID,
		Type:   models.SubscriptionTypeDirect,
		Amount: DirectPackageAmount,
		Status: models.SubscriptionStatusActive,
	}))
}

func TestApplicationCreate_RequiresJobSeekerRole(t *testing.T) {
	t.Parallel()

	_, jobRepo, _, _, svc := newApplicationFixture()
	post := seedActiveJob(t, jobRepo)

	for _, role := range []models.UserRole{models.UserRoleCompany, models.UserRoleOrganization, models.UserRoleAdmin} {
		_, err := svc.Create(nil, "user-1", role, &dto.CreateApplicationRequest{JobPostID: post.ID})
		assert.ErrorIs(t, err, apperrors.ErrInsufficientPermissions, "role %s", role)
	}
}

func TestApplicationCreate_RequiresActiveSubscription(t *testing.T) {
	t.Parallel()

	_, jobRepo, subscriptionRepo, _, svc := newApplicationFixture()
	post := seedActiveJob(t, jobRepo)

	// A PENDING subscription does not satisfy the gate.
	require.NoError(t, subscriptionRepo.CreateSubscription(nil, &models.Subscription{
		UserID: "seeker-1",
		Type:   models.SubscriptionTypeDirect,
		Amount: DirectPackageAmount,
		Status: models.SubscriptionStatusPending,
	}))

	_, err := svc.Create(nil, "seeker-1", models.UserRoleJobSeeker, &dto.CreateApplicationRequest{JobPostID: post.ID})
	assert.ErrorIs(t, err, apperrors.ErrSubscriptionRequired)
}

func TestApplicationCreate_InactivePost(t *testing.T) {
	t.Parallel()

	_, jobRepo, subscriptionRepo, _, svc := newApplicationFixture()
	post := seedActiveJob(t, jobRepo)
	post.IsActive = false
	require.NoError(t, jobRepo.Save(nil, post))
	seedActiveSubscription(t, subscriptionRepo, "seeker-1")

	_, err := svc.Create(nil, "seeker-1", models.UserRoleJobSeeker, &dto.CreateApplicationRequest{JobPostID: post.ID})
	assert.ErrorIs(t, err, apperrors.ErrJobPostInactive)
}

func TestApplicationCreate_UnknownPost(t *testing.T) {
	t.Parallel()

	_, _, subscriptionRepo, _, svc := newApplicationFixture()
	seedActiveSubscription(t, subscriptionRepo, "seeker-1")

	_, err := svc.Create(nil, "seeker-1", models.UserRoleJobSeeker, &dto.CreateApplicationRequest{JobPostID: "missing"})

	var appErr *apperrors.AppError
	require.True(t, apperrors.As(err, &appErr))
	assert.Equal(t, apperrors.CodeNotFound, appErr.Code)
}

func TestApplicationCreate_DuplicateRejected(t *testing.T) {
	t.Parallel()

	_, jobRepo, subscriptionRepo, _, svc := newApplicationFixture()
	post := seedActiveJob(t, jobRepo)
	seedActiveSubscription(t, subscriptionRepo, "seeker-1")

	first, err := svc.Create(nil, "seeker-1", models.UserRoleJobSeeker, &dto.CreateApplicationRequest{JobPostID: post.ID})
	require.NoError(t, err)
	assert.Equal(t, models.ApplicationStatusPending, first.Status)

	_, err = svc.Create(nil, "seeker-1", models.UserRoleJobSeeker, &dto.CreateApplicationRequest{JobPostID: post.ID})
	assert.ErrorIs(t, err, apperrors.ErrAlreadyApplied)
}

func TestApplicationGet_OwnershipRules(t *testing.T) {
	t.Parallel()

	applicationRepo, jobRepo, subscriptionRepo, _, svc := newApplicationFixture()
	post := seedActiveJob(t, jobRepo)
	seedActiveSubscription(t, subscriptionRepo, "seeker-1")

	created, err := svc.Create(nil, "seeker-1", models.UserRoleJobSeeker, &dto.CreateApplicationRequest{JobPostID: post.ID})
	require.NoError(t, err)

	// The repo fake does not preload relations; attach the post the way the
	// real repository would.
	stored, err := applicationRepo.FindByID(nil, created.ID)
	require.NoError(t, err)
	stored.JobPost = post
	require.NoError(t, applicationRepo.Save(nil, stored))

	// Owner sees it.
	_, err = svc.Get(nil, "seeker-1", models.UserRoleJobSeeker, created.ID)
	assert.NoError(t, err)

	// Another job seeker does not.
	_, err = svc.Get(nil, "seeker-2", models.UserRoleJobSeeker, created.ID)
	assert.ErrorIs(t, err, apperrors.ErrInsufficientPermissions)

	// The organization that posted the job sees it.
	_, err = svc.Get(nil, "org-user", models.UserRoleOrganization, created.ID)
	assert.NoError(t, err)

	// A different organization does not.
	_, err = svc.Get(nil, "other-org-user", models.UserRoleOrganization, created.ID)
	assert.ErrorIs(t, err, apperrors.ErrInsufficientPermissions)

	// Admin sees everything.
	_, err = svc.Get(nil, "admin-1", models.UserRoleAdmin, created.ID)
	assert.NoError(t, err)
}

func TestApplicationUpdateStatus_StampsReviewedAt(t *testing.T) {
	t.Parallel()

	applicationRepo, jobRepo, subscriptionRepo, _, svc := newApplicationFixture()
	post := seedActiveJob(t, jobRepo)
	seedActiveSubscription(t, subscriptionRepo, "seeker-1")

	created, err := svc.Create(nil, "seeker-1", models.UserRoleJobSeeker, &dto.CreateApplicationRequest{JobPostID: post.ID})
	require.NoError(t, err)

	stored, err := applicationRepo.FindByID(nil, created.ID)
	require.NoError(t, err)
	stored.JobPost = post
	require.NoError(t, applicationRepo.Save(nil, stored))

	// The applicant cannot review their own application.
	_, err = svc.UpdateStatus(nil, "seeker-1", models.UserRoleJobSeeker, created.ID, &dto.UpdateApplicationStatusRequest{
		Status: models.ApplicationStatusAccepted,
	})
	assert.ErrorIs(t, err, apperrors.ErrInsufficientPermissions)

	reviewed, err := svc.UpdateStatus(nil, "org-user", models.UserRoleOrganization, created.ID, &dto.UpdateApplicationStatusRequest{
		Status: models.ApplicationStatusReviewed,
		Notes:  "strong candidate",
	})
	require.NoError(t, err)
	assert.Equal(t, models.ApplicationStatusReviewed, reviewed.Status)
	require.NotNil(t, reviewed.ReviewedAt)
	require.NotNil(t, reviewed.Notes)
	assert.Equal(t, "strong candidate", *reviewed.Notes)
}
