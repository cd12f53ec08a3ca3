package services

import (
	"jobbridge_backend/internal/models"
	"jobbridge_backend/internal/repositories"

	"gorm.io/gorm"
)

// In-memory repository fakes. The *gorm.DB argument is part of the repository
// contract but unused here; tests pass nil.

type fakeSubscriptionRepo struct {
	subscriptions map[string]*models.Subscription
	payments      map[string]*models.Payment
	nextID        int
}

func newFakeSubscriptionRepo() *fakeSubscriptionRepo {
	return &fakeSubscriptionRepo{
		subscriptions: make(map[string]*models.Subscription),
		payments:      make(map[string]*models.Payment),
	}
}

func (f *fakeSubscriptionRepo) nextKey(prefix string) string {
	f.nextID++
	return prefix + "-" + string(rune('0'+f.nextID))
}

func (f *fakeSubscriptionRepo) CreateSubscription(_ *gorm.DB, s *models.Subscription) error {
	if s.ID == "" {
		s.ID = f.nextKey("sub")
	}
	copied := *s
	f.subscriptions[s.ID] = &copied
	return nil
}

func (f *fakeSubscriptionRepo) FindSubscriptionByID(_ *gorm.DB, id string) (*models.Subscription, error) {
	s, ok := f.subscriptions[id]
	if !ok {
		return nil, repositories.ErrSubscriptionNotFound
	}
	copied := *s
	return &copied, nil
}

func (f *fakeSubscriptionRepo) ListByUser(_ *gorm.DB, userID string) ([]models.Subscription, error) {
	var out []models.Subscription
	for _, s := range f.subscriptions {
		if s.UserID == userID {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (f *fakeSubscriptionRepo) HasActiveSubscription(_ *gorm.DB, userID string) (bool, error) {
	for _, s := range f.subscriptions {
		if s.UserID == userID && s.Status == models.SubscriptionStatusActive {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeSubscriptionRepo) SaveSubscription(_ *gorm.DB, s *models.Subscription) error {
	copied := *s
	f.subscriptions[s.ID] = &copied
	return nil
}

func (f *fakeSubscriptionRepo) CreatePayment(_ *gorm.DB, p *models.Payment) error {
	if p.ID == "" {
		p.ID = f.nextKey("pay")
	}
	copied := *p
	f.payments[p.ID] = &copied
	return nil
}

func (f *fakeSubscriptionRepo) FindPaymentByID(_ *gorm.DB, id string) (*models.Payment, error) {
	p, ok := f.payments[id]
	if !ok {
		return nil, repositories.ErrPaymentNotFound
	}
	copied := *p
	return &copied, nil
}

func (f *fakeSubscriptionRepo) ListPayments(_ *gorm.DB, status models.PaymentStatus) ([]models.Payment, error) {
	var out []models.Payment
	for _, p := range f.payments {
		if status == "" || p.Status == status {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (f *fakeSubscriptionRepo) SavePayment(_ *gorm.DB, p *models.Payment) error {
	copied := *p
	f.payments[p.ID] = &copied
	return nil
}

type fakeApplicationRepo struct {
	applications map[string]*models.Application
	nextID       int
}

func newFakeApplicationRepo() *fakeApplicationRepo {
	return &fakeApplicationRepo{applications: make(map[string]*models.Application)}
}

func (f *fakeApplicationRepo) Create(_ *gorm.DB, a *models.Application) error {
	for _, existing := range f.applications {
		if existing.UserID == a.UserID && existing.JobPostID == a.JobPostID {
			return repositories.ErrDuplicateApplication
		}
	}
	f.nextID++
	if a.ID == "" {
		a.ID = "app-" + string(rune('0'+f.nextID))
	}
	copied := *a
	f.applications[a.ID] = &copied
	return nil
}

func (f *fakeApplicationRepo) ExistsForUserAndJob(_ *gorm.DB, userID, jobPostID string) (bool, error) {
	for _, a := range f.applications {
		if a.UserID == userID && a.JobPostID == jobPostID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeApplicationRepo) FindByID(_ *gorm.DB, id string) (*models.Application, error) {
	a, ok := f.applications[id]
	if !ok {
		return nil, repositories.ErrApplicationNotFound
	}
	copied := *a
	return &copied, nil
}

func (f *fakeApplicationRepo) List(_ *gorm.DB, filter repositories.ApplicationFilter) ([]models.Application, error) {
	var out []models.Application
	for _, a := range f.applications {
		if filter.UserID != "" && a.UserID != filter.UserID {
			continue
		}
		if filter.JobPostID != "" && a.JobPostID != filter.JobPostID {
			continue
		}
		out = append(out, *a)
	}
	return out, nil
}

func (f *fakeApplicationRepo) Save(_ *gorm.DB, a *models.Application) error {
	copied := *a
	f.applications[a.ID] = &copied
	return nil
}

type fakeJobRepo struct {
	posts map[string]*models.JobPost
}

func newFakeJobRepo() *fakeJobRepo {
	return &fakeJobRepo{posts: make(map[string]*models.JobPost)}
}

func (f *fakeJobRepo) Create(_ *gorm.DB, p *models.JobPost) error {
	if p.ID == "" {
		p.ID = "job-" + p.Title
	}
	copied := *p
	f.posts[p.ID] = &copied
	return nil
}

func (f *fakeJobRepo) FindByID(_ *gorm.DB, id string) (*models.JobPost, error) {
	p, ok := f.posts[id]
	if !ok {
		return nil, repositories.ErrJobPostNotFound
	}
	copied := *p
	return &copied, nil
}

func (f *fakeJobRepo) FindByIDWithOrganization(db *gorm.DB, id string) (*models.JobPost, error) {
	return f.FindByID(db, id)
}

func (f *fakeJobRepo) List(_ *gorm.DB, filter repositories.JobFilter) ([]models.JobPost, error) {
	var out []models.JobPost
	for _, p := range f.posts {
		if filter.OrganizationID != "" && p.OrganizationID != filter.OrganizationID {
			continue
		}
		if filter.OnlyActive && !p.IsActive {
			continue
		}
		out = append(out, *p)
	}
	return out, nil
}

func (f *fakeJobRepo) Save(_ *gorm.DB, p *models.JobPost) error {
	copied := *p
	f.posts[p.ID] = &copied
	return nil
}

func (f *fakeJobRepo) Delete(_ *gorm.DB, id string) error {
	if _, ok := f.posts[id]; !ok {
		return repositories.ErrJobPostNotFound
	}
	delete(f.posts, id)
	return nil
}

func (f *fakeJobRepo) CountApplications(_ *gorm.DB, _ string) (int64, error) {
	return 0, nil
}

// fakeProfileRepo embeds the interface so only the methods a test exercises
// need implementations; anything else panics loudly.
type fakeProfileRepo struct {
	repositories.ProfileRepository
	orgsByUser      map[string]*models.OrganizationProfile
	orgsByID        map[string]*models.OrganizationProfile
	publicSeekers   []models.JobSeekerProfile
	publicCompanies []models.CompanyProfile
}

func newFakeProfileRepo() *fakeProfileRepo {
	return &fakeProfileRepo{
		orgsByUser: make(map[string]*models.OrganizationProfile),
		orgsByID:   make(map[string]*models.OrganizationProfile),
	}
}

func (f *fakeProfileRepo) addOrganization(org *models.OrganizationProfile) {
	f.orgsByUser[org.UserID] = org
	f.orgsByID[org.ID] = org
}

func (f *fakeProfileRepo) FindOrganizationByUserID(_ *gorm.DB, userID string) (*models.OrganizationProfile, error) {
	org, ok := f.orgsByUser[userID]
	if !ok {
		return nil, repositories.ErrProfileNotFound
	}
	return org, nil
}

func (f *fakeProfileRepo) FindOrganizationByID(_ *gorm.DB, id string) (*models.OrganizationProfile, error) {
	org, ok := f.orgsByID[id]
	if !ok {
		return nil, repositories.ErrProfileNotFound
	}
	return org, nil
}

func (f *fakeProfileRepo) ListPublicJobSeekers(_ *gorm.DB, _ repositories.PublicProfileFilter) ([]models.JobSeekerProfile, error) {
	return f.publicSeekers, nil
}

func (f *fakeProfileRepo) ListPublicCompanies(_ *gorm.DB, _ repositories.PublicProfileFilter) ([]models.CompanyProfile, error) {
	return f.publicCompanies, nil
}
