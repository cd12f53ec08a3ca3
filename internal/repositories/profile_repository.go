package repositories

import (
	"errors"

	"jobbridge_backend/internal/models"

	"gorm.io/gorm"
)

var ErrProfileNotFound = errors.New("profile not found")

// PublicProfileFilter is the visibility filter for unauthenticated listings:
// the profile must be visible, its owner active and not suspended, and the
// owner must hold at least one ACTIVE subscription. Search/location/category
// narrow the result; Limit/Offset paginate it.
type PublicProfileFilter struct {
	Category string
	Location string
	Search   string
	Limit    int
	Offset   int
}

type ProfileRepository interface {
	// Job seeker
	FindJobSeekerByUserID(db *gorm.DB, userID string) (*models.JobSeekerProfile, error)
	SaveJobSeeker(db *gorm.DB, profile *models.JobSeekerProfile) error
	ReplaceExperiences(db *gorm.DB, profileID string, items []models.Experience) error
	ReplaceEducations(db *gorm.DB, profileID string, items []models.Education) error
	ReplaceCompetencies(db *gorm.DB, profileID string, items []models.Competency) error
	ReplaceReferences(db *gorm.DB, profileID string, items []models.Reference) error
	ReplaceLanguages(db *gorm.DB, profileID string, items []models.LanguageSkill) error

	// Company
	FindCompanyByUserID(db *gorm.DB, userID string) (*models.CompanyProfile, error)
	SaveCompany(db *gorm.DB, profile *models.CompanyProfile) error

	// Organization
	FindOrganizationByUserID(db *gorm.DB, userID string) (*models.OrganizationProfile, error)
	FindOrganizationByID(db *gorm.DB, id string) (*models.OrganizationProfile, error)
	SaveOrganization(db *gorm.DB, profile *models.OrganizationProfile) error

	// Public listings
	ListPublicJobSeekers(db *gorm.DB, filter PublicProfileFilter) ([]models.JobSeekerProfile, error)
	ListPublicCompanies(db *gorm.DB, filter PublicProfileFilter) ([]models.CompanyProfile, error)
}

type ProfileRepositoryImpl struct{}

func NewProfileRepository() ProfileRepository {
	return &ProfileRepositoryImpl{}
}

// --- Job seeker ---

func (r *ProfileRepositoryImpl) FindJobSeekerByUserID(db *gorm.DB, userID string) (*models.JobSeekerProfile, error) {
	var profile models.JobSeekerProfile
	err := db.
		Preload("Experiences", func(db *gorm.DB) *gorm.DB { return db.Order("start_date DESC") }).
		Preload("Educations", func(db *gorm.DB) *gorm.DB { return db.Order("start_date DESC") }).
		Preload("Competencies").
		Preload("References").
		Preload("Languages").
		Where("user_id = ?", userID).
		First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (r *ProfileRepositoryImpl) SaveJobSeeker(db *gorm.DB, profile *models.JobSeekerProfile) error {
	return db.Save(profile).Error
}

func (r *ProfileRepositoryImpl) ReplaceExperiences(db *gorm.DB, profileID string, items []models.Experience) error {
	if err := db.Where("profile_id = ?", profileID).Delete(&models.Experience{}).Error; err != nil {
		return err
	}
	if len(items) == 0 {
		return nil
	}
	for i := range items {
		items[i].ProfileID = profileID
	}
	return db.Create(&items).Error
}

func (r *ProfileRepositoryImpl) ReplaceEducations(db *gorm.DB, profileID string, items []models.Education) error {
	if err := db.Where("profile_id = ?", profileID).Delete(&models.Education{}).Error; err != nil {
		return err
	}
	if len(items) == 0 {
		return nil
	}
	for i := range items {
		items[i].ProfileID = profileID
	}
	return db.Create(&items).Error
}

func (r *ProfileRepositoryImpl) ReplaceCompetencies(db *gorm.DB, profileID string, items []models.Competency) error {
	if err := db.Where("profile_id = ?", profileID).Delete(&models.Competency{}).Error; err != nil {
		return err
	}
	if len(items) == 0 {
		return nil
	}
	for i := range items {
		items[i].ProfileID = profileID
	}
	return db.Create(&items).Error
}

func (r *ProfileRepositoryImpl) ReplaceReferences(db *gorm.DB, profileID string, items []models.Reference) error {
	if err := db.Where("profile_id = ?", profileID).Delete(&models.Reference{}).Error; err != nil {
		return err
	}
	if len(items) == 0 {
		return nil
	}
	for i := range items {
		items[i].ProfileID = profileID
	}
	return db.Create(&items).Error
}

func (r *ProfileRepositoryImpl) ReplaceLanguages(db *gorm.DB, profileID string, items []models.LanguageSkill) error {
	if err := db.Where("profile_id = ?", profileID).Delete(&models.LanguageSkill{}).Error; err != nil {
		return err
	}
	if len(items) == 0 {
		return nil
	}
	for i := range items {
		items[i].ProfileID = profileID
	}
	return db.Create(&items).Error
}

// --- Company ---

func (r *ProfileRepositoryImpl) FindCompanyByUserID(db *gorm.DB, userID string) (*models.CompanyProfile, error) {
	var profile models.CompanyProfile
	err := db.Where("user_id = ?", userID).First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (r *ProfileRepositoryImpl) SaveCompany(db *gorm.DB, profile *models.CompanyProfile) error {
	return db.Save(profile).Error
}

// --- Organization ---

func (r *ProfileRepositoryImpl) FindOrganizationByUserID(db *gorm.DB, userID string) (*models.OrganizationProfile, error) {
	var profile models.OrganizationProfile
	err := db.Where("user_id = ?", userID).First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (r *ProfileRepositoryImpl) FindOrganizationByID(db *gorm.DB, id string) (*models.OrganizationProfile, error) {
	var profile models.OrganizationProfile
	err := db.First(&profile, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (r *ProfileRepositoryImpl) SaveOrganization(db *gorm.DB, profile *models.OrganizationProfile) error {
	return db.Save(profile).Error
}

// --- Public listings ---

// visibleOwner scopes a profile query to owners that are active, not
// suspended and hold at least one ACTIVE subscription.
func visibleOwner(query *gorm.DB) *gorm.DB {
	return query.
		Joins("JOIN users ON users.id = user_id").
		Where("users.is_active = ? AND users.is_suspended = ?", true, false).
		Where("EXISTS (SELECT 1 FROM subscriptions WHERE subscriptions.user_id = users.id AND subscriptions.status = ?)",
			models.SubscriptionStatusActive)
}

func (r *ProfileRepositoryImpl) ListPublicJobSeekers(db *gorm.DB, filter PublicProfileFilter) ([]models.JobSeekerProfile, error) {
	query := db.Model(&models.JobSeekerProfile{}).
		Where("job_seeker_profiles.is_visible = ?", true)
	query = visibleOwner(query)

	if filter.Category != "" {
		query = query.Where("job_seeker_profiles.category = ?", filter.Category)
	}
	if filter.Location != "" {
		query = query.Where("job_seeker_profiles.location ILIKE ?", "%"+filter.Location+"%")
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where(
			"job_seeker_profiles.first_name ILIKE ? OR job_seeker_profiles.last_name ILIKE ? OR job_seeker_profiles.bio ILIKE ? OR job_seeker_profiles.current_job_title ILIKE ?",
			pattern, pattern, pattern, pattern,
		)
	}

	var profiles []models.JobSeekerProfile
	err := query.
		Preload("Competencies", func(db *gorm.DB) *gorm.DB { return db.Limit(5) }).
		Order("job_seeker_profiles.updated_at DESC").
		Limit(filter.Limit).
		Offset(filter.Offset).
		Find(&profiles).Error
	return profiles, err
}

func (r *ProfileRepositoryImpl) ListPublicCompanies(db *gorm.DB, filter PublicProfileFilter) ([]models.CompanyProfile, error) {
	query := db.Model(&models.CompanyProfile{}).
		Where("company_profiles.is_visible = ?", true)
	query = visibleOwner(query)

	if filter.Location != "" {
		query = query.Where("company_profiles.location ILIKE ?", "%"+filter.Location+"%")
	}
	// The company search fields double as the category filter, matching the
	// public listing behavior for service providers.
	term := filter.Search
	if term == "" {
		term = filter.Category
	}
	if term != "" {
		pattern := "%" + term + "%"
		query = query.Where(
			"company_profiles.company_name ILIKE ? OR company_profiles.industry ILIKE ? OR company_profiles.description ILIKE ?",
			pattern, pattern, pattern,
		)
	}

	var profiles []models.CompanyProfile
	err := query.
		Order("company_profiles.updated_at DESC").
		Limit(filter.Limit).
		Offset(filter.Offset).
		Find(&profiles).Error
	return profiles, err
}
