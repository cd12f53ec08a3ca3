package services

import (
	"encoding/json"
	"errors"

	"jobbridge_backend/internal/models"
	"jobbridge_backend/internal/repositories"
	"jobbridge_backend/internal/services/dto"
	"jobbridge_backend/pkg/apperrors"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// DefaultPublicPageSize is the public directory page size when the client
// does not ask for one.
const DefaultPublicPageSize = 12

// PublicProfilesResponse is the unauthenticated directory page.
type PublicProfilesResponse struct {
	JobSeekers []models.JobSeekerProfile `json:"jobSeekers,omitempty"`
	Companies  []models.CompanyProfile   `json:"companies,omitempty"`
	Page       int                       `json:"page"`
	Limit      int                       `json:"limit"`
}

type ProfileService interface {
	GetJobSeekerProfile(db *gorm.DB, userID string) (*models.JobSeekerProfile, error)
	UpsertJobSeekerProfile(db *gorm.DB, userID string, role models.UserRole, req *dto.UpsertJobSeekerProfileRequest) (*models.JobSeekerProfile, error)

	GetCompanyProfile(db *gorm.DB, userID string) (*models.CompanyProfile, error)
	UpsertCompanyProfile(db *gorm.DB, userID string, role models.UserRole, req *dto.UpsertCompanyProfileRequest) (*models.CompanyProfile, error)

	GetOrganizationProfile(db *gorm.DB, userID string) (*models.OrganizationProfile, error)
	UpsertOrganizationProfile(db *gorm.DB, userID string, role models.UserRole, req *dto.UpsertOrganizationProfileRequest) (*models.OrganizationProfile, error)

	ListPublicProfiles(db *gorm.DB, query *dto.PublicProfilesQuery) (*PublicProfilesResponse, error)
}

type ProfileServiceImpl struct {
	profileRepo repositories.ProfileRepository
}

func NewProfileService(profileRepo repositories.ProfileRepository) ProfileService {
	return &ProfileServiceImpl{profileRepo: profileRepo}
}

// --- Job seeker ---

func (s *ProfileServiceImpl) GetJobSeekerProfile(db *gorm.DB, userID string) (*models.JobSeekerProfile, error) {
	profile, err := s.profileRepo.FindJobSeekerByUserID(db, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrProfileNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	return profile, nil
}

// UpsertJobSeekerProfile replaces the profile and all child collections in a
// single transaction, so a failed child write never leaves the profile half
// replaced.
func (s *ProfileServiceImpl) UpsertJobSeekerProfile(db *gorm.DB, userID string, role models.UserRole, req *dto.UpsertJobSeekerProfileRequest) (*models.JobSeekerProfile, error) {
	if role != models.UserRoleJobSeeker {
		return nil, apperrors.ErrInsufficientPermissions
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		profile, err := s.profileRepo.FindJobSeekerByUserID(tx, userID)
		if err != nil {
			if !errors.Is(err, repositories.ErrProfileNotFound) {
				return err
			}
			profile = &models.JobSeekerProfile{UserID: userID}
		}

		profile.FirstName = req.FirstName
		profile.LastName = req.LastName
		profile.Phone = req.Phone
		profile.Bio = req.Bio
		profile.Location = req.Location
		profile.Category = req.Category
		profile.Availability = req.Availability
		profile.CurrentJobTitle = req.CurrentJobTitle
		profile.ExpectedSalary = req.ExpectedSalary
		profile.ProfilePicture = req.ProfilePicture
		if req.IsVisible != nil {
			profile.IsVisible = *req.IsVisible
		}
		// Save only touches the profile row; children are replaced below.
		profile.Experiences = nil
		profile.Educations = nil
		profile.Competencies = nil
		profile.References = nil
		profile.Languages = nil

		if err := s.profileRepo.SaveJobSeeker(tx, profile); err != nil {
			return err
		}

		if err := s.profileRepo.ReplaceExperiences(tx, profile.ID, experiencesFromInput(req.Experiences)); err != nil {
			return err
		}
		if err := s.profileRepo.ReplaceEducations(tx, profile.ID, educationsFromInput(req.Educations)); err != nil {
			return err
		}
		if err := s.profileRepo.ReplaceCompetencies(tx, profile.ID, competenciesFromInput(req.Competencies)); err != nil {
			return err
		}
		if err := s.profileRepo.ReplaceReferences(tx, profile.ID, referencesFromInput(req.References)); err != nil {
			return err
		}
		return s.profileRepo.ReplaceLanguages(tx, profile.ID, languagesFromInput(req.Languages))
	})
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return s.GetJobSeekerProfile(db, userID)
}

// --- Company ---

func (s *ProfileServiceImpl) GetCompanyProfile(db *gorm.DB, userID string) (*models.CompanyProfile, error) {
	profile, err := s.profileRepo.FindCompanyByUserID(db, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrProfileNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	return profile, nil
}

func (s *ProfileServiceImpl) UpsertCompanyProfile(db *gorm.DB, userID string, role models.UserRole, req *dto.UpsertCompanyProfileRequest) (*models.CompanyProfile, error) {
	if role != models.UserRoleCompany {
		return nil, apperrors.ErrInsufficientPermissions
	}

	profile, err := s.profileRepo.FindCompanyByUserID(db, userID)
	if err != nil {
		if !errors.Is(err, repositories.ErrProfileNotFound) {
			return nil, apperrors.InternalError(err)
		}
		profile = &models.CompanyProfile{UserID: userID}
	}

	services, err := json.Marshal(req.Services)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	profile.CompanyName = req.CompanyName
	profile.RegistrationNumber = req.RegistrationNumber
	profile.Phone = req.Phone
	profile.Email = req.Email
	profile.Website = req.Website
	profile.Logo = req.Logo
	profile.Description = req.Description
	profile.Industry = req.Industry
	profile.Location = req.Location
	profile.YearEstablished = req.YearEstablished
	profile.EmployeeCount = req.EmployeeCount
	profile.Services = datatypes.JSON(services)
	if req.IsVisible != nil {
		profile.IsVisible = *req.IsVisible
	}

	if err := s.profileRepo.SaveCompany(db, profile); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return profile, nil
}

// --- Organization ---

func (s *ProfileServiceImpl) GetOrganizationProfile(db *gorm.DB, userID string) (*models.OrganizationProfile, error) {
	profile, err := s.profileRepo.FindOrganizationByUserID(db, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrProfileNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	return profile, nil
}

func (s *ProfileServiceImpl) UpsertOrganizationProfile(db *gorm.DB, userID string, role models.UserRole, req *dto.UpsertOrganizationProfileRequest) (*models.OrganizationProfile, error) {
	if role != models.UserRoleOrganization {
		return nil, apperrors.ErrInsufficientPermissions
	}

	profile, err := s.profileRepo.FindOrganizationByUserID(db, userID)
	if err != nil {
		if !errors.Is(err, repositories.ErrProfileNotFound) {
			return nil, apperrors.InternalError(err)
		}
		profile = &models.OrganizationProfile{UserID: userID}
	}

	profile.OrganizationName = req.OrganizationName
	profile.Type = req.Type
	profile.Phone = req.Phone
	profile.Email = req.Email
	profile.Website = req.Website
	profile.Logo = req.Logo
	profile.Description = req.Description
	profile.Industry = req.Industry
	profile.Location = req.Location
	profile.EmployeeCount = req.EmployeeCount
	if req.IsVisible != nil {
		profile.IsVisible = *req.IsVisible
	}

	if err := s.profileRepo.SaveOrganization(db, profile); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return profile, nil
}

// --- Public directory ---

func (s *ProfileServiceImpl) ListPublicProfiles(db *gorm.DB, query *dto.PublicProfilesQuery) (*PublicProfilesResponse, error) {
	page := query.Page
	if page < 1 {
		page = 1
	}
	limit := query.Limit
	if limit < 1 {
		limit = DefaultPublicPageSize
	}

	filter := repositories.PublicProfileFilter{
		Category: query.Category,
		Location: query.Location,
		Search:   query.Search,
		Limit:    limit,
		Offset:   (page - 1) * limit,
	}

	response := &PublicProfilesResponse{Page: page, Limit: limit}

	if query.Type == "" || query.Type == "all" || query.Type == "job-seekers" {
		seekers, err := s.profileRepo.ListPublicJobSeekers(db, filter)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		response.JobSeekers = seekers
	}
	if query.Type == "" || query.Type == "all" || query.Type == "companies" {
		companies, err := s.profileRepo.ListPublicCompanies(db, filter)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		response.Companies = companies
	}

	return response, nil
}

// --- Input mapping ---

func experiencesFromInput(items []dto.ExperienceInput) []models.Experience {
	out := make([]models.Experience, 0, len(items))
	for _, item := range items {
		out = append(out, models.Experience{
			JobTitle:    item.JobTitle,
			Company:     item.Company,
			Location:    item.Location,
			StartDate:   item.StartDate,
			EndDate:     item.EndDate,
			Current:     item.Current,
			Description: item.Description,
		})
	}
	return out
}

func educationsFromInput(items []dto.EducationInput) []models.Education {
	out := make([]models.Education, 0, len(items))
	for _, item := range items {
		out = append(out, models.Education{
			Institution:  item.Institution,
			Degree:       item.Degree,
			FieldOfStudy: item.FieldOfStudy,
			StartDate:    item.StartDate,
			EndDate:      item.EndDate,
			Description:  item.Description,
		})
	}
	return out
}

func competenciesFromInput(items []dto.CompetencyInput) []models.Competency {
	out := make([]models.Competency, 0, len(items))
	for _, item := range items {
		out = append(out, models.Competency{
			Name:  item.Name,
			Level: item.Level,
		})
	}
	return out
}

func referencesFromInput(items []dto.ReferenceInput) []models.Reference {
	out := make([]models.Reference, 0, len(items))
	for _, item := range items {
		out = append(out, models.Reference{
			Name:     item.Name,
			Company:  item.Company,
			Position: item.Position,
			Email:    item.Email,
			Phone:    item.Phone,
		})
	}
	return out
}

func languagesFromInput(items []dto.LanguageInput) []models.LanguageSkill {
	out := make([]models.LanguageSkill, 0, len(items))
	for _, item := range items {
		out = append(out, models.LanguageSkill{
			Name:        item.Name,
			Proficiency: item.Proficiency,
		})
	}
	return out
}
