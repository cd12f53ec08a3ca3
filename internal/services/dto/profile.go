package dto

import "time"

// Profile upserts replace the stored profile wholesale, child collections
// included: omitting experiences deletes the stored ones.

type ExperienceInput struct {
	JobTitle    string     `json:"jobTitle" validate:"required"`
	Company     string     `json:"company" validate:"required"`
	Location    string     `json:"location"`
	StartDate   time.Time  `json:"startDate" validate:"required"`
	EndDate     *time.Time `json:"endDate"`
	Current     bool       `json:"current"`
	Description string     `json:"description"`
}

type EducationInput struct {
	Institution  string     `json:"institution" validate:"required"`
	Degree       string     `json:"degree"`
	FieldOfStudy string     `json:"fieldOfStudy"`
	StartDate    time.Time  `json:"startDate" validate:"required"`
	EndDate      *time.Time `json:"endDate"`
	Description  string     `json:"description"`
}

type CompetencyInput struct {
	Name  string `json:"name" validate:"required"`
	Level string `json:"level"`
}

type ReferenceInput struct {
	Name     string `json:"name" validate:"required"`
	Company  string `json:"company"`
	Position string `json:"position"`
	Email    string `json:"email" validate:"omitempty,email"`
	Phone    string `json:"phone"`
}

type LanguageInput struct {
	Name        string `json:"name" validate:"required"`
	Proficiency string `json:"proficiency"`
}

type UpsertJobSeekerProfileRequest struct {
	FirstName       string   `json:"firstName" validate:"required"`
	LastName        string   `json:"lastName" validate:"required"`
	Phone           string   `json:"phone"`
	Bio             string   `json:"bio" validate:"omitempty,max=2000"`
	Location        string   `json:"location"`
	Category        string   `json:"category"`
	Availability    string   `json:"availability"`
	CurrentJobTitle string   `json:"currentJobTitle"`
	ExpectedSalary  *float64 `json:"expectedSalary" validate:"omitempty,min=0"`
	ProfilePicture  string   `json:"profilePicture"`
	IsVisible       *bool    `json:"isVisible"`

	Experiences  []ExperienceInput `json:"experiences" validate:"dive"`
	Educations   []EducationInput  `json:"educations" validate:"dive"`
	Competencies []CompetencyInput `json:"competencies" validate:"dive"`
	References   []ReferenceInput  `json:"references" validate:"dive"`
	Languages    []LanguageInput   `json:"languages" validate:"dive"`
}

type UpsertCompanyProfileRequest struct {
	CompanyName        string   `json:"companyName" validate:"required"`
	RegistrationNumber string   `json:"registrationNumber"`
	Phone              string   `json:"phone"`
	Email              string   `json:"email" validate:"omitempty,email"`
	Website            string   `json:"website" validate:"omitempty,url"`
	Logo               string   `json:"logo"`
	Description        string   `json:"description" validate:"omitempty,max=2000"`
	Industry           string   `json:"industry"`
	Location           string   `json:"location"`
	YearEstablished    *int     `json:"yearEstablished" validate:"omitempty,min=1800"`
	EmployeeCount      string   `json:"employeeCount"`
	Services           []string `json:"services"`
	IsVisible          *bool    `json:"isVisible"`
}

type UpsertOrganizationProfileRequest struct {
	OrganizationName string `json:"organizationName" validate:"required"`
	Type             string `json:"type" validate:"required"`
	Phone            string `json:"phone"`
	Email            string `json:"email" validate:"omitempty,email"`
	Website          string `json:"website" validate:"omitempty,url"`
	Logo             string `json:"logo"`
	Description      string `json:"description" validate:"omitempty,max=2000"`
	Industry         string `json:"industry"`
	Location         string `json:"location"`
	EmployeeCount    string `json:"employeeCount"`
	IsVisible        *bool  `json:"isVisible"`
}

// PublicProfilesQuery drives the unauthenticated profile directory. Type
// narrows the listing to job-seekers or companies; all (the default) returns
// both collections in one page.
type PublicProfilesQuery struct {
	Type     string `form:"type" validate:"omitempty,oneof=all job-seekers companies"`
	Category string `form:"category"`
	Location string `form:"location"`
	Search   string `form:"search"`
	Page     int    `form:"page" validate:"omitempty,min=1"`
	Limit    int    `form:"limit" validate:"omitempty,min=1,max=100"`
}
