package services

import (
	"testing"

	"jobbridge_backend/internal/models"
	"jobbridge_backend/internal/services/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListPublicProfiles_TypeSelectsCollections(t *testing.T) {
	t.Parallel()

	repo := newFakeProfileRepo()
	repo.publicSeekers = []models.JobSeekerProfile{{FirstName: "Ada", LastName: "Obi"}}
	repo.publicCompanies = []models.CompanyProfile{{CompanyName: "Acme"}}
	svc := NewProfileService(repo)

	// No type asked for: both collections on one page.
	resp, err := svc.ListPublicProfiles(nil, &dto.PublicProfilesQuery{})
	require.NoError(t, err)
	assert.Len(t, resp.JobSeekers, 1)
	assert.Len(t, resp.Companies, 1)
	assert.Equal(t, 1, resp.Page)
	assert.Equal(t, DefaultPublicPageSize, resp.Limit)

	// "all" is the explicit spelling of the default.
	resp, err = svc.ListPublicProfiles(nil, &dto.PublicProfilesQuery{Type: "all"})
	require.NoError(t, err)
	assert.Len(t, resp.JobSeekers, 1)
	assert.Len(t, resp.Companies, 1)

	resp, err = svc.ListPublicProfiles(nil, &dto.PublicProfilesQuery{Type: "job-seekers"})
	require.NoError(t, err)
	assert.Len(t, resp.JobSeekers, 1)
	assert.Empty(t, resp.Companies)

	resp, err = svc.ListPublicProfiles(nil, &dto.PublicProfilesQuery{Type: "companies"})
	require.NoError(t, err)
	assert.Empty(t, resp.JobSeekers)
	assert.Len(t, resp.Companies, 1)
}

func TestListPublicProfiles_Pagination(t *testing.T) {
	t.Parallel()

	svc := NewProfileService(newFakeProfileRepo())

	resp, err := svc.ListPublicProfiles(nil, &dto.PublicProfilesQuery{Page: 3, Limit: 5})
	require.NoError(t, err)
	assert.Equal(t, 3, resp.Page)
	assert.Equal(t, 5, resp.Limit)
}
