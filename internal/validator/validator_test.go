package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type roleProbe struct {
	Role string `json:"role" validate:"omitempty,is-public-role"`
}

type enumProbe struct {
	SubType  string `json:"subType" validate:"omitempty,is-subscription-type"`
	Decision string `json:"decision" validate:"omitempty,is-payment-decision"`
	AppState string `json:"appState" validate:"omitempty,is-application-status"`
	JobType  string `json:"jobType" validate:"omitempty,is-job-type"`
}

func TestPublicRoleRule(t *testing.T) {
	t.Parallel()
	v := New()

	for _, role := range []string{"JOB_SEEKER", "COMPANY", "ORGANIZATION", ""} {
		assert.NoError(t, v.Validate(&roleProbe{Role: role}), "role %q", role)
	}

	// ADMIN cannot be self-assigned through registration.
	err := v.Validate(&roleProbe{Role: "ADMIN"})
	require.Error(t, err)

	vErr, ok := err.(*ValidationError)
	require.True(t, ok)
	assert.Contains(t, vErr.Errors, "role")
}

func TestEnumRules(t *testing.T) {
	t.Parallel()
	v := New()

	assert.NoError(t, v.Validate(&enumProbe{
		SubType:  "DIRECT",
		Decision: "APPROVED",
		AppState: "REVIEWED",
		JobType:  "CONTRACT",
	}))

	tests := []struct {
		name  string
		probe enumProbe
		field string
	}{
		{"bad subscription type", enumProbe{SubType: "FREE"}, "subType"},
		{"pending is not a decision", enumProbe{Decision: "PENDING"}, "decision"},
		{"bad application status", enumProbe{AppState: "ARCHIVED"}, "appState"},
		{"bad job type", enumProbe{JobType: "SEASONAL"}, "jobType"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(&tt.probe)
			require.Error(t, err)

			vErr, ok := err.(*ValidationError)
			require.True(t, ok)
			assert.Contains(t, vErr.Errors, tt.field)
		})
	}
}

func TestFieldNamesUseJSONTags(t *testing.T) {
	t.Parallel()
	v := New()

	type probe struct {
		EmailAddress string `json:"emailAddress" validate:"required,email"`
	}

	err := v.Validate(&probe{})
	require.Error(t, err)

	vErr, ok := err.(*ValidationError)
	require.True(t, ok)
	assert.Contains(t, vErr.Errors, "emailAddress")
	assert.NotContains(t, vErr.Errors, "EmailAddress")
}
