package schemas

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-tailoring/internal/types"
)

func TestValidateResumeAcceptsTypedModel(t *testing.T) {
	resume := &types.ResumeData{
		Profile: &types.UserProfile{
			FullName:      "Jane Doe",
			CareerSummary: "Backend engineer.",
		},
		Experience: []types.WorkExperience{
			{Company: "Acme Corp", Position: "Engineer", Achievements: []string{"Shipped the widget service"}},
		},
		Skills: &types.Skills{Technical: []string{"Go"}},
	}
	assert.NoError(t, ValidateResume(resume))
}

func TestValidateResumeAcceptsEmptyDocument(t *testing.T) {
	assert.NoError(t, ValidateResumeJSON([]byte(`{}`)))
}

func TestValidateResumeRejectsMissingCompany(t *testing.T) {
	err := ValidateResumeJSON([]byte(`{"experience":[{"position":"Engineer"}]}`))
	require.Error(t, err)

	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	require.NotEmpty(t, ve.Errors)
	assert.Contains(t, ve.Error(), "company")
}

func TestValidateResumeRejectsWrongTypes(t *testing.T) {
	err := ValidateResumeJSON([]byte(`{"skills":{"technical":"Go"}}`))
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
}

func TestValidateResumeRejectsUnknownFields(t *testing.T) {
	err := ValidateResumeJSON([]byte(`{"hobbies":["chess"]}`))
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
}

func TestValidateResumeRejectsMalformedJSON(t *testing.T) {
	err := ValidateResumeJSON([]byte(`{not json`))
	require.Error(t, err)

	var ve *ValidationError
	assert.False(t, errors.As(err, &ve), "malformed JSON is a load error, not a validation error")
}
