package types

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func validAnalyzeRequest() AnalyzeRequest {
	return AnalyzeRequest{
		ResumeData:     &ResumeData{Profile: &UserProfile{FullName: "Jane Doe"}},
		JobDescription: "We are hiring a backend engineer.",
	}
}

func TestAnalyzeRequestValidate(t *testing.T) {
	req := validAnalyzeRequest()
	assert.NoError(t, req.Validate())

	req = validAnalyzeRequest()
	req.ResumeData = nil
	assert.Error(t, req.Validate())

	req = validAnalyzeRequest()
	req.JobDescription = ""
	assert.Error(t, req.Validate())

	req = validAnalyzeRequest()
	req.JobDescription = strings.Repeat("x", 10001)
	assert.Error(t, req.Validate())

	req = validAnalyzeRequest()
	req.UserID = "not-a-uuid"
	assert.Error(t, req.Validate())

	req = validAnalyzeRequest()
	req.UserID = "7b0f7d3c-4f9d-4cb8-9d53-6de3f7a9c9f1"
	assert.NoError(t, req.Validate())
}

func TestSubmitResponseRequestValidate(t *testing.T) {
	req := SubmitResponseRequest{Response: "I led a team."}
	assert.NoError(t, req.Validate())

	req = SubmitResponseRequest{}
	assert.Error(t, req.Validate())
}

func TestNavigateRequestValidate(t *testing.T) {
	assert.NoError(t, (&NavigateRequest{Direction: "prev"}).Validate())
	assert.NoError(t, (&NavigateRequest{Direction: "next"}).Validate())
	assert.Error(t, (&NavigateRequest{Direction: "up"}).Validate())
	assert.Error(t, (&NavigateRequest{}).Validate())
}

func TestSelectGapRequestValidate(t *testing.T) {
	assert.NoError(t, (&SelectGapRequest{Index: 0}).Validate())
	assert.NoError(t, (&SelectGapRequest{Index: 3}).Validate())
	assert.Error(t, (&SelectGapRequest{Index: -1}).Validate())
}
