package document

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDoc() Document {
	return Document{
		"profile": map[string]any{
			"fullName":      "Jane Doe",
			"careerSummary": "Backend engineer.",
		},
		"experience": []any{
			map[string]any{
				"company":      "Acme Corp",
				"achievements": []any{"Shipped the widget service"},
			},
			map[string]any{
				"company": "Globex",
			},
		},
		"skills": map[string]any{
			"technical": []any{"Go", "PostgreSQL"},
		},
	}
}

func TestParsePath(t *testing.T) {
	segments, err := ParsePath("experience[2].achievements")
	require.NoError(t, err)
	require.Len(t, segments, 2)
	assert.Equal(t, Segment{Field: "experience", Index: 2, IsArray: true}, segments[0])
	assert.Equal(t, Segment{Field: "achievements"}, segments[1])
}

func TestParsePathErrors(t *testing.T) {
	for _, path := range []string{"", "  ", "a..b", "experience[x]", "experience[", "experience[0", "[0]"} {
		t.Run(path, func(t *testing.T) {
			_, err := ParsePath(path)
			assert.Error(t, err)
		})
	}
}

func TestGetValue(t *testing.T) {
	doc := testDoc()

	assert.Equal(t, "Jane Doe", GetValue(doc, "profile.fullName"))
	assert.Equal(t, "Acme Corp", GetValue(doc, "experience[0].company"))
	assert.Equal(t, []any{"Go", "PostgreSQL"}, GetValue(doc, "skills.technical"))
}

func TestGetValueAbsenceIsNil(t *testing.T) {
	doc := testDoc()

	assert.Nil(t, GetValue(doc, "profile.missing"))
	assert.Nil(t, GetValue(doc, "experience[5].company"))
	assert.Nil(t, GetValue(doc, "profile[0].fullName"))
	assert.Nil(t, GetValue(doc, "profile.fullName.deeper"))
	assert.Nil(t, GetValue(doc, "bad..path"))
}

func TestSetValueReplacesLeaf(t *testing.T) {
	doc := testDoc()

	updated, err := SetValue(doc, "profile.careerSummary", "New summary.")
	require.NoError(t, err)

	assert.Equal(t, "New summary.", GetValue(updated, "profile.careerSummary"))
	assert.Equal(t, "Backend engineer.", GetValue(doc, "profile.careerSummary"))
}

func TestSetValueCreatesIntermediates(t *testing.T) {
	updated, err := SetValue(Document{}, "skills.technical", []string{"Go"})
	require.NoError(t, err)
	assert.Equal(t, []string{"Go"}, GetValue(updated, "skills.technical"))
}

func TestSetValuePadsArrays(t *testing.T) {
	updated, err := SetValue(Document{}, "experience[2].company", "Initech")
	require.NoError(t, err)

	assert.Equal(t, "Initech", GetValue(updated, "experience[2].company"))
	assert.Equal(t, map[string]any{}, GetValue(updated, "experience[0]"))
	assert.Equal(t, map[string]any{}, GetValue(updated, "experience[1]"))
}

func TestSetValueSharesUntouchedBranches(t *testing.T) {
	doc := testDoc()

	updated, err := SetValue(doc, "profile.careerSummary", "Changed.")
	require.NoError(t, err)

	// Branches off the written spine are the same nodes, not copies.
	original := doc["skills"].(map[string]any)
	shared := updated["skills"].(map[string]any)
	original["marker"] = true
	_, found := shared["marker"]
	assert.True(t, found)
}

func TestSetValueDoesNotMutateSiblingsOnSpine(t *testing.T) {
	doc := testDoc()

	updated, err := SetValue(doc, "experience[1].achievements", []string{"New"})
	require.NoError(t, err)

	assert.Nil(t, GetValue(doc, "experience[1].achievements"))
	assert.Equal(t, []string{"New"}, GetValue(updated, "experience[1].achievements"))
	assert.Equal(t, "Acme Corp", GetValue(updated, "experience[0].company"))
}

func TestSetValueRejectsMalformedPath(t *testing.T) {
	_, err := SetValue(testDoc(), "experience[oops]", "x")
	assert.Error(t, err)
}
