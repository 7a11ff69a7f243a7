package validation

import (
	"encoding/json"
	"testing"

	"github.com/cristianCeamatuAssist/assist-cursos-play-and-learn/apperrors"
	"github.com/cristianCeamatuAssist/assist-cursos-play-and-learn/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fields(t *testing.T, err error) map[string][]string {
	t.Helper()
	var ve *apperrors.ValidationError
	require.ErrorAs(t, err, &ve)
	return ve.Fields
}

func TestStruct_CreateProject(t *testing.T) {
	desc := "d"
	end := "2025-12-31"
	ok := models.CreateProjectRequest{Title: "Abc", Description: &desc, Status: "ON_HOLD", Priority: "LOW", StartDate: "2025-01-01T10:00:00Z", EndDate: &end}
	assert.NoError(t, Struct(ok))

	bad := "31/12/2025"
	f := fields(t, Struct(models.CreateProjectRequest{Title: "ab", Status: "DONE", EndDate: &bad}))
	assert.Equal(t, []string{"Title must be at least 3 characters"}, f["title"])
	assert.Equal(t, []string{"Status must be one of: ACTIVE, COMPLETED, ON_HOLD, CANCELLED"}, f["status"])
	assert.Equal(t, []string{"StartDate is required"}, f["startDate"])
	assert.Equal(t, []string{"EndDate must be a valid date"}, f["endDate"])
}

func TestStruct_UpdateProjectEndDate(t *testing.T) {
	cases := map[string]bool{
		`{}`:                       true,
		`{"endDate":null}`:         true,
		`{"endDate":"2025-02-03"}`: true,
		`{"endDate":"soon"}`:       false,
	}
	for body, valid := range cases {
		var req models.UpdateProjectRequest
		require.NoError(t, json.Unmarshal([]byte(body), &req))
		err := Struct(req)
		if valid {
			assert.NoError(t, err, body)
		} else {
			assert.Contains(t, fields(t, err), "endDate", body)
		}
	}
}

func TestStruct_UpdateProjectExplicitNulls(t *testing.T) {
	var req models.UpdateProjectRequest
	require.NoError(t, json.Unmarshal([]byte(`{"title":null,"description":null,"priority":"HIGH","endDate":null}`), &req))

	f := fields(t, Struct(req))
	assert.Equal(t, []string{"Title cannot be null"}, f["title"])
	assert.Equal(t, []string{"Description cannot be null"}, f["description"])
	assert.NotContains(t, f, "priority")
	assert.NotContains(t, f, "endDate")
	assert.Equal(t, "HIGH", *req.Priority)
}

func TestStruct_RegisterPasswordRules(t *testing.T) {
	base := models.RegisterRequest{Name: "Ana", Email: "ana@example.com"}

	for pw, valid := range map[string]bool{
		"Str0ng!pass": true,
		"Admin123!":   true,
		"alllower1!":  false,
		"ALLUPPER1!":  false,
		"NoDigits!!":  false,
		"NoSpecial12": false,
	} {
		req := base
		req.Password, req.ConfirmPassword = pw, pw
		err := Struct(req)
		if valid {
			assert.NoError(t, err, pw)
		} else {
			assert.Contains(t, fields(t, err), "password", pw)
		}
	}

	req := base
	req.Password, req.ConfirmPassword = "Str0ng!pass", "Str0ng!pasS"
	assert.Equal(t, []string{"Passwords do not match"}, fields(t, Struct(req))["confirmPassword"])
}

func TestStruct_SendEmail(t *testing.T) {
	assert.NoError(t, Struct(models.SendEmailRequest{To: "a@example.com", Name: "A"}))

	f := fields(t, Struct(models.SendEmailRequest{To: "x", Template: "newsletter"}))
	assert.Equal(t, []string{"Invalid email address"}, f["to"])
	assert.Equal(t, []string{"Name is required"}, f["name"])
	assert.Contains(t, f, "template")
}
