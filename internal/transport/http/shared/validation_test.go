package shared

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidatorCollectsSortedIssues(t *testing.T) {
	v := NewValidator()
	v.Add("startDate", "must be a valid date")
	v.Add("code", "code is required")
	v.Required("email", "   ", "email is required")

	require.True(t, v.HasIssues())
	issues := v.Issues()
	require.Len(t, issues, 3)
	require.Equal(t, "code", issues[0].Field)
	require.Equal(t, "email", issues[1].Field)
	require.Equal(t, "startDate", issues[2].Field)
}

func TestValidatorDate(t *testing.T) {
	v := NewValidator()

	parsed, ok := v.Date("startDate", "2026-07-01")
	require.True(t, ok)
	require.Equal(t, 2026, parsed.Year())
	require.False(t, v.HasIssues())

	_, ok = v.Date("endDate", "not-a-date")
	require.False(t, ok)
	require.True(t, v.HasIssues())
}

func TestValidatorRejectWritesNothingWhenClean(t *testing.T) {
	v := NewValidator()
	rec := httptest.NewRecorder()
	require.False(t, v.Reject(rec, "req-1"))
	require.Empty(t, rec.Body.String())
}

func TestValidatorRejectWrites400(t *testing.T) {
	v := NewValidator()
	v.Add("period", "period is required")

	rec := httptest.NewRecorder()
	require.True(t, v.Reject(rec, "req-1"))
	require.Equal(t, 400, rec.Code)
	require.Contains(t, rec.Body.String(), "validation_error")
	require.Contains(t, rec.Body.String(), "period")
}

func TestPaginationDefaultsAndBounds(t *testing.T) {
	r := httptest.NewRequest("GET", "/api/v1/employees", nil)
	limit, offset := Pagination(r)
	require.Equal(t, 50, limit)
	require.Equal(t, 0, offset)

	r = httptest.NewRequest("GET", "/api/v1/employees?limit=500&offset=-2", nil)
	limit, offset = Pagination(r)
	require.Equal(t, 50, limit)
	require.Equal(t, 0, offset)

	r = httptest.NewRequest("GET", "/api/v1/employees?limit=25&offset=75", nil)
	limit, offset = Pagination(r)
	require.Equal(t, 25, limit)
	require.Equal(t, 75, offset)
}
