package validators

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"task-tracker.com/task-tracker/internal/constants"
	apperrors "task-tracker.com/task-tracker/internal/errors"
)

type query url.Values

func (q query) QueryParam(name string) string {
	return url.Values(q).Get(name)
}

func TestParseStatusFilter(t *testing.T) {
	s, err := ParseStatusFilter("")
	require.NoError(t, err)
	assert.Nil(t, s)

	s, err = ParseStatusFilter("all")
	require.NoError(t, err)
	assert.Nil(t, s)

	s, err = ParseStatusFilter("done")
	require.NoError(t, err)
	require.NotNil(t, s)
	assert.Equal(t, constants.StatusDone, *s)

	_, err = ParseStatusFilter("archived")
	assert.ErrorIs(t, err, apperrors.ErrInvalidStatus)
}

func TestParsePage(t *testing.T) {
	page, limit, err := ParsePage("", "")
	require.NoError(t, err)
	assert.Equal(t, 1, page)
	assert.Equal(t, defaultPageLimit, limit)

	_, limit, err = ParsePage("2", "500")
	require.NoError(t, err)
	assert.Equal(t, maxPageLimit, limit)

	_, _, err = ParsePage("0", "")
	assert.Error(t, err)

	_, _, err = ParsePage("", "-1")
	assert.ErrorIs(t, err, apperrors.ErrInvalidLimit)
}

func TestParseLogFilter(t *testing.T) {
	f, err := ParseLogFilter(query{
		"taskId":     {"t1"},
		"fromStatus": {"pending"},
		"toStatus":   {"approved"},
		"startDate":  {"2024-01-01"},
		"endDate":    {"2024-01-31T23:59:59Z"},
	})
	require.NoError(t, err)
	assert.Equal(t, "t1", f.TaskID)
	assert.Equal(t, constants.StatusPending, f.FromStatus)
	assert.Equal(t, constants.StatusApproved, f.ToStatus)
	require.NotNil(t, f.StartDate)
	require.NotNil(t, f.EndDate)
	assert.True(t, f.StartDate.Before(*f.EndDate))

	_, err = ParseLogFilter(query{"toStatus": {"nope"}})
	assert.ErrorIs(t, err, apperrors.ErrInvalidStatus)

	_, err = ParseLogFilter(query{"startDate": {"yesterday"}})
	assert.Error(t, err)
}
