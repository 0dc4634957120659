package validators

import (
	"strconv"
	"time"

	"task-tracker.com/task-tracker/internal/constants"
	apperrors "task-tracker.com/task-tracker/internal/errors"
	repository "task-tracker.com/task-tracker/internal/repositories"
)

const (
	defaultPageLimit = 20
	maxPageLimit     = 100
)

// ParseStatusFilter reads the optional ?status= filter. An empty value or
// "all" means no filter.
func ParseStatusFilter(raw string) (*constants.TaskStatus, error) {
	if raw == "" || raw == "all" {
		return nil, nil
	}
	status, ok := constants.ParseStatus(raw)
	if !ok {
		return nil, apperrors.ErrInvalidStatus
	}
	return &status, nil
}

func ParsePage(pageRaw, limitRaw string) (int, int, error) {
	page, limit := 1, defaultPageLimit

	if pageRaw != "" {
		p, err := strconv.Atoi(pageRaw)
		if err != nil || p <= 0 {
			return 0, 0, apperrors.New(apperrors.KindValidation, "page must be a positive integer")
		}
		page = p
	}
	if limitRaw != "" {
		l, err := strconv.Atoi(limitRaw)
		if err != nil || l <= 0 {
			return 0, 0, apperrors.ErrInvalidLimit
		}
		limit = min(l, maxPageLimit)
	}

	return page, limit, nil
}

type QueryGetter interface {
	QueryParam(name string) string
}

func ParseLogFilter(q QueryGetter) (repository.LogFilter, error) {
	page, limit, err := ParsePage(q.QueryParam("page"), q.QueryParam("limit"))
	if err != nil {
		return repository.LogFilter{}, err
	}

	f := repository.LogFilter{
		TaskID: q.QueryParam("taskId"),
		UserID: q.QueryParam("userId"),
		Action: constants.ActivityAction(q.QueryParam("action")),
		Page:   page,
		Limit:  limit,
	}

	for _, s := range []struct {
		raw string
		dst *constants.TaskStatus
	}{
		{q.QueryParam("fromStatus"), &f.FromStatus},
		{q.QueryParam("toStatus"), &f.ToStatus},
	} {
		if s.raw == "" {
			continue
		}
		status, ok := constants.ParseStatus(s.raw)
		if !ok {
			return repository.LogFilter{}, apperrors.ErrInvalidStatus
		}
		*s.dst = status
	}

	if f.StartDate, err = parseDate(q.QueryParam("startDate")); err != nil {
		return repository.LogFilter{}, err
	}
	if f.EndDate, err = parseDate(q.QueryParam("endDate")); err != nil {
		return repository.LogFilter{}, err
	}

	return f, nil
}

// parseDate accepts RFC 3339 timestamps or plain YYYY-MM-DD dates.
func parseDate(raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	for _, layout := range []string{time.RFC3339, time.DateOnly} {
		if t, err := time.Parse(layout, raw); err == nil {
			t = t.UTC()
			return &t, nil
		}
	}
	return nil, apperrors.New(apperrors.KindValidation, "invalid date: "+raw)
}
