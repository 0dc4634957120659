package constants

type TaskStatus string

const (
	StatusPending  TaskStatus = "pending"
	StatusApproved TaskStatus = "approved"
	StatusDone     TaskStatus = "done"
	StatusRejected TaskStatus = "rejected"
)

// Statuses lists every status in board column order.
var Statuses = []TaskStatus{
	StatusPending,
	StatusApproved,
	StatusDone,
	StatusRejected,
}

func (s TaskStatus) Valid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusDone, StatusRejected:
		return true
	}
	return false
}

func ParseStatus(raw string) (TaskStatus, bool) {
	s := TaskStatus(raw)
	return s, s.Valid()
}
