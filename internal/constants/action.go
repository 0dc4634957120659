package constants

type ActivityAction string

const (
	ActionCreate       ActivityAction = "create"
	ActionUpdate       ActivityAction = "update"
	ActionDelete       ActivityAction = "delete"
	ActionStatusChange ActivityAction = "status_change"
)

type NotificationType string

const (
	NotificationTaskApproved NotificationType = "task_approved"
	NotificationTaskRejected NotificationType = "task_rejected"
	NotificationTaskDone     NotificationType = "task_done"
)

// NotificationFor reports which notification a transition into status raises.
func NotificationFor(status TaskStatus) (NotificationType, bool) {
	switch status {
	case StatusApproved:
		return NotificationTaskApproved, true
	case StatusRejected:
		return NotificationTaskRejected, true
	case StatusDone:
		return NotificationTaskDone, true
	}
	return "", false
}
