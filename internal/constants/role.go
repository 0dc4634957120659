package constants

type Role string

const (
	RoleSubmitter Role = "submitter"
	RoleApprover  Role = "approver"
)

func (r Role) Valid() bool {
	return r == RoleSubmitter || r == RoleApprover
}
