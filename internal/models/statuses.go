package models

// ApplicationStatus is stored as a plain string: the legacy update endpoint
// accepts any value and the known constants exist for reading and sorting,
// not for server-side transition enforcement.
type ApplicationStatus string

const (
	ApplicationStatusPending    ApplicationStatus = "pending"
	ApplicationStatusAccepted   ApplicationStatus = "accepted"
	ApplicationStatusRejected   ApplicationStatus = "rejected"
	ApplicationStatusCancelled  ApplicationStatus = "cancelled"
	ApplicationStatusTerminated ApplicationStatus = "terminated"
)

// StatusPriority is the fixed display order used when sorting application
// lists. Unknown statuses sort last.
var StatusPriority = map[ApplicationStatus]int{
	ApplicationStatusPending:    0,
	ApplicationStatusAccepted:   1,
	ApplicationStatusRejected:   2,
	ApplicationStatusCancelled:  3,
	ApplicationStatusTerminated: 4,
}

// PriorityOf returns the sort rank for a status.
func PriorityOf(s ApplicationStatus) int {
	if p, ok := StatusPriority[s]; ok {
		return p
	}
	return len(StatusPriority)
}
