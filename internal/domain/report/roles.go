package report

// Role is a cooperative back-office role that gates lifecycle transitions
type Role string

const (
	RoleOperator   Role = "operator"   // Staf administrasi: drafts reports
	RoleTreasurer  Role = "bendahara"  // Treasurer: drafts and submits
	RoleChairman   Role = "ketua"      // Chairman: approves or rejects
	RoleSupervisor Role = "pengawas"   // Supervisory board: approves or rejects
)

// IsValid checks if the role is known
func (r Role) IsValid() bool {
	switch r {
	case RoleOperator, RoleTreasurer, RoleChairman, RoleSupervisor:
		return true
	}
	return false
}

// String returns the string representation of Role
func (r Role) String() string {
	return string(r)
}

// CanSubmitReports returns true if the role may submit a draft report for approval
func (r Role) CanSubmitReports() bool {
	return r == RoleTreasurer || r == RoleChairman || r == RoleSupervisor
}

// CanReviewReports returns true if the role may approve or reject a submitted report
func (r Role) CanReviewReports() bool {
	return r == RoleChairman || r == RoleSupervisor
}

// RoleSet is a collection of roles held by one actor
type RoleSet []Role

// CanSubmitReports returns true if any held role may submit
func (rs RoleSet) CanSubmitReports() bool {
	for _, r := range rs {
		if r.CanSubmitReports() {
			return true
		}
	}
	return false
}

// CanReviewReports returns true if any held role may approve or reject
func (rs RoleSet) CanReviewReports() bool {
	for _, r := range rs {
		if r.CanReviewReports() {
			return true
		}
	}
	return false
}

// Contains returns true if the set holds the given role
func (rs RoleSet) Contains(role Role) bool {
	for _, r := range rs {
		if r == role {
			return true
		}
	}
	return false
}
