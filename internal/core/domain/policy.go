package domain

// Complaint access policy. Pure decision functions with no I/O; the service
// layer consults these before touching the repository.

// CanCreateComplaint reports whether the identity may submit a complaint.
// Any authenticated identity with a recognized role qualifies.
func CanCreateComplaint(id Identity) bool {
	switch id.Role {
	case RoleUser, RoleAdmin:
		return true
	default:
		// Unknown role strings (stale or foreign tokens) fail closed.
		return false
	}
}

// CanListAllComplaints reports whether the identity may read every
// complaint regardless of owner.
func CanListAllComplaints(id Identity) bool {
	switch id.Role {
	case RoleAdmin:
		return true
	default:
		return false
	}
}

// CanListOwnComplaints reports whether the identity may read complaints it
// owns. The scope is implicitly id.UserID; callers must not widen it.
func CanListOwnComplaints(id Identity) bool {
	switch id.Role {
	case RoleUser, RoleAdmin:
		return true
	default:
		return false
	}
}
