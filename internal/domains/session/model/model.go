package model

const EntityName = "session"

// Principal is the authenticated user as known to the gateway. A session has
// exactly zero or one principal; anonymous is a valid state and is represented
// by the absence of a record, never by a partially filled one.
type Principal struct {
	UserID      int64  `json:"user_id"`
	Username    string `json:"username"`
	Email       string `json:"email"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	PhoneNumber string `json:"phone_number,omitempty"`

	// RoleRef is the structured role name when the backend supplies one.
	RoleRef string `json:"role_ref,omitempty"`
	// Role is the plain role string fallback some backend versions emit.
	Role string `json:"role,omitempty"`
}

// RoleName resolves the principal's role, preferring the structured reference
// over the plain string field.
func (p Principal) RoleName() string {
	if p.RoleRef != "" {
		return p.RoleRef
	}

	return p.Role
}

func (p Principal) DisplayName() string {
	if p.FirstName == "" && p.LastName == "" {
		return p.Username
	}

	return p.FirstName + " " + p.LastName
}

// Record is what the store persists per gateway session: the bearer credential
// issued by the remote API together with the principal snapshot. Records are
// replaced whole, never mutated field by field.
type Record struct {
	Token     string    `json:"token"`
	Principal Principal `json:"principal"`
}
