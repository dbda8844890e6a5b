package authorization

type UserRole string

const (
	RoleAdmin UserRole = "admin"
	RoleUser  UserRole = "user"
)

func (r UserRole) String() string {
	return string(r)
}

func (r UserRole) IsAdmin() bool {
	return r == RoleAdmin
}

func (r UserRole) IsValid() bool {
	return r == RoleAdmin || r == RoleUser
}

// RoleFor maps the global admin flag to the policy subject.
func RoleFor(isAdmin bool) UserRole {
	if isAdmin {
		return RoleAdmin
	}
	return RoleUser
}

// Principal is the authenticated caller of an operation.
type Principal struct {
	Username string
	IsAdmin  bool
}

func (p Principal) Role() UserRole {
	return RoleFor(p.IsAdmin)
}
