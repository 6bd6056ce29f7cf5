package authorization

type UserRole string

const (
	RoleAdmin     UserRole = "admin"
	RoleOrganizer UserRole = "organizer"
	RoleAttendee  UserRole = "attendee"
)

func (r UserRole) String() string {
	return string(r)
}

func (r UserRole) IsAdmin() bool {
	return r == RoleAdmin
}

// CanOrganize reports whether the role may create and manage events.
func (r UserRole) CanOrganize() bool {
	return r == RoleOrganizer || r == RoleAdmin
}

func (r UserRole) IsValid() bool {
	return r == RoleAdmin || r == RoleOrganizer || r == RoleAttendee
}

// ParseUserRole maps unknown values to the least privileged role.
func ParseUserRole(s string) UserRole {
	role := UserRole(s)
	if role.IsValid() {
		return role
	}
	return RoleAttendee
}
