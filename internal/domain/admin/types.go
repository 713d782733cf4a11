package admin

import "strings"

type Role string

const (
	RoleSubAdmin   Role = "sub_admin"
	RoleAdmin      Role = "admin"
	RoleSuperAdmin Role = "super_admin"
)

var roleRank = map[Role]int{
	RoleSubAdmin:   1,
	RoleAdmin:      2,
	RoleSuperAdmin: 3,
}

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	_, ok := roleRank[r]
	return ok
}

// AtLeast is false when either role is unknown.
func (r Role) AtLeast(min Role) bool {
	have, ok := roleRank[r]
	if !ok {
		return false
	}
	want, ok := roleRank[min]
	return ok && have >= want
}

func NewRole(s string) (Role, error) {
	role := Role(strings.ToLower(strings.TrimSpace(s)))
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}
