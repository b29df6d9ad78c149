package models

import "strings"

// Role is the account kind stored on a user row.
type Role string

const (
	RoleApplicant Role = "applicant"
	RoleCompany   Role = "company"
)

// ParseRole maps a stored role name to a Role. Unknown names are treated as
// applicants, matching how the navigation treats any non-company account.
func ParseRole(name string) Role {
	if strings.EqualFold(strings.TrimSpace(name), string(RoleCompany)) {
		return RoleCompany
	}
	return RoleApplicant
}

// IsCompany reports whether the role may own job postings.
func (r Role) IsCompany() bool {
	return r == RoleCompany
}
