// Package nav decides which navigation bar a request gets.
package nav

import "github.com/hongminglow/techjobbkk/internal/session"

// Variant is one of the three navigation bars.
type Variant int

const (
	Anonymous Variant = iota
	Applicant
	Company
)

func (v Variant) String() string {
	switch v {
	case Applicant:
		return "applicant"
	case Company:
		return "company"
	default:
		return "anonymous"
	}
}

// Link is a single navigation entry.
type Link struct {
	Label string
	Path  string
}

// Resolve maps the request's session to a navigation variant.
// Company accounts get Company; every other authenticated role gets Applicant.
func Resolve(s *session.Session) Variant {
	if s == nil {
		return Anonymous
	}
	if s.Role.IsCompany() {
		return Company
	}
	return Applicant
}

// Links returns the menu entries shown for v.
func Links(v Variant) []Link {
	switch v {
	case Company:
		return []Link{
			{Label: "Post", Path: "/jobs/new"},
			{Label: "Applicants", Path: "/applicants"},
			{Label: "Profile", Path: "/profile"},
			{Label: "Logout", Path: "/logout"},
		}
	case Applicant:
		return []Link{
			{Label: "Search Jobs", Path: "/"},
			{Label: "Profile", Path: "/profile"},
			{Label: "My Jobs", Path: "/my-jobs"},
			{Label: "Logout", Path: "/logout"},
		}
	default:
		return []Link{
			{Label: "Find Jobs", Path: "/"},
			{Label: "Register", Path: "/register"},
			{Label: "Login", Path: "/login"},
			{Label: "Company Sign-up", Path: "/register/company"},
		}
	}
}
