package entities

import (
	"fmt"
	"strings"
)

const (
	RoleAdmin = "ADMIN"

	rolePrefix = "ROLE_"
)

// Principal is the verified identity behind one request. It is never persisted.
type Principal struct {
	SubjectID   string `json:"subject_id"`
	Email       string `json:"email"`
	DisplayName string `json:"display_name"`
	Role        string `json:"role"`

	rawToken string
}

// NewPrincipal builds a principal and canonicalizes its role.
func NewPrincipal(subjectID, email, displayName, role, rawToken string) Principal {
	return Principal{
		SubjectID:   strings.TrimSpace(subjectID),
		Email:       strings.TrimSpace(email),
		DisplayName: strings.TrimSpace(displayName),
		Role:        CanonicalRole(role),
		rawToken:    rawToken,
	}
}

// Token returns the bearer token the principal was validated from, for downstream calls.
func (p Principal) Token() string {
	return p.rawToken
}

// HasRole reports whether the principal carries required. Both sides are canonicalized,
// so "ADMIN", "ROLE_ADMIN" and "admin" are interchangeable.
func (p Principal) HasRole(required string) bool {
	want := CanonicalRole(required)
	return want != "" && CanonicalRole(p.Role) == want
}

// String omits the raw token.
func (p Principal) String() string {
	return fmt.Sprintf("Principal{subject=%s email=%s role=%s}", p.SubjectID, p.Email, p.Role)
}

func (p Principal) GoString() string {
	return p.String()
}

// CanonicalRole upper-cases a role and strips one ROLE_ prefix.
func CanonicalRole(role string) string {
	r := strings.ToUpper(strings.TrimSpace(role))
	return strings.TrimPrefix(r, rolePrefix)
}
