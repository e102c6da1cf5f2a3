package entity

// Role constants
const (
	RoleAdmin        = "admin"
	RoleDoctor       = "doctor"
	RoleReceptionist = "receptionist"
	RolePatient      = "patient"
	RoleUser         = "user"
)

// RoleRequiresProfile reports whether an account with the given role must
// have a matching role profile record. Admin and bare user accounts do not.
func RoleRequiresProfile(role string) bool {
	switch role {
	case RoleDoctor, RoleReceptionist, RolePatient:
		return true
	}
	return false
}
