package entity

// User is a site account as reported by the identity service.
type User struct {
	ID    string
	Name  string
	Email string
	Role  string
}

const (
	RoleParent = "parent"
	RoleAdmin  = "admin"
)

func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
