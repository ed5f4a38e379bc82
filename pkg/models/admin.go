package models

// Admin is a statically configured identity allowed into the dashboard.
// The PasswordHash is a bcrypt hash; admins are provisioned out of band
// (see cmd/hashpw), never through the API.
type Admin struct {
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
	Role         string `json:"role"`
	Name         string `json:"name"`
}

// AdminProfile is the public view of an Admin returned to clients.
type AdminProfile struct {
	Email string `json:"email"`
	Role  string `json:"role"`
	Name  string `json:"name"`
}

// Profile strips the credential material from an Admin.
func (a Admin) Profile() AdminProfile {
	return AdminProfile{Email: a.Email, Role: a.Role, Name: a.Name}
}
