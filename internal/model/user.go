package model

// User is the logged-in shopper's profile as kept in the session.
type User struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Username string `json:"username"`
}

// GetDisplayName returns the name, falling back to the username
func (u *User) GetDisplayName() string {
	if u == nil {
		return ""
	}
	if u.Name != "" {
		return u.Name
	}
	return u.Username
}
