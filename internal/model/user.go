package model

// UserProfile holds profile extras attached to a user account.
type UserProfile struct {
	AvatarURL string `json:"avatar_url"`
}

// User represents the authenticated account.
type User struct {
	Username  string       `json:"username"`
	Email     string       `json:"email"`
	FirstName string       `json:"first_name"`
	LastName  string       `json:"last_name"`
	Profile   *UserProfile `json:"profile"`
	ID        int64        `json:"id"`
}

// DisplayName prefers the first name, falling back to the username.
func (u User) DisplayName() string {
	if u.FirstName != "" {
		return u.FirstName
	}
	return u.Username
}
