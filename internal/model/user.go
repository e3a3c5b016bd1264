package model

import "time"

// User is the public identity snapshot: what the session holds and what
// handlers return. The credential lives only on UserRecord.
type User struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	Phone         string    `json:"phone,omitempty"`
	EmailVerified bool      `json:"emailVerified"`
	CreatedAt     time.Time `json:"createdAt"`
}

// UserRecord is the stored form of a user, persisted in the shoply_users
// collection. PasswordHash is a bcrypt hash, never plaintext.
type UserRecord struct {
	User
	PasswordHash string `json:"password"`
}

// ProfileUpdate carries a partial profile change. Nil fields are untouched.
type ProfileUpdate struct {
	Name  *string `json:"name,omitempty"`
	Phone *string `json:"phone,omitempty"`
}

// Apply merges the update into u, leaving absent fields alone.
func (p ProfileUpdate) Apply(u *User) {
	if p.Name != nil {
		u.Name = *p.Name
	}
	if p.Phone != nil {
		u.Phone = *p.Phone
	}
}
