package model

import "time"

type User struct {
	ID           int64      `json:"id_user"`
	Username     string     `json:"username"`
	Email        string     `json:"email"`
	PasswordHash string     `json:"-"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    *time.Time `json:"updated_at"`
}

// UserUpdate carries only the fields a caller wants changed; nil means untouched.
type UserUpdate struct {
	Username     *string
	Email        *string
	PasswordHash *string
}

func (u UserUpdate) IsEmpty() bool {
	return u.Username == nil && u.Email == nil && u.PasswordHash == nil
}

type TokenPair struct {
	AccessToken  string `json:"access_token"`
	TokenType    string `json:"token_type"`
	RefreshToken string `json:"refresh_token"`

	RefreshExpiresAt time.Time `json:"-"`
}
