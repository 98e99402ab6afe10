package model

type User struct {
	ID           int64  `json:"id"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"`
	Email        string `json:"-"`
	IsAdmin      bool   `json:"isAdmin"`
}

// LoginReq represents the admin login payload
// swagger:model LoginReq
type LoginReq struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}
