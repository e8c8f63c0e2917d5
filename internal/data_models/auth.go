package dto

type RegisterRequest struct {
	UserName string `json:"userName"`
	Password string `json:"password"`
}

type LoginRequest struct {
	UserName string `json:"userName"`
	Password string `json:"password"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

type LogoutRequest struct {
	RefreshToken string `json:"refreshToken"`
}

// RegisteredUserDto never carries the password hash.
type RegisteredUserDto struct {
	ID       uint   `json:"id"`
	UserName string `json:"userName"`
}

type TokenPairDto struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

type AccessTokenDto struct {
	AccessToken string `json:"accessToken"`
}
