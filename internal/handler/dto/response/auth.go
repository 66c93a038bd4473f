package response

import "github.com/google/uuid"

type RegisterResponse struct {
	UserID uuid.UUID `json:"userId"`
}

type LoginResponse struct {
	AccessToken string `json:"accessToken"`
}
