package response

import "github.com/google/uuid"

type LoginResponse struct {
	AccessToken string    `json:"access_token"`
	OwnerID     uuid.UUID `json:"owner_id"`
	Role        string    `json:"role"`
}
