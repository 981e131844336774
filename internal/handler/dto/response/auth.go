package response

import "restaurant-reservations/internal/usecase/queries"

type AuthResponse struct {
	Token string            `json:"token"`
	User  *queries.UserView `json:"user"`
}
