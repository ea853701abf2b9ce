package dto

// LoginRequest carries the identity claims posted to /jwt. The frontend owns
// the actual sign-in; this service only vouches for what it is handed.
type LoginRequest struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}
