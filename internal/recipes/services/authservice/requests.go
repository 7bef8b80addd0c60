package authservice

type RegisterRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Name     string `json:"name"`
}

type LoginRequest struct {
	Email    string `json:"email"    validate:"required"`
	Password string `json:"password" validate:"required"`
}

// UpdateUserRequest carries a partial self-service update. Nil fields are
// left untouched.
type UpdateUserRequest struct {
	Name     *string `json:"name"`
	Password *string `json:"password"`
}
