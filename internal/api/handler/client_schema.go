package handler

type createClientRequest struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// updateClientRequest carries the only mutable profile fields. Role and
// password are not part of this contract.
type updateClientRequest struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Email    string `json:"email"    validate:"required,email"`
}

type countResponse struct {
	Count int64 `json:"count"`
}
