package handler

// Bounds mirror the stored record constraints: username 3–50 characters,
// password at least 6.
type signupRequest struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// userResponse is the public profile echoed on signup and login. The
// password hash is never part of any response type.
type userResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

type authResponse struct {
	Token string       `json:"token"`
	User  userResponse `json:"user"`
}

type validationErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}
