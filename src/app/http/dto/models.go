package dto

// SignUpRequest is the payload for POST /sign-up.
// Name, About, and Avatar are optional; the profile falls back to defaults.
type SignUpRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Name     string `json:"name" binding:"omitempty,min=2,max=30"`
	About    string `json:"about" binding:"omitempty,min=2,max=30"`
	Avatar   string `json:"avatar" binding:"omitempty,urlscheme"`
}

// SignInRequest is the payload for POST /sign-in.
type SignInRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

// UpdateProfileRequest is the payload for PATCH /users/me.
type UpdateProfileRequest struct {
	Name  string `json:"name" binding:"required,min=2,max=30"`
	About string `json:"about" binding:"required,min=2,max=30"`
}

// UpdateAvatarRequest is the payload for PATCH /users/me/avatar.
type UpdateAvatarRequest struct {
	Avatar string `json:"avatar" binding:"required,urlscheme"`
}

// CreateCardRequest is the payload for POST /cards.
type CreateCardRequest struct {
	Name string `json:"name" binding:"required,min=2,max=30"`
	Link string `json:"link" binding:"required,urlscheme"`
}
