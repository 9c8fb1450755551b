package dto

// TokenRequest is the identity payload the token endpoint signs
type TokenRequest struct {
	Email string `json:"email" binding:"required,email"`
	Name  string `json:"name"`
}

// TokenResponse carries the signed access token
type TokenResponse struct {
	Token string `json:"token"`
}

// RoleResponse reports the privileged flags for a user's stored role
type RoleResponse struct {
	Admin     bool `json:"admin"`
	Moderator bool `json:"moderator"`
}

// RolePatchRequest updates a user's role; only the role field is accepted
type RolePatchRequest struct {
	Role string `json:"role" binding:"required"`
}
