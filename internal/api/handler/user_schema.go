package handler

// --- Request / Response types ---

type createUserRequest struct {
	Username string `json:"username" validate:"required,min=3,max=20,alphanum"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=6,letterdigit"`
	Role     string `json:"role"     validate:"omitempty,oneof=user admin"`
	IsActive *bool  `json:"isActive"`
}

type updateUserRequest struct {
	Username *string `json:"username" validate:"omitempty,min=3,max=20,alphanum"`
	Email    *string `json:"email"    validate:"omitempty,email"`
	Role     *string `json:"role"     validate:"omitempty,oneof=user admin"`
	IsActive *bool   `json:"isActive"`
}

type userEnvelope struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	User    userPayload `json:"user"`
}

type listUsersEnvelope struct {
	Success bool          `json:"success"`
	Count   int           `json:"count"`
	Users   []userPayload `json:"users"`
}
