package user

type RegisterRequest struct {
	FirstName      string `json:"firstName" binding:"required"`
	LastName       string `json:"lastName" binding:"required"`
	Email          string `json:"email" binding:"required,email"`
	Password       string `json:"password" binding:"required,min=8"`
	StaffID        string `json:"staffId" binding:"required"`
	PhoneNumber    string `json:"phoneNumber" binding:"required"`
	OfficeLocation string `json:"officeLocation" binding:"required"`
}

type CheckEmailRequest struct {
	Email string `json:"email" binding:"required,email"`
}

type SignInRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type VerifyOTPRequest struct {
	Email string `json:"email" binding:"required,email"`
	OTP   string `json:"otp" binding:"required"`
}

type PasswordResetRequest struct {
	Email string `json:"email" binding:"required,email"`
}

type ChangePasswordRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

type UpdateUserRequest struct {
	FirstName      string `json:"firstName"`
	LastName       string `json:"lastName"`
	PhoneNumber    string `json:"phoneNumber"`
	OfficeLocation string `json:"officeLocation"`
}

type UpdateAvatarRequest struct {
	Avatar string `json:"avatar" binding:"required"`
}

type UserResponse struct {
	ID             string `json:"id"`
	FirstName      string `json:"firstName"`
	LastName       string `json:"lastName"`
	Email          string `json:"email"`
	StaffID        string `json:"staffId"`
	PhoneNumber    string `json:"phoneNumber"`
	OfficeLocation string `json:"officeLocation"`
	Avatar         string `json:"avatar,omitempty"`
	Role           string `json:"role"`
	AccountStatus  string `json:"accountStatus"`
	IsActive       bool   `json:"isActive"`
	LastLogin      string `json:"lastLogin,omitempty"`
	CreatedAt      string `json:"createdAt"`
}

type SignInResponse struct {
	User  UserResponse `json:"user"`
	Token string       `json:"token"`
}

// Identity is the authenticated caller attached to the request context by
// the auth middleware.
type Identity struct {
	ID            string
	Email         string
	FirstName     string
	LastName      string
	Role          string
	AccountStatus string
}
