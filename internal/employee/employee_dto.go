package employee

import "time"

type OnboardRequest struct {
	FirstName      string `json:"firstName" binding:"required"`
	LastName       string `json:"lastName" binding:"required"`
	Email          string `json:"email" binding:"required,email"`
	StaffID        string `json:"staffId" binding:"required"`
	PhoneNumber    string `json:"phoneNumber"`
	OfficeLocation string `json:"officeLocation"`
	Role           string `json:"role" binding:"required"`
	Avatar         string `json:"avatar"`
}

type UpdateEmployeeRequest struct {
	FirstName      string `json:"firstName"`
	LastName       string `json:"lastName"`
	PhoneNumber    string `json:"phoneNumber"`
	OfficeLocation string `json:"officeLocation"`
	Role           string `json:"role"`
}

type UpdateAvatarRequest struct {
	Avatar string `json:"avatar" binding:"required"`
}

type EmployeeResponse struct {
	ID             string `json:"id"`
	FirstName      string `json:"firstName"`
	LastName       string `json:"lastName"`
	Email          string `json:"email"`
	StaffID        string `json:"staffId"`
	PhoneNumber    string `json:"phoneNumber,omitempty"`
	OfficeLocation string `json:"officeLocation,omitempty"`
	Role           string `json:"role"`
	Avatar         string `json:"avatar,omitempty"`
	OnboardedByID  string `json:"onboardedById"`
	OnboardingDate string `json:"onboardingDate"`
	CreatedAt      string `json:"createdAt"`
	UpdatedAt      string `json:"updatedAt"`
}

func mapToResponse(e Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:             e.ID.String(),
		FirstName:      e.FirstName,
		LastName:       e.LastName,
		Email:          e.Email,
		StaffID:        e.StaffID,
		PhoneNumber:    e.PhoneNumber,
		OfficeLocation: e.OfficeLocation,
		Role:           e.Role,
		Avatar:         e.Avatar,
		OnboardedByID:  e.OnboardedByID.String(),
		OnboardingDate: e.OnboardingDate.Format(time.RFC3339),
		CreatedAt:      e.CreatedAt.Format(time.RFC3339),
		UpdatedAt:      e.UpdatedAt.Format(time.RFC3339),
	}
}
