package assignment

import "time"

// Presence validation happens in the service so each missing field gets
// its own detail line, matching the rest of the validation surface.
type AssignRequest struct {
	EmployeeID   string `json:"employeeId"`
	DeviceID     string `json:"deviceId"`
	AssignedOn   string `json:"assignedOn"`
	AssignedByID string `json:"assignedById"`
	Remark       string `json:"remark"`
}

type RetrieveRequest struct {
	DeviceID      string `json:"deviceId"`
	RetrievedOn   string `json:"retrievedOn"`
	RetrievedByID string `json:"retrievedById"`
	Remark        string `json:"remark"`
}

type PersonSummary struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
}

type DeviceSummary struct {
	ID           string `json:"id"`
	Model        string `json:"model"`
	Manufacturer string `json:"manufacturer"`
	Location     string `json:"location"`
}

type AssignmentResponse struct {
	ID          string         `json:"id"`
	Employee    *PersonSummary `json:"employee,omitempty"`
	Device      *DeviceSummary `json:"device,omitempty"`
	AssignedOn  string         `json:"assignedOn"`
	AssignedBy  *PersonSummary `json:"assignedBy,omitempty"`
	RetrievedOn string         `json:"retrievedOn,omitempty"`
	RetrievedBy *PersonSummary `json:"retrievedBy,omitempty"`
	IsRetrieved bool           `json:"isRetrieved"`
	Remark      string         `json:"remark,omitempty"`
	CreatedAt   string         `json:"createdAt"`
	UpdatedAt   string         `json:"updatedAt"`
}

func mapToResponse(a EmployeeDevice) AssignmentResponse {
	resp := AssignmentResponse{
		ID:          a.ID.String(),
		AssignedOn:  a.AssignedOn.Format("2006-01-02"),
		IsRetrieved: a.IsRetrieved,
		Remark:      a.Remark,
		CreatedAt:   a.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   a.UpdatedAt.Format(time.RFC3339),
	}
	if a.RetrievedOn != nil {
		resp.RetrievedOn = a.RetrievedOn.Format("2006-01-02")
	}
	if a.Employee != nil {
		resp.Employee = &PersonSummary{
			ID:        a.Employee.ID.String(),
			FirstName: a.Employee.FirstName,
			LastName:  a.Employee.LastName,
			Email:     a.Employee.Email,
		}
	}
	if a.Device != nil {
		resp.Device = &DeviceSummary{
			ID:           a.Device.ID.String(),
			Model:        a.Device.Model,
			Manufacturer: a.Device.Manufacturer,
			Location:     a.Device.Location,
		}
	}
	if a.AssignedBy != nil {
		resp.AssignedBy = &PersonSummary{
			ID:        a.AssignedBy.ID.String(),
			FirstName: a.AssignedBy.FirstName,
			LastName:  a.AssignedBy.LastName,
			Email:     a.AssignedBy.Email,
		}
	}
	if a.RetrievedBy != nil {
		resp.RetrievedBy = &PersonSummary{
			ID:        a.RetrievedBy.ID.String(),
			FirstName: a.RetrievedBy.FirstName,
			LastName:  a.RetrievedBy.LastName,
			Email:     a.RetrievedBy.Email,
		}
	}
	return resp
}
