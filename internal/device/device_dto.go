package device

import "time"

type AddDeviceRequest struct {
	Model        string   `json:"model"`
	Manufacturer string   `json:"manufacturer"`
	ScreenSize   string   `json:"screenSize"`
	Processor    string   `json:"processor"`
	RAM          string   `json:"ram"`
	Storage      string   `json:"storage"`
	Units        int      `json:"units"`
	Location     string   `json:"location"`
	Images       []string `json:"images"`
}

type UpdateDeviceRequest struct {
	Model        string `json:"model"`
	Manufacturer string `json:"manufacturer"`
	ScreenSize   string `json:"screenSize"`
	Processor    string `json:"processor"`
	RAM          string `json:"ram"`
	Storage      string `json:"storage"`
	Location     string `json:"location"`
}

type AddImagesRequest struct {
	Images []string `json:"images" binding:"required"`
}

type AddUnitsRequest struct {
	Units int `json:"units"`
}

type DeviceResponse struct {
	ID           string   `json:"id"`
	Model        string   `json:"model"`
	Manufacturer string   `json:"manufacturer"`
	ScreenSize   string   `json:"screenSize"`
	Processor    string   `json:"processor"`
	RAM          string   `json:"ram"`
	Storage      string   `json:"storage"`
	TotalUnits   int      `json:"totalUnits"`
	Images       []string `json:"images,omitempty"`
	Location     string   `json:"location"`
	CreatedAt    string   `json:"createdAt"`
	UpdatedAt    string   `json:"updatedAt"`
}

func mapToResponse(d Device) DeviceResponse {
	return DeviceResponse{
		ID:           d.ID.String(),
		Model:        d.Model,
		Manufacturer: d.Manufacturer,
		ScreenSize:   d.ScreenSize,
		Processor:    d.Processor,
		RAM:          d.RAM,
		Storage:      d.Storage,
		TotalUnits:   d.TotalUnits,
		Images:       d.Images,
		Location:     d.Location,
		CreatedAt:    d.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    d.UpdatedAt.Format(time.RFC3339),
	}
}
