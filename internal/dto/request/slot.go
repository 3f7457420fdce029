package request

type CreateSlotRequest struct {
	ServiceType string `json:"service_type" validate:"required,oneof=mobile_charging pickup_charging roadside_assistance"`
	SlotDate    string `json:"slot_date" validate:"required,datetime=2006-01-02"`
	StartTime   string `json:"start_time" validate:"required,datetime=15:04"`
	EndTime     string `json:"end_time" validate:"required,datetime=15:04"`
	Capacity    int    `json:"capacity" validate:"gte=0"`
	Enabled     bool   `json:"enabled"`
}

type UpdateSlotRequest struct {
	StartTime *string `json:"start_time,omitempty" validate:"omitempty,datetime=15:04"`
	EndTime   *string `json:"end_time,omitempty" validate:"omitempty,datetime=15:04"`
	Capacity  *int    `json:"capacity,omitempty" validate:"omitempty,gte=0"`
	Enabled   *bool   `json:"enabled,omitempty"`
}
