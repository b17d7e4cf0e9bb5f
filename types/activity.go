package types

import "Inkwell/models"

type ListActivityRequest struct {
	Page     int `form:"page"`
	PageSize int `form:"page_size"`
}

type ListActivityResponse struct {
	Logs []*models.ActivityLog `json:"logs"`
}
