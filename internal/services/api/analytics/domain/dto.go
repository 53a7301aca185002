// Package domain holds DTOs for API usage analytics
package domain

import (
	"time"

	projdomain "genailab/internal/services/api/projects/domain"
)

// Report is a point in time view of API usage and registry state
type Report struct {
	Requests            map[string]int64   `json:"requests"`
	TotalRequests       int64              `json:"totalRequests" example:"42"`
	Projects            projdomain.Summary `json:"projects"`
	TotalDocuments      int                `json:"totalDocuments" example:"5"`
	AvailableTechniques int                `json:"availableTechniques" example:"6"`
	APIVersion          string             `json:"apiVersion" example:"1.0.0"`
	UptimeSeconds       float64            `json:"uptimeSeconds" example:"3600"`
	Timestamp           time.Time          `json:"timestamp"`
}
