// Package domain holds the project registry records and DTOs
package domain

import "time"

// Status of a project. Only StatusActive is ever assigned
type Status string

// StatusActive marks a newly created project
const StatusActive Status = "active"

// Metrics are performance numbers reported for a project. Values are stored as given, without range checks
type Metrics struct {
	Accuracy         float64   `json:"accuracy" example:"0.92"`
	Latency          float64   `json:"latency" example:"120"`
	UserSatisfaction float64   `json:"userSatisfaction" example:"0.8"`
	LastUpdated      time.Time `json:"lastUpdated"`
}

// Project is one registry record. ID and CreatedAt never change after creation
type Project struct {
	ID          string    `json:"id" example:"3f1c8f4e-8d7a-4c1e-9b9d-2f0d4c6b7a11"`
	Name        string    `json:"name" example:"Healthcare AI"`
	Description string    `json:"description" example:"Triage assistant"`
	ModelType   string    `json:"modelType" example:"Deep Learning"`
	UseCase     string    `json:"useCase" example:"Healthcare"`
	CreatedAt   time.Time `json:"createdAt"`
	Status      Status    `json:"status" example:"active"`
	Metrics     Metrics   `json:"metrics"`
}

// MetricsPatch carries the fields to overwrite; nil fields keep their value
type MetricsPatch struct {
	Accuracy         *float64 `json:"accuracy,omitempty" example:"0.95"`
	Latency          *float64 `json:"latency,omitempty" example:"80"`
	UserSatisfaction *float64 `json:"userSatisfaction,omitempty" example:"0.9"`
}

// Apply merges p over m and stamps LastUpdated
func (p MetricsPatch) Apply(m Metrics, at time.Time) Metrics {
	if p.Accuracy != nil {
		m.Accuracy = *p.Accuracy
	}
	if p.Latency != nil {
		m.Latency = *p.Latency
	}
	if p.UserSatisfaction != nil {
		m.UserSatisfaction = *p.UserSatisfaction
	}
	m.LastUpdated = at
	return m
}

// CreateInput registers a project
type CreateInput struct {
	Name        string `json:"name" validate:"required,notblank" example:"Healthcare AI"`
	Description string `json:"description" example:"Triage assistant"`
	ModelType   string `json:"modelType" validate:"required,notblank" example:"Deep Learning"`
	UseCase     string `json:"useCase" example:"Healthcare"`
}

// UpdateResult acknowledges a metrics update
type UpdateResult struct {
	Success bool   `json:"success" example:"true"`
	Message string `json:"message" example:"Metrics updated successfully"`
}

// Summary aggregates the registry
type Summary struct {
	TotalProjects   int            `json:"totalProjects" example:"3"`
	ActiveProjects  int            `json:"activeProjects" example:"3"`
	AverageAccuracy float64        `json:"averageAccuracy" example:"0.81"`
	ProjectsByType  map[string]int `json:"projectsByType"`
}
