// Package service contains project registry workflows
package service

import (
	"context"
	"time"

	perr "genailab/internal/platform/errors"
	"genailab/internal/platform/logger"
	"genailab/internal/platform/metrics"
	"genailab/internal/services/api/projects/domain"
	"genailab/internal/services/api/projects/repo"

	"github.com/google/uuid"
)

// Service is the public service port
type Service interface{ domain.ServicePort }

// seams for tests
var (
	now   = func() time.Time { return time.Now().UTC() }
	newID = uuid.NewString
)

// Svc implements the service port
type Svc struct {
	repo    repo.Repo
	metrics *metrics.Metrics
}

// New constructs the service. m may be nil
func New(r repo.Repo, m *metrics.Metrics) *Svc {
	if r == nil {
		panic("projects.Service requires a non nil Repo")
	}
	m.SetProjects(r.Len())
	return &Svc{repo: r, metrics: m}
}

// Create registers an active project with zeroed metrics
func (s *Svc) Create(ctx context.Context, in domain.CreateInput) (domain.Project, error) {
	at := now()
	p := domain.Project{
		Name:        in.Name,
		Description: in.Description,
		ModelType:   in.ModelType,
		UseCase:     in.UseCase,
		CreatedAt:   at,
		Status:      domain.StatusActive,
		Metrics:     domain.Metrics{LastUpdated: at},
	}
	for {
		p.ID = newID()
		if s.repo.Insert(p) {
			break
		}
	}
	s.metrics.SetProjects(s.repo.Len())
	logger.C(logger.WithProject(ctx, p.ID)).Info().Str("model_type", p.ModelType).Msg("project created")
	return p, nil
}

// Get returns the project with id or a not found error
func (s *Svc) Get(_ context.Context, id string) (domain.Project, error) {
	p, ok := s.repo.Get(id)
	if !ok {
		return domain.Project{}, perr.NotFoundf("project %s not found", id)
	}
	return p, nil
}

// List returns every project in creation order
func (s *Svc) List(_ context.Context) ([]domain.Project, error) {
	return s.repo.List(), nil
}

// UpdateMetrics merges the present fields of patch. Values are not range checked
func (s *Svc) UpdateMetrics(ctx context.Context, id string, patch domain.MetricsPatch) (domain.UpdateResult, error) {
	if !s.repo.UpdateMetrics(id, patch, now()) {
		return domain.UpdateResult{}, perr.NotFoundf("project %s not found", id)
	}
	logger.C(logger.WithProject(ctx, id)).Debug().Msg("project metrics updated")
	return domain.UpdateResult{Success: true, Message: "Metrics updated successfully"}, nil
}

// Summary counts projects, averages accuracy and groups by model type as given
func (s *Svc) Summary(_ context.Context) (domain.Summary, error) {
	all := s.repo.List()
	out := domain.Summary{TotalProjects: len(all), ProjectsByType: map[string]int{}}
	if len(all) == 0 {
		return out, nil
	}
	sum := 0.0
	for _, p := range all {
		if p.Status == domain.StatusActive {
			out.ActiveProjects++
		}
		sum += p.Metrics.Accuracy
		out.ProjectsByType[p.ModelType]++
	}
	out.AverageAccuracy = sum / float64(len(all))
	return out, nil
}
