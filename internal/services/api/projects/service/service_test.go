package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	perr "genailab/internal/platform/errors"
	"genailab/internal/platform/testkit"
	"genailab/internal/services/api/projects/domain"
	"genailab/internal/services/api/projects/repo"

	"github.com/google/go-cmp/cmp"
)

func ptr(v float64) *float64 { return &v }

func TestNew_PanicsOnNilRepo(t *testing.T) {
	testkit.MustPanic(t, func() { New(nil, nil) })
}

func TestCreate(t *testing.T) {
	fixed := time.Date(2026, 4, 1, 9, 0, 0, 0, time.UTC)
	testkit.Swap(t, &now, func() time.Time { return fixed })

	svc := New(repo.NewInMemory(), nil)
	p, err := svc.Create(context.Background(), domain.CreateInput{
		Name: "Healthcare AI", Description: "...", ModelType: "Deep Learning", UseCase: "Healthcare",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if p.ID == "" || p.Status != domain.StatusActive || !p.CreatedAt.Equal(fixed) {
		t.Fatalf("unexpected project %+v", p)
	}
	if diff := cmp.Diff(domain.Metrics{LastUpdated: fixed}, p.Metrics); diff != "" {
		t.Fatalf("metrics (-want +got):\n%s", diff)
	}

	q, _ := svc.Create(context.Background(), domain.CreateInput{Name: "other", ModelType: "CNN"})
	if q.ID == p.ID {
		t.Fatalf("ids must be unique")
	}
}

func TestCreate_RetriesTakenID(t *testing.T) {
	ids := []string{"a", "a", "b"}
	testkit.Swap(t, &newID, func() string {
		id := ids[0]
		ids = ids[1:]
		return id
	})

	svc := New(repo.NewInMemory(), nil)
	first, _ := svc.Create(context.Background(), domain.CreateInput{Name: "x", ModelType: "CNN"})
	second, _ := svc.Create(context.Background(), domain.CreateInput{Name: "y", ModelType: "CNN"})
	if first.ID != "a" || second.ID != "b" {
		t.Fatalf("ids = %q, %q", first.ID, second.ID)
	}
}

func TestGetAndUpdate_NotFound(t *testing.T) {
	svc := New(repo.NewInMemory(), nil)

	if _, err := svc.Get(context.Background(), "missing"); !perr.IsCode(err, perr.ErrorCodeNotFound) {
		t.Fatalf("Get err = %v", err)
	}
	if _, err := svc.UpdateMetrics(context.Background(), "missing", domain.MetricsPatch{Accuracy: ptr(1)}); !perr.IsCode(err, perr.ErrorCodeNotFound) {
		t.Fatalf("UpdateMetrics err = %v", err)
	}
}

func TestUpdateMetrics(t *testing.T) {
	svc := New(repo.NewInMemory(), nil)
	p, _ := svc.Create(context.Background(), domain.CreateInput{Name: "x", ModelType: "CNN"})

	later := p.CreatedAt.Add(time.Minute)
	testkit.Swap(t, &now, func() time.Time { return later })

	res, err := svc.UpdateMetrics(context.Background(), p.ID, domain.MetricsPatch{Accuracy: ptr(0.8)})
	if err != nil || !res.Success || res.Message != "Metrics updated successfully" {
		t.Fatalf("unexpected %+v, %v", res, err)
	}
	got, _ := svc.Get(context.Background(), p.ID)
	if got.Metrics.Accuracy != 0.8 || !got.Metrics.LastUpdated.Equal(later) || !got.CreatedAt.Equal(p.CreatedAt) {
		t.Fatalf("unexpected project %+v", got)
	}
}

func TestSummary(t *testing.T) {
	svc := New(repo.NewInMemory(), nil)

	empty, err := svc.Summary(context.Background())
	if err != nil {
		t.Fatalf("Summary: %v", err)
	}
	if diff := cmp.Diff(domain.Summary{ProjectsByType: map[string]int{}}, empty); diff != "" {
		t.Fatalf("empty summary (-want +got):\n%s", diff)
	}

	for i, mt := range []string{"CNN", "cnn", "CNN"} {
		p, _ := svc.Create(context.Background(), domain.CreateInput{Name: fmt.Sprint(i), ModelType: mt})
		_, _ = svc.UpdateMetrics(context.Background(), p.ID, domain.MetricsPatch{Accuracy: ptr(float64(i) * 0.3)})
	}
	got, _ := svc.Summary(context.Background())
	want := domain.Summary{
		TotalProjects:   3,
		ActiveProjects:  3,
		AverageAccuracy: 0.3,
		ProjectsByType:  map[string]int{"CNN": 2, "cnn": 1},
	}
	opt := cmp.Comparer(func(a, b float64) bool { return a-b < 1e-9 && b-a < 1e-9 })
	if diff := cmp.Diff(want, got, opt); diff != "" {
		t.Fatalf("summary (-want +got):\n%s", diff)
	}
}
