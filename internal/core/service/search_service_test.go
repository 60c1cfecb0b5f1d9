package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/foodbridge/coordination-api/internal/core/domain"
)

type stubFeatureRepo struct {
	features []domain.SearchableFeature
	listErr  error
}

func (r *stubFeatureRepo) ListAll(_ context.Context) ([]domain.SearchableFeature, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}
	out := make([]domain.SearchableFeature, len(r.features))
	copy(out, r.features)
	return out, nil
}

func (r *stubFeatureRepo) UpdateEmbedding(_ context.Context, id string, embedding []float64, at time.Time) error {
	for i := range r.features {
		if r.features[i].ID == id {
			r.features[i].Embedding = embedding
			r.features[i].EmbeddedAt = at
			return nil
		}
	}
	return errors.New("feature not found")
}

type stubJobStore struct {
	job  domain.RegenerationJob
	sets int
}

func (s *stubJobStore) Get(_ context.Context) (domain.RegenerationJob, error) {
	if s.job.State == "" {
		return domain.RegenerationJob{State: domain.JobIdle}, nil
	}
	return s.job, nil
}

func (s *stubJobStore) Set(_ context.Context, job domain.RegenerationJob) error {
	s.job = job
	s.sets++
	return nil
}

type stubRunner struct {
	startErr error
	started  int
}

func (r *stubRunner) Start(_ context.Context) error {
	if r.startErr != nil {
		return r.startErr
	}
	r.started++
	return nil
}

func embeddedFeature(id string) domain.SearchableFeature {
	return domain.SearchableFeature{ID: id, Name: id, Embedding: []float64{1, 2}}
}

func TestSearchService_Coverage(t *testing.T) {
	repo := &stubFeatureRepo{features: []domain.SearchableFeature{
		embeddedFeature("f1"),
		{ID: "f2", Name: "f2"},
		{ID: "f3", Name: "f3"},
	}}
	svc := NewSearchService(repo, &stubJobStore{}, &stubRunner{}, discardLogger)

	coverage, err := svc.Coverage(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if coverage.Total != 3 || coverage.WithEmbeddings != 1 || coverage.Percentage != 33 {
		t.Errorf("unexpected coverage: %+v", coverage)
	}
}

func TestSearchService_Regenerate_StartsRunner(t *testing.T) {
	runner := &stubRunner{}
	svc := NewSearchService(&stubFeatureRepo{}, &stubJobStore{}, runner, discardLogger)

	if err := svc.Regenerate(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if runner.started != 1 {
		t.Errorf("runner started %d times, want 1", runner.started)
	}
}

func TestSearchService_Regenerate_AlreadyRunning(t *testing.T) {
	runner := &stubRunner{startErr: domain.ErrJobAlreadyRunning}
	svc := NewSearchService(&stubFeatureRepo{}, &stubJobStore{}, runner, discardLogger)

	if err := svc.Regenerate(context.Background()); !errors.Is(err, domain.ErrJobAlreadyRunning) {
		t.Fatalf("expected ErrJobAlreadyRunning, got %v", err)
	}
}

func TestSearchService_Status_RunningCapsProgress(t *testing.T) {
	store := &stubJobStore{job: domain.RegenerationJob{State: domain.JobRunning, Processed: 99, Total: 100}}
	svc := NewSearchService(&stubFeatureRepo{features: []domain.SearchableFeature{embeddedFeature("f1")}}, store, &stubRunner{}, discardLogger)

	status, err := svc.Status(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if status.Progress != 95 {
		t.Errorf("running progress must cap at 95, got %d", status.Progress)
	}
	if status.Coverage.Percentage != 100 {
		t.Errorf("unexpected coverage: %+v", status.Coverage)
	}
}

func TestSearchService_Status_CompletedSnapsTo100(t *testing.T) {
	store := &stubJobStore{job: domain.RegenerationJob{State: domain.JobCompleted, Processed: 10, Total: 10}}
	svc := NewSearchService(&stubFeatureRepo{}, store, &stubRunner{}, discardLogger)

	status, _ := svc.Status(context.Background())
	if status.Progress != 100 {
		t.Errorf("completed progress must be 100, got %d", status.Progress)
	}
}

func TestSearchService_Status_NoStoredJobIsIdle(t *testing.T) {
	svc := NewSearchService(&stubFeatureRepo{}, &stubJobStore{}, &stubRunner{}, discardLogger)

	status, err := svc.Status(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if status.Job.State != domain.JobIdle || status.Progress != 0 {
		t.Errorf("expected idle job, got %+v", status.Job)
	}
}
