package ports

import "ingrain/internal/domain"

// ProcedureRepository defines the interface for procedure storage.
// Get and Update return (nil, nil) for an unknown id. Update applies
// fn to the stored record as one atomic read-modify-write and returns
// the updated record; implementations must serialize concurrent
// Updates on the same procedure. An error from fn aborts the update.
type ProcedureRepository interface {
	Get(id string) (*domain.Procedure, error)
	Put(p *domain.Procedure) error
	List() ([]*domain.Procedure, error)
	Update(id string, fn func(p *domain.Procedure) error) (*domain.Procedure, error)
}

// StepClassifier is re-exported so adapters can supply alternative
// classifiers without importing domain directly.
type StepClassifier = domain.StepClassifier
