package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/databolaget/databolaget/internal/core/domain"
	"github.com/databolaget/databolaget/internal/core/ports/driven"
	"github.com/databolaget/databolaget/internal/core/ports/driving"
)

// Ensure HistoryService implements the interface.
var _ driving.HistoryService = (*HistoryService)(nil)

// HistoryService lists runs kept by a RunRecorder.
type HistoryService struct {
	recorder driven.RunRecorder
}

// NewHistoryService creates a history service.
func NewHistoryService(recorder driven.RunRecorder) *HistoryService {
	return &HistoryService{recorder: recorder}
}

// Runs returns recorded runs, newest first.
func (s *HistoryService) Runs(ctx context.Context, limit int) ([]domain.RunSummary, error) {
	if s.recorder == nil {
		return nil, errors.New("run history not configured")
	}
	if limit < 0 {
		limit = 0
	}
	return s.recorder.Runs(ctx, limit)
}

// TopProducts returns the products of runID with the highest apk. An empty
// runID selects the newest run.
func (s *HistoryService) TopProducts(ctx context.Context, runID string, limit int) ([]domain.Product, error) {
	if s.recorder == nil {
		return nil, errors.New("run history not configured")
	}
	if runID == "" {
		runs, err := s.recorder.Runs(ctx, 1)
		if err != nil {
			return nil, err
		}
		if len(runs) == 0 {
			return nil, fmt.Errorf("%w: no recorded runs", domain.ErrNotFound)
		}
		runID = runs[0].ID
	}
	return s.recorder.TopProducts(ctx, runID, limit)
}
