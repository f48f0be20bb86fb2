package services

import (
	"context"
	"time"

	"timeclock/internal/domain"
	"timeclock/internal/errors"
	"timeclock/internal/repository/sqlite"
	"timeclock/internal/session"
)

// timeRecordServiceImpl implements the TimeRecordService interface
type timeRecordServiceImpl struct {
	repo   sqlite.Repository
	mapper *domain.Mapper
	policy session.Policy
}

// NewTimeRecordService creates a new TimeRecordService instance.
// The policy is used to recompute durations on administrative edits.
func NewTimeRecordService(repo sqlite.Repository, policy session.Policy) TimeRecordService {
	return &timeRecordServiceImpl{
		repo:   repo,
		mapper: domain.NewMapper(),
		policy: policy,
	}
}

// CreateOpenRecord creates an open record with a NULL end time and zero
// duration, keeping the schema total, and returns its id.
func (s *timeRecordServiceImpl) CreateOpenRecord(ctx context.Context, actorID, projectID string, startTime time.Time) (string, error) {
	record := domain.NewOpenTimeRecord(actorID, projectID, startTime)
	dbRecord := s.mapper.TimeRecord.ToDatabase(record)
	if err := s.repo.CreateTimeRecord(ctx, &dbRecord); err != nil {
		return "", err
	}
	return dbRecord.ID, nil
}

// FinalizeRecord sets the end time and the computed billable result
func (s *timeRecordServiceImpl) FinalizeRecord(ctx context.Context, recordID string, endTime time.Time, durationMinutes int, lunchDeducted bool) error {
	return s.repo.FinalizeTimeRecord(ctx, recordID, endTime, durationMinutes, lunchDeducted)
}

// FindOpenRecord returns the actor's open record, or nil if none exists
func (s *timeRecordServiceImpl) FindOpenRecord(ctx context.Context, actorID string) (*domain.TimeRecord, error) {
	dbRecord, err := s.repo.FindOpenTimeRecord(ctx, actorID)
	if err != nil {
		if errors.IsErrorType(err, errors.ErrorTypeNotFound) {
			return nil, nil
		}
		return nil, err
	}

	record := s.mapper.TimeRecord.FromDatabase(*dbRecord)
	return &record, nil
}

// GetRecord returns a single time record by ID
func (s *timeRecordServiceImpl) GetRecord(ctx context.Context, id string) (*domain.TimeRecord, error) {
	dbRecord, err := s.repo.GetTimeRecord(ctx, id)
	if err != nil {
		return nil, err
	}

	record := s.mapper.TimeRecord.FromDatabase(*dbRecord)
	return &record, nil
}

// SearchRecords returns time records matching the given criteria
func (s *timeRecordServiceImpl) SearchRecords(ctx context.Context, opts domain.SearchOptions) ([]*domain.TimeRecord, error) {
	dbRecords, err := s.repo.SearchTimeRecords(ctx, s.mapper.SearchOptions.ToDatabase(opts))
	if err != nil {
		return nil, err
	}

	records := make([]*domain.TimeRecord, 0, len(dbRecords))
	for _, dbRecord := range dbRecords {
		record := s.mapper.TimeRecord.FromDatabase(*dbRecord)
		records = append(records, &record)
	}
	return records, nil
}

// EditRecord applies an administrative edit to a finalized record and
// recomputes its duration with the same algorithm the engine uses at stop.
func (s *timeRecordServiceImpl) EditRecord(ctx context.Context, id string, startTime, endTime time.Time, paused time.Duration) (*domain.TimeRecord, error) {
	if endTime.Before(startTime) {
		return nil, errors.NewInvalidInputError("end_time", endTime, "must not be before start time")
	}

	dbRecord, err := s.repo.GetTimeRecord(ctx, id)
	if err != nil {
		return nil, err
	}

	minutes, lunchDeducted := s.policy.Billable(startTime, endTime, paused)

	record := s.mapper.TimeRecord.FromDatabase(*dbRecord)
	record.StartTime = startTime
	record = record.Finalize(endTime, minutes, lunchDeducted)

	updated := s.mapper.TimeRecord.ToDatabase(record)
	if err := s.repo.UpdateTimeRecord(ctx, &updated); err != nil {
		return nil, err
	}

	return &record, nil
}
