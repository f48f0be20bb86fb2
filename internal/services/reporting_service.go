package services

import (
	"context"
	"sort"

	"timeclock/internal/domain"
	"timeclock/internal/repository/sqlite"
)

// reportingServiceImpl implements the ReportingService interface
type reportingServiceImpl struct {
	repo   sqlite.Repository
	mapper *domain.Mapper
}

// NewReportingService creates a new ReportingService instance
func NewReportingService(repo sqlite.Repository) ReportingService {
	return &reportingServiceImpl{
		repo:   repo,
		mapper: domain.NewMapper(),
	}
}

// EmployeeTotals aggregates billable minutes per employee over a time range.
// Open records contribute no minutes; they only show up in the open count.
func (s *reportingServiceImpl) EmployeeTotals(ctx context.Context, timeRange *TimeRange) ([]*EmployeeTotal, error) {
	records, err := s.searchRange(ctx, timeRange)
	if err != nil {
		return nil, err
	}

	totals := make(map[string]*EmployeeTotal)
	for _, record := range records {
		total, ok := totals[record.EmployeeID]
		if !ok {
			dbEmployee, err := s.repo.GetEmployee(ctx, record.EmployeeID)
			if err != nil {
				return nil, err
			}
			employee := s.mapper.Employee.FromDatabase(*dbEmployee)
			total = &EmployeeTotal{Employee: &employee}
			totals[record.EmployeeID] = total
		}

		if record.EndTime == nil {
			total.OpenRecords++
			continue
		}
		total.TotalMinutes += record.DurationMinutes
		total.RecordCount++
		if record.LunchDeducted {
			total.LunchDeducted++
		}
	}

	result := make([]*EmployeeTotal, 0, len(totals))
	for _, total := range totals {
		result = append(result, total)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Employee.Name < result[j].Employee.Name
	})
	return result, nil
}

// ProjectTotals aggregates billable minutes per project over a time range
func (s *reportingServiceImpl) ProjectTotals(ctx context.Context, timeRange *TimeRange) ([]*ProjectTotal, error) {
	records, err := s.searchRange(ctx, timeRange)
	if err != nil {
		return nil, err
	}

	totals := make(map[string]*ProjectTotal)
	for _, record := range records {
		if record.EndTime == nil {
			continue
		}

		total, ok := totals[record.ProjectID]
		if !ok {
			dbProject, err := s.repo.GetProject(ctx, record.ProjectID)
			if err != nil {
				return nil, err
			}
			project := s.mapper.Project.FromDatabase(*dbProject)
			total = &ProjectTotal{Project: &project}
			totals[record.ProjectID] = total
		}

		total.TotalMinutes += record.DurationMinutes
		total.RecordCount++
	}

	result := make([]*ProjectTotal, 0, len(totals))
	for _, total := range totals {
		result = append(result, total)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Project.Name < result[j].Project.Name
	})
	return result, nil
}

func (s *reportingServiceImpl) searchRange(ctx context.Context, timeRange *TimeRange) ([]*sqlite.TimeRecord, error) {
	opts := sqlite.SearchOptions{}
	if timeRange != nil {
		start := timeRange.Start
		end := timeRange.End
		opts.StartTime = &start
		opts.EndTime = &end
	}
	return s.repo.SearchTimeRecords(ctx, opts)
}
