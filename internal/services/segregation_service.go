package services

import (
	"context"
	"fmt"
	"log/slog"

	"gorm.io/gorm"

	"github.com/MFC-2025/recruitment-admin-service/internal/models"
	"github.com/MFC-2025/recruitment-admin-service/internal/repositories"
)

// segregationService implements SegregationService
type segregationService struct {
	repo   repositories.Repository
	db     *gorm.DB
	logger *slog.Logger
}

// NewSegregationService creates a new segregation service
func NewSegregationService(repo repositories.Repository, db *gorm.DB, logger *slog.Logger) SegregationService {
	return &segregationService{
		repo:   repo,
		db:     db,
		logger: logger,
	}
}

// Report buckets every task submission of the domain into subdomain cohorts.
// A task with multiple labels is counted once per label; a task with no
// label lands in the "unspecified" bucket. Tech and design have no
// inference rule, so only explicitly labeled tasks escape "unspecified".
func (s *segregationService) Report(ctx context.Context, domain models.Domain) (SubdomainReport, error) {
	if !domain.Valid() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidDomain, domain)
	}

	tasks, err := s.loadTasks(ctx, domain)
	if err != nil {
		s.logger.Error("Failed to load tasks for segregation", "domain", domain, "error", err)
		return nil, fmt.Errorf("failed to load %s tasks: %w", domain, err)
	}

	questionKeys := models.QuestionKeys(domain)
	report := make(SubdomainReport)

	for _, task := range tasks {
		answers := task.Answers()
		submitted := hasSubmission(answers, questionKeys)

		var labels []string
		if domain == models.DomainManagement {
			labels = ResolveSubdomains(task.ExplicitSubdomains(), answers)
		} else {
			labels = NormalizeSubdomains(task.ExplicitSubdomains())
		}

		if len(labels) == 0 {
			labels = []string{models.SubdomainUnspecified}
		}

		for _, label := range labels {
			bucket, ok := report[label]
			if !ok {
				bucket = &SubdomainBucket{}
				report[label] = bucket
			}
			if submitted {
				bucket.Submitted = append(bucket.Submitted, task.OwnerID())
			} else {
				bucket.NotSubmitted = append(bucket.NotSubmitted, task.OwnerID())
			}
		}
	}

	s.logger.Debug("Segregation report built",
		"domain", domain,
		"tasks", len(tasks),
		"buckets", len(report))

	return report, nil
}

func (s *segregationService) loadTasks(ctx context.Context, domain models.Domain) ([]models.TaskRecord, error) {
	switch domain {
	case models.DomainTech:
		tasks, err := s.repo.Task().ListTech(ctx)
		if err != nil {
			return nil, err
		}
		records := make([]models.TaskRecord, len(tasks))
		for i, t := range tasks {
			records[i] = t
		}
		return records, nil
	case models.DomainDesign:
		tasks, err := s.repo.Task().ListDesign(ctx)
		if err != nil {
			return nil, err
		}
		records := make([]models.TaskRecord, len(tasks))
		for i, t := range tasks {
			records[i] = t
		}
		return records, nil
	case models.DomainManagement:
		tasks, err := s.repo.Task().ListManagement(ctx)
		if err != nil {
			return nil, err
		}
		records := make([]models.TaskRecord, len(tasks))
		for i, t := range tasks {
			records[i] = t
		}
		return records, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrInvalidDomain, domain)
	}
}
