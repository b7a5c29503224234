package services

import (
	"context"
	"fmt"

	"github.com/MFC-2025/recruitment-admin-service/internal/models"
)

// enrichUsers performs the application-level join: for each user it attaches
// the task submissions and meetings owned by that user, then derives the
// meeting display fields and the hasSubmitted flag. When a domain filter is
// present, only that domain's tasks are joined.
func (s *applicantService) enrichUsers(ctx context.Context, users []*models.User, domain *models.Domain) ([]*ApplicantRecord, error) {
	records := make([]*ApplicantRecord, 0, len(users))
	if len(users) == 0 {
		return records, nil
	}

	userIDs := make([]uint, len(users))
	for i, u := range users {
		userIDs[i] = u.ID
	}

	joinTech := domain == nil || *domain == models.DomainTech
	joinDesign := domain == nil || *domain == models.DomainDesign
	joinManagement := domain == nil || *domain == models.DomainManagement

	var (
		techByUser   map[uint][]*models.TechTask
		designByUser map[uint][]*models.DesignTask
		mgmtByUser   map[uint][]*models.ManagementTask
		err          error
	)

	if joinTech {
		techByUser, err = s.repo.Task().TechByUserIDs(ctx, userIDs)
		if err != nil {
			return nil, fmt.Errorf("failed to join tech tasks: %w", err)
		}
	}
	if joinDesign {
		designByUser, err = s.repo.Task().DesignByUserIDs(ctx, userIDs)
		if err != nil {
			return nil, fmt.Errorf("failed to join design tasks: %w", err)
		}
	}
	if joinManagement {
		mgmtByUser, err = s.repo.Task().ManagementByUserIDs(ctx, userIDs)
		if err != nil {
			return nil, fmt.Errorf("failed to join management tasks: %w", err)
		}
	}

	meetingsByUser, err := s.repo.Meeting().ByUserIDs(ctx, userIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to join meetings: %w", err)
	}

	for _, u := range users {
		record := &ApplicantRecord{
			User:            *u,
			TechTasks:       techByUser[u.ID],
			DesignTasks:     designByUser[u.ID],
			ManagementTasks: mgmtByUser[u.ID],
			Meetings:        meetingsByUser[u.ID],
		}

		if len(record.Meetings) > 0 {
			first := record.Meetings[0]
			record.MeetingTime = &first.ScheduledTime
			record.MeetStatus = &first.Status
		}

		record.HasSubmitted = deriveHasSubmitted(record)
		resolveManagementSubdomains(record.ManagementTasks)

		records = append(records, record)
	}

	return records, nil
}

// deriveHasSubmitted reports whether any attached task of any domain has at
// least one answered question slot.
func deriveHasSubmitted(record *ApplicantRecord) bool {
	techKeys := models.QuestionKeys(models.DomainTech)
	for _, t := range record.TechTasks {
		if hasSubmission(t.Answers(), techKeys) {
			return true
		}
	}

	designKeys := models.QuestionKeys(models.DomainDesign)
	for _, t := range record.DesignTasks {
		if hasSubmission(t.Answers(), designKeys) {
			return true
		}
	}

	mgmtKeys := models.QuestionKeys(models.DomainManagement)
	for _, t := range record.ManagementTasks {
		if hasSubmission(t.Answers(), mgmtKeys) {
			return true
		}
	}

	return false
}

// resolveManagementSubdomains rewrites each management task's subdomain
// field in place to its canonical labels, inferring from answered question
// bands when no explicit label is recorded.
func resolveManagementSubdomains(tasks []*models.ManagementTask) {
	for _, t := range tasks {
		labels := ResolveSubdomains(t.ExplicitSubdomains(), t.Answers())
		t.Subdomain = models.AnswerList(labels)
	}
}
