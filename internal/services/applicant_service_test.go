package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"github.com/MFC-2025/recruitment-admin-service/internal/cache"
	"github.com/MFC-2025/recruitment-admin-service/internal/events"
	"github.com/MFC-2025/recruitment-admin-service/internal/models"
	"github.com/MFC-2025/recruitment-admin-service/internal/validator"
)

func newApplicantService(repo *mockRepository) (ApplicantService, *events.MockEventPublisher) {
	logger := testLogger()
	publisher := events.NewMockEventPublisher(logger)
	svc := NewApplicantService(repo, nil, logger, validator.New(), validator.NewBusinessValidator(), publisher, nil)
	return svc, publisher
}

func seedUsers(repo *mockRepository, n int, domain string) {
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 1; i <= n; i++ {
		repo.users.users = append(repo.users.users, &models.User{
			ID:        uint(i),
			Username:  "applicant",
			Email:     "a@example.com",
			Regno:     "R000" + string(rune('0'+i%10)),
			Domains:   models.AnswerList{domain},
			CreatedAt: base.Add(time.Duration(i) * time.Hour),
		})
	}
}

func TestApplicantService_List_Pagination(t *testing.T) {
	repo := newMockRepository()
	seedUsers(repo, 25, "tech")
	svc, _ := newApplicantService(repo)

	resp, err := svc.List(context.Background(), &validator.ListApplicantsRequest{
		Domain: "tech",
		Page:   2,
		Limit:  10,
	})
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}

	if resp.Total != 25 {
		t.Errorf("Total = %d, want 25", resp.Total)
	}
	if len(resp.Applicants) != 10 {
		t.Fatalf("got %d applicants, want 10", len(resp.Applicants))
	}

	// Newest first: page 2 holds users ranked 11-20, i.e. IDs 15 down to 6.
	if resp.Applicants[0].ID != 15 {
		t.Errorf("first applicant on page 2 has ID %d, want 15", resp.Applicants[0].ID)
	}
	if resp.Applicants[9].ID != 6 {
		t.Errorf("last applicant on page 2 has ID %d, want 6", resp.Applicants[9].ID)
	}
}

func TestApplicantService_List_Defaults(t *testing.T) {
	repo := newMockRepository()
	seedUsers(repo, 3, "design")
	svc, _ := newApplicantService(repo)

	resp, err := svc.List(context.Background(), &validator.ListApplicantsRequest{})
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}

	if resp.Page != 1 || resp.Limit != 1000 {
		t.Errorf("defaults = page %d limit %d, want page 1 limit 1000", resp.Page, resp.Limit)
	}
	if len(resp.Applicants) != 3 {
		t.Errorf("got %d applicants, want 3", len(resp.Applicants))
	}
}

func TestApplicantService_List_Enrichment(t *testing.T) {
	repo := newMockRepository()
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	repo.users.users = []*models.User{
		{ID: 1, Regno: "R0001", Domains: models.AnswerList{"management"}, CreatedAt: now},
	}
	repo.tasks.management = []*models.ManagementTask{
		{ID: 7, UserID: 1, Question17: models.AnswerList{"Yes I attended events before"}},
	}
	repo.meetings.meetings = []*models.Meeting{
		{ID: 3, UserID: 1, ScheduledTime: now.Add(48 * time.Hour), Status: models.MeetingScheduled},
	}
	repo.meetings.nextID = 3

	svc, _ := newApplicantService(repo)

	resp, err := svc.List(context.Background(), &validator.ListApplicantsRequest{Domain: "management"})
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(resp.Applicants) != 1 {
		t.Fatalf("got %d applicants, want 1", len(resp.Applicants))
	}

	record := resp.Applicants[0]

	if !record.HasSubmitted {
		t.Error("HasSubmitted = false, want true")
	}
	if record.MeetingTime == nil || !record.MeetingTime.Equal(now.Add(48*time.Hour)) {
		t.Errorf("MeetingTime = %v, want %v", record.MeetingTime, now.Add(48*time.Hour))
	}
	if record.MeetStatus == nil || *record.MeetStatus != models.MeetingScheduled {
		t.Errorf("MeetStatus = %v, want scheduled", record.MeetStatus)
	}

	// The management task's subdomain field is rewritten in place.
	if len(record.ManagementTasks) != 1 {
		t.Fatalf("got %d management tasks, want 1", len(record.ManagementTasks))
	}
	subdomain := record.ManagementTasks[0].Subdomain
	if len(subdomain) != 1 || subdomain[0] != models.SubdomainEditorial {
		t.Errorf("resolved subdomain = %v, want [editorial]", subdomain)
	}

	// Domain-scoped listing joins only that domain's tasks.
	if record.TechTasks != nil || record.DesignTasks != nil {
		t.Error("tech/design tasks should not be joined for a management-scoped listing")
	}
}

func newCachedApplicantService(t *testing.T, repo *mockRepository) (ApplicantService, *cache.CacheManager) {
	t.Helper()

	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("start miniredis: %v", err)
	}
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	cm := cache.NewCacheManager(client)
	logger := testLogger()
	publisher := events.NewMockEventPublisher(logger)
	svc := NewApplicantService(repo, nil, logger, validator.New(), validator.NewBusinessValidator(), publisher, cm)
	return svc, cm
}

func waitForCacheKey(t *testing.T, cm *cache.CacheManager, key string) {
	t.Helper()

	deadline := time.Now().Add(2 * time.Second)
	for {
		exists, err := cm.Applicant.Exists(context.Background(), key)
		if err != nil {
			t.Fatalf("Exists(%s) error = %v", key, err)
		}
		if exists {
			return
		}
		if time.Now().After(deadline) {
			t.Fatalf("cache key %s never written", key)
		}
		time.Sleep(10 * time.Millisecond)
	}
}

func TestApplicantService_List_CachedListing(t *testing.T) {
	repo := newMockRepository()
	seedUsers(repo, 2, "tech")
	svc, cm := newCachedApplicantService(t, repo)
	ctx := context.Background()

	first, err := svc.List(ctx, &validator.ListApplicantsRequest{})
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if repo.users.listCalls != 1 {
		t.Fatalf("store list calls = %d, want 1", repo.users.listCalls)
	}

	// The cache write-back is asynchronous.
	waitForCacheKey(t, cm, "list:::1:1000")

	second, err := svc.List(ctx, &validator.ListApplicantsRequest{})
	if err != nil {
		t.Fatalf("List() second call error = %v", err)
	}
	if repo.users.listCalls != 1 {
		t.Errorf("store list calls after cached read = %d, want 1", repo.users.listCalls)
	}
	if second.Total != first.Total || len(second.Applicants) != len(first.Applicants) {
		t.Errorf("cached listing = %+v, want %+v", second, first)
	}

	// A status update invalidates the listing cache.
	level := 1
	if _, err := svc.UpdateStatus(ctx, &validator.UpdateStatusRequest{Regno: "R0001", Tech: &level}, "admin"); err != nil {
		t.Fatalf("UpdateStatus() error = %v", err)
	}

	if _, err := svc.List(ctx, &validator.ListApplicantsRequest{}); err != nil {
		t.Fatalf("List() after update error = %v", err)
	}
	if repo.users.listCalls != 2 {
		t.Errorf("store list calls after invalidation = %d, want 2", repo.users.listCalls)
	}
}

func TestApplicantService_List_InvalidDomain(t *testing.T) {
	svc, _ := newApplicantService(newMockRepository())

	_, err := svc.List(context.Background(), &validator.ListApplicantsRequest{Domain: "marketing"})
	if !errors.Is(err, ErrValidationFailed) {
		t.Errorf("List() error = %v, want ErrValidationFailed", err)
	}
}

func TestApplicantService_UpdateStatus(t *testing.T) {
	repo := newMockRepository()
	repo.users.users = []*models.User{
		{ID: 1, Regno: "R0001", Tech: 1, Design: 2, Management: 2, AdminNotes: "keep"},
	}
	svc, publisher := newApplicantService(repo)

	rejected := models.LevelRejected
	user, err := svc.UpdateStatus(context.Background(), &validator.UpdateStatusRequest{
		Regno:      "R0001",
		Management: &rejected,
	}, "admin@example.com")
	if err != nil {
		t.Fatalf("UpdateStatus() error = %v", err)
	}

	if user.Management != models.LevelRejected {
		t.Errorf("Management = %d, want %d", user.Management, models.LevelRejected)
	}
	// Untouched fields survive a partial update.
	if user.Tech != 1 || user.Design != 2 || user.AdminNotes != "keep" {
		t.Errorf("partial update touched other fields: tech=%d design=%d notes=%q",
			user.Tech, user.Design, user.AdminNotes)
	}

	published := publisher.GetPublishedEvents()
	if len(published) != 1 {
		t.Fatalf("got %d events, want 1", len(published))
	}
	if published[0].Type != events.EventApplicantStatusChanged {
		t.Errorf("event type = %q, want %q", published[0].Type, events.EventApplicantStatusChanged)
	}
}

func TestApplicantService_UpdateStatus_NotFound(t *testing.T) {
	svc, publisher := newApplicantService(newMockRepository())

	level := 1
	_, err := svc.UpdateStatus(context.Background(), &validator.UpdateStatusRequest{
		Regno: "R9999",
		Tech:  &level,
	}, "admin@example.com")
	if !errors.Is(err, ErrUserNotFound) {
		t.Errorf("UpdateStatus() error = %v, want ErrUserNotFound", err)
	}
	if len(publisher.GetPublishedEvents()) != 0 {
		t.Error("no event should be published for a failed update")
	}
}

func TestApplicantService_UpdateStatus_InvalidInput(t *testing.T) {
	repo := newMockRepository()
	repo.users.users = []*models.User{{ID: 1, Regno: "R0001"}}
	svc, _ := newApplicantService(repo)

	t.Run("missing regno", func(t *testing.T) {
		level := 1
		_, err := svc.UpdateStatus(context.Background(), &validator.UpdateStatusRequest{Tech: &level}, "admin")
		if !errors.Is(err, ErrInvalidInput) {
			t.Errorf("error = %v, want ErrInvalidInput", err)
		}
	})

	t.Run("no fields", func(t *testing.T) {
		_, err := svc.UpdateStatus(context.Background(), &validator.UpdateStatusRequest{Regno: "R0001"}, "admin")
		if !errors.Is(err, ErrValidationFailed) {
			t.Errorf("error = %v, want ErrValidationFailed", err)
		}
	})

	t.Run("level out of range", func(t *testing.T) {
		level := 7
		_, err := svc.UpdateStatus(context.Background(), &validator.UpdateStatusRequest{Regno: "R0001", Tech: &level}, "admin")
		if !errors.Is(err, ErrValidationFailed) {
			t.Errorf("error = %v, want ErrValidationFailed", err)
		}
	})
}

func TestApplicantService_GetByRegno(t *testing.T) {
	repo := newMockRepository()
	repo.users.users = []*models.User{{ID: 1, Regno: "R0001", Domains: models.AnswerList{"tech"}}}
	repo.tasks.tech = []*models.TechTask{{ID: 1, UserID: 1, Question3: models.AnswerList{"answer"}}}
	svc, _ := newApplicantService(repo)

	record, err := svc.GetByRegno(context.Background(), "R0001")
	if err != nil {
		t.Fatalf("GetByRegno() error = %v", err)
	}
	if !record.HasSubmitted {
		t.Error("HasSubmitted = false, want true")
	}

	if _, err := svc.GetByRegno(context.Background(), "R9999"); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("GetByRegno() error = %v, want ErrUserNotFound", err)
	}
}
