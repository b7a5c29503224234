package services

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"gorm.io/gorm"

	"github.com/MFC-2025/recruitment-admin-service/internal/models"
	"github.com/MFC-2025/recruitment-admin-service/internal/repositories"
)

// mockRepository is an in-memory Repository for service tests
type mockRepository struct {
	users     *mockUserRepo
	tasks     *mockTaskRepo
	meetings  *mockMeetingRepo
	dashboard *mockDashboardRepo
}

func newMockRepository() *mockRepository {
	users := &mockUserRepo{}
	return &mockRepository{
		users:     users,
		tasks:     &mockTaskRepo{},
		meetings:  &mockMeetingRepo{},
		dashboard: &mockDashboardRepo{users: users},
	}
}

func (m *mockRepository) User() repositories.UserRepository           { return m.users }
func (m *mockRepository) Task() repositories.TaskRepository           { return m.tasks }
func (m *mockRepository) Meeting() repositories.MeetingRepository     { return m.meetings }
func (m *mockRepository) Dashboard() repositories.DashboardRepository { return m.dashboard }

func (m *mockRepository) WithTransaction(ctx context.Context, fn func(repositories.Repository) error) error {
	return fn(m)
}

func (m *mockRepository) Ping(ctx context.Context) error { return nil }
func (m *mockRepository) Close() error                   { return nil }

// ===== USER REPO =====

type mockUserRepo struct {
	users     []*models.User
	listErr   error
	listCalls int
}

func (m *mockUserRepo) GetByID(ctx context.Context, id uint) (*models.User, error) {
	for _, u := range m.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) GetByRegno(ctx context.Context, regno string) (*models.User, error) {
	for _, u := range m.users {
		if u.Regno == regno {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) List(ctx context.Context, filters repositories.UserFilters) ([]*models.User, int64, error) {
	m.listCalls++
	if m.listErr != nil {
		return nil, 0, m.listErr
	}

	var matched []*models.User
	for _, u := range m.users {
		if filters.Domain != nil && !u.InDomain(*filters.Domain) {
			continue
		}
		if filters.Query != "" && !strings.Contains(strings.ToLower(u.Username), strings.ToLower(filters.Query)) {
			continue
		}
		matched = append(matched, u)
	}

	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})

	total := int64(len(matched))

	if filters.Offset > 0 {
		if filters.Offset >= len(matched) {
			matched = nil
		} else {
			matched = matched[filters.Offset:]
		}
	}
	if filters.Limit > 0 && len(matched) > filters.Limit {
		matched = matched[:filters.Limit]
	}

	return matched, total, nil
}

func (m *mockUserRepo) UpdateFieldsByRegno(ctx context.Context, regno string, fields map[string]interface{}) error {
	for _, u := range m.users {
		if u.Regno != regno {
			continue
		}
		for key, value := range fields {
			switch key {
			case "tech":
				u.Tech = value.(int)
			case "design":
				u.Design = value.(int)
			case "management":
				u.Management = value.(int)
			case "admin_notes":
				u.AdminNotes = value.(string)
			default:
				return fmt.Errorf("mock: unsupported field %q", key)
			}
		}
		return nil
	}
	return gorm.ErrRecordNotFound
}

func (m *mockUserRepo) ExistsByRegno(ctx context.Context, regno string) (bool, error) {
	for _, u := range m.users {
		if u.Regno == regno {
			return true, nil
		}
	}
	return false, nil
}

// ===== TASK REPO =====

type mockTaskRepo struct {
	tech       []*models.TechTask
	design     []*models.DesignTask
	management []*models.ManagementTask
	listErr    error
}

func (m *mockTaskRepo) ListTech(ctx context.Context) ([]*models.TechTask, error) {
	return m.tech, m.listErr
}

func (m *mockTaskRepo) ListDesign(ctx context.Context) ([]*models.DesignTask, error) {
	return m.design, m.listErr
}

func (m *mockTaskRepo) ListManagement(ctx context.Context) ([]*models.ManagementTask, error) {
	return m.management, m.listErr
}

func (m *mockTaskRepo) TechByUserIDs(ctx context.Context, userIDs []uint) (map[uint][]*models.TechTask, error) {
	idSet := toIDSet(userIDs)
	out := make(map[uint][]*models.TechTask)
	for _, t := range m.tech {
		if idSet[t.UserID] {
			out[t.UserID] = append(out[t.UserID], t)
		}
	}
	return out, nil
}

func (m *mockTaskRepo) DesignByUserIDs(ctx context.Context, userIDs []uint) (map[uint][]*models.DesignTask, error) {
	idSet := toIDSet(userIDs)
	out := make(map[uint][]*models.DesignTask)
	for _, t := range m.design {
		if idSet[t.UserID] {
			out[t.UserID] = append(out[t.UserID], t)
		}
	}
	return out, nil
}

func (m *mockTaskRepo) ManagementByUserIDs(ctx context.Context, userIDs []uint) (map[uint][]*models.ManagementTask, error) {
	idSet := toIDSet(userIDs)
	out := make(map[uint][]*models.ManagementTask)
	for _, t := range m.management {
		if idSet[t.UserID] {
			out[t.UserID] = append(out[t.UserID], t)
		}
	}
	return out, nil
}

func (m *mockTaskRepo) CountByDomain(ctx context.Context, domain models.Domain) (int64, error) {
	switch domain {
	case models.DomainTech:
		return int64(len(m.tech)), nil
	case models.DomainDesign:
		return int64(len(m.design)), nil
	case models.DomainManagement:
		return int64(len(m.management)), nil
	}
	return 0, fmt.Errorf("mock: unknown domain %q", domain)
}

func toIDSet(ids []uint) map[uint]bool {
	set := make(map[uint]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set
}

// ===== MEETING REPO =====

type mockMeetingRepo struct {
	meetings []*models.Meeting
	nextID   uint
}

func (m *mockMeetingRepo) Create(ctx context.Context, meeting *models.Meeting) error {
	m.nextID++
	meeting.ID = m.nextID
	m.meetings = append(m.meetings, meeting)
	return nil
}

func (m *mockMeetingRepo) GetByID(ctx context.Context, id uint) (*models.Meeting, error) {
	for _, meeting := range m.meetings {
		if meeting.ID == id {
			return meeting, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockMeetingRepo) ByUserIDs(ctx context.Context, userIDs []uint) (map[uint][]*models.Meeting, error) {
	idSet := toIDSet(userIDs)
	out := make(map[uint][]*models.Meeting)
	for _, meeting := range m.meetings {
		if idSet[meeting.UserID] {
			out[meeting.UserID] = append(out[meeting.UserID], meeting)
		}
	}
	for _, list := range out {
		sort.SliceStable(list, func(i, j int) bool {
			return list[i].ScheduledTime.Before(list[j].ScheduledTime)
		})
	}
	return out, nil
}

func (m *mockMeetingRepo) ListByUser(ctx context.Context, userID uint) ([]*models.Meeting, error) {
	var out []*models.Meeting
	for _, meeting := range m.meetings {
		if meeting.UserID == userID {
			out = append(out, meeting)
		}
	}
	return out, nil
}

func (m *mockMeetingRepo) UpdateStatus(ctx context.Context, id uint, status models.MeetingStatus) error {
	for _, meeting := range m.meetings {
		if meeting.ID == id {
			meeting.Status = status
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (m *mockMeetingRepo) CountByStatus(ctx context.Context) (repositories.MeetingCounts, error) {
	var counts repositories.MeetingCounts
	for _, meeting := range m.meetings {
		switch meeting.Status {
		case models.MeetingScheduled:
			counts.Scheduled++
		case models.MeetingUnderway:
			counts.Underway++
		case models.MeetingCompleted:
			counts.Completed++
		case models.MeetingCancelled:
			counts.Cancelled++
		}
	}
	return counts, nil
}

// ===== DASHBOARD REPO =====

type mockDashboardRepo struct {
	users *mockUserRepo
}

func (m *mockDashboardRepo) CountUsers(ctx context.Context) (int64, error) {
	return int64(len(m.users.users)), nil
}

func (m *mockDashboardRepo) CountUsersByDomain(ctx context.Context) (repositories.DomainCounts, error) {
	var counts repositories.DomainCounts
	for _, u := range m.users.users {
		if u.InDomain(models.DomainTech) {
			counts.Tech++
		}
		if u.InDomain(models.DomainDesign) {
			counts.Design++
		}
		if u.InDomain(models.DomainManagement) {
			counts.Management++
		}
	}
	return counts, nil
}

func (m *mockDashboardRepo) LevelBreakdown(ctx context.Context, domain models.Domain) (repositories.LevelBreakdown, error) {
	breakdown := make(repositories.LevelBreakdown)
	for _, u := range m.users.users {
		if !u.InDomain(domain) {
			continue
		}
		switch domain {
		case models.DomainTech:
			breakdown[u.Tech]++
		case models.DomainDesign:
			breakdown[u.Design]++
		case models.DomainManagement:
			breakdown[u.Management]++
		}
	}
	return breakdown, nil
}
