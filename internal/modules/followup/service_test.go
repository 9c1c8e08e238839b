package followup

import (
	"context"
	"testing"

	"github.com/google/uuid"
)

type memoryRepo struct {
	items map[string]*FollowUp
	order []string
}

func newMemoryRepo() *memoryRepo {
	return &memoryRepo{items: make(map[string]*FollowUp)}
}

func (m *memoryRepo) Create(_ context.Context, f *FollowUp) error {
	m.items[f.ID.String()] = f
	m.order = append(m.order, f.ID.String())
	return nil
}

func (m *memoryRepo) GetByID(_ context.Context, id string) (*FollowUp, error) {
	f, ok := m.items[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *f
	return &cp, nil
}

func (m *memoryRepo) List(_ context.Context, status string) ([]*FollowUp, error) {
	var out []*FollowUp
	for _, id := range m.order {
		f := m.items[id]
		if status == "" || string(f.Status) == status {
			out = append(out, f)
		}
	}
	return out, nil
}

func (m *memoryRepo) UpdateStatus(_ context.Context, id string, status Status) error {
	f, ok := m.items[id]
	if !ok {
		return ErrNotFound
	}
	f.Status = status
	return nil
}

func (m *memoryRepo) CountByStatus(_ context.Context) (total, pending, completed int, err error) {
	for _, f := range m.items {
		total++
		switch f.Status {
		case StatusPending:
			pending++
		case StatusCompleted:
			completed++
		}
	}
	return total, pending, completed, nil
}

func mustCreate(t *testing.T, svc Service, task string) *FollowUp {
	t.Helper()
	f, err := svc.Create(context.Background(), CreateRequest{
		MeetingID: uuid.New().String(),
		Task:      task,
		Assignee:  "Rajesh Kumar",
		DueDate:   "2025-01-23",
		Priority:  "high",
	})
	if err != nil {
		t.Fatalf("Create(%q): %v", task, err)
	}
	return f
}

func TestCreateStartsPending(t *testing.T) {
	svc := NewService(newMemoryRepo())

	f := mustCreate(t, svc, "Send contract")
	if f.Status != StatusPending {
		t.Errorf("status = %q, want pending", f.Status)
	}
	if f.ID == uuid.Nil {
		t.Error("expected a generated id")
	}
}

func TestCreateValidation(t *testing.T) {
	svc := NewService(newMemoryRepo())

	tests := []struct {
		name string
		req  CreateRequest
	}{
		{"missing task", CreateRequest{MeetingID: uuid.New().String(),
			Assignee: "A", DueDate: "2025-01-23", Priority: "high"}},
		{"bad meeting id", CreateRequest{MeetingID: "nope", Task: "T",
			Assignee: "A", DueDate: "2025-01-23", Priority: "high"}},
		{"bad priority", CreateRequest{MeetingID: uuid.New().String(), Task: "T",
			Assignee: "A", DueDate: "2025-01-23", Priority: "urgent"}},
		{"bad due date", CreateRequest{MeetingID: uuid.New().String(), Task: "T",
			Assignee: "A", DueDate: "23-01-2025", Priority: "low"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := svc.Create(context.Background(), tc.req); err == nil {
				t.Error("expected a validation error")
			}
		})
	}
}

func TestToggleStatusRoundTrip(t *testing.T) {
	svc := NewService(newMemoryRepo())
	f := mustCreate(t, svc, "Send contract")

	toggled, err := svc.ToggleStatus(context.Background(), f.ID.String())
	if err != nil {
		t.Fatalf("ToggleStatus: %v", err)
	}
	if toggled.Status != StatusCompleted {
		t.Errorf("status after toggle = %q, want completed", toggled.Status)
	}

	back, err := svc.ToggleStatus(context.Background(), f.ID.String())
	if err != nil {
		t.Fatalf("ToggleStatus: %v", err)
	}
	if back.Status != StatusPending {
		t.Errorf("status after double toggle = %q, want pending", back.Status)
	}
}

func TestToggleStatusUnknownID(t *testing.T) {
	svc := NewService(newMemoryRepo())
	if _, err := svc.ToggleStatus(context.Background(), uuid.New().String()); err == nil {
		t.Error("expected error for unknown follow-up")
	}
}

func TestStatsEmptySet(t *testing.T) {
	svc := NewService(newMemoryRepo())

	stats, err := svc.Stats(context.Background())
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}
	if stats.Total != 0 || stats.CompletionRate != 0 {
		t.Errorf("empty set stats = %+v, want zero total and rate", stats)
	}
	if stats.Level != "Starter" {
		t.Errorf("level = %q, want Starter", stats.Level)
	}
}

func TestStatsCompletionRate(t *testing.T) {
	svc := NewService(newMemoryRepo())

	// three tasks, complete two: 67%
	a := mustCreate(t, svc, "Send contract")
	b := mustCreate(t, svc, "Review territory mapping")
	mustCreate(t, svc, "Prepare training materials")
	for _, f := range []*FollowUp{a, b} {
		if _, err := svc.ToggleStatus(context.Background(), f.ID.String()); err != nil {
			t.Fatalf("ToggleStatus: %v", err)
		}
	}

	stats, err := svc.Stats(context.Background())
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}
	if stats.Total != 3 || stats.Pending != 1 || stats.Completed != 2 {
		t.Errorf("counts = %+v, want 3/1/2", stats)
	}
	if stats.CompletionRate != 67 {
		t.Errorf("rate = %d, want 67", stats.CompletionRate)
	}
	if stats.Level != "Growing" {
		t.Errorf("level = %q, want Growing at 67%%", stats.Level)
	}
}

func TestLevelFor(t *testing.T) {
	tests := []struct {
		rate int
		want string
	}{
		{0, "Starter"}, {49, "Starter"},
		{50, "Growing"}, {69, "Growing"},
		{70, "Pro"}, {89, "Pro"},
		{90, "Expert"}, {100, "Expert"},
	}
	for _, tc := range tests {
		if got := levelFor(tc.rate); got != tc.want {
			t.Errorf("levelFor(%d) = %q, want %q", tc.rate, got, tc.want)
		}
	}
}

func TestListFilterByStatus(t *testing.T) {
	svc := NewService(newMemoryRepo())
	a := mustCreate(t, svc, "Send contract")
	mustCreate(t, svc, "Review territory mapping")
	if _, err := svc.ToggleStatus(context.Background(), a.ID.String()); err != nil {
		t.Fatalf("ToggleStatus: %v", err)
	}

	completed, err := svc.List(context.Background(), "COMPLETED")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(completed) != 1 || completed[0].Task != "Send contract" {
		t.Errorf("completed filter returned %v", completed)
	}

	all, err := svc.List(context.Background(), "")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(all) != 2 {
		t.Errorf("unfiltered list returned %d items, want 2", len(all))
	}
}
