package availability

import (
	"context"
	"errors"
	"reflect"
	"testing"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

// memoryRepo is an in-memory Repository for service tests.
type memoryRepo struct {
	slots   map[string]*CalendarSlot // userID|date
	matches []*SlotMatch
}

func newMemoryRepo() *memoryRepo {
	return &memoryRepo{slots: make(map[string]*CalendarSlot)}
}

func (m *memoryRepo) UpsertSlots(_ context.Context, slot *CalendarSlot) error {
	m.slots[slot.UserID.String()+"|"+slot.Date] = slot
	return nil
}

func (m *memoryRepo) GetSlots(_ context.Context, userID, date string) (*CalendarSlot, error) {
	slot, ok := m.slots[userID+"|"+date]
	if !ok {
		return nil, ErrNotFound
	}
	return slot, nil
}

func (m *memoryRepo) CreateMatch(_ context.Context, match *SlotMatch) error {
	m.matches = append(m.matches, match)
	return nil
}

func (m *memoryRepo) ListMatches(_ context.Context) ([]*SlotMatch, error) {
	out := make([]*SlotMatch, len(m.matches))
	for i, match := range m.matches {
		out[len(m.matches)-1-i] = match
	}
	return out, nil
}

func TestOverlap(t *testing.T) {
	tests := []struct {
		name string
		a, b []string
		want []string
	}{
		{
			name: "partial overlap",
			a:    []string{"09:00", "10:00", "14:00", "15:00", "16:00"},
			b:    []string{"09:00", "10:00", "11:00", "14:00", "15:00"},
			want: []string{"09:00", "10:00", "14:00", "15:00"},
		},
		{
			name: "no overlap",
			a:    []string{"09:00", "10:00"},
			b:    []string{"11:00", "12:00"},
			want: nil,
		},
		{
			name: "duplicates collapsed",
			a:    []string{"14:00", "14:00", "09:00"},
			b:    []string{"14:00", "09:00", "09:00"},
			want: []string{"09:00", "14:00"},
		},
		{
			name: "unsorted input comes back sorted",
			a:    []string{"16:00", "09:00", "12:00"},
			b:    []string{"12:00", "16:00"},
			want: []string{"12:00", "16:00"},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Overlap(tc.a, tc.b)
			if !reflect.DeepEqual(got, tc.want) {
				t.Errorf("Overlap(%v, %v) = %v, want %v", tc.a, tc.b, got, tc.want)
			}
			// the intersection does not depend on argument order
			flipped := Overlap(tc.b, tc.a)
			if !reflect.DeepEqual(got, flipped) {
				t.Errorf("Overlap not commutative: %v vs %v", got, flipped)
			}
		})
	}
}

func TestAnalyzeRecommendsEarliestCommonSlot(t *testing.T) {
	svc := NewService(newMemoryRepo())

	match, err := svc.Analyze(context.Background(), AnalyzeRequest{
		VendorSlots:         []string{"09:00", "10:00", "14:00", "15:00", "16:00"},
		DistributorSlots:    []string{"09:00", "10:00", "11:00", "14:00", "15:00"},
		VendorTimezone:      "Asia/Kolkata",
		DistributorTimezone: "Europe/Berlin",
	})
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}

	if !match.Success {
		t.Error("expected a successful match")
	}
	want := []string{"09:00", "10:00", "14:00", "15:00"}
	if !reflect.DeepEqual(match.Overlap, want) {
		t.Errorf("overlap = %v, want %v", match.Overlap, want)
	}
	if match.Recommended != "09:00" {
		t.Errorf("recommended = %q, want %q", match.Recommended, "09:00")
	}

	// the recommended slot must appear in the overlap
	found := false
	for _, s := range match.Overlap {
		if s == match.Recommended {
			found = true
		}
	}
	if !found {
		t.Errorf("recommended %q not in overlap %v", match.Recommended, match.Overlap)
	}

	// both timezone labels are recorded on the match
	if match.VendorTimezone != "Asia/Kolkata" || match.DistributorTimezone != "Europe/Berlin" {
		t.Errorf("timezones = %q/%q, want Asia/Kolkata and Europe/Berlin",
			match.VendorTimezone, match.DistributorTimezone)
	}
}

func TestAnalyzeNoOverlap(t *testing.T) {
	repo := newMemoryRepo()
	svc := NewService(repo)

	match, err := svc.Analyze(context.Background(), AnalyzeRequest{
		VendorSlots:      []string{"09:00", "10:00"},
		DistributorSlots: []string{"16:00", "17:00"},
	})
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}

	if match.Success {
		t.Error("expected an unsuccessful match")
	}
	if match.Recommended != "" {
		t.Errorf("recommended = %q, want empty", match.Recommended)
	}
	if match.Message != NoOverlapMessage {
		t.Errorf("message = %q, want %q", match.Message, NoOverlapMessage)
	}

	// the outcome is still recorded for the audit trail
	if len(repo.matches) != 1 {
		t.Errorf("recorded %d matches, want 1", len(repo.matches))
	}
}

func TestAnalyzeValidation(t *testing.T) {
	svc := NewService(newMemoryRepo())

	tests := []struct {
		name string
		req  AnalyzeRequest
	}{
		{"empty vendor slots", AnalyzeRequest{DistributorSlots: []string{"09:00"}}},
		{"empty distributor slots", AnalyzeRequest{VendorSlots: []string{"09:00"}}},
		{"malformed slot label", AnalyzeRequest{
			VendorSlots:      []string{"9am"},
			DistributorSlots: []string{"09:00"},
		}},
		{"out of range hour", AnalyzeRequest{
			VendorSlots:      []string{"25:00"},
			DistributorSlots: []string{"09:00"},
		}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Analyze(context.Background(), tc.req)
			if err == nil {
				t.Fatal("expected a validation error")
			}
			var verrs validation.Errors
			if !errors.As(err, &verrs) {
				t.Errorf("expected validation.Errors, got %T: %v", err, err)
			}
		})
	}
}

func TestSetSlotsSortsAndDefaultsTimezone(t *testing.T) {
	repo := newMemoryRepo()
	svc := NewService(repo)
	userID := uuid.New().String()

	slot, err := svc.SetSlots(context.Background(), userID, SetSlotsRequest{
		Date:      "2025-01-22",
		FreeSlots: []string{"15:00", "09:00", "14:00"},
	})
	if err != nil {
		t.Fatalf("SetSlots: %v", err)
	}

	if !reflect.DeepEqual(slot.FreeSlots, []string{"09:00", "14:00", "15:00"}) {
		t.Errorf("slots not sorted: %v", slot.FreeSlots)
	}
	if slot.Timezone != "UTC" {
		t.Errorf("timezone = %q, want UTC default", slot.Timezone)
	}

	stored, err := svc.GetSlots(context.Background(), userID, "2025-01-22")
	if err != nil {
		t.Fatalf("GetSlots: %v", err)
	}
	if !reflect.DeepEqual(stored.FreeSlots, slot.FreeSlots) {
		t.Errorf("stored slots = %v, want %v", stored.FreeSlots, slot.FreeSlots)
	}
}

func TestSetSlotsReplacesPrevious(t *testing.T) {
	svc := NewService(newMemoryRepo())
	userID := uuid.New().String()

	if _, err := svc.SetSlots(context.Background(), userID, SetSlotsRequest{
		Date: "2025-01-22", FreeSlots: []string{"09:00", "10:00"},
	}); err != nil {
		t.Fatalf("first SetSlots: %v", err)
	}
	if _, err := svc.SetSlots(context.Background(), userID, SetSlotsRequest{
		Date: "2025-01-22", FreeSlots: []string{"16:00"},
	}); err != nil {
		t.Fatalf("second SetSlots: %v", err)
	}

	stored, err := svc.GetSlots(context.Background(), userID, "2025-01-22")
	if err != nil {
		t.Fatalf("GetSlots: %v", err)
	}
	if !reflect.DeepEqual(stored.FreeSlots, []string{"16:00"}) {
		t.Errorf("stored slots = %v, want the replacement only", stored.FreeSlots)
	}
}

func TestSetSlotsRejectsBadInput(t *testing.T) {
	svc := NewService(newMemoryRepo())

	if _, err := svc.SetSlots(context.Background(), uuid.New().String(), SetSlotsRequest{
		Date: "not-a-date", FreeSlots: []string{"09:00"},
	}); err == nil {
		t.Error("expected error for malformed date")
	}
	if _, err := svc.SetSlots(context.Background(), "not-a-uuid", SetSlotsRequest{
		Date: "2025-01-22", FreeSlots: []string{"09:00"},
	}); err == nil {
		t.Error("expected error for malformed user id")
	}
}
