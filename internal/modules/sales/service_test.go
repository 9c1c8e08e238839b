package sales

import (
	"context"
	"sort"
	"testing"
)

// memoryRepo keeps records sorted newest first, matching the SQL ordering.
type memoryRepo struct {
	records []*Record
}

func (m *memoryRepo) Create(_ context.Context, rec *Record) error {
	m.records = append(m.records, rec)
	sort.Slice(m.records, func(i, j int) bool {
		return m.records[i].Date > m.records[j].Date
	})
	return nil
}

func (m *memoryRepo) List(_ context.Context, region string) ([]*Record, error) {
	var out []*Record
	for _, rec := range m.records {
		if region == "" || rec.Region == region {
			out = append(out, rec)
		}
	}
	return out, nil
}

func record(t *testing.T, svc Service, date, product string, amount float64, region string) *Record {
	t.Helper()
	rec, err := svc.Create(context.Background(), CreateRequest{
		Date:        date,
		Product:     product,
		Vendor:      "Zoho",
		Distributor: "German Partners GmbH",
		Amount:      amount,
		Region:      region,
	})
	if err != nil {
		t.Fatalf("Create(%q): %v", product, err)
	}
	return rec
}

func TestCreateValidation(t *testing.T) {
	svc := NewService(&memoryRepo{})

	tests := []struct {
		name string
		req  CreateRequest
	}{
		{"zero amount", CreateRequest{Date: "2024-12-15", Product: "CRM",
			Vendor: "Zoho", Distributor: "GP", Amount: 0, Region: "EMEA"}},
		{"negative amount", CreateRequest{Date: "2024-12-15", Product: "CRM",
			Vendor: "Zoho", Distributor: "GP", Amount: -5, Region: "EMEA"}},
		{"bad date", CreateRequest{Date: "15.12.2024", Product: "CRM",
			Vendor: "Zoho", Distributor: "GP", Amount: 100, Region: "EMEA"}},
		{"missing region", CreateRequest{Date: "2024-12-15", Product: "CRM",
			Vendor: "Zoho", Distributor: "GP", Amount: 100}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := svc.Create(context.Background(), tc.req); err == nil {
				t.Error("expected a validation error")
			}
		})
	}
}

func TestListFiltersByRegion(t *testing.T) {
	svc := NewService(&memoryRepo{})
	record(t, svc, "2024-12-15", "CRM Enterprise", 150000, "EMEA")
	record(t, svc, "2024-12-20", "Analytics Suite", 85000, "APAC")

	emea, err := svc.List(context.Background(), "EMEA")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(emea) != 1 || emea[0].Product != "CRM Enterprise" {
		t.Errorf("EMEA filter returned %v", emea)
	}
}

func TestSummarize(t *testing.T) {
	svc := NewService(&memoryRepo{})
	record(t, svc, "2024-11-01", "Legacy Suite", 10000, "APAC")
	record(t, svc, "2024-12-15", "CRM Enterprise", 150000, "EMEA")
	record(t, svc, "2024-12-20", "Analytics Suite", 85000, "EMEA")
	record(t, svc, "2025-01-10", "Marketing Automation", 95000, "EMEA")

	summary, err := svc.Summarize(context.Background())
	if err != nil {
		t.Fatalf("Summarize: %v", err)
	}

	if summary.RecordCount != 4 {
		t.Errorf("record count = %d, want 4", summary.RecordCount)
	}
	if summary.TotalAmount != 340000 {
		t.Errorf("total = %v, want 340000", summary.TotalAmount)
	}
	// recent total covers the three newest records only
	if summary.RecentTotal != 330000 {
		t.Errorf("recent total = %v, want 330000", summary.RecentTotal)
	}
	if summary.ByRegion["EMEA"] != 330000 || summary.ByRegion["APAC"] != 10000 {
		t.Errorf("by region = %v", summary.ByRegion)
	}
}

func TestSummarizeEmpty(t *testing.T) {
	svc := NewService(&memoryRepo{})

	summary, err := svc.Summarize(context.Background())
	if err != nil {
		t.Fatalf("Summarize: %v", err)
	}
	if summary.RecordCount != 0 || summary.TotalAmount != 0 || summary.RecentTotal != 0 {
		t.Errorf("empty summary = %+v, want zeros", summary)
	}
}
