// Package seed loads the demo dataset used by the Global Sync demo
// environment: two partner accounts, their meetings, calendar slots,
// follow-ups, sales history, and prep notes.
package seed

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"

	"github.com/globalsync/globalsync-backend/internal/modules/availability"
	"github.com/globalsync/globalsync-backend/internal/modules/followup"
	"github.com/globalsync/globalsync-backend/internal/modules/meeting"
	"github.com/globalsync/globalsync-backend/internal/modules/prep"
	"github.com/globalsync/globalsync-backend/internal/modules/sales"
	"github.com/globalsync/globalsync-backend/internal/modules/user"
)

// DemoPassword is the password both demo accounts are created with.
const DemoPassword = "password"

// Stores collects the repositories and services the seeder writes through.
type Stores struct {
	Users        user.Service
	UserRepo     user.Repository
	Meetings     meeting.Repository
	Availability availability.Repository
	FollowUps    followup.Repository
	Sales        sales.Repository
	Prep         prep.Repository
}

// Run loads the demo dataset if the user table is empty. It is safe to call
// on every startup.
func Run(ctx context.Context, st Stores) error {
	existing, err := st.UserRepo.ListUsers(ctx)
	if err != nil {
		return fmt.Errorf("seed: list users: %w", err)
	}
	if len(existing) > 0 {
		return nil
	}
	log.Println("seeding demo data")

	vendor, err := st.Users.RegisterUser(ctx, user.RegisterRequest{
		Username: "vendor_zoho",
		Email:    "vendor@zoho.com",
		Name:     "Rajesh Kumar",
		Password: DemoPassword,
		Role:     "vendor",
		Location: "Chennai, India",
	})
	if err != nil {
		return fmt.Errorf("seed: vendor account: %w", err)
	}

	distributor, err := st.Users.RegisterUser(ctx, user.RegisterRequest{
		Username: "distributor_de",
		Email:    "partner@germany.com",
		Name:     "Klaus Mueller",
		Password: DemoPassword,
		Role:     "distributor",
		Location: "Berlin, Germany",
	})
	if err != nil {
		return fmt.Errorf("seed: distributor account: %w", err)
	}

	participants := []string{vendor.Name, distributor.Name}

	reviewMeeting := &meeting.Meeting{
		ID:           uuid.New(),
		Reference:    "MTG-20250120-DEMO",
		Topic:        "Q1 Sales Review & Strategy",
		Date:         "2025-01-20",
		Time:         "14:00",
		Participants: participants,
		Status:       meeting.StatusCompleted,
		Agenda: []string{
			"Review Q4 2024 performance",
			"Discuss Q1 2025 targets",
			"New product launches",
			"Territory expansion plans",
		},
		Outcome:       "Agreed on 25% growth target for Q1. New CRM tools to be implemented.",
		VendorID:      vendor.ID,
		DistributorID: distributor.ID,
		Timezone:      "UTC",
	}
	trainingMeeting := &meeting.Meeting{
		ID:           uuid.New(),
		Reference:    "MTG-20250125-DEMO",
		Topic:        "Product Training Session",
		Date:         "2025-01-25",
		Time:         "10:00",
		Participants: participants,
		Status:       meeting.StatusScheduled,
		Agenda: []string{
			"New feature demonstrations",
			"Training materials review",
			"Certification process",
			"Support documentation",
		},
		VendorID:      vendor.ID,
		DistributorID: distributor.ID,
		Timezone:      "UTC",
	}
	for _, m := range []*meeting.Meeting{reviewMeeting, trainingMeeting} {
		if err := st.Meetings.CreateMeeting(ctx, m); err != nil {
			return fmt.Errorf("seed: meeting %s: %w", m.Reference, err)
		}
	}

	slots := []*availability.CalendarSlot{
		{UserID: vendor.ID, Date: "2025-01-22",
			FreeSlots: []string{"09:00", "10:00", "14:00", "15:00", "16:00"},
			Timezone:  "Asia/Kolkata"},
		{UserID: distributor.ID, Date: "2025-01-22",
			FreeSlots: []string{"09:00", "10:00", "11:00", "14:00", "15:00"},
			Timezone:  "Europe/Berlin"},
	}
	for _, slot := range slots {
		if err := st.Availability.UpsertSlots(ctx, slot); err != nil {
			return fmt.Errorf("seed: calendar slots: %w", err)
		}
	}

	followUps := []*followup.FollowUp{
		{ID: uuid.New(), MeetingID: reviewMeeting.ID, Task: "Send updated pricing sheet",
			Assignee: vendor.Name, DueDate: "2025-01-23",
			Status: followup.StatusPending, Priority: followup.PriorityHigh},
		{ID: uuid.New(), MeetingID: reviewMeeting.ID, Task: "Review territory mapping",
			Assignee: distributor.Name, DueDate: "2025-01-24",
			Status: followup.StatusCompleted, Priority: followup.PriorityMedium},
		{ID: uuid.New(), MeetingID: trainingMeeting.ID, Task: "Prepare training materials",
			Assignee: vendor.Name, DueDate: "2025-01-26",
			Status: followup.StatusPending, Priority: followup.PriorityHigh},
	}
	for _, f := range followUps {
		if err := st.FollowUps.Create(ctx, f); err != nil {
			return fmt.Errorf("seed: follow-up %q: %w", f.Task, err)
		}
	}

	records := []*sales.Record{
		{ID: uuid.New(), Date: "2024-12-15", Product: "CRM Enterprise",
			Vendor: "Zoho", Distributor: "German Partners GmbH", Amount: 150000, Region: "EMEA"},
		{ID: uuid.New(), Date: "2024-12-20", Product: "Analytics Suite",
			Vendor: "Zoho", Distributor: "German Partners GmbH", Amount: 85000, Region: "EMEA"},
		{ID: uuid.New(), Date: "2025-01-10", Product: "Marketing Automation",
			Vendor: "Zoho", Distributor: "German Partners GmbH", Amount: 95000, Region: "EMEA"},
	}
	for _, rec := range records {
		if err := st.Sales.Create(ctx, rec); err != nil {
			return fmt.Errorf("seed: sales record %q: %w", rec.Product, err)
		}
	}

	note := &prep.PrepNote{
		MeetingID: trainingMeeting.ID,
		Notes: []string{
			"Focus on new AI features in latest release",
			"Address previous concerns about mobile app performance",
			"Discuss pricing strategy for enterprise clients",
		},
		KeyTopics: []string{
			"Product Updates",
			"Performance Improvements",
			"Pricing Strategy",
		},
		LastMeetingSummary: "Previous meeting focused on Q1 targets and territory expansion. Klaus mentioned strong interest in AI features.",
	}
	if err := st.Prep.Upsert(ctx, note); err != nil {
		return fmt.Errorf("seed: prep note: %w", err)
	}

	log.Println("demo data seeded")
	return nil
}
