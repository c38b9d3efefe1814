package services

import (
	"log"

	"github.com/projectflow-simple/models"
	"github.com/projectflow-simple/repositories"
)

func strPtr(s string) *string { return &s }

// Seed loads the sample fixtures into the given store: two projects,
// three tasks, three billing services, two attachment records and one
// dev login account (dev@example.com / password). Used by the seed
// command and by the memory store in development mode.
func Seed(store *repositories.Store) error {
	web, err := store.Projects.Create(models.Project{
		Title:       "Sample Project 1",
		Description: "This is a sample project for testing",
		Status:      models.StatusInProgress,
		Priority:    models.PriorityHigh,
	})
	if err != nil {
		return err
	}
	db, err := store.Projects.Create(models.Project{
		Title:       "Sample Project 2",
		Description: "Another sample project",
		Status:      models.StatusNotStarted,
		Priority:    models.PriorityMedium,
	})
	if err != nil {
		return err
	}

	tasks := []models.Task{
		{ProjectID: web.ID, Title: "Design homepage", Description: "Create wireframes for the homepage", DueDate: strPtr("2025-05-15")},
		{ProjectID: web.ID, Title: "Implement login functionality", Description: "Add user authentication", DueDate: strPtr("2025-05-20")},
		{ProjectID: db.ID, Title: "Create database schema", Description: "Design the initial database structure", DueDate: strPtr("2025-05-10"), Completed: true},
	}
	created := make([]models.Task, 0, len(tasks))
	for _, t := range tasks {
		stored, err := store.Tasks.Create(t)
		if err != nil {
			return err
		}
		created = append(created, stored)
	}

	billing := []models.BillingService{
		{ProjectID: web.ID, Name: "Web Hosting", Amount: 19.99, DueDate: strPtr("2025-06-01")},
		{ProjectID: web.ID, Name: "Design Services", Amount: 250.00, DueDate: strPtr("2025-05-15"), Paid: true},
		{ProjectID: db.ID, Name: "Database Hosting", Amount: 49.99, DueDate: strPtr("2025-05-25")},
	}
	storedBilling := make([]models.BillingService, 0, len(billing))
	for _, b := range billing {
		stored, err := store.Billing.Create(b)
		if err != nil {
			return err
		}
		storedBilling = append(storedBilling, stored)
	}

	// Sample attachment metadata. The referenced documents do not exist
	// on disk; the records only demonstrate the binding shape.
	attachments := []models.FileAttachment{
		{
			EntityType:  models.EntityTask,
			EntityID:    created[0].ID,
			Name:        "homepage-wireframe.pdf",
			Path:        "/attachments/task/" + created[0].ID + "/homepage-wireframe.pdf",
			ContentType: "application/pdf",
			Size:        24576,
			DownloadURL: "/attachments/task/" + created[0].ID + "/homepage-wireframe.pdf",
		},
		{
			EntityType:  models.EntityBilling,
			EntityID:    storedBilling[1].ID,
			Name:        "design-invoice.pdf",
			Path:        "/attachments/billing/" + storedBilling[1].ID + "/design-invoice.pdf",
			ContentType: "application/pdf",
			Size:        10240,
			DownloadURL: "/attachments/billing/" + storedBilling[1].ID + "/design-invoice.pdf",
		},
	}
	for _, f := range attachments {
		if _, err := store.Files.Create(f); err != nil {
			return err
		}
	}

	auth := NewAuthService(store)
	if _, err := auth.RegisterDevUser("dev@example.com", "Development User", "password"); err != nil {
		// Re-seeding an existing database is fine; keep the account.
		log.Printf("Seed: dev user not created: %v", err)
	}

	log.Printf("Seeded %d projects, %d tasks, %d billing services, %d attachments",
		2, len(created), len(storedBilling), len(attachments))
	return nil
}
