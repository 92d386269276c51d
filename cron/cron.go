package cron

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/lotusspa/scheduler/db"
	"github.com/lotusspa/scheduler/models"
	"github.com/lotusspa/scheduler/utils"
)

// StartCronJobs initializes and starts the cron scheduler for pending shift request digests
func StartCronJobs() {
	fmt.Println("Starting cron job scheduler...")
	c := cron.New()
	// Every morning at 08:00, mail managers the requests still waiting on a decision
	_, err := c.AddFunc("0 8 * * *", sendPendingRequestDigest)
	if err != nil {
		log.Fatalf("Failed to add cron job: %v", err)
	}
	c.Start()
	log.Println("Cron job scheduler started for shift request digests")
}

// sendPendingRequestDigest mails every manager the list of pending requests
func sendPendingRequestDigest() {
	var pending []models.ShiftRequest
	today := utils.DateOnly(time.Now())

	err := db.DB.Preload("Staff").
		Where("status = ? AND date >= ?", models.ShiftPending, today).
		Order("date asc").
		Find(&pending).Error
	if err != nil {
		log.Printf("Error fetching pending shift requests: %v", err)
		return
	}
	if len(pending) == 0 {
		return
	}

	var managers []models.StaffProfile
	err = db.DB.Where("role IN ?", []models.StaffRole{models.RoleManager, models.RoleAdmin}).
		Find(&managers).Error
	if err != nil {
		log.Printf("Error fetching managers for digest: %v", err)
		return
	}

	fmt.Printf("Found %d pending shift requests for digest\n", len(pending))

	body := buildDigestBody(pending)
	subject := fmt.Sprintf("Shift requests awaiting approval: %d", len(pending))
	for _, manager := range managers {
		if manager.Email == "" {
			continue
		}
		if err := utils.SendEmail(manager.Email, subject, body); err != nil {
			// delivery is best-effort, the requests stay pending either way
			log.Printf("Failed to send digest to %s: %v", manager.Email, err)
			continue
		}
		log.Printf("Sent pending request digest to %s", manager.Email)
	}
}

// buildDigestBody renders the pending requests as a simple HTML list
func buildDigestBody(pending []models.ShiftRequest) string {
	var b strings.Builder
	b.WriteString("<p>The following shift requests are waiting on a decision:</p><ul>")
	for _, req := range pending {
		name := req.Staff.Name
		if name == "" {
			name = fmt.Sprintf("staff #%d", req.StaffID)
		}
		b.WriteString(fmt.Sprintf("<li><strong>%s</strong>: %s shift on %s",
			name, req.ShiftType, req.Date.Format("2006-01-02")))
		if req.Notes != "" {
			b.WriteString(fmt.Sprintf(" (%s)", req.Notes))
		}
		b.WriteString("</li>")
	}
	b.WriteString("</ul><p>Open the back office to approve or reject them.</p>")
	return b.String()
}
