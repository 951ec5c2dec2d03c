package jobs

import (
	"context"
	"log"
	"time"

	"github.com/avillega/leadtrail/ent"
	"github.com/avillega/leadtrail/ent/lead"
	"github.com/avillega/leadtrail/pkg/metrics"
	"github.com/robfig/cron/v3"
)

// staleAfter is how long a lead may sit untouched in an early status
// before the daily job flags it.
const staleAfter = 30 * 24 * time.Hour

// CronManager manages scheduled jobs
type CronManager struct {
	cron    *cron.Cron
	db      *ent.Client
	metrics *metrics.Metrics
	logger  *log.Logger
}

// NewCronManager creates a new cron manager
func NewCronManager(db *ent.Client, m *metrics.Metrics, logger *log.Logger) *CronManager {
	if logger == nil {
		logger = log.Default()
	}

	return &CronManager{
		cron:    cron.New(),
		db:      db,
		metrics: m,
		logger:  logger,
	}
}

// SetupJobs configures all scheduled jobs
func (cm *CronManager) SetupJobs() error {
	cm.logger.Println("Setting up cron jobs...")

	// Hourly: refresh the leads-by-status gauge
	_, err := cm.cron.AddFunc("0 * * * *", func() {
		ctx, cancel := context.WithTimeout(context.Background(), 1*time.Minute)
		defer cancel()

		if err := cm.RefreshStatusGauges(ctx); err != nil {
			cm.logger.Printf("❌ Failed to refresh status gauges: %v", err)
		}
	})
	if err != nil {
		return err
	}

	// Daily at 7 AM: flag leads that have gone stale in an early status
	_, err = cm.cron.AddFunc("0 7 * * *", func() {
		cm.logger.Println("🕐 Running daily stale lead detection job...")

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
		defer cancel()

		cutoff := time.Now().Add(-staleAfter)
		stale, err := cm.db.Lead.
			Query().
			Where(
				lead.StatusIn(lead.StatusNew, lead.StatusContacted),
				lead.UpdatedAtLT(cutoff),
			).
			Count(ctx)
		if err != nil {
			cm.logger.Printf("❌ Failed to detect stale leads: %v", err)
			return
		}

		if stale == 0 {
			cm.logger.Println("✅ No stale leads found")
			return
		}

		cm.logger.Printf("⚠️  Found %d leads untouched for 30+ days in new/contacted", stale)
	})
	if err != nil {
		return err
	}

	return nil
}

// RefreshStatusGauges recomputes the leads-by-status gauge from the database.
func (cm *CronManager) RefreshStatusGauges(ctx context.Context) error {
	var rows []struct {
		Status string `json:"status"`
		Count  int    `json:"count"`
	}
	err := cm.db.Lead.
		Query().
		GroupBy(lead.FieldStatus).
		Aggregate(ent.Count()).
		Scan(ctx, &rows)
	if err != nil {
		return err
	}

	counts := make(map[string]int, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Count
	}

	// Statuses with no leads still get an explicit zero
	statuses := []lead.Status{
		lead.StatusNew, lead.StatusContacted, lead.StatusQualified,
		lead.StatusProposalSent, lead.StatusClosed,
	}
	for _, status := range statuses {
		cm.metrics.LeadsByStatus.WithLabelValues(string(status)).Set(float64(counts[string(status)]))
	}

	return nil
}

// Start starts the cron scheduler
func (cm *CronManager) Start() {
	cm.cron.Start()
}

// Stop stops the cron scheduler
func (cm *CronManager) Stop() {
	cm.cron.Stop()
}
