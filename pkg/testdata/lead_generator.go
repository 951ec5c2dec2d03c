package testdata

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/avillega/leadtrail/ent"
	"github.com/avillega/leadtrail/ent/lead"
)

// GeneratorConfig configures sample data generation
type GeneratorConfig struct {
	Agents      int
	Leads       int
	ClosedRatio float64 // 0.0-1.0 share of leads generated in the closed status
	TagPool     []string
	Seed        int64
}

// DefaultTagPool lists the tag labels used when none are configured
var DefaultTagPool = []string{
	"hot", "enterprise", "smb", "renewal", "upsell",
	"inbound", "outbound", "demo-requested", "budget-approved", "follow-up",
}

var sources = []lead.Source{
	lead.SourceWebsite, lead.SourceReferral, lead.SourceColdCall,
	lead.SourceAdvertisement, lead.SourceEmail, lead.SourceOther,
}

var openStatuses = []lead.Status{
	lead.StatusNew, lead.StatusContacted, lead.StatusQualified, lead.StatusProposalSent,
}

var priorities = []lead.Priority{
	lead.PriorityHigh, lead.PriorityMedium, lead.PriorityLow,
}

// Generate populates the database with fake agents and leads.
// It returns the IDs of the created agents.
func Generate(ctx context.Context, client *ent.Client, cfg GeneratorConfig) ([]int, error) {
	if cfg.Agents <= 0 {
		cfg.Agents = 5
	}
	if cfg.Leads <= 0 {
		cfg.Leads = 100
	}
	if len(cfg.TagPool) == 0 {
		cfg.TagPool = DefaultTagPool
	}

	faker := gofakeit.New(cfg.Seed)
	rng := rand.New(rand.NewSource(cfg.Seed))

	agentIDs := make([]int, 0, cfg.Agents)
	for i := 0; i < cfg.Agents; i++ {
		agent, err := client.SalesAgent.
			Create().
			SetName(faker.Name()).
			SetEmail(fmt.Sprintf("%d.%s", i, faker.Email())).
			SetPhone(fmt.Sprintf("+1%d", 2025550100+i)).
			Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to create agent: %w", err)
		}
		agentIDs = append(agentIDs, agent.ID)
	}

	for i := 0; i < cfg.Leads; i++ {
		tags := pickTags(rng, cfg.TagPool)

		create := client.Lead.
			Create().
			SetName(faker.Company()).
			SetSource(sources[rng.Intn(len(sources))]).
			SetSalesAgentID(agentIDs[rng.Intn(len(agentIDs))]).
			SetTimeToClose(rng.Intn(90) + 1).
			SetPriority(priorities[rng.Intn(len(priorities))]).
			SetTags(tags)

		if rng.Float64() < cfg.ClosedRatio {
			// Closed sometime in the last 30 days
			closedAt := time.Now().AddDate(0, 0, -rng.Intn(30))
			create = create.
				SetStatus(lead.StatusClosed).
				SetClosedAt(closedAt)
		} else {
			create = create.SetStatus(openStatuses[rng.Intn(len(openStatuses))])
		}

		if _, err := create.Save(ctx); err != nil {
			return nil, fmt.Errorf("failed to create lead: %w", err)
		}
	}

	return agentIDs, nil
}

func pickTags(rng *rand.Rand, pool []string) []string {
	count := rng.Intn(3) // 0-2 tags per lead
	if count == 0 {
		return nil
	}

	picked := make([]string, 0, count)
	seen := make(map[string]bool, count)
	for len(picked) < count {
		tag := pool[rng.Intn(len(pool))]
		if seen[tag] {
			continue
		}
		seen[tag] = true
		picked = append(picked, tag)
	}
	return picked
}
