package dochub

import (
	"context"
	"time"

	healthuc "github.com/HKKoho/DocumentHub/internal/usecase/health"
)

type healthUseCase interface {
	Check(ctx context.Context) healthuc.Report
}

// HealthStatus reports on the client's dependencies. Status is "ok"
// when every check passes and "degraded" otherwise. Checks maps
// component names ("database", "storage") to "ok" or "error".
type HealthStatus struct {
	Status string
	Checks map[string]string
}

// Health checks database connectivity and, when attachments are
// configured, storage reachability.
func (c *Client) Health(ctx context.Context) HealthStatus {
	start := time.Now()
	defer func() { c.obs.observe("health", start, nil) }()

	report := c.healthSvc.Check(ctx)
	checks := make(map[string]string, len(report.Checks))
	for name, res := range report.Checks {
		checks[name] = string(res)
	}
	return HealthStatus{Status: string(report.Status), Checks: checks}
}
