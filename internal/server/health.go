package server

import (
	"context"
	"errors"

	"github.com/vanshika/costars/internal/graph"
	"github.com/vanshika/costars/internal/service"
)

// HealthService defines behaviour for readiness probes.
type HealthService interface {
	Probe(ctx context.Context) error
}

// HealthChecks runs several probes and joins their failures.
type HealthChecks []HealthService

// Probe implements the HealthService interface.
func (hc HealthChecks) Probe(ctx context.Context) error {
	var errs []error
	for _, check := range hc {
		if check == nil {
			continue
		}
		if err := check.Probe(ctx); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// DatasetHealthService reports unhealthy until a dataset snapshot is loaded.
type DatasetHealthService struct {
	Service *service.ConnectionService
}

// Probe implements the HealthService interface.
func (s DatasetHealthService) Probe(context.Context) error {
	if s.Service == nil {
		return nil
	}
	_, err := s.Service.Snapshot()
	return err
}

// GraphHealthService verifies graph connectivity as part of health checks.
type GraphHealthService struct {
	Client graph.Client
}

// Probe implements the HealthService interface.
func (s GraphHealthService) Probe(ctx context.Context) error {
	if s.Client == nil {
		return nil
	}
	return s.Client.VerifyConnectivity(ctx)
}
