package services

import (
	"context"

	health "github.com/treyloggins4-create/tk/gen/health"
	"github.com/treyloggins4-create/tk/internal/database"
)

// HealthService implements the health service
type HealthService struct{}

// NewHealthService creates a new health service
func NewHealthService() *HealthService {
	return &HealthService{}
}

// Check implements the health check method
func (s *HealthService) Check(ctx context.Context) (*health.Healthresult, error) {
	status := "healthy"
	service := "TK Prime API"
	db := "connected"
	if err := database.HealthCheck(); err != nil {
		status = "degraded"
		db = "unavailable"
	}
	return &health.Healthresult{
		Status:   &status,
		Service:  &service,
		Database: &db,
	}, nil
}
