package service

import (
	"context"
	"fmt"
	"time"

	"github.com/chainsaw-registry/backend/internal/repository"
)

type statsService struct {
	equipmentRepository repository.Equipment
	now                 func() time.Time
}

func newStatsService(equipmentRepository repository.Equipment) *statsService {
	return &statsService{
		equipmentRepository: equipmentRepository,
		now:                 time.Now,
	}
}

const monthlySeriesMonths = 6

// Overview gathers the dashboard aggregates. All counts are restricted to
// approved records (accepted application, passed inspection), and the expiry
// counts branch on is_new inside the query so each record is measured
// against its own validity anchor.
func (s *statsService) Overview(ctx context.Context) (*StatsOverview, error) {
	now := s.now()
	startOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	startOfLastMonth := startOfMonth.AddDate(0, -1, 0)

	total, err := s.equipmentRepository.CountApproved(ctx)
	if err != nil {
		return nil, fmt.Errorf("count approved failed: %w", err)
	}

	thisMonth, err := s.equipmentRepository.CountApprovedCreatedBetween(ctx, startOfMonth, now)
	if err != nil {
		return nil, fmt.Errorf("count this month failed: %w", err)
	}

	lastMonth, err := s.equipmentRepository.CountApprovedCreatedBetween(ctx, startOfLastMonth, startOfMonth)
	if err != nil {
		return nil, fmt.Errorf("count last month failed: %w", err)
	}

	expired, err := s.equipmentRepository.CountExpired(ctx, now)
	if err != nil {
		return nil, fmt.Errorf("count expired failed: %w", err)
	}

	expiringSoon, err := s.equipmentRepository.CountExpiringSoon(ctx, now)
	if err != nil {
		return nil, fmt.Errorf("count expiring soon failed: %w", err)
	}

	byUseType, err := s.equipmentRepository.CountApprovedByUseType(ctx)
	if err != nil {
		return nil, fmt.Errorf("count by use type failed: %w", err)
	}

	monthly, err := s.equipmentRepository.CountApprovedByMonth(ctx, startOfMonth.AddDate(0, -monthlySeriesMonths, 0))
	if err != nil {
		return nil, fmt.Errorf("count by month failed: %w", err)
	}

	growthRate := 100.0
	if lastMonth > 0 {
		growthRate = float64(thisMonth-lastMonth) / float64(lastMonth) * 100
	}

	return &StatsOverview{
		TotalEquipments:      total,
		EquipmentsThisMonth:  thisMonth,
		EquipmentsLastMonth:  lastMonth,
		MonthlyGrowthRate:    growthRate,
		ExpiredEquipments:    expired,
		ExpiringInNext30Days: expiringSoon,
		ByUseType:            byUseType,
		Monthly:              monthly,
	}, nil
}
