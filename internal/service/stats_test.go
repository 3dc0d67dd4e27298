package service

import (
	"context"
	"testing"
	"time"

	"github.com/chainsaw-registry/backend/internal/domain"
	"github.com/chainsaw-registry/backend/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newStatsFixture(thisMonth, lastMonth int64) (*statsService, *equipmentRepositoryMock) {
	equipments := new(equipmentRepositoryMock)
	svc := &statsService{
		equipmentRepository: equipments,
		now:                 func() time.Time { return testTime },
	}

	startOfMonth := time.Date(2025, time.May, 1, 0, 0, 0, 0, time.UTC)
	startOfLastMonth := time.Date(2025, time.April, 1, 0, 0, 0, 0, time.UTC)

	equipments.On("CountApproved", mock.Anything).Return(int64(42), nil)
	equipments.On("CountApprovedCreatedBetween", mock.Anything, startOfMonth, testTime).Return(thisMonth, nil)
	equipments.On("CountApprovedCreatedBetween", mock.Anything, startOfLastMonth, startOfMonth).Return(lastMonth, nil)
	equipments.On("CountExpired", mock.Anything, testTime).Return(int64(3), nil)
	equipments.On("CountExpiringSoon", mock.Anything, testTime).Return(int64(5), nil)
	equipments.On("CountApprovedByUseType", mock.Anything).Return([]repository.UseTypeCount{
		{UseType: domain.UseTypeWoodProcessing, Count: 30},
	}, nil)
	equipments.On("CountApprovedByMonth", mock.Anything, startOfMonth.AddDate(0, -6, 0)).Return([]repository.MonthlyCount{
		{Month: "2025-04", Count: 10},
		{Month: "2025-05", Count: 12},
	}, nil)

	return svc, equipments
}

func TestStatsOverview(t *testing.T) {
	svc, equipments := newStatsFixture(12, 10)

	overview, err := svc.Overview(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(42), overview.TotalEquipments)
	assert.Equal(t, int64(12), overview.EquipmentsThisMonth)
	assert.Equal(t, int64(10), overview.EquipmentsLastMonth)
	assert.InDelta(t, 20.0, overview.MonthlyGrowthRate, 0.001)
	assert.Equal(t, int64(3), overview.ExpiredEquipments)
	assert.Equal(t, int64(5), overview.ExpiringInNext30Days)
	assert.Len(t, overview.ByUseType, 1)
	assert.Len(t, overview.Monthly, 2)
	equipments.AssertExpectations(t)
}

func TestStatsOverview_GrowthWithEmptyLastMonth(t *testing.T) {
	svc, _ := newStatsFixture(7, 0)

	overview, err := svc.Overview(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 100.0, overview.MonthlyGrowthRate)
}

func TestStatsOverview_NegativeGrowth(t *testing.T) {
	svc, _ := newStatsFixture(5, 10)

	overview, err := svc.Overview(context.Background())

	require.NoError(t, err)
	assert.InDelta(t, -50.0, overview.MonthlyGrowthRate, 0.001)
}
