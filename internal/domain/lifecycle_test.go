package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func TestValidUntil(t *testing.T) {
	tests := []struct {
		name      string
		equipment Equipment
		want      time.Time
	}{
		{
			name: "new registration counts from acquisition date",
			equipment: Equipment{
				IsNew:        true,
				DateAcquired: date(2024, time.January, 10),
				CreatedAt:    date(2024, time.March, 1),
			},
			want: date(2026, time.January, 10),
		},
		{
			name: "renewal counts from record creation",
			equipment: Equipment{
				IsNew:        false,
				DateAcquired: date(2019, time.June, 5),
				CreatedAt:    date(2024, time.March, 1),
			},
			want: date(2026, time.March, 1),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.equipment.ValidUntil())
		})
	}
}

func TestLifecycle(t *testing.T) {
	tests := []struct {
		name      string
		equipment Equipment
		now       time.Time
		want      LifecycleStatus
	}{
		{
			name: "new registration within window is active",
			equipment: Equipment{
				IsNew:        true,
				DateAcquired: date(2024, time.January, 10),
			},
			now:  date(2025, time.June, 1),
			want: LifecycleActive,
		},
		{
			name: "expired new registration is inactive",
			equipment: Equipment{
				IsNew:        true,
				DateAcquired: date(2022, time.January, 10),
			},
			now:  date(2024, time.June, 1),
			want: LifecycleInactive,
		},
		{
			name: "expired renewal needs renewal instead of going inactive",
			equipment: Equipment{
				IsNew:     false,
				CreatedAt: date(2023, time.March, 5),
			},
			now:  date(2025, time.April, 1),
			want: LifecycleNeedsRenewal,
		},
		{
			name: "still active at the exact expiry instant",
			equipment: Equipment{
				IsNew:        true,
				DateAcquired: date(2024, time.January, 10),
			},
			now:  date(2026, time.January, 10),
			want: LifecycleActive,
		},
		{
			name: "renewal within window is active",
			equipment: Equipment{
				IsNew:     false,
				CreatedAt: date(2024, time.March, 5),
			},
			now:  date(2025, time.March, 5),
			want: LifecycleActive,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.equipment.Lifecycle(tt.now))
		})
	}
}

func TestDaysUntilExpiry(t *testing.T) {
	equipment := Equipment{
		IsNew:        true,
		DateAcquired: date(2024, time.January, 1),
	}
	// valid until 2026-01-01

	tests := []struct {
		name string
		now  time.Time
		want int
	}{
		{"one day left", date(2025, time.December, 31), 1},
		{"expires today", date(2026, time.January, 1), 0},
		{"partial day rounds up", time.Date(2025, time.December, 31, 18, 0, 0, 0, time.UTC), 1},
		{"one day past expiry", date(2026, time.January, 2), -1},
		{"thirty days left", date(2025, time.December, 2), 30},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, equipment.DaysUntilExpiry(tt.now))
		})
	}
}

func TestExpiringSoon(t *testing.T) {
	equipment := Equipment{
		IsNew:        true,
		DateAcquired: date(2024, time.January, 1),
	}
	// valid until 2026-01-01

	tests := []struct {
		name string
		now  time.Time
		want bool
	}{
		{"well before the warning window", date(2025, time.June, 1), false},
		{"thirty one days out", date(2025, time.December, 1), false},
		{"thirty days out", date(2025, time.December, 2), true},
		{"last valid day", date(2026, time.January, 1), true},
		{"already expired", date(2026, time.February, 1), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, equipment.ExpiringSoon(tt.now))
		})
	}
}
