package entity

import (
	"testing"
	"time"
)

func TestBannerStatus(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	yesterday := now.AddDate(0, 0, -1)
	tomorrow := now.AddDate(0, 0, 1)

	tests := []struct {
		name   string
		banner Banner
		want   BannerStatus
	}{
		{
			name:   "disabled wins over a live window",
			banner: Banner{IsActive: false, StartDate: yesterday, EndDate: tomorrow},
			want:   BannerInactive,
		},
		{
			name:   "disabled wins over a future window",
			banner: Banner{IsActive: false, StartDate: tomorrow, EndDate: tomorrow.AddDate(0, 0, 7)},
			want:   BannerInactive,
		},
		{
			name:   "window not started yet",
			banner: Banner{IsActive: true, StartDate: tomorrow, EndDate: tomorrow.AddDate(0, 0, 7)},
			want:   BannerScheduled,
		},
		{
			name:   "window already over",
			banner: Banner{IsActive: true, StartDate: yesterday.AddDate(0, 0, -7), EndDate: yesterday},
			want:   BannerExpired,
		},
		{
			name:   "inside the window",
			banner: Banner{IsActive: true, StartDate: yesterday, EndDate: tomorrow},
			want:   BannerActive,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.banner.Status(now); got != tt.want {
				t.Errorf("Status() = %q, want %q", got, tt.want)
			}
		})
	}
}
