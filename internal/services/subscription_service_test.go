package services

import (
	"testing"
	"time"

	"fanloft/internal/models/db_models"
)

func TestPeriodWindow(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

	t.Run("fresh monthly subscription starts now", func(t *testing.T) {
		starts, ends := periodWindow(nil, db_models.PeriodMonth, now)
		if starts != now.Unix() {
			t.Errorf("starts = %d, want %d", starts, now.Unix())
		}
		if want := now.AddDate(0, 1, 0).Unix(); ends != want {
			t.Errorf("ends = %d, want %d", ends, want)
		}
	})

	t.Run("fresh yearly subscription", func(t *testing.T) {
		starts, ends := periodWindow(nil, db_models.PeriodYear, now)
		if want := time.Unix(starts, 0).AddDate(1, 0, 0).Unix(); ends != want {
			t.Errorf("ends = %d, want %d", ends, want)
		}
	})

	t.Run("early renewal extends from current end", func(t *testing.T) {
		currentEnd := now.AddDate(0, 0, 10)
		current := &db_models.Subscription{
			Status:    db_models.SubStatusActive,
			AutoRenew: true,
			EndsAt:    currentEnd.Unix(),
		}

		starts, ends := periodWindow(current, db_models.PeriodMonth, now)
		if starts != currentEnd.Unix() {
			t.Errorf("starts = %d, want current end %d", starts, currentEnd.Unix())
		}
		if want := currentEnd.AddDate(0, 1, 0).Unix(); ends != want {
			t.Errorf("ends = %d, want %d", ends, want)
		}
	})

	t.Run("lapsed subscription restarts from now", func(t *testing.T) {
		current := &db_models.Subscription{
			Status:    db_models.SubStatusActive,
			AutoRenew: true,
			EndsAt:    now.AddDate(0, 0, -1).Unix(),
		}

		starts, _ := periodWindow(current, db_models.PeriodMonth, now)
		if starts != now.Unix() {
			t.Errorf("starts = %d, want %d", starts, now.Unix())
		}
	})

	t.Run("canceled subscription does not extend", func(t *testing.T) {
		current := &db_models.Subscription{
			Status:    db_models.SubStatusCanceled,
			AutoRenew: false,
			EndsAt:    now.AddDate(0, 0, 10).Unix(),
		}

		starts, _ := periodWindow(current, db_models.PeriodMonth, now)
		if starts != now.Unix() {
			t.Errorf("starts = %d, want %d", starts, now.Unix())
		}
	})
}
