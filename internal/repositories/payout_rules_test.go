package repositories

import (
	"errors"
	"testing"
	"time"

	"fanloft/internal/models/db_models"
	"fanloft/pkg/utils"
)

func payoutRequestAt(status db_models.PayoutStatus, createdAt time.Time) *db_models.PayoutRequest {
	r := &db_models.PayoutRequest{Status: status}
	r.CreatedAt = createdAt.Unix()
	return r
}

func TestResolvePayoutAmount(t *testing.T) {
	now := time.Now()
	cooldown := 24 * time.Hour
	const minMinor = 10000

	tests := []struct {
		name       string
		last       *db_models.PayoutRequest
		pending    int64
		requested  int64
		wantAmount int64
		wantErr    error
	}{
		{
			name:       "first request withdraws full pending",
			last:       nil,
			pending:    50000,
			requested:  0,
			wantAmount: 50000,
		},
		{
			name:       "explicit amount within pending",
			last:       nil,
			pending:    50000,
			requested:  20000,
			wantAmount: 20000,
		},
		{
			name:      "outstanding request blocks a new one",
			last:      payoutRequestAt(db_models.PayoutStatusPending, now.Add(-48*time.Hour)),
			pending:   50000,
			requested: 0,
			wantErr:   utils.ErrPayoutOutstanding,
		},
		{
			name:      "cooldown runs from the last request even when paid",
			last:      payoutRequestAt(db_models.PayoutStatusPaid, now.Add(-10*time.Hour)),
			pending:   50000,
			requested: 0,
			wantErr:   utils.ErrPayoutCooldown,
		},
		{
			name:       "cooldown elapsed",
			last:       payoutRequestAt(db_models.PayoutStatusPaid, now.Add(-25*time.Hour)),
			pending:    50000,
			requested:  0,
			wantAmount: 50000,
		},
		{
			name:      "pending below minimum",
			last:      nil,
			pending:   9999,
			requested: 0,
			wantErr:   utils.ErrBelowMinimumPayout,
		},
		{
			name:      "requested exceeds pending",
			last:      nil,
			pending:   50000,
			requested: 50001,
			wantErr:   utils.ErrBelowMinimumPayout,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			amount, err := ResolvePayoutAmount(tt.last, now, cooldown, tt.pending, tt.requested, minMinor)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("err = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if amount != tt.wantAmount {
				t.Errorf("amount = %d, want %d", amount, tt.wantAmount)
			}
		})
	}
}

func TestResolvePayoutAmountCooldownRemainder(t *testing.T) {
	now := time.Now()
	last := payoutRequestAt(db_models.PayoutStatusPaid, now.Add(-10*time.Hour))

	_, err := ResolvePayoutAmount(last, now, 24*time.Hour, 50000, 0, 10000)

	var coolErr *utils.CooldownError
	if !errors.As(err, &coolErr) {
		t.Fatalf("err = %v, want CooldownError", err)
	}
	// CreatedAt is stored at second precision; allow a second of slack.
	if got, want := coolErr.RetryIn, 14*time.Hour; got < want-time.Second || got > want+time.Second {
		t.Errorf("retry in = %s, want ~%s", got, want)
	}
}

func TestSettleablePrefix(t *testing.T) {
	earnings := func(nets ...int64) []db_models.CreatorEarning {
		out := make([]db_models.CreatorEarning, len(nets))
		for i, n := range nets {
			out[i].NetMinor = n
		}
		return out
	}

	tests := []struct {
		name     string
		earnings []db_models.CreatorEarning
		amount   int64
		want     int
	}{
		{"covers a prefix without splitting", earnings(3000, 4000, 5000), 7000, 2},
		{"covers everything", earnings(3000, 4000, 5000), 12000, 3},
		{"first row does not fit whole", earnings(3000, 4000, 5000), 2999, 0},
		{"exact first row", earnings(3000, 4000, 5000), 3000, 1},
		{"gap stops the scan", earnings(3000, 5000, 1000), 4500, 1},
		{"no earnings", nil, 10000, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SettleablePrefix(tt.earnings, tt.amount); got != tt.want {
				t.Errorf("prefix = %d, want %d", got, tt.want)
			}
		})
	}
}
