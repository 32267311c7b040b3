package repositories

import (
	"errors"
	"testing"

	"fanloft/pkg/utils"
)

func TestSplitSpend(t *testing.T) {
	tests := []struct {
		name      string
		paid      int64
		bonus     int64
		amount    int64
		policy    SpendPolicy
		fromPaid  int64
		fromBonus int64
		wantErr   bool
		shortfall int64
	}{
		{
			name: "catalog drains bonus first",
			paid: 200, bonus: 700, amount: 800, policy: SpendCatalog,
			fromPaid: 100, fromBonus: 700,
		},
		{
			name: "catalog bonus covers everything",
			paid: 500, bonus: 300, amount: 200, policy: SpendCatalog,
			fromPaid: 0, fromBonus: 200,
		},
		{
			name: "catalog insufficient combined balance",
			paid: 500, bonus: 0, amount: 800, policy: SpendCatalog,
			wantErr: true, shortfall: 300,
		},
		{
			name: "paid-only ignores bonus pool",
			paid: 100, bonus: 1000, amount: 300, policy: SpendPaidOnly,
			wantErr: true, shortfall: 200,
		},
		{
			name: "paid-only exact balance",
			paid: 300, bonus: 0, amount: 300, policy: SpendPaidOnly,
			fromPaid: 300, fromBonus: 0,
		},
		{
			name: "zero amount",
			paid: 50, bonus: 50, amount: 0, policy: SpendCatalog,
			fromPaid: 0, fromBonus: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fromPaid, fromBonus, err := SplitSpend(tt.paid, tt.bonus, tt.amount, tt.policy)

			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if !errors.Is(err, utils.ErrInsufficientCredits) {
					t.Fatalf("expected insufficient credits error, got %v", err)
				}
				var shortErr *utils.InsufficientCreditsError
				if !errors.As(err, &shortErr) {
					t.Fatalf("expected structured shortfall error, got %v", err)
				}
				if shortErr.Shortfall() != tt.shortfall {
					t.Errorf("shortfall = %d, want %d", shortErr.Shortfall(), tt.shortfall)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if fromPaid != tt.fromPaid || fromBonus != tt.fromBonus {
				t.Errorf("split = (%d, %d), want (%d, %d)", fromPaid, fromBonus, tt.fromPaid, tt.fromBonus)
			}
			if fromPaid+fromBonus != tt.amount {
				t.Errorf("split does not sum to amount: %d + %d != %d", fromPaid, fromBonus, tt.amount)
			}
		})
	}
}
