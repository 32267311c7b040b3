package services

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"

	"fanloft/internal/models/db_models"
	"fanloft/pkg/utils"
)

type fakeEarningRepo struct {
	rows map[string]*db_models.CreatorEarning
}

func newFakeEarningRepo() *fakeEarningRepo {
	return &fakeEarningRepo{rows: make(map[string]*db_models.CreatorEarning)}
}

func (f *fakeEarningRepo) Insert(_ context.Context, earning *db_models.CreatorEarning) error {
	key := fmt.Sprintf("%s/%s", earning.SourceType, earning.SourceID)
	if _, exists := f.rows[key]; exists {
		return utils.ErrDuplicateEarning
	}
	f.rows[key] = earning
	return nil
}

func (f *fakeEarningRepo) PendingBalance(_ context.Context, creatorID uuid.UUID) (int64, error) {
	var sum int64
	for _, e := range f.rows {
		if e.CreatorID == creatorID && e.Status == db_models.EarningStatusPending {
			sum += e.NetMinor
		}
	}
	return sum, nil
}

func (f *fakeEarningRepo) ListByCreator(_ context.Context, creatorID uuid.UUID, _ int) ([]db_models.CreatorEarning, error) {
	var out []db_models.CreatorEarning
	for _, e := range f.rows {
		if e.CreatorID == creatorID {
			out = append(out, *e)
		}
	}
	return out, nil
}

func creatorSignedUpDaysAgo(days int, overrideBps *int64) *db_models.Account {
	account := &db_models.Account{Role: db_models.RoleCreator, CommissionBps: overrideBps}
	account.ID = uuid.New()
	account.CreatedAt = time.Now().AddDate(0, 0, -days).Unix()
	return account
}

func TestRateFor(t *testing.T) {
	rule := CommissionRule{FlatBps: 500, GraceDays: 30}
	override := int64(800)

	tests := []struct {
		name    string
		creator *db_models.Account
		wantBps int64
	}{
		{"inside grace window", creatorSignedUpDaysAgo(10, nil), 0},
		{"grace trumps override", creatorSignedUpDaysAgo(10, &override), 0},
		{"after grace, flat rate", creatorSignedUpDaysAgo(45, nil), 500},
		{"after grace, override wins", creatorSignedUpDaysAgo(45, &override), 800},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := rule.RateFor(tt.creator, time.Now()); got != tt.wantBps {
				t.Errorf("RateFor = %d, want %d", got, tt.wantBps)
			}
		})
	}
}

func TestCommissionMinor(t *testing.T) {
	tests := []struct {
		gross int64
		bps   int64
		want  int64
	}{
		{5000, 500, 250},
		{5000, 0, 0},
		{1, 500, 0},      // 0.05 rounds down
		{100, 500, 5},    // exact
		{101, 500, 5},    // 5.05 rounds down
		{110, 500, 6},    // 5.5 rounds up
		{999, 2500, 250}, // 249.75 rounds up
	}

	for _, tt := range tests {
		if got := CommissionMinor(tt.gross, tt.bps); got != tt.want {
			t.Errorf("CommissionMinor(%d, %d) = %d, want %d", tt.gross, tt.bps, got, tt.want)
		}
	}
}

func TestBuildEarningSplitsGrossAndNet(t *testing.T) {
	repo := newFakeEarningRepo()
	svc := NewEarningService(repo, CommissionRule{FlatBps: 500, GraceDays: 30})

	creator := creatorSignedUpDaysAgo(60, nil)
	earning := svc.BuildEarning(creator, 5000, db_models.SourceTip, uuid.New())

	if earning.CommissionMinor != 250 {
		t.Errorf("commission = %d, want 250", earning.CommissionMinor)
	}
	if earning.NetMinor != 4750 {
		t.Errorf("net = %d, want 4750", earning.NetMinor)
	}
	if earning.GrossMinor != earning.CommissionMinor+earning.NetMinor {
		t.Error("gross must equal commission plus net")
	}
	if earning.Status != db_models.EarningStatusPending {
		t.Errorf("status = %q, want pending", earning.Status)
	}
}

func TestRecordSwallowsDuplicates(t *testing.T) {
	repo := newFakeEarningRepo()
	svc := NewEarningService(repo, CommissionRule{FlatBps: 500, GraceDays: 30})

	creator := creatorSignedUpDaysAgo(60, nil)
	sourceID := uuid.New()

	first := svc.BuildEarning(creator, 1000, db_models.SourceSubscription, sourceID)
	if err := svc.Record(context.Background(), first); err != nil {
		t.Fatalf("first record failed: %v", err)
	}

	replay := svc.BuildEarning(creator, 1000, db_models.SourceSubscription, sourceID)
	if err := svc.Record(context.Background(), replay); err != nil {
		t.Fatalf("replay should be a no-op, got: %v", err)
	}

	pending, err := svc.PendingBalance(context.Background(), creator.ID)
	if err != nil {
		t.Fatalf("pending balance: %v", err)
	}
	if pending != 950 {
		t.Errorf("pending = %d, want 950 (single earning, 5%% commission)", pending)
	}
}
