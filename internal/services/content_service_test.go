package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"fanloft/internal/models/db_models"
	"fanloft/pkg/utils"
)

type fakeMediaRepo struct {
	media *db_models.Media
}

func (f *fakeMediaRepo) FindById(context.Context, string) (*db_models.Media, error) {
	return f.media, nil
}

func (f *fakeMediaRepo) ListByCreator(context.Context, uuid.UUID, int, int) ([]db_models.Media, error) {
	if f.media == nil {
		return nil, nil
	}
	return []db_models.Media{*f.media}, nil
}

type fakeSubscriptionRepo struct{}

func (fakeSubscriptionRepo) ActiveFor(context.Context, uuid.UUID, uuid.UUID, int64) (*db_models.Subscription, error) {
	return nil, nil
}

func (fakeSubscriptionRepo) ListForAccount(context.Context, uuid.UUID) ([]db_models.Subscription, error) {
	return nil, nil
}

type fakeUnlockRepo struct{}

func (fakeUnlockRepo) Find(context.Context, uuid.UUID, db_models.ContentType, uuid.UUID) (*db_models.UnlockRecord, error) {
	return nil, nil
}

func TestUnlockMediaUpgradeDenialCarriesRequiredTier(t *testing.T) {
	tests := []struct {
		name     string
		media    db_models.Media
		wantTier string
	}{
		{
			name:     "basic tier gate names basic",
			media:    db_models.Media{AccessTier: db_models.TierBasic},
			wantTier: "basic",
		},
		{
			name:     "vip gate names vip",
			media:    db_models.Media{TagVIP: true},
			wantTier: "vip",
		},
		{
			name:     "vip and ppv gate names vip for a non-vip viewer",
			media:    db_models.Media{TagVIP: true, TagPPV: true, PPVPriceCredits: 100},
			wantTier: "vip",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			media := tt.media
			media.ID = uuid.New()
			media.CreatorID = uuid.New()

			access := NewAccessService(fakeSubscriptionRepo{}, fakeUnlockRepo{})
			svc := NewContentService(
				&fakeMediaRepo{media: &media}, nil, fakeUnlockRepo{}, nil, nil,
				access, nil, zerolog.Nop())

			_, err := svc.UnlockMedia(context.Background(), uuid.New(), media.ID.String())
			if !errors.Is(err, utils.ErrUpgradeRequired) {
				t.Fatalf("err = %v, want upgrade required", err)
			}

			var upgradeErr *utils.UpgradeRequiredError
			if !errors.As(err, &upgradeErr) {
				t.Fatalf("err = %T, want UpgradeRequiredError", err)
			}
			if upgradeErr.Tier != tt.wantTier {
				t.Errorf("tier = %q, want %q", upgradeErr.Tier, tt.wantTier)
			}
		})
	}
}
