package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"fanloft/internal/models/db_models"
	"fanloft/internal/models/request_models"
	mem "fanloft/pkg/memcache"
	"fanloft/pkg/utils"
)

type fakePayoutRepo struct {
	created []*db_models.PayoutRequest
	err     error
}

func (f *fakePayoutRepo) CreateRequest(_ context.Context, request *db_models.PayoutRequest, _ int64, _ time.Duration) error {
	if f.err != nil {
		return f.err
	}
	request.ID = uuid.New()
	request.Status = db_models.PayoutStatusPending
	request.CreatedAt = time.Now().Unix()
	f.created = append(f.created, request)
	return nil
}

func (f *fakePayoutRepo) MarkPaid(_ context.Context, requestID uuid.UUID) (*db_models.PayoutRequest, error) {
	for _, r := range f.created {
		if r.ID == requestID && r.Status == db_models.PayoutStatusPending {
			paidAt := time.Now().Unix()
			r.Status = db_models.PayoutStatusPaid
			r.PaidAt = &paidAt
			return r, nil
		}
	}
	return nil, utils.ErrRecordNotFound
}

func (f *fakePayoutRepo) ListByCreator(_ context.Context, creatorID uuid.UUID) ([]db_models.PayoutRequest, error) {
	var out []db_models.PayoutRequest
	for _, r := range f.created {
		if r.CreatorID == creatorID {
			out = append(out, *r)
		}
	}
	return out, nil
}

func newTestPayoutService(repo *fakePayoutRepo, docs mem.DocumentStore) *PayoutService {
	earningSvc := NewEarningService(newFakeEarningRepo(), CommissionRule{FlatBps: 500, GraceDays: 30})
	cfg := PayoutConfig{
		MinMinor:     10000,
		Cooldown:     24 * time.Hour,
		DocRetention: 24 * time.Hour,
	}
	return NewPayoutService(repo, earningSvc, docs, cfg, zerolog.Nop())
}

func TestRequestPayoutValidation(t *testing.T) {
	tests := []struct {
		name    string
		req     request_models.RequestPayoutRequest
		wantErr error
	}{
		{
			name:    "unsupported wallet type",
			req:     request_models.RequestPayoutRequest{WalletType: "XRP", WalletAddress: "r123", IDPhotoURL: "doc-1"},
			wantErr: utils.ErrInvalidWallet,
		},
		{
			name:    "empty wallet address",
			req:     request_models.RequestPayoutRequest{WalletType: "ETH", IDPhotoURL: "doc-1"},
			wantErr: utils.ErrInvalidWallet,
		},
		{
			name:    "missing identity document",
			req:     request_models.RequestPayoutRequest{WalletType: "BTC", WalletAddress: "bc1q..."},
			wantErr: utils.ErrMissingIDDocument,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakePayoutRepo{}
			svc := newTestPayoutService(repo, mem.NewDocuments())

			_, err := svc.RequestPayout(context.Background(), uuid.New(), tt.req)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("err = %v, want %v", err, tt.wantErr)
			}
			if len(repo.created) != 0 {
				t.Error("no request should reach the repository on validation failure")
			}
		})
	}
}

func TestRequestPayoutStoresDocument(t *testing.T) {
	repo := &fakePayoutRepo{}
	docs := mem.NewDocuments()
	svc := newTestPayoutService(repo, docs)

	creatorID := uuid.New()
	resp, err := svc.RequestPayout(context.Background(), creatorID, request_models.RequestPayoutRequest{
		WalletType:    "ETH",
		WalletAddress: "0xabc",
		IDPhotoURL:    "doc-ref-1",
		Amount:        15000,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Status != string(db_models.PayoutStatusPending) {
		t.Errorf("status = %q, want pending", resp.Status)
	}

	owner, ok := docs.Get("doc-ref-1")
	if !ok {
		t.Fatal("identity document reference was not retained")
	}
	if owner != creatorID.String() {
		t.Errorf("document owner = %q, want %q", owner, creatorID)
	}
}

func TestRequestPayoutPropagatesRepoErrors(t *testing.T) {
	repo := &fakePayoutRepo{err: &utils.CooldownError{RetryIn: 3 * time.Hour}}
	docs := mem.NewDocuments()
	svc := newTestPayoutService(repo, docs)

	_, err := svc.RequestPayout(context.Background(), uuid.New(), request_models.RequestPayoutRequest{
		WalletType:    "ETH",
		WalletAddress: "0xabc",
		IDPhotoURL:    "doc-ref-2",
	})
	if !errors.Is(err, utils.ErrPayoutCooldown) {
		t.Fatalf("err = %v, want cooldown", err)
	}
	if _, ok := docs.Get("doc-ref-2"); ok {
		t.Error("document must not be retained for a rejected request")
	}
}

func TestMarkPaid(t *testing.T) {
	repo := &fakePayoutRepo{}
	svc := newTestPayoutService(repo, mem.NewDocuments())

	creatorID := uuid.New()
	resp, err := svc.RequestPayout(context.Background(), creatorID, request_models.RequestPayoutRequest{
		WalletType:    "BTC",
		WalletAddress: "bc1q...",
		IDPhotoURL:    "doc-ref-3",
		Amount:        20000,
	})
	if err != nil {
		t.Fatalf("request payout: %v", err)
	}

	requestID, err := uuid.Parse(resp.ID)
	if err != nil {
		t.Fatalf("parse request id: %v", err)
	}

	paid, err := svc.MarkPaid(context.Background(), requestID)
	if err != nil {
		t.Fatalf("mark paid: %v", err)
	}
	if paid.Status != string(db_models.PayoutStatusPaid) {
		t.Errorf("status = %q, want paid", paid.Status)
	}
	if paid.PaidAt == nil {
		t.Error("paid_at must be set")
	}

	// A second flip is a not-found: the request is no longer pending.
	if _, err := svc.MarkPaid(context.Background(), requestID); !errors.Is(err, utils.ErrRecordNotFound) {
		t.Errorf("second mark paid err = %v, want not found", err)
	}
}
