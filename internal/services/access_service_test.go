package services

import (
	"testing"

	"fanloft/internal/models/db_models"
)

func TestPolicyFor(t *testing.T) {
	tests := []struct {
		name  string
		media db_models.Media
		kind  PolicyKind
		price int64
	}{
		{
			name:  "free tag wins over everything",
			media: db_models.Media{TagFree: true, TagVIP: true, TagPPV: true, PPVPriceCredits: 100},
			kind:  PolicyFree,
		},
		{
			name:  "vip and ppv together",
			media: db_models.Media{TagVIP: true, TagPPV: true, PPVPriceCredits: 250},
			kind:  PolicyVIPAndPPV,
			price: 250,
		},
		{
			name:  "vip only",
			media: db_models.Media{TagVIP: true},
			kind:  PolicyVIPGated,
		},
		{
			name:  "ppv only",
			media: db_models.Media{TagPPV: true, PPVPriceCredits: 50},
			kind:  PolicyPPVGated,
			price: 50,
		},
		{
			name:  "no tags falls back to tier",
			media: db_models.Media{AccessTier: db_models.TierBasic},
			kind:  PolicyTierGated,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			policy := PolicyFor(&tt.media)
			if policy.Kind != tt.kind {
				t.Errorf("kind = %v, want %v", policy.Kind, tt.kind)
			}
			if policy.PriceCredits != tt.price {
				t.Errorf("price = %d, want %d", policy.PriceCredits, tt.price)
			}
		})
	}
}

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name      string
		policy    AccessPolicy
		tier      db_models.AccessTier
		hasUnlock bool
		allowed   bool
		action    RequiredAction
		price     int64
		reqTier   db_models.AccessTier
	}{
		{
			name:    "free always viewable",
			policy:  AccessPolicy{Kind: PolicyFree},
			tier:    db_models.TierFree,
			allowed: true,
		},
		{
			name:      "unlock is permanent even after subscription lapses",
			policy:    AccessPolicy{Kind: PolicyVIPAndPPV, PriceCredits: 300},
			tier:      db_models.TierFree,
			hasUnlock: true,
			allowed:   true,
		},
		{
			name:    "vip gate blocks basic subscriber",
			policy:  AccessPolicy{Kind: PolicyVIPGated},
			tier:    db_models.TierBasic,
			action:  ActionUpgrade,
			reqTier: db_models.TierVIP,
		},
		{
			name:    "vip gate admits vip subscriber",
			policy:  AccessPolicy{Kind: PolicyVIPGated},
			tier:    db_models.TierVIP,
			allowed: true,
		},
		{
			name:    "dual gate hides price from non-vip",
			policy:  AccessPolicy{Kind: PolicyVIPAndPPV, PriceCredits: 300},
			tier:    db_models.TierBasic,
			action:  ActionUpgrade,
			reqTier: db_models.TierVIP,
		},
		{
			name:   "dual gate offers purchase to vip",
			policy: AccessPolicy{Kind: PolicyVIPAndPPV, PriceCredits: 300},
			tier:   db_models.TierVIP,
			action: ActionPurchase,
			price:  300,
		},
		{
			name:   "ppv offers purchase regardless of tier",
			policy: AccessPolicy{Kind: PolicyPPVGated, PriceCredits: 75},
			tier:   db_models.TierFree,
			action: ActionPurchase,
			price:  75,
		},
		{
			name:    "legacy tier admits equal rank",
			policy:  AccessPolicy{Kind: PolicyTierGated, Tier: db_models.TierBasic},
			tier:    db_models.TierBasic,
			allowed: true,
		},
		{
			name:    "legacy tier admits higher rank",
			policy:  AccessPolicy{Kind: PolicyTierGated, Tier: db_models.TierBasic},
			tier:    db_models.TierVIP,
			allowed: true,
		},
		{
			name:    "legacy tier blocks lower rank",
			policy:  AccessPolicy{Kind: PolicyTierGated, Tier: db_models.TierVIP},
			tier:    db_models.TierBasic,
			action:  ActionUpgrade,
			reqTier: db_models.TierVIP,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := Evaluate(tt.policy, tt.tier, tt.hasUnlock)

			if d.Allowed != tt.allowed {
				t.Fatalf("allowed = %v, want %v", d.Allowed, tt.allowed)
			}
			if d.Action != tt.action {
				t.Errorf("action = %q, want %q", d.Action, tt.action)
			}
			if d.PriceCredits != tt.price {
				t.Errorf("price = %d, want %d", d.PriceCredits, tt.price)
			}
			if d.RequiredTier != tt.reqTier {
				t.Errorf("required tier = %q, want %q", d.RequiredTier, tt.reqTier)
			}
		})
	}
}
