package services

import (
	"context"

	"github.com/google/uuid"

	"fanloft/internal/models/db_models"
	"fanloft/internal/repositories"
	"fanloft/pkg/utils"
)

// PolicyKind discriminates the access policy of a piece of content.
// The legacy tier enum and the newer boolean tags collapse into one
// value here so there is a single evaluator instead of call sites
// branching on which fields happen to be set.
type PolicyKind int

const (
	PolicyFree PolicyKind = iota
	PolicyTierGated
	PolicyVIPGated
	PolicyPPVGated
	PolicyVIPAndPPV
)

type AccessPolicy struct {
	Kind         PolicyKind
	Tier         db_models.AccessTier // PolicyTierGated only
	PriceCredits int64                // PPV variants only
}

type RequiredAction string

const (
	ActionNone     RequiredAction = ""
	ActionUpgrade  RequiredAction = "upgrade"
	ActionPurchase RequiredAction = "purchase"
)

// AccessDecision is the outcome of evaluating a viewer against a
// policy. When denied, Action tells the UI what unlocks the content.
// A VIP gate never exposes the PPV price: the decision for a non-VIP
// viewer of dual-tagged content is an upgrade with no price.
type AccessDecision struct {
	Allowed      bool
	Action       RequiredAction
	PriceCredits int64
	RequiredTier db_models.AccessTier
}

// PolicyFor folds a media row's flags into one policy value.
// Tag precedence: free wins outright, then VIP, then PPV; with no tags
// set the legacy tier enum applies.
func PolicyFor(m *db_models.Media) AccessPolicy {
	switch {
	case m.TagFree:
		return AccessPolicy{Kind: PolicyFree}
	case m.TagVIP && m.TagPPV:
		return AccessPolicy{Kind: PolicyVIPAndPPV, PriceCredits: m.PPVPriceCredits}
	case m.TagVIP:
		return AccessPolicy{Kind: PolicyVIPGated}
	case m.TagPPV:
		return AccessPolicy{Kind: PolicyPPVGated, PriceCredits: m.PPVPriceCredits}
	default:
		return AccessPolicy{Kind: PolicyTierGated, Tier: m.AccessTier}
	}
}

// Evaluate applies the decision order: free content is always
// viewable, an existing unlock is permanent, the VIP gate is checked
// before any PPV offer, then PPV, then the legacy tier comparison.
func Evaluate(policy AccessPolicy, viewerTier db_models.AccessTier, hasUnlock bool) AccessDecision {
	if policy.Kind == PolicyFree {
		return AccessDecision{Allowed: true}
	}

	if hasUnlock {
		return AccessDecision{Allowed: true}
	}

	switch policy.Kind {
	case PolicyVIPGated:
		if viewerTier == db_models.TierVIP {
			return AccessDecision{Allowed: true}
		}
		return AccessDecision{Action: ActionUpgrade, RequiredTier: db_models.TierVIP}

	case PolicyVIPAndPPV:
		if viewerTier != db_models.TierVIP {
			return AccessDecision{Action: ActionUpgrade, RequiredTier: db_models.TierVIP}
		}
		return AccessDecision{Action: ActionPurchase, PriceCredits: policy.PriceCredits}

	case PolicyPPVGated:
		return AccessDecision{Action: ActionPurchase, PriceCredits: policy.PriceCredits}

	default:
		if db_models.TierRank(viewerTier) >= db_models.TierRank(policy.Tier) {
			return AccessDecision{Allowed: true}
		}
		return AccessDecision{Action: ActionUpgrade, RequiredTier: policy.Tier}
	}
}

type AccessServiceInterface interface {
	// ViewerTier returns the viewer's active subscription tier toward
	// one creator (TierFree when unsubscribed or lapsed).
	ViewerTier(ctx context.Context, accountID, creatorID uuid.UUID) (db_models.AccessTier, error)

	// DecideMedia evaluates a media item for a viewer. Read-only; the
	// spend path re-validates inside its own transaction.
	DecideMedia(ctx context.Context, accountID uuid.UUID, media *db_models.Media) (AccessDecision, error)
}

type AccessService struct {
	subscriptionRepo repositories.SubscriptionRepository
	unlockRepo       repositories.UnlockRepository
}

func NewAccessService(
	subscriptionRepo repositories.SubscriptionRepository,
	unlockRepo repositories.UnlockRepository,
) AccessServiceInterface {
	return &AccessService{
		subscriptionRepo: subscriptionRepo,
		unlockRepo:       unlockRepo,
	}
}

func (a *AccessService) ViewerTier(ctx context.Context, accountID, creatorID uuid.UUID) (db_models.AccessTier, error) {
	if accountID == uuid.Nil {
		return db_models.TierFree, nil
	}

	sub, err := a.subscriptionRepo.ActiveFor(ctx, accountID, creatorID, utils.NowUnixSeconds())
	if err != nil {
		return db_models.TierFree, utils.ErrDatabaseError
	}
	if sub == nil {
		return db_models.TierFree, nil
	}
	return sub.Plan.Tier, nil
}

func (a *AccessService) DecideMedia(ctx context.Context, accountID uuid.UUID, media *db_models.Media) (AccessDecision, error) {
	tier, err := a.ViewerTier(ctx, accountID, media.CreatorID)
	if err != nil {
		return AccessDecision{}, err
	}

	hasUnlock := false
	if accountID != uuid.Nil {
		record, err := a.unlockRepo.Find(ctx, accountID, db_models.ContentMedia, media.ID)
		if err != nil {
			return AccessDecision{}, utils.ErrDatabaseError
		}
		hasUnlock = record != nil
	}

	return Evaluate(PolicyFor(media), tier, hasUnlock), nil
}
