package memoryrepo

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/GlebRadaev/pupuledger/internal/domain"
)

var (
	errBalanceCheck   = errors.New("balance must not be negative")
	errPendingIntent  = errors.New("a pending intent already exists for this purchase")
	errUnknownAccount = errors.New("account does not exist")
	errUnknownLink    = errors.New("referral link does not exist")
)

type AccountRepo struct {
	s *Store
}

func (r *AccountRepo) GetByID(ctx context.Context, userID int) (*domain.Account, error) {
	defer r.s.lock(ctx)()
	account, ok := r.s.accounts[userID]
	if !ok {
		return nil, nil
	}
	return &account, nil
}

func (r *AccountRepo) FindByEmail(ctx context.Context, email string) (*domain.Account, error) {
	defer r.s.lock(ctx)()
	for _, account := range r.s.accounts {
		if sameEmail(account.Email, email) {
			return &account, nil
		}
	}
	return nil, nil
}

// LockByID is GetByID: inside a unit the whole store is locked already.
func (r *AccountRepo) LockByID(ctx context.Context, userID int) (*domain.Account, error) {
	return r.GetByID(ctx, userID)
}

func (r *AccountRepo) UpdateBalance(ctx context.Context, userID int, balance int64) error {
	defer r.s.lock(ctx)()
	account, ok := r.s.accounts[userID]
	if !ok {
		return errUnknownAccount
	}
	if balance < 0 {
		return errBalanceCheck
	}
	account.Balance = balance
	r.s.accounts[userID] = account
	return nil
}

func (r *AccountRepo) UpdateEntitlement(ctx context.Context, userID int, role domain.Role, paidAccessExpiresAt *time.Time) error {
	defer r.s.lock(ctx)()
	account, ok := r.s.accounts[userID]
	if !ok {
		return errUnknownAccount
	}
	account.Role = role
	account.PaidAccessExpiresAt = paidAccessExpiresAt
	r.s.accounts[userID] = account
	return nil
}

type LedgerRepo struct {
	s *Store
}

func (r *LedgerRepo) Append(ctx context.Context, entry *domain.LedgerEntry) (*domain.LedgerEntry, error) {
	defer r.s.lock(ctx)()
	r.s.nextEntryID++
	saved := *entry
	saved.ID = r.s.nextEntryID
	r.s.entries = append(r.s.entries, saved)
	entry.ID = saved.ID
	return entry, nil
}

func (r *LedgerRepo) ListByUserID(ctx context.Context, userID int) ([]domain.LedgerEntry, error) {
	defer r.s.lock(ctx)()
	var entries []domain.LedgerEntry
	for _, e := range r.s.entries {
		if (e.FromUserID != nil && *e.FromUserID == userID) || (e.ToUserID != nil && *e.ToUserID == userID) {
			entries = append(entries, e)
		}
	}
	return entries, nil
}

type ListingRepo struct {
	s *Store
}

func (r *ListingRepo) GetByID(ctx context.Context, listingID int) (*domain.Listing, error) {
	defer r.s.lock(ctx)()
	listing, ok := r.s.listings[listingID]
	if !ok {
		return nil, nil
	}
	return &listing, nil
}

func (r *ListingRepo) LockByID(ctx context.Context, listingID int) (*domain.Listing, error) {
	return r.GetByID(ctx, listingID)
}

func (r *ListingRepo) MarkSold(ctx context.Context, listingID int) error {
	defer r.s.lock(ctx)()
	listing, ok := r.s.listings[listingID]
	if !ok || listing.Status != domain.ListingActive {
		return domain.ErrListingUnavailable
	}
	listing.Status = domain.ListingSold
	r.s.listings[listingID] = listing
	return nil
}

type IntentRepo struct {
	s *Store
}

func (r *IntentRepo) Create(ctx context.Context, intent *domain.PaymentIntent) (*domain.PaymentIntent, error) {
	defer r.s.lock(ctx)()
	for _, other := range r.s.intents {
		if other.ExternalReference == intent.ExternalReference {
			return nil, domain.ErrDuplicateReference
		}
		if other.Status == domain.IntentPending && intent.Status == domain.IntentPending &&
			other.UserID == intent.UserID && other.Rail == intent.Rail && other.Pack == intent.Pack {
			return nil, errPendingIntent
		}
	}
	r.s.nextIntentID++
	intent.ID = r.s.nextIntentID
	r.s.intents[intent.ID] = *intent
	return intent, nil
}

func (r *IntentRepo) GetByID(ctx context.Context, intentID int) (*domain.PaymentIntent, error) {
	defer r.s.lock(ctx)()
	intent, ok := r.s.intents[intentID]
	if !ok {
		return nil, nil
	}
	return &intent, nil
}

func (r *IntentRepo) LockByID(ctx context.Context, intentID int) (*domain.PaymentIntent, error) {
	return r.GetByID(ctx, intentID)
}

func (r *IntentRepo) GetByReference(ctx context.Context, ref string) (*domain.PaymentIntent, error) {
	return r.first(ctx, func(i domain.PaymentIntent) bool { return i.ExternalReference == ref })
}

func (r *IntentRepo) FindPending(ctx context.Context, userID int, rail domain.Rail, pack domain.Pack) (*domain.PaymentIntent, error) {
	return r.first(ctx, func(i domain.PaymentIntent) bool {
		return i.UserID == userID && i.Rail == rail && i.Pack == pack && i.Status == domain.IntentPending
	})
}

func (r *IntentRepo) GetLatestByUserID(ctx context.Context, userID int) (*domain.PaymentIntent, error) {
	defer r.s.lock(ctx)()
	var latest *domain.PaymentIntent
	for _, intent := range r.s.intents {
		if intent.UserID != userID {
			continue
		}
		if latest == nil || intent.CreatedAt.After(latest.CreatedAt) ||
			(intent.CreatedAt.Equal(latest.CreatedAt) && intent.ID > latest.ID) {
			latest = &intent
		}
	}
	return latest, nil
}

func (r *IntentRepo) ListPendingByRail(ctx context.Context, rail domain.Rail, createdBefore time.Time) ([]domain.PaymentIntent, error) {
	defer r.s.lock(ctx)()
	var intents []domain.PaymentIntent
	for _, intent := range r.s.intents {
		if intent.Rail == rail && intent.Status == domain.IntentPending && intent.CreatedAt.Before(createdBefore) {
			intents = append(intents, intent)
		}
	}
	sort.Slice(intents, func(i, j int) bool { return intents[i].ID < intents[j].ID })
	return intents, nil
}

func (r *IntentRepo) Update(ctx context.Context, intent *domain.PaymentIntent) error {
	defer r.s.lock(ctx)()
	if _, ok := r.s.intents[intent.ID]; !ok {
		return domain.ErrIntentNotFound
	}
	r.s.intents[intent.ID] = *intent
	return nil
}

func (r *IntentRepo) first(ctx context.Context, match func(domain.PaymentIntent) bool) (*domain.PaymentIntent, error) {
	defer r.s.lock(ctx)()
	var found *domain.PaymentIntent
	for _, intent := range r.s.intents {
		if match(intent) && (found == nil || intent.ID < found.ID) {
			found = &intent
		}
	}
	return found, nil
}

type ReferralRepo struct {
	s *Store
}

func (r *ReferralRepo) Create(ctx context.Context, link *domain.ReferralLink) (*domain.ReferralLink, error) {
	defer r.s.lock(ctx)()
	for _, other := range r.s.links {
		if other.ReferrerID == link.ReferrerID && other.ReferredID == link.ReferredID {
			return nil, domain.ErrReferralExists
		}
	}
	r.s.nextLinkID++
	link.ID = r.s.nextLinkID
	r.s.links[link.ID] = *link
	return link, nil
}

func (r *ReferralRepo) ListByReferred(ctx context.Context, referredID int, status domain.ReferralStatus) ([]domain.ReferralLink, error) {
	defer r.s.lock(ctx)()
	var links []domain.ReferralLink
	for _, link := range r.s.links {
		if link.ReferredID == referredID && link.Status == status {
			links = append(links, link)
		}
	}
	sort.Slice(links, func(i, j int) bool { return links[i].ID < links[j].ID })
	return links, nil
}

func (r *ReferralRepo) LockByID(ctx context.Context, linkID int) (*domain.ReferralLink, error) {
	defer r.s.lock(ctx)()
	link, ok := r.s.links[linkID]
	if !ok {
		return nil, nil
	}
	return &link, nil
}

func (r *ReferralRepo) UpdateStatus(ctx context.Context, linkID int, status domain.ReferralStatus, rewardedAt *time.Time) error {
	defer r.s.lock(ctx)()
	link, ok := r.s.links[linkID]
	if !ok {
		return errUnknownLink
	}
	link.Status = status
	link.RewardedAt = rewardedAt
	r.s.links[linkID] = link
	return nil
}
