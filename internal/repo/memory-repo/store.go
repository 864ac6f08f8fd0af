// Package memoryrepo keeps every aggregate in process memory. It serves the
// same repository interfaces as the Postgres repositories and doubles as
// their transaction manager: a unit of work holds the store lock from start
// to end and is rolled back by restoring a snapshot.
package memoryrepo

import (
	"context"
	"maps"
	"slices"
	"strings"
	"sync"

	"github.com/GlebRadaev/pupuledger/internal/domain"
	"github.com/GlebRadaev/pupuledger/internal/pg"
)

type heldKey struct{}

type state struct {
	accounts map[int]domain.Account
	listings map[int]domain.Listing
	entries  []domain.LedgerEntry
	intents  map[int]domain.PaymentIntent
	links    map[int]domain.ReferralLink

	nextAccountID int
	nextListingID int
	nextEntryID   int
	nextIntentID  int
	nextLinkID    int
}

func (s state) clone() state {
	c := s
	c.accounts = maps.Clone(s.accounts)
	c.listings = maps.Clone(s.listings)
	c.entries = slices.Clone(s.entries)
	c.intents = maps.Clone(s.intents)
	c.links = maps.Clone(s.links)
	return c
}

type Store struct {
	mu sync.Mutex
	state
}

func New() *Store {
	return &Store{
		state: state{
			accounts: make(map[int]domain.Account),
			listings: make(map[int]domain.Listing),
			intents:  make(map[int]domain.PaymentIntent),
			links:    make(map[int]domain.ReferralLink),
		},
	}
}

// Begin runs fn with the store locked. Nested calls join the running unit.
func (s *Store) Begin(ctx context.Context, fn pg.TransactionalFn) error {
	if s.held(ctx) {
		return fn(ctx)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := s.state.clone()
	if err := fn(pg.WithUnit(context.WithValue(ctx, heldKey{}, s))); err != nil {
		s.state = snapshot
		return err
	}
	return nil
}

func (s *Store) held(ctx context.Context) bool {
	owner, _ := ctx.Value(heldKey{}).(*Store)
	return owner == s
}

// lock takes the store lock unless the caller runs inside a unit already
// holding it.
func (s *Store) lock(ctx context.Context) func() {
	if s.held(ctx) {
		return func() {}
	}
	s.mu.Lock()
	return s.mu.Unlock
}

// PutAccount inserts or replaces an account, assigning an id when it has none.
func (s *Store) PutAccount(account domain.Account) domain.Account {
	s.mu.Lock()
	defer s.mu.Unlock()

	if account.UserID == 0 {
		s.nextAccountID++
		account.UserID = s.nextAccountID
	} else if account.UserID > s.nextAccountID {
		s.nextAccountID = account.UserID
	}
	if account.Role == "" {
		account.Role = domain.RoleUser
	}
	s.accounts[account.UserID] = account
	return account
}

// PutListing inserts or replaces a listing, assigning an id when it has none.
func (s *Store) PutListing(listing domain.Listing) domain.Listing {
	s.mu.Lock()
	defer s.mu.Unlock()

	if listing.ID == 0 {
		s.nextListingID++
		listing.ID = s.nextListingID
	} else if listing.ID > s.nextListingID {
		s.nextListingID = listing.ID
	}
	if listing.Status == "" {
		listing.Status = domain.ListingActive
	}
	s.listings[listing.ID] = listing
	return listing
}

func (s *Store) Accounts() *AccountRepo { return &AccountRepo{s} }
func (s *Store) Ledger() *LedgerRepo { return &LedgerRepo{s} }
func (s *Store) Listings() *ListingRepo { return &ListingRepo{s} }
func (s *Store) Intents() *IntentRepo { return &IntentRepo{s} }
func (s *Store) Referrals() *ReferralRepo { return &ReferralRepo{s} }

func sameEmail(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}
