package repo

import (
	"github.com/GlebRadaev/pupuledger/internal/cardsync"
	"github.com/GlebRadaev/pupuledger/internal/pg"
	accountrepo "github.com/GlebRadaev/pupuledger/internal/repo/account-repo"
	intentrepo "github.com/GlebRadaev/pupuledger/internal/repo/intent-repo"
	ledgerrepo "github.com/GlebRadaev/pupuledger/internal/repo/ledger-repo"
	listingrepo "github.com/GlebRadaev/pupuledger/internal/repo/listing-repo"
	memoryrepo "github.com/GlebRadaev/pupuledger/internal/repo/memory-repo"
	referralrepo "github.com/GlebRadaev/pupuledger/internal/repo/referral-repo"
	"github.com/GlebRadaev/pupuledger/internal/service/entitlementservice"
	"github.com/GlebRadaev/pupuledger/internal/service/intentservice"
	"github.com/GlebRadaev/pupuledger/internal/service/ledgerservice"
	"github.com/GlebRadaev/pupuledger/internal/service/reconcileservice"
	"github.com/GlebRadaev/pupuledger/internal/service/referralservice"
	"github.com/GlebRadaev/pupuledger/internal/service/transferservice"
)

type AccountRepo interface {
	ledgerservice.AccountRepo
	transferservice.AccountRepo
	entitlementservice.AccountRepo
}

type IntentRepo interface {
	intentservice.IntentRepo
	reconcileservice.IntentRepo
	cardsync.IntentRepo
}

type Repositories struct {
	Accounts  AccountRepo
	Ledger    ledgerservice.EntryRepo
	Listings  transferservice.ListingRepo
	Intents   IntentRepo
	Referrals referralservice.LinkRepo
	TxManager pg.TXManager
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	return &Repositories{
		Accounts:  accountrepo.New(conn),
		Ledger:    ledgerrepo.New(conn),
		Listings:  listingrepo.New(conn),
		Intents:   intentrepo.New(conn),
		Referrals: referralrepo.New(conn),
		TxManager: txManager,
	}
}

// NewMemory serves every repository from one in-memory store, which is also
// the transaction manager.
func NewMemory(store *memoryrepo.Store) *Repositories {
	return &Repositories{
		Accounts:  store.Accounts(),
		Ledger:    store.Ledger(),
		Listings:  store.Listings(),
		Intents:   store.Intents(),
		Referrals: store.Referrals(),
		TxManager: store,
	}
}
