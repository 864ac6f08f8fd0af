package domain

import "time"

// Account is the wallet part of a user. Balance is kept in cents.
type Account struct {
	UserID              int        `db:"id"`
	Email               string     `db:"email"`
	Balance             int64      `db:"balance"`
	Role                Role       `db:"role"`
	PaidAccessExpiresAt *time.Time `db:"paid_access_expires_at"`
}

type EntryType string

const (
	EntryDebit    EntryType = "debit"
	EntryCredit   EntryType = "credit"
	EntryExchange EntryType = "exchange"
)

type EntryStatus string

const (
	EntryPending   EntryStatus = "pending"
	EntryCompleted EntryStatus = "completed"
	EntryCancelled EntryStatus = "cancelled"
)

// LedgerEntry is one line of the transaction log. BalanceBefore and
// BalanceAfter belong to the subject account of the entry: From for debit
// and exchange, To for credit.
type LedgerEntry struct {
	ID            int         `db:"id"`
	Type          EntryType   `db:"type"`
	Amount        int64       `db:"amount"`
	BalanceBefore int64       `db:"balance_before"`
	BalanceAfter  int64       `db:"balance_after"`
	Status        EntryStatus `db:"status"`
	FromUserID    *int        `db:"from_user_id"`
	ToUserID      *int        `db:"to_user_id"`
	ListingID     *int        `db:"listing_id"`
	Description   string      `db:"description"`
	CreatedAt     time.Time   `db:"created_at"`
}

// Concerns reports whether the entry is part of the history of userID.
// Both sides of a transfer reference both users, but each entry belongs
// to one of them only.
func (e LedgerEntry) Concerns(userID int) bool {
	from := e.FromUserID != nil && *e.FromUserID == userID
	to := e.ToUserID != nil && *e.ToUserID == userID
	switch e.Type {
	case EntryDebit:
		return from
	case EntryCredit:
		return to
	case EntryExchange:
		return from || to
	}
	return false
}

// SignedAmountFor returns how the entry moved the balance of userID.
func (e LedgerEntry) SignedAmountFor(userID int) int64 {
	var delta int64
	switch e.Type {
	case EntryDebit:
		if e.FromUserID != nil && *e.FromUserID == userID {
			delta -= e.Amount
		}
	case EntryCredit:
		if e.ToUserID != nil && *e.ToUserID == userID {
			delta += e.Amount
		}
	case EntryExchange:
		if e.FromUserID != nil && *e.FromUserID == userID {
			delta -= e.Amount
		}
		if e.ToUserID != nil && *e.ToUserID == userID {
			delta += e.Amount
		}
	}
	return delta
}

type ListingStatus string

const (
	ListingActive   ListingStatus = "active"
	ListingReserved ListingStatus = "reserved"
	ListingSold     ListingStatus = "sold"
	ListingArchived ListingStatus = "archived"
)

type Listing struct {
	ID       int           `db:"id"`
	SellerID int           `db:"seller_id"`
	Title    string        `db:"title"`
	Price    int64         `db:"price"`
	Status   ListingStatus `db:"status"`
}

type Rail string

const (
	RailBankTransfer Rail = "bank_transfer"
	RailCard         Rail = "card"
)

func (r Rail) Valid() bool {
	return r == RailBankTransfer || r == RailCard
}

type IntentStatus string

const (
	IntentPending   IntentStatus = "pending"
	IntentPaid      IntentStatus = "paid"
	IntentCancelled IntentStatus = "cancelled"
)

// PaymentIntent is a purchase waiting for an external rail to confirm it.
// AmountExpected is in units of the rail currency.
type PaymentIntent struct {
	ID                      int          `db:"id"`
	UserID                  int          `db:"user_id"`
	Rail                    Rail         `db:"rail"`
	Pack                    Pack         `db:"pack"`
	AmountExpected          int64        `db:"amount_expected"`
	ExternalReference       string       `db:"external_reference"`
	Status                  IntentStatus `db:"status"`
	NeedsManualVerification bool         `db:"needs_manual_verification"`
	VerificationRequestedAt *time.Time   `db:"verification_requested_at"`
	VerifiedBy              *int         `db:"verified_by"`
	BonusCurrencyGranted    bool         `db:"bonus_currency_granted"`
	ExternalTxnID           string       `db:"external_txn_id"`
	CheckoutURL             string       `db:"checkout_url"`
	PaidAt                  *time.Time   `db:"paid_at"`
	CreatedAt               time.Time    `db:"created_at"`
}

type ReferralStatus string

const (
	ReferralRegistered   ReferralStatus = "registered"
	ReferralBecameMember ReferralStatus = "becameMember"
	ReferralRewarded     ReferralStatus = "rewarded"
)

type ReferralLink struct {
	ID         int            `db:"id"`
	ReferrerID int            `db:"referrer_id"`
	ReferredID int            `db:"referred_id"`
	Status     ReferralStatus `db:"status"`
	RewardedAt *time.Time     `db:"rewarded_at"`
	CreatedAt  time.Time      `db:"created_at"`
}

// Caller is the already authenticated identity a request runs as.
type Caller struct {
	UserID int
	Role   Role
}

// Confirmation is an external payment event after its authenticity was checked.
type Confirmation struct {
	Reference      string
	ReportedAmount int64
	ExternalTxnID  string
	PaidAt         *time.Time
}

type ConfirmationResult struct {
	OK               bool `json:"ok"`
	AlreadyProcessed bool `json:"alreadyProcessed"`
}
