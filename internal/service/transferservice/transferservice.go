package transferservice

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/GlebRadaev/pupuledger/internal/domain"
	"github.com/GlebRadaev/pupuledger/internal/pg"
)

type AccountRepo interface {
	FindByEmail(ctx context.Context, email string) (*domain.Account, error)
	LockByID(ctx context.Context, userID int) (*domain.Account, error)
}

type ListingRepo interface {
	GetByID(ctx context.Context, listingID int) (*domain.Listing, error)
	LockByID(ctx context.Context, listingID int) (*domain.Listing, error)
	MarkSold(ctx context.Context, listingID int) error
}

type Ledger interface {
	ApplyDelta(ctx context.Context, userID int, delta int64) (int64, int64, error)
	AppendEntry(ctx context.Context, entry *domain.LedgerEntry) (*domain.LedgerEntry, error)
}

type Service struct {
	accounts  AccountRepo
	listings  ListingRepo
	ledger    Ledger
	txManager pg.TXManager
}

func New(accounts AccountRepo, listings ListingRepo, ledger Ledger, txManager pg.TXManager) *Service {
	return &Service{
		accounts:  accounts,
		listings:  listings,
		ledger:    ledger,
		txManager: txManager,
	}
}

// TransferResult holds both sides of a transfer, each with the snapshot
// of its own account.
type TransferResult struct {
	Debit  *domain.LedgerEntry
	Credit *domain.LedgerEntry
}

func (s *Service) Transfer(ctx context.Context, fromUserID int, toEmail string, amount int64, description string) (*TransferResult, error) {
	if amount <= 0 {
		return nil, domain.ErrInvalidAmount
	}
	description = strings.TrimSpace(description)
	if description == "" {
		return nil, domain.ErrMissingDescription
	}

	recipient, err := s.accounts.FindByEmail(ctx, strings.TrimSpace(toEmail))
	if err != nil {
		zap.L().Error("failed to find recipient", zap.Error(err))
		return nil, err
	}
	if recipient == nil {
		return nil, domain.ErrAccountNotFound
	}
	if recipient.UserID == fromUserID {
		return nil, domain.ErrSelfTransferNotAllowed
	}
	toUserID := recipient.UserID

	var result TransferResult
	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		sender, err := s.lockPair(ctx, fromUserID, toUserID)
		if err != nil {
			return err
		}
		if sender.Balance < amount {
			return domain.ErrInsufficientBalance
		}

		senderBefore, senderAfter, err := s.ledger.ApplyDelta(ctx, fromUserID, -amount)
		if err != nil {
			return err
		}
		recipientBefore, recipientAfter, err := s.ledger.ApplyDelta(ctx, toUserID, amount)
		if err != nil {
			return err
		}

		result.Debit, err = s.ledger.AppendEntry(ctx, &domain.LedgerEntry{
			Type:          domain.EntryDebit,
			Amount:        amount,
			BalanceBefore: senderBefore,
			BalanceAfter:  senderAfter,
			FromUserID:    &fromUserID,
			ToUserID:      &toUserID,
			Description:   description,
		})
		if err != nil {
			return err
		}
		result.Credit, err = s.ledger.AppendEntry(ctx, &domain.LedgerEntry{
			Type:          domain.EntryCredit,
			Amount:        amount,
			BalanceBefore: recipientBefore,
			BalanceAfter:  recipientAfter,
			FromUserID:    &fromUserID,
			ToUserID:      &toUserID,
			Description:   description,
		})
		return err
	})
	if err != nil {
		logFailure("transfer failed", err, zap.Int("from", fromUserID), zap.Int("to", toUserID), zap.Int64("amount", amount))
		return nil, err
	}

	zap.L().Info("transfer completed", zap.Int("from", fromUserID), zap.Int("to", toUserID), zap.Int64("amount", amount))
	return &result, nil
}

func (s *Service) Exchange(ctx context.Context, buyerID, listingID int) (*domain.LedgerEntry, error) {
	listing, err := s.listings.GetByID(ctx, listingID)
	if err != nil {
		zap.L().Error("failed to get listing", zap.Int("listingID", listingID), zap.Error(err))
		return nil, err
	}
	if listing == nil {
		return nil, domain.ErrListingNotFound
	}
	if listing.Status != domain.ListingActive {
		return nil, domain.ErrListingUnavailable
	}
	if listing.SellerID == buyerID {
		return nil, domain.ErrSelfExchangeNotAllowed
	}

	var entry *domain.LedgerEntry
	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		// the listing is locked before any account
		locked, err := s.listings.LockByID(ctx, listingID)
		if err != nil {
			return err
		}
		if locked == nil {
			return domain.ErrListingNotFound
		}
		if locked.Status != domain.ListingActive {
			return domain.ErrListingUnavailable
		}
		sellerID := locked.SellerID
		price := locked.Price

		buyer, err := s.lockPair(ctx, buyerID, sellerID)
		if err != nil {
			return err
		}
		if buyer.Balance < price {
			return domain.ErrInsufficientBalance
		}

		buyerBefore, buyerAfter, err := s.ledger.ApplyDelta(ctx, buyerID, -price)
		if err != nil {
			return err
		}
		if _, _, err := s.ledger.ApplyDelta(ctx, sellerID, price); err != nil {
			return err
		}
		if err := s.listings.MarkSold(ctx, listingID); err != nil {
			return err
		}

		entry, err = s.ledger.AppendEntry(ctx, &domain.LedgerEntry{
			Type:          domain.EntryExchange,
			Amount:        price,
			BalanceBefore: buyerBefore,
			BalanceAfter:  buyerAfter,
			FromUserID:    &buyerID,
			ToUserID:      &sellerID,
			ListingID:     &listingID,
			Description:   fmt.Sprintf("Exchange: %s", locked.Title),
		})
		return err
	})
	if err != nil {
		logFailure("exchange failed", err, zap.Int("buyer", buyerID), zap.Int("listingID", listingID))
		return nil, err
	}

	zap.L().Info("exchange completed", zap.Int("buyer", buyerID), zap.Int("listingID", listingID), zap.Int64("price", entry.Amount))
	return entry, nil
}

// lockPair locks both accounts in ascending id order and returns the first
// argument's account.
func (s *Service) lockPair(ctx context.Context, payerID, payeeID int) (*domain.Account, error) {
	first, second := payerID, payeeID
	if second < first {
		first, second = second, first
	}

	locked := make(map[int]*domain.Account, 2)
	for _, id := range []int{first, second} {
		account, err := s.accounts.LockByID(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("lock account %d: %w", id, err)
		}
		if account == nil {
			return nil, domain.ErrAccountNotFound
		}
		locked[id] = account
	}
	return locked[payerID], nil
}

func logFailure(msg string, err error, fields ...zap.Field) {
	fields = append(fields, zap.Error(err))
	switch {
	case errors.Is(err, domain.ErrInsufficientBalance),
		errors.Is(err, domain.ErrListingUnavailable),
		errors.Is(err, domain.ErrAccountNotFound),
		errors.Is(err, domain.ErrListingNotFound):
		zap.L().Info(msg, fields...)
	default:
		zap.L().Error(msg, fields...)
	}
}
