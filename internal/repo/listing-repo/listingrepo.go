package listingrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/GlebRadaev/pupuledger/internal/domain"
	"github.com/GlebRadaev/pupuledger/internal/pg"
)

// Repository reads listings owned by the catalog. Marking a listing sold is
// the only write the ledger makes into that table.
type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) GetByID(ctx context.Context, listingID int) (*domain.Listing, error) {
	return r.findOne(ctx, "SELECT id, seller_id, title, price, status FROM listings WHERE id = $1", listingID)
}

func (r *Repository) LockByID(ctx context.Context, listingID int) (*domain.Listing, error) {
	return r.findOne(ctx, "SELECT id, seller_id, title, price, status FROM listings WHERE id = $1 FOR UPDATE", listingID)
}

func (r *Repository) MarkSold(ctx context.Context, listingID int) error {
	tag, err := r.db.Exec(ctx, "UPDATE listings SET status = $1 WHERE id = $2 AND status = $3", domain.ListingSold, listingID, domain.ListingActive)
	if err != nil {
		zap.L().Error("can't mark listing sold", zap.Int("listingID", listingID), zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrListingUnavailable
	}
	return nil
}

func (r *Repository) findOne(ctx context.Context, query string, listingID int) (*domain.Listing, error) {
	var listing domain.Listing
	err := r.db.QueryRow(ctx, query, listingID).Scan(&listing.ID, &listing.SellerID, &listing.Title, &listing.Price, &listing.Status)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find listing", zap.Error(err))
		return nil, err
	}
	return &listing, nil
}
