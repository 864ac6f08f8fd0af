package referralrepo

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/GlebRadaev/pupuledger/internal/domain"
	"github.com/GlebRadaev/pupuledger/internal/pg"
)

const pairConstraint = "referral_links_pair_key"

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) Create(ctx context.Context, link *domain.ReferralLink) (*domain.ReferralLink, error) {
	query := `
		INSERT INTO referral_links (referrer_id, referred_id, status, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	err := r.db.QueryRow(ctx, query, link.ReferrerID, link.ReferredID, link.Status, link.CreatedAt).Scan(&link.ID)
	if err != nil {
		if pg.IsUniqueViolation(err, pairConstraint) {
			return nil, domain.ErrReferralExists
		}
		zap.L().Error("failed to create referral link", zap.Error(err))
		return nil, err
	}
	return link, nil
}

func (r *Repository) ListByReferred(ctx context.Context, referredID int, status domain.ReferralStatus) ([]domain.ReferralLink, error) {
	query := `
		SELECT id, referrer_id, referred_id, status, rewarded_at, created_at
		FROM referral_links
		WHERE referred_id = $1 AND status = $2
		ORDER BY id
	`
	rows, err := r.db.Query(ctx, query, referredID, status)
	if err != nil {
		zap.L().Error("failed to get referral links", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var links []domain.ReferralLink
	for rows.Next() {
		var link domain.ReferralLink
		if err := rows.Scan(&link.ID, &link.ReferrerID, &link.ReferredID, &link.Status, &link.RewardedAt, &link.CreatedAt); err != nil {
			zap.L().Error("failed to scan referral link", zap.Error(err))
			return nil, err
		}
		links = append(links, link)
	}
	if err := rows.Err(); err != nil {
		zap.L().Error("failed to read referral links", zap.Error(err))
		return nil, err
	}
	return links, nil
}

func (r *Repository) LockByID(ctx context.Context, linkID int) (*domain.ReferralLink, error) {
	query := `
		SELECT id, referrer_id, referred_id, status, rewarded_at, created_at
		FROM referral_links
		WHERE id = $1
		FOR UPDATE
	`
	var link domain.ReferralLink
	err := r.db.QueryRow(ctx, query, linkID).Scan(&link.ID, &link.ReferrerID, &link.ReferredID, &link.Status, &link.RewardedAt, &link.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("failed to lock referral link", zap.Int("linkID", linkID), zap.Error(err))
		return nil, err
	}
	return &link, nil
}

func (r *Repository) UpdateStatus(ctx context.Context, linkID int, status domain.ReferralStatus, rewardedAt *time.Time) error {
	_, err := r.db.Exec(ctx, "UPDATE referral_links SET status = $1, rewarded_at = $2 WHERE id = $3", status, rewardedAt, linkID)
	if err != nil {
		zap.L().Error("failed to update referral link", zap.Int("linkID", linkID), zap.Error(err))
		return err
	}
	return nil
}
