package repository

import (
	"context"
	"fmt"

	"charging-booking/internal/data/entity"
	"charging-booking/pkg/database"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type CouponUsageRepository interface {
	Create(ctx context.Context, usage *entity.CouponUsage) error
	CountByCodeAndRider(ctx context.Context, code string, riderID uuid.UUID) (int, error)
}

type couponUsageRepository struct {
	db  database.DBTX
	log *zap.Logger
}

func NewCouponUsageRepository(db database.DBTX, log *zap.Logger) CouponUsageRepository {
	return &couponUsageRepository{
		db:  db,
		log: log.With(zap.String("repository", "coupon_usage")),
	}
}

func (r *couponUsageRepository) Create(ctx context.Context, usage *entity.CouponUsage) error {
	query := `
		INSERT INTO coupon_usage (id, coupon_code, rider_id, booking_id, discount_percentage, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.db.Exec(ctx, query,
		usage.ID,
		usage.CouponCode,
		usage.RiderID,
		usage.BookingID,
		usage.DiscountPercentage,
		usage.CreatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create coupon usage",
			zap.Error(err),
			zap.String("coupon_code", usage.CouponCode),
			zap.String("rider_id", usage.RiderID.String()),
		)
		return fmt.Errorf("create coupon usage %s: %w", usage.CouponCode, err)
	}

	return nil
}

func (r *couponUsageRepository) CountByCodeAndRider(ctx context.Context, code string, riderID uuid.UUID) (int, error) {
	query := `SELECT COUNT(*) FROM coupon_usage WHERE coupon_code = $1 AND rider_id = $2`

	var count int
	err := r.db.QueryRow(ctx, query, code, riderID).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count coupon usage",
			zap.Error(err),
			zap.String("coupon_code", code),
			zap.String("rider_id", riderID.String()),
		)
		return 0, fmt.Errorf("count coupon usage %s: %w", code, err)
	}

	return count, nil
}
