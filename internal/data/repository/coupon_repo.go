package repository

import (
	"context"
	"fmt"

	"charging-booking/internal/data/entity"
	"charging-booking/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type CouponRepository interface {
	FindByCode(ctx context.Context, code string) (*entity.Coupon, error)
}

type couponRepository struct {
	db  database.DBTX
	log *zap.Logger
}

func NewCouponRepository(db database.DBTX, log *zap.Logger) CouponRepository {
	return &couponRepository{
		db:  db,
		log: log.With(zap.String("repository", "coupon")),
	}
}

func (r *couponRepository) FindByCode(ctx context.Context, code string) (*entity.Coupon, error) {
	query := `
		SELECT id, code, booking_for, discount_percentage, start_date, end_date, status, user_per_user, created_at, updated_at
		FROM coupons
		WHERE code = $1
	`

	var coupon entity.Coupon
	err := r.db.QueryRow(ctx, query, code).Scan(
		&coupon.ID,
		&coupon.Code,
		&coupon.BookingFor,
		&coupon.DiscountPercentage,
		&coupon.StartDate,
		&coupon.EndDate,
		&coupon.Status,
		&coupon.UserPerUser,
		&coupon.CreatedAt,
		&coupon.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find coupon by code",
			zap.Error(err),
			zap.String("code", code),
		)
		return nil, fmt.Errorf("find coupon by code %s: %w", code, err)
	}

	return &coupon, nil
}
