package usecase

import (
	"context"
	"time"

	"charging-booking/internal/data/entity"
	"charging-booking/internal/data/repository"
	"charging-booking/internal/dto/response"
	"charging-booking/pkg/apperror"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// PriceResult is the validated outcome handed to the booking lifecycle. The
// coupon is non-nil only when a discount was actually applied.
type PriceResult struct {
	Total  int64
	Coupon *entity.Coupon
}

type PricingService interface {
	// Quote computes the authoritative price breakdown for a service type,
	// optionally applying a coupon.
	Quote(ctx context.Context, serviceType entity.ServiceType, couponCode *string, riderID uuid.UUID) (*response.PriceQuoteResponse, error)

	// ValidateSubmittedPrice enforces exact equality between the submitted
	// price and the server-computed expected price.
	ValidateSubmittedPrice(ctx context.Context, serviceType entity.ServiceType, submittedPrice int64, couponCode *string, riderID uuid.UUID) (*PriceResult, error)
}

type pricingService struct {
	repo     *repository.Repository
	policies entity.PolicySet
	now      func() time.Time
	log      *zap.Logger
}

func NewPricingService(repo *repository.Repository, policies entity.PolicySet, log *zap.Logger) PricingService {
	return &pricingService{
		repo:     repo,
		policies: policies,
		now:      time.Now,
		log:      log.With(zap.String("service", "pricing")),
	}
}

// expectedPrice is base + 5% VAT, rounded down to the minor unit. All math is
// in minor units, so integer division is the floor.
func expectedPrice(base int64) int64 {
	vat := base * 5 / 100
	return base + vat
}

// discountedTotal reproduces the billing rules exactly. The 100% case applies
// the discount after VAT instead of before; this ordering is intentional and
// must not be "fixed".
func discountedTotal(base, pct int64) int64 {
	if pct != 100 {
		discount := base * pct / 100
		taxable := base - discount
		vat := taxable * 5 / 100
		return taxable + vat
	}

	vat := base * 5 / 100
	totalBeforeDiscount := base + vat
	discount := totalBeforeDiscount * pct / 100
	return totalBeforeDiscount - discount
}

// resolveCoupon runs the validity checks in their contractual order: exists,
// window/status, service-type match, per-rider usage cap. Each failure carries
// its own user-facing reason.
func (s *pricingService) resolveCoupon(ctx context.Context, code string, serviceType entity.ServiceType, riderID uuid.UUID) (*entity.Coupon, error) {
	coupon, err := s.repo.Coupon.FindByCode(ctx, code)
	if err != nil {
		return nil, apperror.Storage(err)
	}
	if coupon == nil {
		return nil, apperror.New(apperror.CodeCoupon, apperror.MsgCouponInvalid)
	}

	if coupon.Expired(s.now()) || coupon.Status < 1 {
		return nil, apperror.New(apperror.CodeCoupon, apperror.MsgCouponExpired)
	}

	if coupon.BookingFor != serviceType {
		return nil, apperror.New(apperror.CodeCoupon, apperror.MsgCouponWrongService)
	}

	used, err := s.repo.CouponUsage.CountByCodeAndRider(ctx, code, riderID)
	if err != nil {
		return nil, apperror.Storage(err)
	}
	if used >= coupon.UserPerUser {
		return nil, apperror.New(apperror.CodeCoupon, apperror.MsgCouponUsageCap)
	}

	return coupon, nil
}

func (s *pricingService) Quote(ctx context.Context, serviceType entity.ServiceType, couponCode *string, riderID uuid.UUID) (*response.PriceQuoteResponse, error) {
	policy, ok := s.policies.Get(serviceType)
	if !ok {
		return nil, apperror.New(apperror.CodeValidation, "Invalid service type")
	}

	base := policy.BasePrice

	if couponCode == nil || *couponCode == "" {
		vat := base * 5 / 100
		return &response.PriceQuoteResponse{
			ServiceType: string(serviceType),
			BasePrice:   base,
			VAT:         vat,
			Total:       base + vat,
		}, nil
	}

	coupon, err := s.resolveCoupon(ctx, *couponCode, serviceType, riderID)
	if err != nil {
		return nil, err
	}

	quote := &response.PriceQuoteResponse{
		ServiceType:        string(serviceType),
		BasePrice:          base,
		CouponCode:         couponCode,
		DiscountPercentage: coupon.DiscountPercentage,
	}

	if coupon.DiscountPercentage != 100 {
		quote.Discount = base * coupon.DiscountPercentage / 100
		taxable := base - quote.Discount
		quote.VAT = taxable * 5 / 100
		quote.Total = taxable + quote.VAT
	} else {
		quote.VAT = base * 5 / 100
		totalBeforeDiscount := base + quote.VAT
		quote.Discount = totalBeforeDiscount * coupon.DiscountPercentage / 100
		quote.Total = totalBeforeDiscount - quote.Discount
	}

	return quote, nil
}

func (s *pricingService) ValidateSubmittedPrice(ctx context.Context, serviceType entity.ServiceType, submittedPrice int64, couponCode *string, riderID uuid.UUID) (*PriceResult, error) {
	policy, ok := s.policies.Get(serviceType)
	if !ok {
		return nil, apperror.New(apperror.CodeValidation, "Invalid service type")
	}

	// Without a coupon the only valid price is the undiscounted total; a
	// disagreement means a stale client. Message is a client contract.
	if couponCode == nil || *couponCode == "" {
		expected := expectedPrice(policy.BasePrice)
		if submittedPrice == expected {
			return &PriceResult{Total: expected}, nil
		}
		s.log.Warn("Price mismatch without coupon",
			zap.String("service_type", string(serviceType)),
			zap.Int64("submitted", submittedPrice),
			zap.Int64("expected", expected),
		)
		return nil, apperror.WithDetails(apperror.CodePriceMismatch, apperror.MsgCouponRequired,
			map[string]int64{"expected_price": expected})
	}

	coupon, err := s.resolveCoupon(ctx, *couponCode, serviceType, riderID)
	if err != nil {
		return nil, err
	}

	discounted := discountedTotal(policy.BasePrice, coupon.DiscountPercentage)
	if submittedPrice != discounted {
		s.log.Warn("Price mismatch with coupon",
			zap.String("service_type", string(serviceType)),
			zap.String("coupon_code", *couponCode),
			zap.Int64("submitted", submittedPrice),
			zap.Int64("expected", discounted),
		)
		return nil, apperror.WithDetails(apperror.CodePriceMismatch, apperror.MsgPriceMismatch,
			map[string]int64{"expected_price": discounted})
	}

	return &PriceResult{Total: discounted, Coupon: coupon}, nil
}
