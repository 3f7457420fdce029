package usecase

import (
	"context"
	"testing"
	"time"

	"charging-booking/internal/data/entity"
	"charging-booking/pkg/apperror"
)

func TestQuoteWithoutCoupon(t *testing.T) {
	env := newTestEnv()

	quote, err := env.pricing.Quote(context.Background(), entity.ServiceMobileCharging, nil, env.riderID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if quote.BasePrice != 10000 {
		t.Errorf("expected base 10000, got %d", quote.BasePrice)
	}
	if quote.VAT != 500 {
		t.Errorf("expected vat 500, got %d", quote.VAT)
	}
	if quote.Total != 10500 {
		t.Errorf("expected total 10500, got %d", quote.Total)
	}
}

func TestQuoteWithPercentageCoupon(t *testing.T) {
	env := newTestEnv()
	env.addCoupon("SAVE20", entity.ServiceMobileCharging, 20, 5)
	code := "SAVE20"

	quote, err := env.pricing.Quote(context.Background(), entity.ServiceMobileCharging, &code, env.riderID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// discount applies before VAT: 10000 - 2000 = 8000, VAT 400, total 8400
	if quote.Discount != 2000 {
		t.Errorf("expected discount 2000, got %d", quote.Discount)
	}
	if quote.VAT != 400 {
		t.Errorf("expected vat 400, got %d", quote.VAT)
	}
	if quote.Total != 8400 {
		t.Errorf("expected total 8400, got %d", quote.Total)
	}
}

func TestQuoteWithFullDiscountCoupon(t *testing.T) {
	env := newTestEnv()
	env.addCoupon("FREE100", entity.ServiceMobileCharging, 100, 1)
	code := "FREE100"

	quote, err := env.pricing.Quote(context.Background(), entity.ServiceMobileCharging, &code, env.riderID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// 100% discount applies after VAT: (10000 + 500) - 10500 = 0
	if quote.Total != 0 {
		t.Errorf("expected total 0, got %d", quote.Total)
	}
	if quote.Discount != 10500 {
		t.Errorf("expected discount 10500, got %d", quote.Discount)
	}
}

func TestQuoteCouponFailures(t *testing.T) {
	env := newTestEnv()
	env.addCoupon("PICKUP10", entity.ServicePickupCharging, 10, 5)
	env.addCoupon("OLD", entity.ServiceMobileCharging, 10, 5)
	env.store.coupons["OLD"].EndDate = env.now.AddDate(0, 0, -2)

	cases := []struct {
		name    string
		code    string
		message string
	}{
		{"unknown code", "NOPE", apperror.MsgCouponInvalid},
		{"wrong service", "PICKUP10", apperror.MsgCouponWrongService},
		{"expired", "OLD", apperror.MsgCouponExpired},
	}

	for _, tc := range cases {
		code := tc.code
		_, err := env.pricing.Quote(context.Background(), entity.ServiceMobileCharging, &code, env.riderID)
		if err == nil {
			t.Fatalf("%s: expected error", tc.name)
		}
		if !apperror.IsCode(err, apperror.CodeCoupon) {
			t.Errorf("%s: expected coupon code, got %v", tc.name, apperror.CodeOf(err))
		}
		if err.Error() != tc.message {
			t.Errorf("%s: expected message %q, got %q", tc.name, tc.message, err.Error())
		}
	}
}

func TestValidateSubmittedPriceExactMatch(t *testing.T) {
	env := newTestEnv()

	result, err := env.pricing.ValidateSubmittedPrice(context.Background(), entity.ServiceMobileCharging, 10500, nil, env.riderID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Total != 10500 {
		t.Errorf("expected total 10500, got %d", result.Total)
	}
	if result.Coupon != nil {
		t.Errorf("expected no coupon on full-price booking")
	}
}

func TestValidateSubmittedPriceMismatchWithoutCoupon(t *testing.T) {
	env := newTestEnv()

	_, err := env.pricing.ValidateSubmittedPrice(context.Background(), entity.ServiceMobileCharging, 8400, nil, env.riderID)
	if err == nil {
		t.Fatal("expected error")
	}
	if !apperror.IsCode(err, apperror.CodePriceMismatch) {
		t.Fatalf("expected price mismatch code, got %v", apperror.CodeOf(err))
	}
	if err.Error() != apperror.MsgCouponRequired {
		t.Errorf("expected message %q, got %q", apperror.MsgCouponRequired, err.Error())
	}

	details, ok := apperror.DetailsOf(err).(map[string]int64)
	if !ok {
		t.Fatalf("expected details map, got %T", apperror.DetailsOf(err))
	}
	if details["expected_price"] != 10500 {
		t.Errorf("expected expected_price 10500, got %d", details["expected_price"])
	}
}

func TestValidateSubmittedPriceWithCoupon(t *testing.T) {
	env := newTestEnv()
	env.addCoupon("SAVE20", entity.ServiceMobileCharging, 20, 5)
	code := "SAVE20"

	result, err := env.pricing.ValidateSubmittedPrice(context.Background(), entity.ServiceMobileCharging, 8400, &code, env.riderID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Total != 8400 {
		t.Errorf("expected total 8400, got %d", result.Total)
	}
	if result.Coupon == nil || result.Coupon.Code != "SAVE20" {
		t.Errorf("expected coupon SAVE20 on result")
	}

	// Once a coupon is supplied, only the discounted total is valid; the
	// undiscounted 10500 must be rejected.
	for _, submitted := range []int64{10500, 9999} {
		_, err = env.pricing.ValidateSubmittedPrice(context.Background(), entity.ServiceMobileCharging, submitted, &code, env.riderID)
		if !apperror.IsCode(err, apperror.CodePriceMismatch) {
			t.Fatalf("submitted %d: expected price mismatch, got %v", submitted, err)
		}
		details, ok := apperror.DetailsOf(err).(map[string]int64)
		if !ok || details["expected_price"] != 8400 {
			t.Errorf("submitted %d: expected details with expected_price 8400, got %v", submitted, apperror.DetailsOf(err))
		}
	}
}

func TestValidateSubmittedPriceUsageCap(t *testing.T) {
	env := newTestEnv()
	env.addCoupon("ONCE", entity.ServiceMobileCharging, 20, 1)
	code := "ONCE"

	env.store.usages = append(env.store.usages, &entity.CouponUsage{
		CouponCode: "ONCE",
		RiderID:    env.riderID,
	})

	_, err := env.pricing.ValidateSubmittedPrice(context.Background(), entity.ServiceMobileCharging, 8400, &code, env.riderID)
	if err == nil {
		t.Fatal("expected error")
	}
	if err.Error() != apperror.MsgCouponUsageCap {
		t.Errorf("expected usage cap message, got %q", err.Error())
	}
}

func TestCouponExpiryIsEndDateInclusive(t *testing.T) {
	env := newTestEnv()
	env.addCoupon("TODAY", entity.ServiceMobileCharging, 10, 5)
	// end date is today: still valid for the rest of the day
	env.store.coupons["TODAY"].EndDate = time.Date(2026, time.March, 2, 0, 0, 0, 0, env.loc)

	coupon := env.store.coupons["TODAY"]
	if coupon.Expired(env.now) {
		t.Error("coupon expiring today should still be valid")
	}
}
