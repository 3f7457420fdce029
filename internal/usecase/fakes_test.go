package usecase

import (
	"context"
	"sync"
	"time"

	"charging-booking/internal/data/entity"
	"charging-booking/internal/data/repository"
	"charging-booking/internal/gateway"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// memStore is a shared in-memory dataset behind the fake repositories. The
// tx manager's mutex serializes transactions the way the slot row lock does
// in Postgres, so concurrency tests exercise the real admission logic. dmu
// guards the data itself for repository calls made outside a transaction.
type memStore struct {
	mu  sync.Mutex
	dmu sync.Mutex

	slots       []*entity.Slot
	bookings    []*entity.Booking
	histories   []*entity.BookingHistory
	coupons     map[string]*entity.Coupon
	usages      []*entity.CouponUsage
	assignments []*entity.Assignment
	agents      map[uuid.UUID]*entity.Agent
	riders      map[uuid.UUID]*entity.Rider
	vehicles    map[uuid.UUID]*entity.Vehicle
	addresses   map[uuid.UUID]*entity.Address
	seqs        map[entity.ServiceType]int64
}

func newMemStore() *memStore {
	return &memStore{
		coupons:   map[string]*entity.Coupon{},
		agents:    map[uuid.UUID]*entity.Agent{},
		riders:    map[uuid.UUID]*entity.Rider{},
		vehicles:  map[uuid.UUID]*entity.Vehicle{},
		addresses: map[uuid.UUID]*entity.Address{},
		seqs:      map[entity.ServiceType]int64{},
	}
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

// ---- booking repo ----

type memBookingRepo struct{ s *memStore }

func (r *memBookingRepo) Create(ctx context.Context, b *entity.Booking) error {
	r.s.dmu.Lock()
	defer r.s.dmu.Unlock()
	clone := *b
	r.s.bookings = append(r.s.bookings, &clone)
	return nil
}

// findByID must be called with dmu held.
func (r *memBookingRepo) findByID(id uuid.UUID) *entity.Booking {
	for _, b := range r.s.bookings {
		if b.ID == id {
			return b
		}
	}
	return nil
}

func (r *memBookingRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	r.s.dmu.Lock()
	defer r.s.dmu.Unlock()
	if b := r.findByID(id); b != nil {
		clone := *b
		return &clone, nil
	}
	return nil, nil
}

func (r *memBookingRepo) FindByBookingNo(ctx context.Context, bookingNo string) (*entity.Booking, error) {
	r.s.dmu.Lock()
	defer r.s.dmu.Unlock()
	for _, b := range r.s.bookings {
		if b.BookingNo == bookingNo {
			clone := *b
			return &clone, nil
		}
	}
	return nil, nil
}

func (r *memBookingRepo) FindByBookingNoForUpdate(ctx context.Context, bookingNo string) (*entity.Booking, error) {
	return r.FindByBookingNo(ctx, bookingNo)
}

func (r *memBookingRepo) FindByRiderID(ctx context.Context, riderID uuid.UUID, limit, offset int) ([]*entity.Booking, error) {
	r.s.dmu.Lock()
	defer r.s.dmu.Unlock()
	var out []*entity.Booking
	for _, b := range r.s.bookings {
		if b.RiderID == riderID {
			clone := *b
			out = append(out, &clone)
		}
	}
	if offset > len(out) {
		offset = len(out)
	}
	out = out[offset:]
	if limit < len(out) {
		out = out[:limit]
	}
	return out, nil
}

func (r *memBookingRepo) CountByRiderID(ctx context.Context, riderID uuid.UUID) (int64, error) {
	r.s.dmu.Lock()
	defer r.s.dmu.Unlock()
	var n int64
	for _, b := range r.s.bookings {
		if b.RiderID == riderID {
			n++
		}
	}
	return n, nil
}

func (r *memBookingRepo) UpdateStatus(ctx context.Context, bookingID uuid.UUID, status entity.BookingStatus) error {
	r.s.dmu.Lock()
	defer r.s.dmu.Unlock()
	if b := r.findByID(bookingID); b != nil {
		b.Status = status
	}
	return nil
}

func (r *memBookingRepo) UpdateAssignedAgent(ctx context.Context, bookingID uuid.UUID, agentID *uuid.UUID) error {
	r.s.dmu.Lock()
	defer r.s.dmu.Unlock()
	if b := r.findByID(bookingID); b != nil {
		b.AssignedAgentID = agentID
	}
	return nil
}

func (r *memBookingRepo) UpdateSlotForReschedule(ctx context.Context, bookingID uuid.UUID, slotDate time.Time, startTime string) error {
	r.s.dmu.Lock()
	defer r.s.dmu.Unlock()
	if b := r.findByID(bookingID); b != nil {
		b.SlotDate = slotDate
		b.StartTime = startTime
		b.Rescheduled = true
	}
	return nil
}

func (r *memBookingRepo) UpdatePaymentIntent(ctx context.Context, bookingID uuid.UUID, paymentIntentID string) error {
	r.s.dmu.Lock()
	defer r.s.dmu.Unlock()
	if b := r.findByID(bookingID); b != nil {
		b.PaymentIntentID = &paymentIntentID
	}
	return nil
}

func (r *memBookingRepo) CountActiveForSlot(ctx context.Context, serviceType entity.ServiceType, slotDate time.Time, startTime string) (int, error) {
	r.s.dmu.Lock()
	defer r.s.dmu.Unlock()
	n := 0
	for _, b := range r.s.bookings {
		if b.ServiceType == serviceType && sameDay(b.SlotDate, slotDate) && b.StartTime == startTime && b.Status.CountsTowardCapacity() {
			n++
		}
	}
	return n, nil
}

func (r *memBookingRepo) NextBookingSeq(ctx context.Context, serviceType entity.ServiceType) (int64, error) {
	r.s.dmu.Lock()
	defer r.s.dmu.Unlock()
	r.s.seqs[serviceType]++
	return r.s.seqs[serviceType], nil
}

// ---- slot repo ----

type memSlotRepo struct{ s *memStore }

func (r *memSlotRepo) Create(ctx context.Context, slot *entity.Slot) error {
	r.s.dmu.Lock()
	defer r.s.dmu.Unlock()
	clone := *slot
	r.s.slots = append(r.s.slots, &clone)
	return nil
}

func (r *memSlotRepo) Update(ctx context.Context, slot *entity.Slot) error {
	r.s.dmu.Lock()
	defer r.s.dmu.Unlock()
	for i, existing := range r.s.slots {
		if existing.ID == slot.ID {
			clone := *slot
			r.s.slots[i] = &clone
			return nil
		}
	}
	return nil
}

func (r *memSlotRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Slot, error) {
	r.s.dmu.Lock()
	defer r.s.dmu.Unlock()
	for _, slot := range r.s.slots {
		if slot.ID == id {
			clone := *slot
			return &clone, nil
		}
	}
	return nil, nil
}

func (r *memSlotRepo) FindByServiceAndDate(ctx context.Context, serviceType entity.ServiceType, slotDate time.Time) ([]*entity.Slot, error) {
	r.s.dmu.Lock()
	defer r.s.dmu.Unlock()
	var out []*entity.Slot
	for _, slot := range r.s.slots {
		if slot.ServiceType == serviceType && sameDay(slot.SlotDate, slotDate) {
			clone := *slot
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *memSlotRepo) FindForUpdate(ctx context.Context, serviceType entity.ServiceType, slotDate time.Time, startTime string) (*entity.Slot, error) {
	r.s.dmu.Lock()
	defer r.s.dmu.Unlock()
	for _, slot := range r.s.slots {
		if slot.ServiceType == serviceType && sameDay(slot.SlotDate, slotDate) && slot.StartTime == startTime {
			clone := *slot
			return &clone, nil
		}
	}
	return nil, nil
}

// ---- history repo ----

type memHistoryRepo struct{ s *memStore }

func (r *memHistoryRepo) Create(ctx context.Context, hist *entity.BookingHistory) error {
	r.s.dmu.Lock()
	defer r.s.dmu.Unlock()
	clone := *hist
	r.s.histories = append(r.s.histories, &clone)
	return nil
}

func (r *memHistoryRepo) FindByBookingID(ctx context.Context, bookingID uuid.UUID) ([]*entity.BookingHistory, error) {
	r.s.dmu.Lock()
	defer r.s.dmu.Unlock()
	var out []*entity.BookingHistory
	for _, h := range r.s.histories {
		if h.BookingID == bookingID {
			clone := *h
			out = append(out, &clone)
		}
	}
	return out, nil
}

// ---- coupon repos ----

type memCouponRepo struct{ s *memStore }

func (r *memCouponRepo) FindByCode(ctx context.Context, code string) (*entity.Coupon, error) {
	r.s.dmu.Lock()
	defer r.s.dmu.Unlock()
	if c, ok := r.s.coupons[code]; ok {
		clone := *c
		return &clone, nil
	}
	return nil, nil
}

type memCouponUsageRepo struct{ s *memStore }

func (r *memCouponUsageRepo) Create(ctx context.Context, usage *entity.CouponUsage) error {
	r.s.dmu.Lock()
	defer r.s.dmu.Unlock()
	clone := *usage
	r.s.usages = append(r.s.usages, &clone)
	return nil
}

func (r *memCouponUsageRepo) CountByCodeAndRider(ctx context.Context, code string, riderID uuid.UUID) (int, error) {
	r.s.dmu.Lock()
	defer r.s.dmu.Unlock()
	n := 0
	for _, u := range r.s.usages {
		if u.CouponCode == code && u.RiderID == riderID {
			n++
		}
	}
	return n, nil
}

// ---- assignment repo ----

type memAssignmentRepo struct{ s *memStore }

func (r *memAssignmentRepo) Create(ctx context.Context, assignment *entity.Assignment) error {
	r.s.dmu.Lock()
	defer r.s.dmu.Unlock()
	clone := *assignment
	r.s.assignments = append(r.s.assignments, &clone)
	return nil
}

func (r *memAssignmentRepo) FindByBookingID(ctx context.Context, bookingID uuid.UUID) (*entity.Assignment, error) {
	r.s.dmu.Lock()
	defer r.s.dmu.Unlock()
	for _, a := range r.s.assignments {
		if a.BookingID == bookingID {
			clone := *a
			return &clone, nil
		}
	}
	return nil, nil
}

func (r *memAssignmentRepo) DeleteByBookingAndAgent(ctx context.Context, bookingID, agentID uuid.UUID) error {
	r.s.dmu.Lock()
	defer r.s.dmu.Unlock()
	kept := r.s.assignments[:0]
	for _, a := range r.s.assignments {
		if !(a.BookingID == bookingID && a.AgentID == agentID) {
			kept = append(kept, a)
		}
	}
	r.s.assignments = kept
	return nil
}

func (r *memAssignmentRepo) DeleteByBookingID(ctx context.Context, bookingID uuid.UUID) error {
	r.s.dmu.Lock()
	defer r.s.dmu.Unlock()
	kept := r.s.assignments[:0]
	for _, a := range r.s.assignments {
		if a.BookingID != bookingID {
			kept = append(kept, a)
		}
	}
	r.s.assignments = kept
	return nil
}

// ---- agent / rider / vehicle / address repos ----

type memAgentRepo struct{ s *memStore }

func (r *memAgentRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Agent, error) {
	r.s.dmu.Lock()
	defer r.s.dmu.Unlock()
	if a, ok := r.s.agents[id]; ok {
		clone := *a
		return &clone, nil
	}
	return nil, nil
}

func (r *memAgentRepo) IncrementRunningOrders(ctx context.Context, id uuid.UUID) error {
	r.s.dmu.Lock()
	defer r.s.dmu.Unlock()
	if a, ok := r.s.agents[id]; ok {
		a.RunningOrders++
	}
	return nil
}

func (r *memAgentRepo) DecrementRunningOrders(ctx context.Context, id uuid.UUID) error {
	r.s.dmu.Lock()
	defer r.s.dmu.Unlock()
	if a, ok := r.s.agents[id]; ok && a.RunningOrders > 0 {
		a.RunningOrders--
	}
	return nil
}

type memRiderRepo struct{ s *memStore }

func (r *memRiderRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Rider, error) {
	r.s.dmu.Lock()
	defer r.s.dmu.Unlock()
	if rd, ok := r.s.riders[id]; ok {
		clone := *rd
		return &clone, nil
	}
	return nil, nil
}

type memVehicleRepo struct{ s *memStore }

func (r *memVehicleRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Vehicle, error) {
	r.s.dmu.Lock()
	defer r.s.dmu.Unlock()
	if v, ok := r.s.vehicles[id]; ok {
		clone := *v
		return &clone, nil
	}
	return nil, nil
}

type memAddressRepo struct{ s *memStore }

func (r *memAddressRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Address, error) {
	r.s.dmu.Lock()
	defer r.s.dmu.Unlock()
	if a, ok := r.s.addresses[id]; ok {
		clone := *a
		return &clone, nil
	}
	return nil, nil
}

// ---- tx manager ----

// memTxManager serializes transactions with the store mutex, mirroring the
// FOR UPDATE row lock that serializes concurrent slot admissions in Postgres.
type memTxManager struct {
	s    *memStore
	repo *repository.Repository
}

func (m *memTxManager) InTx(ctx context.Context, fn func(*repository.Repository) error) error {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	return fn(m.repo)
}

// memEmailSink records enqueued emails instead of logging them.
type memEmailSink struct {
	mu   sync.Mutex
	sent []sentEmail
}

type sentEmail struct {
	recipients []string
	subject    string
}

func (m *memEmailSink) EnqueueEmail(ctx context.Context, recipients []string, subject, htmlBody string, attachment *string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = append(m.sent, sentEmail{recipients: recipients, subject: subject})
	return nil
}

func newMemRepository(s *memStore) *repository.Repository {
	repo := &repository.Repository{
		Slot:        &memSlotRepo{s: s},
		Booking:     &memBookingRepo{s: s},
		History:     &memHistoryRepo{s: s},
		Coupon:      &memCouponRepo{s: s},
		CouponUsage: &memCouponUsageRepo{s: s},
		Assignment:  &memAssignmentRepo{s: s},
		Agent:       &memAgentRepo{s: s},
		Rider:       &memRiderRepo{s: s},
		Vehicle:     &memVehicleRepo{s: s},
		Address:     &memAddressRepo{s: s},
	}
	repo.Tx = &memTxManager{s: s, repo: repo}
	return repo
}

// ---- test environment ----

type testEnv struct {
	store    *memStore
	repo     *repository.Repository
	policies entity.PolicySet
	loc      *time.Location
	now      time.Time

	pricing    *pricingService
	booking    *bookingService
	slot       *slotService
	assignment *assignmentService

	riderID   uuid.UUID
	vehicleID uuid.UUID
	addressID uuid.UUID
	agentID   uuid.UUID

	emails *memEmailSink
}

// newTestEnv builds services over the in-memory store with a frozen clock:
// Monday 2026-03-02 10:00 in the operating timezone.
func newTestEnv() *testEnv {
	store := newMemStore()
	repo := newMemRepository(store)
	loc := time.FixedZone("operating", 4*60*60)
	now := time.Date(2026, time.March, 2, 10, 0, 0, 0, loc)
	policies := entity.NewPolicySet(10000, 15000, 20000)
	log := zap.NewNop()
	emails := &memEmailSink{}
	sinks := gateway.NewLogSinks(log, "noreply@example.com")
	sinks.Email = emails

	pricing := &pricingService{
		repo:     repo,
		policies: policies,
		now:      func() time.Time { return now },
		log:      log,
	}
	booking := &bookingService{
		repo:     repo,
		pricing:  pricing,
		sinks:    sinks,
		policies: policies,
		loc:      loc,
		now:      func() time.Time { return now },
		log:      log,
	}
	slot := &slotService{
		repo:     repo,
		policies: policies,
		loc:      loc,
		now:      func() time.Time { return now },
		log:      log,
	}
	assignment := &assignmentService{
		repo:  repo,
		sinks: sinks,
		loc:   loc,
		now:   func() time.Time { return now },
		log:   log,
	}

	env := &testEnv{
		store:      store,
		repo:       repo,
		policies:   policies,
		loc:        loc,
		now:        now,
		pricing:    pricing,
		booking:    booking,
		slot:       slot,
		assignment: assignment,
		riderID:    uuid.New(),
		vehicleID:  uuid.New(),
		addressID:  uuid.New(),
		agentID:    uuid.New(),
		emails:     emails,
	}

	store.riders[env.riderID] = &entity.Rider{
		Base:  entity.Base{ID: env.riderID},
		Name:  "Test Rider",
		Email: "rider@example.com",
		Role:  entity.RoleRider,
	}
	store.vehicles[env.vehicleID] = &entity.Vehicle{
		Base:        entity.Base{ID: env.vehicleID},
		RiderID:     env.riderID,
		PlateNumber: "A 12345",
		Model:       "Model 3",
	}
	store.addresses[env.addressID] = &entity.Address{
		Base:    entity.Base{ID: env.addressID},
		RiderID: env.riderID,
		Label:   "Home",
	}
	store.agents[env.agentID] = &entity.Agent{
		Base:     entity.Base{ID: env.agentID},
		Name:     "Agent One",
		IsActive: true,
	}

	return env
}

// addSlot registers a slot on the given date at startTime.
func (env *testEnv) addSlot(serviceType entity.ServiceType, date time.Time, startTime string, capacity int, enabled bool) *entity.Slot {
	slot := &entity.Slot{
		Base:        entity.Base{ID: uuid.New()},
		ServiceType: serviceType,
		SlotDate:    date,
		StartTime:   startTime,
		EndTime:     "23:59",
		Capacity:    capacity,
		Enabled:     enabled,
	}
	env.store.slots = append(env.store.slots, slot)
	return slot
}

func (env *testEnv) addCoupon(code string, bookingFor entity.ServiceType, pct int64, perRider int) {
	env.store.coupons[code] = &entity.Coupon{
		Base:               entity.Base{ID: uuid.New()},
		Code:               code,
		BookingFor:         bookingFor,
		DiscountPercentage: pct,
		StartDate:          env.now.AddDate(0, -1, 0),
		EndDate:            env.now.AddDate(0, 1, 0),
		Status:             1,
		UserPerUser:        perRider,
	}
}

// seedBooking inserts a booking row directly, bypassing the lifecycle.
func (env *testEnv) seedBooking(bookingNo string, serviceType entity.ServiceType, status entity.BookingStatus, date time.Time, startTime string) *entity.Booking {
	b := &entity.Booking{
		Base:        entity.Base{ID: uuid.New(), CreatedAt: env.now},
		BookingNo:   bookingNo,
		ServiceType: serviceType,
		RiderID:     env.riderID,
		VehicleID:   env.vehicleID,
		AddressID:   env.addressID,
		SlotDate:    date,
		StartTime:   startTime,
		Price:       10500,
		Status:      status,
	}
	env.store.bookings = append(env.store.bookings, b)
	return b
}

func (env *testEnv) tomorrow() time.Time {
	return time.Date(2026, time.March, 3, 0, 0, 0, 0, env.loc)
}
