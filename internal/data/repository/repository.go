package repository

import (
	"context"
	"fmt"

	"charging-booking/pkg/apperror"
	"charging-booking/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	Rider       RiderRepository
	Session     SessionRepository
	Slot        SlotRepository
	Booking     BookingRepository
	History     HistoryRepository
	Coupon      CouponRepository
	CouponUsage CouponUsageRepository
	Assignment  AssignmentRepository
	Agent       AgentRepository
	Vehicle     VehicleRepository
	Address     AddressRepository

	// Tx runs a function with a transaction-scoped Repository. Every booking
	// mutation goes through it so the slot guard's row locks cover the whole
	// flow.
	Tx TxManager
}

type TxManager interface {
	InTx(ctx context.Context, fn func(*Repository) error) error
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	r := newRepos(db, log)
	r.Tx = &pgxTxManager{db: db, log: log}
	return r
}

func newRepos(db database.DBTX, log *zap.Logger) *Repository {
	return &Repository{
		Rider:       NewRiderRepository(db, log),
		Session:     NewSessionRepository(db, log),
		Slot:        NewSlotRepository(db, log),
		Booking:     NewBookingRepository(db, log),
		History:     NewHistoryRepository(db, log),
		Coupon:      NewCouponRepository(db, log),
		CouponUsage: NewCouponUsageRepository(db, log),
		Assignment:  NewAssignmentRepository(db, log),
		Agent:       NewAgentRepository(db, log),
		Vehicle:     NewVehicleRepository(db, log),
		Address:     NewAddressRepository(db, log),
	}
}

type pgxTxManager struct {
	db  database.PgxIface
	log *zap.Logger
}

func (m *pgxTxManager) InTx(ctx context.Context, fn func(*Repository) error) error {
	tx, err := m.db.Begin(ctx)
	if err != nil {
		return apperror.Storage(fmt.Errorf("begin tx: %w", err))
	}

	txRepo := newRepos(tx, m.log)
	txRepo.Tx = passthroughTx{repo: txRepo}

	if err := fn(txRepo); err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil {
			m.log.Error("Failed to rollback transaction", zap.Error(rbErr))
		}
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return apperror.Storage(fmt.Errorf("commit tx: %w", err))
	}

	return nil
}

// passthroughTx keeps nested InTx calls inside the already-open transaction.
type passthroughTx struct {
	repo *Repository
}

func (p passthroughTx) InTx(ctx context.Context, fn func(*Repository) error) error {
	return fn(p.repo)
}
