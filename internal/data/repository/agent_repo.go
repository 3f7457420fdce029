package repository

import (
	"context"
	"fmt"

	"charging-booking/internal/data/entity"
	"charging-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type AgentRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Agent, error)
	IncrementRunningOrders(ctx context.Context, id uuid.UUID) error
	DecrementRunningOrders(ctx context.Context, id uuid.UUID) error
}

type agentRepository struct {
	db  database.DBTX
	log *zap.Logger
}

func NewAgentRepository(db database.DBTX, log *zap.Logger) AgentRepository {
	return &agentRepository{
		db:  db,
		log: log.With(zap.String("repository", "agent")),
	}
}

func (r *agentRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Agent, error) {
	query := `
		SELECT id, name, phone, device_token, running_orders, is_active, created_at, updated_at
		FROM agents
		WHERE id = $1
	`

	var agent entity.Agent
	err := r.db.QueryRow(ctx, query, id).Scan(
		&agent.ID,
		&agent.Name,
		&agent.Phone,
		&agent.DeviceToken,
		&agent.RunningOrders,
		&agent.IsActive,
		&agent.CreatedAt,
		&agent.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find agent by ID",
			zap.Error(err),
			zap.String("agent_id", id.String()),
		)
		return nil, fmt.Errorf("find agent by ID %s: %w", id.String(), err)
	}

	return &agent, nil
}

func (r *agentRepository) IncrementRunningOrders(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE agents SET running_orders = running_orders + 1, updated_at = NOW() WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to increment running orders",
			zap.Error(err),
			zap.String("agent_id", id.String()),
		)
		return fmt.Errorf("increment running orders for agent %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("agent %s not found", id.String())
	}

	return nil
}

func (r *agentRepository) DecrementRunningOrders(ctx context.Context, id uuid.UUID) error {
	// GREATEST guards against going negative if a counter was already released
	query := `UPDATE agents SET running_orders = GREATEST(running_orders - 1, 0), updated_at = NOW() WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to decrement running orders",
			zap.Error(err),
			zap.String("agent_id", id.String()),
		)
		return fmt.Errorf("decrement running orders for agent %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("agent %s not found", id.String())
	}

	return nil
}
