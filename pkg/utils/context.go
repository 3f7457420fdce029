package utils

import (
	"context"

	"github.com/google/uuid"
)

type contextKey string

const (
	RiderIDKey contextKey = "rider_id"
	RoleKey    contextKey = "role"
	TokenKey   contextKey = "token"
)

func GetRiderIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	riderIDVal := ctx.Value(RiderIDKey)
	if riderIDVal == nil {
		return uuid.Nil, false
	}

	riderIDStr, ok := riderIDVal.(string)
	if !ok {
		return uuid.Nil, false
	}

	riderID, err := uuid.Parse(riderIDStr)
	if err != nil {
		return uuid.Nil, false
	}

	return riderID, true
}

func GetRoleFromContext(ctx context.Context) (string, bool) {
	roleVal := ctx.Value(RoleKey)
	if roleVal == nil {
		return "", false
	}

	role, ok := roleVal.(string)
	return role, ok
}

func SetRiderContext(ctx context.Context, riderID uuid.UUID, role string) context.Context {
	ctx = context.WithValue(ctx, RiderIDKey, riderID.String())
	ctx = context.WithValue(ctx, RoleKey, role)
	return ctx
}

func GetTokenFromContext(ctx context.Context) (string, bool) {
	tokenVal := ctx.Value(TokenKey)
	if tokenVal == nil {
		return "", false
	}

	token, ok := tokenVal.(string)
	return token, ok
}

func SetTokenContext(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, TokenKey, token)
}
