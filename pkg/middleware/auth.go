package middleware

import (
	"net/http"
	"strings"

	"charging-booking/internal/data/repository"
	"charging-booking/pkg/utils"

	"go.uber.org/zap"
)

// AuthSession validates the bearer session token against the sessions table.
// Session issuance itself is handled by the external auth service.
func AuthSession(sessionRepo repository.SessionRepository, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				utils.ResponseUnauthorized(w, "Missing authorization token")
				return
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				utils.ResponseUnauthorized(w, "Invalid token format. Use: Bearer <token>")
				return
			}

			token := parts[1]

			session, err := sessionRepo.FindValidSession(r.Context(), token)
			if err != nil {
				logger.Error("Failed to validate session", zap.Error(err))
				utils.ResponseInternalError(w, "Internal server error")
				return
			}

			if session == nil {
				logger.Warn("Invalid or expired session")
				utils.ResponseUnauthorized(w, "Invalid or expired session")
				return
			}

			ctx := utils.SetRiderContext(r.Context(), session.RiderID, "rider")
			ctx = utils.SetTokenContext(ctx, token)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// Admin checks the rider's role after AuthSession has run.
func Admin(riderRepo repository.RiderRepository, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			riderID, ok := utils.GetRiderIDFromContext(r.Context())
			if !ok {
				utils.ResponseUnauthorized(w, "Authentication required")
				return
			}

			rider, err := riderRepo.FindByID(r.Context(), riderID)
			if err != nil {
				logger.Error("Admin check: failed to get rider",
					zap.Error(err), zap.String("rider_id", riderID.String()))
				utils.ResponseInternalError(w, "Internal server error")
				return
			}

			if rider == nil || rider.Role != "admin" {
				logger.Warn("Admin check: non-admin access attempt",
					zap.String("rider_id", riderID.String()),
					zap.String("path", r.URL.Path))
				utils.ResponseForbidden(w, "Admin access required")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
