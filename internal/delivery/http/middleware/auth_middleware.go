package middleware

import (
	"context"
	"net/http"
	"strings"

	"clinic-backend/internal/domain/repository"
	"clinic-backend/pkg/jwt"
	"clinic-backend/pkg/response"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type contextKey string

const (
	AccountIDKey    contextKey = "account_id"
	AccountEmailKey contextKey = "account_email"
	AccountRoleKey  contextKey = "account_role"
)

type AuthMiddleware struct {
	log          *logrus.Logger
	tokenService *jwt.TokenService
	accountRepo  repository.AccountRepository
}

func NewAuthMiddleware(log *logrus.Logger, tokenService *jwt.TokenService, accountRepo repository.AccountRepository) *AuthMiddleware {
	return &AuthMiddleware{
		log:          log,
		tokenService: tokenService,
		accountRepo:  accountRepo,
	}
}

// Authenticate is the identity gate: it extracts the bearer token, verifies
// it and attaches the decoded claims to the request context. A missing and
// an invalid token are both 401 to the caller.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			response.Unauthorized(w, "Authorization header is required")
			return
		}

		// Extract token from "Bearer <token>"
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Unauthorized(w, "Invalid authorization header format")
			return
		}

		claims, err := m.tokenService.Verify(parts[1])
		if err != nil {
			response.Unauthorized(w, "Invalid or expired token")
			return
		}

		ctx := context.WithValue(r.Context(), AccountIDKey, claims.AccountID)
		ctx = context.WithValue(ctx, AccountEmailKey, claims.Email)
		ctx = context.WithValue(ctx, AccountRoleKey, claims.Role)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// AuthorizeRoles gates access to the given roles. The account's current role
// is read from the store, because a token issued before a role change must
// not keep authorizing under the stale claimed role; the claim is only the
// fallback when the store has no role for the account.
func (m *AuthMiddleware) AuthorizeRoles(allowedRoles ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			accountID, ok := GetAccountIDFromContext(r.Context())
			if !ok {
				response.Unauthorized(w, "Invalid token")
				return
			}

			account, err := m.accountRepo.FindByID(r.Context(), accountID)
			if err != nil {
				m.log.Warnf("Failed to look up account role: %+v", err)
				response.InternalServerError(w, "Server error")
				return
			}

			role, _ := GetAccountRoleFromContext(r.Context())
			if account != nil && account.Role != "" {
				role = account.Role
			}

			allowed := false
			for _, allowedRole := range allowedRoles {
				if role == allowedRole {
					allowed = true
					break
				}
			}

			if role == "" || !allowed {
				response.Forbidden(w, "You don't have permission to access this resource")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// GetAccountIDFromContext extracts the account ID from context
func GetAccountIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	accountID, ok := ctx.Value(AccountIDKey).(uuid.UUID)
	return accountID, ok
}

// GetAccountEmailFromContext extracts the account email from context
func GetAccountEmailFromContext(ctx context.Context) (string, bool) {
	email, ok := ctx.Value(AccountEmailKey).(string)
	return email, ok
}

// GetAccountRoleFromContext extracts the claimed role from context
func GetAccountRoleFromContext(ctx context.Context) (string, bool) {
	role, ok := ctx.Value(AccountRoleKey).(string)
	return role, ok
}
