package middlewares

import (
	"context"
	"net/http"
	"strings"
	"time"

	"avalia-service/internal/app/models"
	"avalia-service/internal/pkg/constvars"
	"avalia-service/internal/pkg/exceptions"
	"avalia-service/internal/pkg/questionnaire_dto"
	"avalia-service/internal/pkg/utils"

	"github.com/goccy/go-json"
)

// Authentication resolves the bearer token to the login session stored in
// Redis and stashes it in the request context. Downstream handlers read the
// session with SessionFromContext.
func (m *Middlewares) Authentication(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get(constvars.HeaderAuthorization)
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenMissing(nil))
			return
		}

		token := strings.TrimPrefix(authHeader, "Bearer ")
		sessionID, err := utils.ParseJWT(token, m.InternalConfig.JWT.Secret)
		if err != nil {
			utils.BuildErrorResponse(m.Log, w, err)
			return
		}

		sessionData, err := m.RedisRepository.Get(r.Context(), constvars.RedisKeyPrefixSession+sessionID)
		if err != nil {
			utils.BuildErrorResponse(m.Log, w, err)
			return
		}
		if sessionData == "" {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrSessionInvalid(nil))
			return
		}

		var session models.Session
		if err := json.Unmarshal([]byte(sessionData), &session); err != nil {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrSessionInvalid(err))
			return
		}
		if !session.ExpiresAt.IsZero() && session.ExpiresAt.Before(time.Now().UTC()) {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrSessionInvalid(nil))
			return
		}

		ctx := context.WithValue(r.Context(), constvars.CONTEXT_SESSION_DATA_KEY, &session)
		ctx = context.WithValue(ctx, constvars.CONTEXT_SESSION_ID_KEY, session.SessionID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireRoles gates an endpoint to the listed roles. It assumes
// Authentication already ran on the chain.
func (m *Middlewares) RequireRoles(roles ...questionnaire_dto.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			session := SessionFromContext(r.Context())
			if session == nil {
				utils.BuildErrorResponse(m.Log, w, exceptions.ErrMissingSessionData(nil))
				return
			}

			for _, role := range roles {
				if session.Role == role {
					next.ServeHTTP(w, r)
					return
				}
			}
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrRoleNotAllowed(nil))
		})
	}
}

func SessionFromContext(ctx context.Context) *models.Session {
	session, _ := ctx.Value(constvars.CONTEXT_SESSION_DATA_KEY).(*models.Session)
	return session
}

// ProfileFromContext reduces the login session to the shape rule
// evaluation consumes. A missing session yields nil, which fails role
// rules closed.
func ProfileFromContext(ctx context.Context) *questionnaire_dto.UserProfile {
	session := SessionFromContext(ctx)
	if session == nil {
		return nil
	}
	return &questionnaire_dto.UserProfile{Role: session.Role}
}
