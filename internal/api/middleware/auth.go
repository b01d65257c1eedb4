package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/ameleshkina/consult-booking/internal/api/handlers"
	"github.com/ameleshkina/consult-booking/internal/domain"
)

// Заголовки, проставляемые внешним auth-шлюзом
const (
	HeaderUserID   = "X-User-ID"
	HeaderUserRole = "X-User-Role"
)

const (
	msgMissingUserID = "заголовок X-User-ID обязателен"
	msgInvalidUserID = "некорректный заголовок X-User-ID"
	msgInvalidRole   = "некорректный заголовок X-User-Role"
)

type actorContextKey struct{}

// Auth извлекает актора из заголовков X-User-ID / X-User-Role.
// Сервис доверяет шлюзу: подлинность заголовков здесь не проверяется.
// Роль по умолчанию - клиент.
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		idStr := r.Header.Get(HeaderUserID)
		if idStr == "" {
			handlers.RespondUnauthorized(w, msgMissingUserID)
			return
		}

		id, err := strconv.ParseInt(idStr, 10, 64)
		if err != nil || id <= 0 {
			handlers.RespondUnauthorized(w, msgInvalidUserID)
			return
		}

		role := domain.RoleClient
		switch domain.Role(r.Header.Get(HeaderUserRole)) {
		case domain.RoleAdmin:
			role = domain.RoleAdmin
		case domain.RoleClient, "":
		default:
			handlers.RespondUnauthorized(w, msgInvalidRole)
			return
		}

		actor := domain.Actor{ID: id, Role: role}
		next.ServeHTTP(w, r.WithContext(WithActor(r.Context(), actor)))
	})
}

// WithActor кладет актора в контекст запроса
func WithActor(ctx context.Context, actor domain.Actor) context.Context {
	return context.WithValue(ctx, actorContextKey{}, actor)
}

// ActorFromContext достает актора, положенного Auth middleware
func ActorFromContext(ctx context.Context) (domain.Actor, bool) {
	actor, ok := ctx.Value(actorContextKey{}).(domain.Actor)
	return actor, ok
}
