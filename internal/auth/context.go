package auth

import (
	"context"
)

type contextKey string

const (
	actorKey contextKey = "actor"
	tokenKey contextKey = "bearer_token"
)

// WithActor stores the acting user id in the context
func WithActor(ctx context.Context, userID uint) context.Context {
	return context.WithValue(ctx, actorKey, userID)
}

// ActorFromContext returns the acting user id, if one was resolved for the request
func ActorFromContext(ctx context.Context) (uint, bool) {
	id, ok := ctx.Value(actorKey).(uint)
	return id, ok && id != 0
}

// WithToken stores the caller's raw bearer token so outbound calls can forward it
func WithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenKey, token)
}

// TokenFromContext returns the caller's raw bearer token
func TokenFromContext(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(tokenKey).(string)
	return token, ok && token != ""
}
