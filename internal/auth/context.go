package auth

import (
	"context"
	"errors"
)

type ctxKey int

const (
	ctxClientID ctxKey = iota
	ctxWorkspaceID
	ctxRole
)

func WithIdentity(ctx context.Context, clientID, workspaceID, role string) context.Context {
	ctx = context.WithValue(ctx, ctxClientID, clientID)
	ctx = context.WithValue(ctx, ctxWorkspaceID, workspaceID)
	ctx = context.WithValue(ctx, ctxRole, role)
	return ctx
}

func ClientID(ctx context.Context) (string, error) {
	return fromCtx(ctx, ctxClientID, "client_id not in context")
}

func WorkspaceID(ctx context.Context) (string, error) {
	return fromCtx(ctx, ctxWorkspaceID, "workspace_id not in context")
}

func Role(ctx context.Context) (string, error) {
	return fromCtx(ctx, ctxRole, "role not in context")
}

func fromCtx(ctx context.Context, key ctxKey, msg string) (string, error) {
	if s, ok := ctx.Value(key).(string); ok && s != "" {
		return s, nil
	}
	return "", errors.New(msg)
}
