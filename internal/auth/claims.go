package auth

import "github.com/golang-jwt/jwt/v5"

type TokenType string

const (
	TokenTypeService TokenType = "service"
)

// Claims are the only supported JWT claims shape for this service.
// Tokens are issued to integration clients, never to end users.
// Multi-tenant invariant: WorkspaceID must be present; every upstream fetch and
// audit record is scoped to it.
type Claims struct {
	jwt.RegisteredClaims

	ClientID    string    `json:"client_id"`
	WorkspaceID string    `json:"workspace_id"`
	Role        string    `json:"role"`
	TokenType   TokenType `json:"token_type"`
}
