package contracts

import (
	"context"
	"medibook-service/internal/pkg/dto/requests"
	"medibook-service/internal/pkg/dto/responses"
)

type AuthUsecase interface {
	Register(ctx context.Context, request *requests.Register) (*responses.Auth, error)
	Login(ctx context.Context, request *requests.Login) (*responses.Auth, error)
	Logout(ctx context.Context, sessionID string) error
}
