package handlers

import (
	"context"

	"github.com/litrevu/litrevu/internal/application/user/dto"
	"github.com/litrevu/litrevu/internal/application/user/usecases"
)

// Use case interfaces for AuthHandler - enables unit testing with mocks.

type registerUseCase interface {
	Execute(ctx context.Context, cmd usecases.RegisterCommand) (*dto.AuthResult, error)
}

type loginUseCase interface {
	Execute(ctx context.Context, cmd usecases.LoginCommand) (*dto.AuthResult, error)
}

type logoutUseCase interface {
	Execute(ctx context.Context, cmd usecases.LogoutCommand) error
}
