package usecases

import (
	"context"

	"github.com/litrevu/litrevu/internal/application/user/dto"
	"github.com/litrevu/litrevu/internal/application/user/helpers"
	"github.com/litrevu/litrevu/internal/domain/user"
	"github.com/litrevu/litrevu/internal/shared/errors"
	"github.com/litrevu/litrevu/internal/shared/logger"
)

type LoginCommand struct {
	Username  string
	Password  string
	IPAddress string
	UserAgent string
}

type LoginUseCase struct {
	userRepo      user.Repository
	hasher        PasswordHasher
	sessionHelper *helpers.SessionHelper
	logger        logger.Interface
}

func NewLoginUseCase(
	userRepo user.Repository,
	hasher PasswordHasher,
	sessionHelper *helpers.SessionHelper,
	logger logger.Interface,
) *LoginUseCase {
	return &LoginUseCase{
		userRepo:      userRepo,
		hasher:        hasher,
		sessionHelper: sessionHelper,
		logger:        logger,
	}
}

// Execute reports every credential failure with the same error.
func (uc *LoginUseCase) Execute(ctx context.Context, cmd LoginCommand) (*dto.AuthResult, error) {
	username, err := user.NormalizeUsername(cmd.Username)
	if err != nil {
		uc.burn(cmd.Password)
		return nil, errors.NewInvalidCredentialsError()
	}

	existing, err := uc.userRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.IsNotFoundError(err) {
			uc.burn(cmd.Password)
			return nil, errors.NewInvalidCredentialsError()
		}
		uc.logger.Errorw("failed to get user by username", "error", err)
		return nil, err
	}

	if err := uc.hasher.Verify(cmd.Password, existing.PasswordHash()); err != nil {
		uc.logger.Infow("login rejected", "user_id", existing.ID(), "ip", cmd.IPAddress)
		return nil, errors.NewInvalidCredentialsError()
	}

	issued, err := uc.sessionHelper.CreateAndSaveSession(ctx, existing.ID(), helpers.DeviceInfo{
		IPAddress: cmd.IPAddress,
		UserAgent: cmd.UserAgent,
	})
	if err != nil {
		uc.logger.Errorw("failed to create session", "error", err, "user_id", existing.ID())
		return nil, err
	}

	uc.logger.Infow("user logged in successfully", "user_id", existing.ID(), "session_id", issued.Session.ID)

	return &dto.AuthResult{
		User:      dto.ToUserDTO(existing),
		Token:     issued.Token,
		SessionID: issued.Session.ID,
		ExpiresAt: issued.Session.ExpiresAt,
	}, nil
}

// burn spends a hash comparison so unknown usernames take as long as wrong
// passwords.
func (uc *LoginUseCase) burn(password string) {
	if b, ok := uc.hasher.(interface{ BurnVerify(string) }); ok {
		b.BurnVerify(password)
	}
}
