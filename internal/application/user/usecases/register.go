package usecases

import (
	"context"
	"time"
	"unicode"

	"github.com/litrevu/litrevu/internal/application/user/dto"
	"github.com/litrevu/litrevu/internal/application/user/helpers"
	"github.com/litrevu/litrevu/internal/domain/user"
	"github.com/litrevu/litrevu/internal/shared/biztime"
	"github.com/litrevu/litrevu/internal/shared/db"
	"github.com/litrevu/litrevu/internal/shared/errors"
	"github.com/litrevu/litrevu/internal/shared/goroutine"
	"github.com/litrevu/litrevu/internal/shared/logger"
	"github.com/litrevu/litrevu/internal/shared/utils"
)

const minPasswordLength = 8

type RegisterCommand struct {
	Username        string
	Email           string
	Password        string
	PasswordConfirm string
	BirthDate       *time.Time
	Gender          string
	IPAddress       string
	UserAgent       string
}

// RegisterUseCase creates the account and signs the new user in within one
// transaction.
type RegisterUseCase struct {
	userRepo      user.Repository
	hasher        PasswordHasher
	sessionHelper *helpers.SessionHelper
	txMgr         db.Transactor
	mailer        WelcomeMailer
	logger        logger.Interface
}

func NewRegisterUseCase(
	userRepo user.Repository,
	hasher PasswordHasher,
	sessionHelper *helpers.SessionHelper,
	txMgr db.Transactor,
	mailer WelcomeMailer,
	logger logger.Interface,
) *RegisterUseCase {
	return &RegisterUseCase{
		userRepo:      userRepo,
		hasher:        hasher,
		sessionHelper: sessionHelper,
		txMgr:         txMgr,
		mailer:        mailer,
		logger:        logger,
	}
}

func (uc *RegisterUseCase) Execute(ctx context.Context, cmd RegisterCommand) (*dto.AuthResult, error) {
	uc.logger.Infow("executing register use case", "username", cmd.Username)

	username, email, gender, fields := uc.validate(cmd)
	if len(fields) > 0 {
		return nil, errors.NewFieldValidationError(fields)
	}

	if taken, err := uc.userRepo.ExistsByUsername(ctx, username); err != nil {
		uc.logger.Errorw("failed to check username", "error", err)
		return nil, err
	} else if taken {
		fields["username"] = "A user with that username already exists."
	}
	if taken, err := uc.userRepo.ExistsByEmail(ctx, email); err != nil {
		uc.logger.Errorw("failed to check email", "error", err)
		return nil, err
	} else if taken {
		fields["email"] = "A user with that email already exists."
	}
	if len(fields) > 0 {
		return nil, errors.NewFieldValidationError(fields)
	}

	hash, err := uc.hasher.Hash(cmd.Password)
	if err != nil {
		uc.logger.Errorw("failed to hash password", "error", err)
		return nil, errors.NewInternalError("failed to process password")
	}

	newUser, err := user.NewUser(username, email, hash, cmd.BirthDate, gender)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	var issued *helpers.IssuedSession
	err = uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.userRepo.Create(txCtx, newUser); err != nil {
			return err
		}
		issued, err = uc.sessionHelper.CreateAndSaveSession(txCtx, newUser.ID(), helpers.DeviceInfo{
			IPAddress: cmd.IPAddress,
			UserAgent: cmd.UserAgent,
		})
		return err
	})
	if err != nil {
		if errors.IsConflictError(err) {
			// Lost a race with another sign-up for the same name or address.
			return nil, errors.NewFieldValidationError(map[string]string{
				"username": "A user with that username or email already exists.",
			})
		}
		uc.logger.Errorw("failed to register user", "error", err)
		return nil, err
	}

	uc.logger.Infow("user registered successfully", "user_id", newUser.ID())
	uc.sendWelcome(newUser)

	return &dto.AuthResult{
		User:      dto.ToUserDTO(newUser),
		Token:     issued.Token,
		SessionID: issued.Session.ID,
		ExpiresAt: issued.Session.ExpiresAt,
	}, nil
}

func (uc *RegisterUseCase) sendWelcome(u *user.User) {
	if uc.mailer == nil {
		return
	}
	to, name := u.Email(), u.Username()
	goroutine.SafeGo(uc.logger, "welcome-email", func() {
		if err := uc.mailer.SendWelcomeEmail(to, name); err != nil {
			uc.logger.Warnw("failed to send welcome email", "error", err, "user_id", u.ID(), "to", utils.MaskEmail(to))
		}
	})
}

func (uc *RegisterUseCase) validate(cmd RegisterCommand) (string, string, *user.Gender, map[string]string) {
	fields := make(map[string]string)

	username, err := user.NormalizeUsername(cmd.Username)
	if err != nil {
		fields["username"] = err.Error()
	}
	email, err := user.NormalizeEmail(cmd.Email)
	if err != nil {
		fields["email"] = err.Error()
	}
	gender, err := user.ParseGender(cmd.Gender)
	if err != nil {
		fields["gender"] = "Select a valid choice."
	}
	if cmd.BirthDate != nil && cmd.BirthDate.After(biztime.NowUTC()) {
		fields["birth_date"] = "Birth date cannot be in the future."
	}

	if msg := checkPassword(cmd.Password, username); msg != "" {
		fields["password"] = msg
	} else if cmd.Password != cmd.PasswordConfirm {
		fields["password_confirm"] = "The two password fields didn't match."
	}

	return username, email, gender, fields
}

func checkPassword(password, username string) string {
	if len([]rune(password)) < minPasswordLength {
		return "This password is too short. It must contain at least 8 characters."
	}
	numeric := true
	for _, r := range password {
		if !unicode.IsDigit(r) {
			numeric = false
			break
		}
	}
	if numeric {
		return "This password is entirely numeric."
	}
	if username != "" && password == username {
		return "The password is too similar to the username."
	}
	return ""
}
