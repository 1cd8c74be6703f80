package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/litrevu/litrevu/internal/domain/user"
	"github.com/litrevu/litrevu/internal/infrastructure/database/dbtest"
	"github.com/litrevu/litrevu/internal/infrastructure/permission"
	"github.com/litrevu/litrevu/internal/infrastructure/repository"
	"github.com/litrevu/litrevu/internal/shared/db"
	"github.com/litrevu/litrevu/internal/shared/logger"
	"github.com/litrevu/litrevu/internal/shared/services/markdown"
)

type testEnv struct {
	db       *gorm.DB
	users    *repository.UserRepository
	tickets  *repository.TicketRepository
	comments *repository.CommentRepository
	reviews  *repository.ReviewRepository
	gate     *permission.Enforcer
	txMgr    *db.TransactionManager
	md       markdown.Service
	log      logger.Interface
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gdb := dbtest.Open(t)
	log := logger.NewNop()

	gate, err := permission.NewInMemoryEnforcer(log)
	require.NoError(t, err)

	return &testEnv{
		db:       gdb,
		users:    repository.NewUserRepository(gdb, log),
		tickets:  repository.NewTicketRepository(gdb),
		comments: repository.NewCommentRepository(gdb),
		reviews:  repository.NewReviewRepository(gdb),
		gate:     gate,
		txMgr:    db.NewTransactionManager(gdb),
		md:       markdown.NewService(),
		log:      log,
	}
}

func (e *testEnv) user(t *testing.T, name string) uint {
	t.Helper()
	u, err := user.NewUser(name, name+"@example.com", "hash", nil, nil)
	require.NoError(t, err)
	require.NoError(t, e.users.Create(context.Background(), u))
	return u.ID()
}

func (e *testEnv) ticket(t *testing.T, owner uint, title string) uint {
	t.Helper()
	res, err := NewCreateTicketUseCase(e.tickets, e.log).Execute(context.Background(), CreateTicketCommand{
		UserID: owner,
		Title:  title,
	})
	require.NoError(t, err)
	return res.TicketID
}

func (e *testEnv) count(t *testing.T, model interface{}) int64 {
	t.Helper()
	var n int64
	require.NoError(t, e.db.Model(model).Count(&n).Error)
	return n
}
