package follow

import (
	"context"
	"net/http"
	"net/url"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/litrevu/litrevu/internal/application/follow/dto"
	"github.com/litrevu/litrevu/internal/application/follow/usecases"
	domainfollow "github.com/litrevu/litrevu/internal/domain/follow"
	"github.com/litrevu/litrevu/internal/interfaces/http/handlers/testutil"
	"github.com/litrevu/litrevu/internal/shared/config"
	"github.com/litrevu/litrevu/internal/shared/errors"
	"github.com/litrevu/litrevu/internal/shared/logger"
)

type mockAddFollowUC struct {
	outcome domainfollow.Outcome
	err     error
	got     usecases.AddFollowCommand
	calls   int
}

func (m *mockAddFollowUC) Execute(_ context.Context, cmd usecases.AddFollowCommand) (*dto.AddFollowResultDTO, error) {
	m.calls++
	m.got = cmd
	if m.err != nil {
		return nil, m.err
	}
	return &dto.AddFollowResultDTO{
		Outcome:  m.outcome,
		Username: cmd.Username,
		Message:  m.outcome.Message(cmd.Username),
	}, nil
}

type mockRemoveFollowUC struct {
	got usecases.RemoveFollowCommand
	err error
}

func (m *mockRemoveFollowUC) Execute(_ context.Context, cmd usecases.RemoveFollowCommand) error {
	m.got = cmd
	return m.err
}

type mockListFollowsUC struct {
	result *dto.FollowsDTO
	err    error
}

func (m *mockListFollowsUC) Execute(_ context.Context, _ usecases.ListFollowsQuery) (*dto.FollowsDTO, error) {
	return m.result, m.err
}

type followDeps struct {
	add    *mockAddFollowUC
	remove *mockRemoveFollowUC
	list   *mockListFollowsUC
}

func newFollowDeps() *followDeps {
	return &followDeps{
		add:    &mockAddFollowUC{outcome: domainfollow.OutcomeOK},
		remove: &mockRemoveFollowUC{},
		list: &mockListFollowsUC{result: &dto.FollowsDTO{
			Following: []dto.FollowDTO{{ID: 11, UserID: 2, Username: "bob"}},
			Followers: []dto.FollowDTO{{ID: 12, UserID: 3, Username: "carol"}},
		}},
	}
}

func (d *followDeps) engine() *gin.Engine {
	h := NewFollowHandler(d.add, d.remove, d.list, config.CookieConfig{Path: "/"}, logger.NewNop())
	engine := testutil.NewEngine()
	engine.Use(testutil.WithAuth(1, "alice"))
	engine.GET("/follows", h.ListFollows)
	engine.POST("/follows/add", h.AddFollow)
	engine.POST("/follows/remove/:id", h.RemoveFollow)
	return engine
}

func TestFollowHandler_ListFollows(t *testing.T) {
	t.Run("page lists both directions", func(t *testing.T) {
		d := newFollowDeps()
		w := testutil.Serve(d.engine(), testutil.NewPageRequest("/follows"))

		assert.Equal(t, http.StatusOK, w.Code)
		body := w.Body.String()
		assert.Contains(t, body, "bob")
		assert.Contains(t, body, "carol")
		assert.Contains(t, body, "/follows/remove/11")
		assert.NotContains(t, body, "/follows/remove/12")
	})

	t.Run("json", func(t *testing.T) {
		d := newFollowDeps()
		w := testutil.Serve(d.engine(), testutil.NewJSONRequest(http.MethodGet, "/follows", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"followed_users"`)
	})

	t.Run("datastore failure", func(t *testing.T) {
		d := newFollowDeps()
		d.list.err = errors.NewUnavailableError("database unavailable")
		w := testutil.Serve(d.engine(), testutil.NewPageRequest("/follows"))

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	})
}

func TestFollowHandler_AddFollow(t *testing.T) {
	outcomes := []struct {
		outcome    domainfollow.Outcome
		wantStatus int
		wantFlash  string
	}{
		{domainfollow.OutcomeOK, http.StatusOK, "You are now following bob."},
		{domainfollow.OutcomeUserNotFound, http.StatusNotFound, "No user named bob exists."},
		{domainfollow.OutcomeSelfFollow, http.StatusBadRequest, "You cannot follow yourself."},
		{domainfollow.OutcomeAlreadyFollowing, http.StatusConflict, "You are already following bob."},
	}

	for _, tc := range outcomes {
		t.Run(string(tc.outcome)+" browser", func(t *testing.T) {
			d := newFollowDeps()
			d.add.outcome = tc.outcome
			w := testutil.Serve(d.engine(), testutil.NewFormRequest(http.MethodPost, "/follows/add",
				url.Values{"username": {"bob"}}))

			assert.Equal(t, http.StatusFound, w.Code)
			assert.Equal(t, "/follows", w.Header().Get("Location"))
			assert.Equal(t, tc.wantFlash, testutil.FlashFrom(w))
			assert.Equal(t, uint(1), d.add.got.FollowerID)
		})

		t.Run(string(tc.outcome)+" json", func(t *testing.T) {
			d := newFollowDeps()
			d.add.outcome = tc.outcome
			w := testutil.Serve(d.engine(), testutil.NewJSONRequest(http.MethodPost, "/follows/add",
				map[string]string{"username": "bob"}))

			assert.Equal(t, tc.wantStatus, w.Code)
			var resp testutil.APIResponse
			require.NoError(t, testutil.ParseResponse(w, &resp))
			assert.Equal(t, tc.outcome == domainfollow.OutcomeOK, resp.Success)
			assert.Equal(t, tc.wantFlash, resp.Message)
			assert.Contains(t, string(resp.Data), string(tc.outcome))
		})
	}

	t.Run("blank username re-renders the page", func(t *testing.T) {
		d := newFollowDeps()
		w := testutil.Serve(d.engine(), testutil.NewFormRequest(http.MethodPost, "/follows/add",
			url.Values{"username": {" "}}))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "This field is required.")
		assert.Contains(t, w.Body.String(), "bob")
		assert.Zero(t, d.add.calls)
	})
}

func TestFollowHandler_RemoveFollow(t *testing.T) {
	t.Run("removes own edge", func(t *testing.T) {
		d := newFollowDeps()
		w := testutil.Serve(d.engine(), testutil.NewFormRequest(http.MethodPost, "/follows/remove/11", url.Values{}))

		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, usecases.RemoveFollowCommand{FollowerID: 1, EdgeID: 11}, d.remove.got)
	})

	t.Run("foreign edge is not found", func(t *testing.T) {
		d := newFollowDeps()
		d.remove.err = errors.NewNotFoundError("follow not found")
		w := testutil.Serve(d.engine(), testutil.NewJSONRequest(http.MethodPost, "/follows/remove/12", nil))

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
