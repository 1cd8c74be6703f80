package handlers

import (
	"context"
	stderrors "errors"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	feeddto "github.com/litrevu/litrevu/internal/application/feed/dto"
	ticketdto "github.com/litrevu/litrevu/internal/application/ticket/dto"
	"github.com/litrevu/litrevu/internal/domain/feed"
	"github.com/litrevu/litrevu/internal/domain/user"
	"github.com/litrevu/litrevu/internal/interfaces/http/handlers/testutil"
	"github.com/litrevu/litrevu/internal/shared/errors"
	"github.com/litrevu/litrevu/internal/shared/logger"
)

type mockBuildFeedUC struct {
	posts []feeddto.FeedItemDTO
	err   error
	got   user.AuthContext
}

func (m *mockBuildFeedUC) Execute(_ context.Context, auth user.AuthContext) ([]feeddto.FeedItemDTO, error) {
	m.got = auth
	return m.posts, m.err
}

func newFeedEngine(uc *mockBuildFeedUC) *gin.Engine {
	h := NewFeedHandler(uc)
	engine := testutil.NewEngine()
	engine.Use(testutil.WithAuth(1, "alice"))
	engine.GET("/", h.Feed)
	return engine
}

func samplePosts() []feeddto.FeedItemDTO {
	created := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	return []feeddto.FeedItemDTO{
		{
			Kind:      feed.KindReview,
			ID:        4,
			CreatedAt: created.Add(time.Hour),
			Review: &ticketdto.ReviewDTO{
				ID: 4, TicketID: 2, UserID: 1, Username: "alice", Rating: 4,
				Headline: "Worth it", CreatedAt: created.Add(time.Hour), CanEdit: true,
				Ticket: &ticketdto.TicketSummaryDTO{ID: 2, UserID: 2, Username: "bob", Title: "Dune"},
			},
		},
		{
			Kind:      feed.KindTicket,
			ID:        2,
			CreatedAt: created,
			Ticket:    &ticketdto.TicketDTO{ID: 2, UserID: 2, Username: "bob", Title: "Dune", CreatedAt: created},
		},
	}
}

func TestFeedHandler_Feed(t *testing.T) {
	t.Run("renders posts in order", func(t *testing.T) {
		uc := &mockBuildFeedUC{posts: samplePosts()}
		w := testutil.Serve(newFeedEngine(uc), testutil.NewPageRequest("/"))

		require.Equal(t, http.StatusOK, w.Code)
		body := w.Body.String()
		assert.Contains(t, body, "★★★★☆")
		assert.Contains(t, body, "/review/4/delete")
		assert.Less(t, strings.Index(body, `id="review-4"`), strings.Index(body, `id="ticket-2"`))
		assert.Equal(t, uint(1), uc.got.UserID)
	})

	t.Run("empty feed", func(t *testing.T) {
		w := testutil.Serve(newFeedEngine(&mockBuildFeedUC{}), testutil.NewPageRequest("/"))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Nothing here yet.")
	})

	t.Run("json", func(t *testing.T) {
		w := testutil.Serve(newFeedEngine(&mockBuildFeedUC{posts: samplePosts()}),
			testutil.NewJSONRequest(http.MethodGet, "/", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		var resp testutil.APIResponse
		require.NoError(t, testutil.ParseResponse(w, &resp))
		assert.Contains(t, string(resp.Data), `"content_type":"REVIEW"`)
	})

	t.Run("datastore failure", func(t *testing.T) {
		uc := &mockBuildFeedUC{err: errors.NewUnavailableError("database unavailable")}
		w := testutil.Serve(newFeedEngine(uc), testutil.NewPageRequest("/"))

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	})
}

type stubPinger struct{ err error }

func (p stubPinger) PingContext(context.Context) error { return p.err }

func TestHealthHandler_HealthCheck(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"healthy", nil, http.StatusOK},
		{"database down", stderrors.New("connection refused"), http.StatusServiceUnavailable},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			h := NewHealthHandler(stubPinger{err: tc.err}, logger.NewNop())
			engine := testutil.NewEngine()
			engine.GET("/health", h.HealthCheck)

			w := testutil.Serve(engine, testutil.NewJSONRequest(http.MethodGet, "/health", nil))
			assert.Equal(t, tc.wantStatus, w.Code)
		})
	}
}
