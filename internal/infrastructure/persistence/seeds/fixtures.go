// Package seeds loads demo data from a YAML fixtures file.
package seeds

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/litrevu/litrevu/internal/domain/follow"
	"github.com/litrevu/litrevu/internal/domain/review"
	"github.com/litrevu/litrevu/internal/domain/ticket"
	"github.com/litrevu/litrevu/internal/domain/user"
	"github.com/litrevu/litrevu/internal/shared/errors"
	"github.com/litrevu/litrevu/internal/shared/logger"
)

type Fixtures struct {
	Users   []UserFixture   `yaml:"users"`
	Follows []FollowFixture `yaml:"follows"`
	Tickets []TicketFixture `yaml:"tickets"`
}

type UserFixture struct {
	Username  string `yaml:"username"`
	Email     string `yaml:"email"`
	Password  string `yaml:"password"`
	BirthDate string `yaml:"birth_date"`
	Gender    string `yaml:"gender"`
}

type FollowFixture struct {
	Follower string `yaml:"follower"`
	Followed string `yaml:"followed"`
}

type TicketFixture struct {
	Author      string          `yaml:"author"`
	Title       string          `yaml:"title"`
	Description string          `yaml:"description"`
	Comments    []CommentSeed   `yaml:"comments"`
	Reviews     []ReviewFixture `yaml:"reviews"`
}

type CommentSeed struct {
	Author string `yaml:"author"`
	Body   string `yaml:"body"`
}

type ReviewFixture struct {
	Author   string `yaml:"author"`
	Rating   int    `yaml:"rating"`
	Headline string `yaml:"headline"`
	Body     string `yaml:"body"`
}

// Decode parses a fixtures document. Unknown keys are rejected.
func Decode(r io.Reader) (*Fixtures, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var f Fixtures
	if err := dec.Decode(&f); err != nil {
		if stderrors.Is(err, io.EOF) {
			return &f, nil
		}
		return nil, fmt.Errorf("failed to decode fixtures: %w", err)
	}
	return &f, nil
}

type PasswordHasher interface {
	Hash(password string) (string, error)
}

// Result counts the rows a Seed call created.
type Result struct {
	Users    int
	Follows  int
	Tickets  int
	Comments int
	Reviews  int
}

type Seeder struct {
	users    user.Repository
	follows  follow.Repository
	tickets  ticket.TicketRepository
	comments ticket.CommentRepository
	reviews  review.Repository
	hasher   PasswordHasher
	logger   logger.Interface
}

func NewSeeder(
	users user.Repository,
	follows follow.Repository,
	tickets ticket.TicketRepository,
	comments ticket.CommentRepository,
	reviews review.Repository,
	hasher PasswordHasher,
	logger logger.Interface,
) *Seeder {
	return &Seeder{
		users:    users,
		follows:  follows,
		tickets:  tickets,
		comments: comments,
		reviews:  reviews,
		hasher:   hasher,
		logger:   logger,
	}
}

// Seed inserts f. Existing users and follow edges are reused, and a ticket
// is skipped when its author already has one with the same title, so running
// the same file twice adds nothing.
func (s *Seeder) Seed(ctx context.Context, f *Fixtures) (*Result, error) {
	res := &Result{}
	ids := make(map[string]uint, len(f.Users))

	for _, uf := range f.Users {
		id, created, err := s.seedUser(ctx, uf)
		if err != nil {
			return res, fmt.Errorf("user %q: %w", uf.Username, err)
		}
		ids[uf.Username] = id
		if created {
			res.Users++
		}
	}

	lookup := func(name string) (uint, error) {
		if id, ok := ids[name]; ok {
			return id, nil
		}
		normalized, err := user.NormalizeUsername(name)
		if err != nil {
			return 0, err
		}
		u, err := s.users.GetByUsername(ctx, normalized)
		if err != nil {
			return 0, err
		}
		ids[name] = u.ID()
		return u.ID(), nil
	}

	for _, ff := range f.Follows {
		followerID, err := lookup(ff.Follower)
		if err != nil {
			return res, fmt.Errorf("follow %s -> %s: %w", ff.Follower, ff.Followed, err)
		}
		followedID, err := lookup(ff.Followed)
		if err != nil {
			return res, fmt.Errorf("follow %s -> %s: %w", ff.Follower, ff.Followed, err)
		}
		exists, err := s.follows.Exists(ctx, followerID, followedID)
		if err != nil {
			return res, err
		}
		if exists {
			continue
		}
		edge, err := follow.NewEdge(followerID, followedID)
		if err != nil {
			return res, fmt.Errorf("follow %s -> %s: %w", ff.Follower, ff.Followed, err)
		}
		if err := s.follows.Create(ctx, edge); err != nil {
			return res, err
		}
		res.Follows++
	}

	for _, tf := range f.Tickets {
		if err := s.seedTicket(ctx, tf, lookup, res); err != nil {
			return res, fmt.Errorf("ticket %q: %w", tf.Title, err)
		}
	}

	s.logger.Infow("fixtures loaded",
		"users", res.Users,
		"follows", res.Follows,
		"tickets", res.Tickets,
		"comments", res.Comments,
		"reviews", res.Reviews)
	return res, nil
}

func (s *Seeder) seedUser(ctx context.Context, uf UserFixture) (uint, bool, error) {
	name, err := user.NormalizeUsername(uf.Username)
	if err != nil {
		return 0, false, err
	}

	existing, err := s.users.GetByUsername(ctx, name)
	if err == nil {
		return existing.ID(), false, nil
	}
	if !errors.IsNotFoundError(err) {
		return 0, false, err
	}

	if uf.Password == "" {
		return 0, false, fmt.Errorf("password is required")
	}
	hash, err := s.hasher.Hash(uf.Password)
	if err != nil {
		return 0, false, err
	}

	var birthDate *time.Time
	if uf.BirthDate != "" {
		t, err := time.Parse(time.DateOnly, uf.BirthDate)
		if err != nil {
			return 0, false, fmt.Errorf("invalid birth_date: %w", err)
		}
		birthDate = &t
	}
	gender, err := user.ParseGender(uf.Gender)
	if err != nil {
		return 0, false, err
	}

	u, err := user.NewUser(name, uf.Email, hash, birthDate, gender)
	if err != nil {
		return 0, false, err
	}
	if err := s.users.Create(ctx, u); err != nil {
		return 0, false, err
	}
	return u.ID(), true, nil
}

func (s *Seeder) seedTicket(ctx context.Context, tf TicketFixture, lookup func(string) (uint, error), res *Result) error {
	authorID, err := lookup(tf.Author)
	if err != nil {
		return err
	}

	existing, err := s.tickets.ListByAuthors(ctx, []uint{authorID})
	if err != nil {
		return err
	}
	for _, t := range existing {
		if t.Title() == tf.Title {
			return nil
		}
	}

	t, err := ticket.NewTicket(authorID, tf.Title, tf.Description)
	if err != nil {
		return err
	}
	if err := s.tickets.Create(ctx, t); err != nil {
		return err
	}
	res.Tickets++

	for _, cf := range tf.Comments {
		commenterID, err := lookup(cf.Author)
		if err != nil {
			return err
		}
		c, err := ticket.NewComment(t.ID(), commenterID, cf.Body)
		if err != nil {
			return err
		}
		if err := s.comments.Create(ctx, c); err != nil {
			return err
		}
		res.Comments++
	}

	for _, rf := range tf.Reviews {
		reviewerID, err := lookup(rf.Author)
		if err != nil {
			return err
		}
		r, err := review.NewReview(t.ID(), reviewerID, rf.Rating, rf.Headline, rf.Body)
		if err != nil {
			return err
		}
		if err := s.reviews.Create(ctx, r); err != nil {
			return err
		}
		res.Reviews++
	}
	return nil
}
