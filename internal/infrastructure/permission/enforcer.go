package permission

import (
	"context"
	_ "embed"
	"fmt"
	"strconv"
	"sync"

	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
	"github.com/casbin/casbin/v2/persist"
	gormadapter "github.com/casbin/gorm-adapter/v3"
	"gorm.io/gorm"

	"github.com/litrevu/litrevu/internal/domain/permission"
	"github.com/litrevu/litrevu/internal/shared/errors"
	"github.com/litrevu/litrevu/internal/shared/logger"
)

//go:embed model.conf
var modelText string

var _ permission.OwnershipGate = (*Enforcer)(nil)

// Enforcer answers ownership questions through casbin. The request carries the
// resource owner so no per-user policy rows are needed.
type Enforcer struct {
	enforcer *casbin.Enforcer
	mu       sync.RWMutex
	logger   logger.Interface
}

// NewEnforcer persists policies in casbin_rule through the gorm adapter.
func NewEnforcer(db *gorm.DB, log logger.Interface) (*Enforcer, error) {
	adapter, err := gormadapter.NewAdapterByDB(db)
	if err != nil {
		return nil, fmt.Errorf("failed to create casbin adapter: %w", err)
	}
	return newEnforcer(adapter, log)
}

// NewInMemoryEnforcer keeps policies in memory only.
func NewInMemoryEnforcer(log logger.Interface) (*Enforcer, error) {
	return newEnforcer(nil, log)
}

func newEnforcer(adapter persist.Adapter, log logger.Interface) (*Enforcer, error) {
	m, err := model.NewModelFromString(modelText)
	if err != nil {
		return nil, fmt.Errorf("failed to parse casbin model: %w", err)
	}

	var enforcer *casbin.Enforcer
	if adapter != nil {
		enforcer, err = casbin.NewEnforcer(m, adapter)
	} else {
		enforcer, err = casbin.NewEnforcer(m)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create casbin enforcer: %w", err)
	}

	e := &Enforcer{
		enforcer: enforcer,
		logger:   log,
	}
	if err := e.seedOwnerPolicies(); err != nil {
		return nil, err
	}
	return e, nil
}

func (e *Enforcer) seedOwnerPolicies() error {
	resources := []string{permission.ResourceTicket, permission.ResourceComment, permission.ResourceReview}
	actions := []permission.Action{permission.ActionEdit, permission.ActionDelete}

	e.mu.Lock()
	defer e.mu.Unlock()

	added := 0
	for _, res := range resources {
		for _, act := range actions {
			ok, err := e.enforcer.AddPolicy(permission.SubjectOwner, res, string(act))
			if err != nil {
				e.logger.Errorw("failed to add owner policy",
					"error", err,
					"resource", res,
					"action", act)
				return fmt.Errorf("failed to add policy [%s, %s, %s]: %w",
					permission.SubjectOwner, res, act, err)
			}
			if ok {
				added++
			}
		}
	}

	if added > 0 {
		e.logger.Infow("owner policies seeded", "count", added)
	}
	return nil
}

func (e *Enforcer) Enforce(actorID uint, resource string, action permission.Action, ownerID uint) (bool, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	allowed, err := e.enforcer.Enforce(
		strconv.FormatUint(uint64(actorID), 10),
		resource,
		string(action),
		strconv.FormatUint(uint64(ownerID), 10),
	)
	if err != nil {
		e.logger.Errorw("permission check failed", "error", err, "actor_id", actorID, "resource", resource, "action", action)
		return false, fmt.Errorf("permission check failed: %w", err)
	}
	return allowed, nil
}

// AssertOwner returns a Forbidden error unless actorID owns the resource.
func (e *Enforcer) AssertOwner(ctx context.Context, actorID uint, resource permission.Owned, action permission.Action) error {
	if actorID == 0 || resource == nil {
		return errors.NewForbiddenError("You are not allowed to perform this action")
	}

	allowed, err := e.Enforce(actorID, resource.ResourceKind(), action, resource.OwnerID())
	if err != nil {
		return errors.NewInternalError("failed to check permission", err.Error())
	}
	if !allowed {
		e.logger.Warnw("ownership check denied",
			"actor_id", actorID,
			"owner_id", resource.OwnerID(),
			"resource", resource.ResourceKind(),
			"action", action)
		return errors.NewForbiddenError(
			fmt.Sprintf("You can only %s your own %s", action, resource.ResourceKind()))
	}
	return nil
}
