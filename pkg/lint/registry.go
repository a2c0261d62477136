package lint

import (
	"errors"
	"fmt"

	"github.com/leapstack-labs/lintpass/pkg/core"
)

// ErrRegistryConflict is matched by every *RegistryConflictError.
var ErrRegistryConflict = errors.New("rule registry conflict")

// RegistryConflictError reports a rule that cannot join a registry: a
// duplicate identifier, an empty identifier or a nil rule.
type RegistryConflictError struct {
	ID     string
	Reason string
}

func (e *RegistryConflictError) Error() string {
	if e.ID == "" {
		return fmt.Sprintf("rule registry: %s", e.Reason)
	}
	return fmt.Sprintf("rule registry: rule %q: %s", e.ID, e.Reason)
}

// Is lets errors.Is(err, ErrRegistryConflict) match.
func (e *RegistryConflictError) Is(target error) bool {
	return target == ErrRegistryConflict
}

// Registry is the ordered set of rules active for a run.
// Order is insertion order and decides diagnostic order when several rules
// match the same node. A Registry is not modified after NewRegistry returns.
type Registry struct {
	rules []Rule
	byID  map[string]Rule // keyed by ID
}

// NewRegistry builds a registry from rules in the given order. It fails fast
// with a *RegistryConflictError if any rule is nil, has an empty ID, or
// shares its ID with an earlier rule.
func NewRegistry(rules ...Rule) (*Registry, error) {
	r := &Registry{
		rules: make([]Rule, 0, len(rules)),
		byID:  make(map[string]Rule, len(rules)),
	}
	for i, rule := range rules {
		if rule == nil {
			return nil, &RegistryConflictError{Reason: fmt.Sprintf("rule at position %d is nil", i)}
		}
		id := rule.ID()
		if id == "" {
			return nil, &RegistryConflictError{Reason: fmt.Sprintf("rule at position %d has an empty identifier", i)}
		}
		if _, dup := r.byID[id]; dup {
			return nil, &RegistryConflictError{ID: id, Reason: "identifier already registered"}
		}
		r.byID[id] = rule
		r.rules = append(r.rules, rule)
	}
	return r, nil
}

// MustNewRegistry is NewRegistry for static rule sets known to be valid,
// such as package-level test fixtures. It panics on conflict.
func MustNewRegistry(rules ...Rule) *Registry {
	r, err := NewRegistry(rules...)
	if err != nil {
		panic(err)
	}
	return r
}

// Rules returns all registered rules in registry order.
func (r *Registry) Rules() []Rule {
	if r == nil {
		return nil
	}
	out := make([]Rule, len(r.rules))
	copy(out, r.rules)
	return out
}

// Active returns the rules that run, in registry order: every rule whose
// default severity is not SeverityAllow.
func (r *Registry) Active() []Rule {
	if r == nil {
		return nil
	}
	out := make([]Rule, 0, len(r.rules))
	for _, rule := range r.rules {
		if rule.DefaultSeverity() != core.SeverityAllow {
			out = append(out, rule)
		}
	}
	return out
}

// Lookup returns a rule by its ID.
func (r *Registry) Lookup(id string) (Rule, bool) {
	if r == nil {
		return nil, false
	}
	rule, ok := r.byID[id]
	return rule, ok
}

// Len returns the number of registered rules.
func (r *Registry) Len() int {
	if r == nil {
		return 0
	}
	return len(r.rules)
}

// Infos returns metadata for all registered rules in registry order.
func (r *Registry) Infos() []core.RuleInfo {
	rules := r.Rules()
	infos := make([]core.RuleInfo, 0, len(rules))
	for _, rule := range rules {
		infos = append(infos, GetRuleInfo(rule))
	}
	return infos
}
