// Package rules implements the post-processing rule set applied to freshly
// translated syntax trees. A rule inspects one element and, when it applies,
// hands back a deferred Action; the driver gathers candidate actions across
// all rules before applying any of them, so every Action re-validates its
// precondition against the current tree before committing.
package rules

import (
	"github.com/konvert-labs/retouch/internal/analysis"
	"github.com/konvert-labs/retouch/internal/config"
	"github.com/konvert-labs/retouch/internal/syntax"
)

// Rule is the contract every post-processing rule satisfies.
type Rule interface {
	// Name returns the rule's identifier.
	Name() string

	// CreateAction inspects the element against the analysis snapshot and
	// returns a deferred mutation, or nil when the rule does not apply.
	// It never mutates the tree. Settings may be nil.
	CreateAction(el *syntax.Node, snap *analysis.Snapshot, settings *config.Settings) *Action

	// RequiresExclusiveMutation is a scheduling hint to the driver: the
	// produced actions mutate the tree and need single-writer access.
	RequiresExclusiveMutation() bool
}

// Action is a deferred mutation bound to one target element. Invoking it
// first re-evaluates the applicability check; if an intervening mutation has
// invalidated the precondition the action is a silent no-op. An Action fires
// at most once.
type Action struct {
	target  *syntax.Node
	check   func(*syntax.Node) bool
	commit  func(*syntax.Node)
	invoked bool
}

// NewAction builds an action over the target. check re-validates the
// applicability condition at commit time; a nil check leaves only the
// generic re-validation, which requires the target to still be part of its
// file tree.
func NewAction(target *syntax.Node, check func(*syntax.Node) bool, commit func(*syntax.Node)) *Action {
	return &Action{target: target, check: check, commit: commit}
}

// Target returns the element the action will mutate.
func (a *Action) Target() *syntax.Node { return a.target }

// Invoke runs the action. It returns true when the mutation was performed
// and false when the action was stale or already invoked.
func (a *Action) Invoke() bool {
	if a.invoked {
		return false
	}
	a.invoked = true
	if !a.target.Valid() {
		return false
	}
	if a.check != nil && !a.check(a.target) {
		return false
	}
	a.commit(a.target)
	return true
}
