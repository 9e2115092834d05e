package rules

import (
	"github.com/konvert-labs/retouch/internal/analysis"
	"github.com/konvert-labs/retouch/internal/config"
	"github.com/konvert-labs/retouch/internal/syntax"
)

var visibilityKeywords = map[string]bool{
	"public":    true,
	"private":   true,
	"protected": true,
	"internal":  true,
}

// RemoveRedundantOverrideVisibility strips an explicit visibility modifier
// from an overriding member when it only restates the inherited one, so the
// visibility is inherited implicitly.
type RemoveRedundantOverrideVisibility struct{}

func (RemoveRedundantOverrideVisibility) Name() string {
	return "redundant-override-visibility"
}

func (RemoveRedundantOverrideVisibility) RequiresExclusiveMutation() bool { return true }

func (r RemoveRedundantOverrideVisibility) CreateAction(el *syntax.Node, snap *analysis.Snapshot, _ *config.Settings) *Action {
	if !r.applicable(el, snap.Sema) {
		return nil
	}
	sema := snap.Sema
	return NewAction(el,
		func(n *syntax.Node) bool { return r.applicable(n, sema) },
		func(n *syntax.Node) {
			mod := visibilityModifier(n)
			if next := mod.NextSibling(); next != nil && next.Kind() == syntax.KindSpace {
				next.Detach()
			}
			mod.Detach()
		})
}

func (RemoveRedundantOverrideVisibility) applicable(n *syntax.Node, sema analysis.Checker) bool {
	if n.Kind() != syntax.KindMemberDecl {
		return false
	}
	if n.ModifierNamed("override") == nil {
		return false
	}
	mod := visibilityModifier(n)
	if mod == nil {
		return false
	}
	inherited, ok := sema.InheritedVisibility(n)
	return ok && inherited == mod.Name()
}

func visibilityModifier(member *syntax.Node) *syntax.Node {
	for _, m := range member.ChildrenOfKind(syntax.KindModifier) {
		if visibilityKeywords[m.Name()] {
			return m
		}
	}
	return nil
}
