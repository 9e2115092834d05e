package rules

import (
	"github.com/konvert-labs/retouch/internal/analysis"
	"github.com/konvert-labs/retouch/internal/syntax"
)

// NewMakeDeclarationMutable builds the diagnostic-triggered fix for
// reassignment of a read-only binding: the assignment target resolves to
// its declaration, whose mutability keyword is rewritten to mutable. The
// factory declines when the target does not resolve to a declaration.
func NewMakeDeclarationMutable() Rule {
	return ForDiagnosticsFactory("reassigned-read-only",
		func(el *syntax.Node, _ analysis.Diagnostic, snap *analysis.Snapshot) func() {
			decl, ok := snap.Sema.Resolve(el)
			if !ok || decl.Kind() != syntax.KindVarDecl {
				return nil
			}
			return func() {
				if decl.Mutable() {
					return
				}
				decl.SetMutable(true)
			}
		},
		analysis.ReassignmentToReadOnly,
		analysis.CapturedValueInitialization,
		analysis.CapturedMemberInitialization,
	)
}
