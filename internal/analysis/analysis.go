// Package analysis holds the semantic artifacts the converter attaches to a
// translated tree: diagnostics from checking the translation, and recorded
// resolution facts (types, symbol targets, inherited visibilities). The
// post-processing rules consume both through a Snapshot.
package analysis

import (
	"github.com/konvert-labs/retouch/internal/syntax"
)

// DiagnosticKind identifies a finding of the converter's checker.
type DiagnosticKind string

const (
	UninitializedVariable            DiagnosticKind = "uninitialized-variable"
	UnresolvedReference              DiagnosticKind = "unresolved-reference"
	UnresolvedReferenceWrongReceiver DiagnosticKind = "unresolved-reference-wrong-receiver"
	NoApplicableOverload             DiagnosticKind = "no-applicable-overload"
	ReassignmentToReadOnly           DiagnosticKind = "reassignment-to-read-only"
	CapturedValueInitialization      DiagnosticKind = "captured-value-initialization"
	CapturedMemberInitialization     DiagnosticKind = "captured-member-value-initialization"
	UnnecessaryNotNullAssertion      DiagnosticKind = "unnecessary-not-null-assertion"
)

// Diagnostic is one finding bound to one tree element.
type Diagnostic struct {
	Kind    DiagnosticKind
	Element *syntax.Node
}

// Diagnostics is a queryable collection of findings for one analysis
// snapshot.
type Diagnostics struct {
	byElement map[*syntax.Node][]Diagnostic
}

func NewDiagnostics() *Diagnostics {
	return &Diagnostics{byElement: make(map[*syntax.Node][]Diagnostic)}
}

func (d *Diagnostics) Add(kind DiagnosticKind, element *syntax.Node) {
	d.byElement[element] = append(d.byElement[element], Diagnostic{Kind: kind, Element: element})
}

// ForElement returns the findings attached to the element, in insertion
// order.
func (d *Diagnostics) ForElement(element *syntax.Node) []Diagnostic {
	return d.byElement[element]
}

// Severity classifies an inspection finding.
type Severity int

const (
	SeverityError Severity = iota
	SeverityWarning
	SeverityInfo
)

func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	case SeverityInfo:
		return "info"
	}
	return "unknown"
}
