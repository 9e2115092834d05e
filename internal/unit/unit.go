// Package unit reads the translation-unit dumps the converter writes after
// translating one source file: the produced tree with every leaf spelled
// out, the facts its checker recorded, and the diagnostics it raised.
package unit

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/konvert-labs/retouch/internal/analysis"
	"github.com/konvert-labs/retouch/internal/syntax"
)

// Unit is one translated file ready for post-processing.
type Unit struct {
	Name     string
	Root     *syntax.Node
	Snapshot *analysis.Snapshot
}

type document struct {
	Name                  string           `yaml:"name"`
	Tree                  *nodeDump        `yaml:"tree"`
	Types                 []typeFact       `yaml:"types"`
	Resolutions           []resolutionFact `yaml:"resolutions"`
	InheritedVisibilities []visibilityFact `yaml:"inherited_visibilities"`
	InferredTypeArguments []inferenceFact  `yaml:"inferred_type_arguments"`
	Diagnostics           []diagnosticFact `yaml:"diagnostics"`
}

type nodeDump struct {
	ID       string      `yaml:"id"`
	Kind     string      `yaml:"kind"`
	Name     string      `yaml:"name"`
	Text     string      `yaml:"text"`
	Nullable bool        `yaml:"nullable"`
	Mutable  bool        `yaml:"mutable"`
	Children []*nodeDump `yaml:"children"`
}

type typeDump struct {
	Name        string `yaml:"name"`
	Nullability string `yaml:"nullability"`
}

type typeFact struct {
	Node string   `yaml:"node"`
	Type typeDump `yaml:"type"`
}

type resolutionFact struct {
	Ref  string `yaml:"ref"`
	Decl string `yaml:"decl"`
}

type visibilityFact struct {
	Member     string `yaml:"member"`
	Visibility string `yaml:"visibility"`
}

type inferenceFact struct {
	Call  string     `yaml:"call"`
	Types []typeDump `yaml:"types"`
}

type diagnosticFact struct {
	Kind string `yaml:"kind"`
	Node string `yaml:"node"`
}

// Load reads a unit dump from disk.
func Load(path string) (*Unit, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open unit dump: %w", err)
	}
	defer f.Close()

	u, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return u, nil
}

// Decode reads a unit dump from r.
func Decode(r io.Reader) (*Unit, error) {
	var doc document
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to parse unit dump: %w", err)
	}
	if doc.Tree == nil {
		return nil, fmt.Errorf("unit dump has no tree")
	}
	if doc.Tree.Kind != syntax.KindFile.String() {
		return nil, fmt.Errorf("unit tree root must be a file, got %q", doc.Tree.Kind)
	}

	byID := make(map[string]*syntax.Node)
	root, err := buildNode(doc.Tree, byID)
	if err != nil {
		return nil, err
	}

	snap, err := buildSnapshot(&doc, byID)
	if err != nil {
		return nil, err
	}

	return &Unit{Name: doc.Name, Root: root, Snapshot: snap}, nil
}

func buildNode(d *nodeDump, byID map[string]*syntax.Node) (*syntax.Node, error) {
	kind, ok := syntax.KindFromName(d.Kind)
	if !ok {
		return nil, fmt.Errorf("unknown node kind %q", d.Kind)
	}

	children := make([]*syntax.Node, 0, len(d.Children))
	for _, c := range d.Children {
		built, err := buildNode(c, byID)
		if err != nil {
			return nil, err
		}
		children = append(children, built)
	}

	n := syntax.NewNode(kind, syntax.NodeData{
		Name:     d.Name,
		Text:     d.Text,
		Nullable: d.Nullable,
		Mutable:  d.Mutable,
	}, children...)

	if d.ID != "" {
		if _, dup := byID[d.ID]; dup {
			return nil, fmt.Errorf("duplicate node id %q", d.ID)
		}
		byID[d.ID] = n
	}
	return n, nil
}

func buildSnapshot(doc *document, byID map[string]*syntax.Node) (*analysis.Snapshot, error) {
	facts := analysis.NewFacts()
	diags := analysis.NewDiagnostics()

	lookup := func(id, role string) (*syntax.Node, error) {
		n, ok := byID[id]
		if !ok {
			return nil, fmt.Errorf("%s references unknown node id %q", role, id)
		}
		return n, nil
	}

	for _, f := range doc.Types {
		n, err := lookup(f.Node, "type fact")
		if err != nil {
			return nil, err
		}
		t, err := parseType(f.Type)
		if err != nil {
			return nil, err
		}
		facts.RecordType(n, t)
	}

	for _, f := range doc.Resolutions {
		ref, err := lookup(f.Ref, "resolution")
		if err != nil {
			return nil, err
		}
		decl, err := lookup(f.Decl, "resolution")
		if err != nil {
			return nil, err
		}
		facts.RecordResolution(ref, decl)
	}

	for _, f := range doc.InheritedVisibilities {
		member, err := lookup(f.Member, "inherited visibility")
		if err != nil {
			return nil, err
		}
		facts.RecordInheritedVisibility(member, f.Visibility)
	}

	for _, f := range doc.InferredTypeArguments {
		call, err := lookup(f.Call, "inferred type arguments")
		if err != nil {
			return nil, err
		}
		types := make([]analysis.Type, 0, len(f.Types))
		for _, td := range f.Types {
			t, err := parseType(td)
			if err != nil {
				return nil, err
			}
			types = append(types, t)
		}
		facts.RecordInferredTypeArguments(call, types)
	}

	for _, f := range doc.Diagnostics {
		n, err := lookup(f.Node, "diagnostic")
		if err != nil {
			return nil, err
		}
		diags.Add(analysis.DiagnosticKind(f.Kind), n)
	}

	return analysis.NewSnapshot(diags, facts), nil
}

func parseType(d typeDump) (analysis.Type, error) {
	var nullability analysis.Nullability
	switch d.Nullability {
	case "", "non-null":
		nullability = analysis.NonNull
	case "nullable":
		nullability = analysis.Nullable
	case "platform":
		nullability = analysis.Platform
	default:
		return analysis.Type{}, fmt.Errorf("unknown nullability %q", d.Nullability)
	}
	return analysis.Type{Name: d.Name, Nullability: nullability}, nil
}
