package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/konvert-labs/retouch/internal/analysis"
	"github.com/konvert-labs/retouch/internal/syntax"
)

func buildOverridingMember(visibility string) (file, member *syntax.Node) {
	children := []*syntax.Node{}
	if visibility != "" {
		children = append(children, syntax.NewModifier(visibility), syntax.NewSpace(" "))
	}
	children = append(children,
		syntax.NewModifier("override"), syntax.NewSpace(" "),
		syntax.NewToken("fun"), syntax.NewSpace(" "), syntax.NewToken("run"),
		syntax.NewArgList(), syntax.NewSpace(" "),
		syntax.NewBlock(syntax.NewToken("{"), syntax.NewToken("}")))
	member = syntax.NewMemberDecl(children...)
	file = syntax.NewFile(member)
	return file, member
}

func TestRemoveRedundantOverrideVisibility(t *testing.T) {
	t.Parallel()

	rule := RemoveRedundantOverrideVisibility{}

	t.Run("duplicated inherited visibility is removed", func(t *testing.T) {
		t.Parallel()
		file, member := buildOverridingMember("public")
		facts := analysis.NewFacts()
		facts.RecordInheritedVisibility(member, "public")

		action := rule.CreateAction(member, analysis.NewSnapshot(nil, facts), nil)
		require.NotNil(t, action)
		require.True(t, action.Invoke())
		assert.Equal(t, "override fun run() {}", file.Text())
	})

	t.Run("narrowed visibility is kept", func(t *testing.T) {
		t.Parallel()
		_, member := buildOverridingMember("protected")
		facts := analysis.NewFacts()
		facts.RecordInheritedVisibility(member, "public")

		assert.Nil(t, rule.CreateAction(member, analysis.NewSnapshot(nil, facts), nil))
	})

	t.Run("no explicit visibility", func(t *testing.T) {
		t.Parallel()
		_, member := buildOverridingMember("")
		facts := analysis.NewFacts()
		facts.RecordInheritedVisibility(member, "public")

		assert.Nil(t, rule.CreateAction(member, analysis.NewSnapshot(nil, facts), nil))
	})

	t.Run("not an override", func(t *testing.T) {
		t.Parallel()
		member := syntax.NewMemberDecl(
			syntax.NewModifier("public"), syntax.NewSpace(" "),
			syntax.NewToken("fun"), syntax.NewSpace(" "), syntax.NewToken("run"),
			syntax.NewArgList())
		syntax.NewFile(member)
		facts := analysis.NewFacts()
		facts.RecordInheritedVisibility(member, "public")

		assert.Nil(t, rule.CreateAction(member, analysis.NewSnapshot(nil, facts), nil))
	})

	t.Run("unknown inherited visibility degrades to not applicable", func(t *testing.T) {
		t.Parallel()
		_, member := buildOverridingMember("public")
		assert.Nil(t, rule.CreateAction(member, analysis.NewSnapshot(nil, nil), nil))
	})
}
