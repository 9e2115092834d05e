// Package processor drives one post-processing pass: it walks a translated
// tree, asks every registered rule for candidate actions, and applies them
// while holding the (single-threaded) right to mutate the tree.
package processor

import (
	"sort"

	"go.uber.org/zap"

	"github.com/konvert-labs/retouch/internal/analysis"
	"github.com/konvert-labs/retouch/internal/config"
	"github.com/konvert-labs/retouch/internal/rules"
	"github.com/konvert-labs/retouch/internal/syntax"
)

// maxRounds bounds the fixed-point loop. A correctly written rule set
// converges in a handful of rounds; hitting the bound means two rules keep
// re-triggering each other and is logged as a setup problem.
const maxRounds = 10

// AppliedFix records one committed mutation.
type AppliedFix struct {
	Rule    string
	Element string
}

// Processor applies a registry's rules to translated trees. It is built
// once and reused across units.
type Processor struct {
	registry *rules.Registry
	settings *config.Settings
	logger   *zap.Logger
}

func New(registry *rules.Registry, settings *config.Settings, logger *zap.Logger) *Processor {
	if settings == nil {
		settings = config.Default()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Processor{registry: registry, settings: settings, logger: logger}
}

type candidate struct {
	action   *rules.Action
	rule     rules.Rule
	priority int
}

// Run processes the tree until no rule changes it anymore and returns the
// fixes that were committed. Candidate actions are gathered for the whole
// tree before any is applied; stale ones no-op on their own.
func (p *Processor) Run(root *syntax.Node, snap *analysis.Snapshot) []AppliedFix {
	var applied []AppliedFix
	for round := 0; ; round++ {
		if round == maxRounds {
			p.logger.Warn("post-processing did not reach a fixed point",
				zap.Int("rounds", round))
			break
		}

		before := root.Text()
		fixes := p.runRound(root, snap)
		if root.Text() == before {
			break
		}
		applied = append(applied, fixes...)
	}
	return applied
}

func (p *Processor) runRound(root *syntax.Node, snap *analysis.Snapshot) []AppliedFix {
	var candidates []candidate
	root.Walk(func(n *syntax.Node) bool {
		for _, rule := range p.registry.Processings() {
			if p.settings.RuleDisabled(rule.Name()) {
				continue
			}
			if action := rule.CreateAction(n, snap, p.settings); action != nil {
				candidates = append(candidates, candidate{
					action:   action,
					rule:     rule,
					priority: p.registry.Priority(rule),
				})
			}
		}
		return true
	})

	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].priority != candidates[j].priority {
			return candidates[i].priority < candidates[j].priority
		}
		return candidates[i].action.Target().Precedes(candidates[j].action.Target())
	})

	var fixes []AppliedFix
	for _, c := range candidates {
		target := c.action.Target()
		if !c.action.Invoke() {
			continue
		}
		fixes = append(fixes, AppliedFix{Rule: c.rule.Name(), Element: target.Kind().String()})
		p.logger.Debug("applied fix",
			zap.String("rule", c.rule.Name()),
			zap.String("element", target.Kind().String()))
	}
	return fixes
}
