package formatter

import (
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"

	"github.com/konvert-labs/retouch/internal/processor"
	"github.com/konvert-labs/retouch/process"
)

func init() {
	color.NoColor = true
}

func TestFormatResults(t *testing.T) {
	results := []process.Result{
		{
			Path: "out/cast.unit.yaml",
			Name: "Cast.kt",
			Applied: []processor.AppliedFix{
				{Rule: "redundant-nullable-cast", Element: "cast-expr"},
				{Rule: "redundant-semicolon", Element: "semicolon"},
			},
		},
		{
			Path: "out/clean.unit.yaml",
			Name: "Clean.kt",
		},
	}

	got := FormatResults(results)

	assert.Contains(t, got, "Cast.kt (out/cast.unit.yaml)")
	assert.Contains(t, got, "fixed: redundant-nullable-cast (cast-expr)")
	assert.Contains(t, got, "fixed: redundant-semicolon (semicolon)")
	assert.Contains(t, got, "Clean.kt")
	assert.Contains(t, got, "no changes")
	assert.Contains(t, got, "2 units processed, 2 fixes applied")
}

func TestFormatResultsEmpty(t *testing.T) {
	got := FormatResults(nil)
	assert.Contains(t, got, "0 units processed, 0 fixes applied")
}

func TestFormatResultsSingular(t *testing.T) {
	results := []process.Result{
		{
			Path: "out/one.unit.yaml",
			Name: "One.kt",
			Applied: []processor.AppliedFix{
				{Rule: "remove-empty-class-body", Element: "class-body"},
			},
		},
	}

	got := FormatResults(results)

	assert.Contains(t, got, "1 unit processed, 1 fix applied")
}
