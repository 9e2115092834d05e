// Package formatter renders post-processing results for the terminal.
package formatter

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/konvert-labs/retouch/process"
)

var (
	fileStyle    = color.New(color.FgCyan, color.Bold)
	ruleStyle    = color.New(color.FgYellow, color.Bold)
	elementStyle = color.New(color.FgHiBlue)
	cleanStyle   = color.New(color.FgGreen)
	summaryStyle = color.New(color.FgWhite, color.Bold)
)

// FormatResults renders a per-file report of applied fixes followed by a
// one-line summary.
func FormatResults(results []process.Result) string {
	var builder strings.Builder
	totalFixes := 0

	for _, res := range results {
		builder.WriteString(formatHeader(res))
		if len(res.Applied) == 0 {
			builder.WriteString("  " + cleanStyle.Sprint("no changes") + "\n")
			continue
		}
		for _, fix := range res.Applied {
			builder.WriteString("  fixed: " + ruleStyle.Sprint(fix.Rule) +
				" " + elementStyle.Sprintf("(%s)", fix.Element) + "\n")
		}
		totalFixes += len(res.Applied)
	}

	builder.WriteString(summaryStyle.Sprintf("%d %s processed, %d %s applied\n",
		len(results), plural(len(results), "unit", "units"),
		totalFixes, plural(totalFixes, "fix", "fixes")))
	return builder.String()
}

func formatHeader(res process.Result) string {
	name := res.Name
	if name == "" {
		name = res.Path
	}
	return fileStyle.Sprint(name) + fmt.Sprintf(" (%s)\n", res.Path)
}

func plural(n int, singular, plural string) string {
	if n == 1 {
		return singular
	}
	return plural
}
