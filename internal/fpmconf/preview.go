package fpmconf

import (
	"fmt"
	"strings"

	"github.com/aymanbagabas/go-udiff"

	"github.com/conn-castle/valet-php/internal/messages"
	"github.com/conn-castle/valet-php/internal/php"
)

// DefaultDiffMaxLines is the default maximum number of diff lines shown per file.
const DefaultDiffMaxLines = 40

// DiffPreview is a per-file unified diff of a pending reconciliation.
type DiffPreview struct {
	Path        string
	UnifiedDiff string
	Truncated   bool
}

// Preview plans v and renders a diff for every file whose content would change.
func (r *Reconciler) Preview(v php.Version, maxLines int) ([]DiffPreview, error) {
	plan, err := r.Plan(v)
	if err != nil {
		return nil, err
	}
	previews := make([]DiffPreview, 0, len(plan.Changes))
	for _, change := range plan.Changes {
		if !change.Changed() {
			continue
		}
		rendered, truncated := renderTruncatedUnifiedDiff(change.Path+" (current)", change.Path+" (target)", change.Before, change.After, maxLines)
		previews = append(previews, DiffPreview{
			Path:        change.Path,
			UnifiedDiff: rendered,
			Truncated:   truncated,
		})
	}
	return previews, nil
}

func normalizeDiffMaxLines(value int) int {
	if value <= 0 {
		return DefaultDiffMaxLines
	}
	return value
}

func renderTruncatedUnifiedDiff(fromName string, toName string, fromContent string, toContent string, maxLines int) (string, bool) {
	limit := normalizeDiffMaxLines(maxLines)
	diff := udiff.Unified(fromName, toName, fromContent, toContent)
	lines := splitDiffLines(diff)
	if len(lines) <= limit {
		return ensureTrailingNewline(strings.Join(lines, "\n")), false
	}
	truncated := append(lines[:limit:limit], fmt.Sprintf(messages.FpmconfDiffTruncatedFmt, limit))
	return ensureTrailingNewline(strings.Join(truncated, "\n")), true
}

func splitDiffLines(content string) []string {
	trimmed := strings.TrimRight(content, "\n")
	if trimmed == "" {
		return []string{}
	}
	return strings.Split(trimmed, "\n")
}

func ensureTrailingNewline(content string) string {
	if content == "" || strings.HasSuffix(content, "\n") {
		return content
	}
	return content + "\n"
}
