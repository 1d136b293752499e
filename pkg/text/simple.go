package text

import (
	"context"
	"io"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"gitlab.com/tozd/go/errors"
)

var _ TextReplacer = (*SimpleTextReplacer)(nil)

// SimpleTextReplacer implements TextReplacer using literal substring replacement
type SimpleTextReplacer struct{}

// NewSimpleTextReplacer creates a new SimpleTextReplacer
func NewSimpleTextReplacer() *SimpleTextReplacer {
	return &SimpleTextReplacer{}
}

// ReplaceText implements TextReplacer.ReplaceText
func (r *SimpleTextReplacer) ReplaceText(ctx context.Context, content io.Reader, rules []ReplacementRule) (*ReplacementResult, error) {
	originalContent, err := io.ReadAll(content)
	if err != nil {
		return nil, errors.Errorf("reading content: %w", err)
	}

	result := &ReplacementResult{
		OriginalContent: originalContent,
		ModifiedContent: originalContent,
	}

	currentContent := string(originalContent)
	for _, rule := range rules {
		if err := ctx.Err(); err != nil {
			return nil, errors.Errorf("replacing text: %w", err)
		}

		// an empty needle would match between every rune
		if rule.FromText == "" {
			continue
		}

		count := strings.Count(currentContent, rule.FromText)
		if count == 0 {
			continue
		}

		newContent := strings.ReplaceAll(currentContent, rule.FromText, rule.ToText)
		result.ReplacementCount += count
		currentContent = newContent
	}

	// a rule like foo->foo counts matches but leaves the bytes alone
	result.WasModified = currentContent != string(originalContent)
	if result.WasModified {
		result.ModifiedContent = []byte(currentContent)
	}
	return result, nil
}

// ValidateRules implements TextReplacer.ValidateRules
func (r *SimpleTextReplacer) ValidateRules(rules []ReplacementRule) error {
	for i, rule := range rules {
		if rule.FromText == "" {
			return errors.Errorf("rule %d: from_text is required", i)
		}
		if rule.FileFilterGlob != "" && !doublestar.ValidatePattern(rule.FileFilterGlob) {
			return errors.Errorf("rule %d: invalid file_filter_glob %q", i, rule.FileFilterGlob)
		}
	}
	return nil
}
