package errors

import (
	"math"
	"strings"
	"unicode"
	"unicode/utf8"
)

// MaxLabelLength is the longest label text accepted, in runes.
const MaxLabelLength = 120

// ValidateAlignment rejects alignment factors that are not finite numbers.
// Values outside [0,100] are accepted; callers decide whether to clamp.
func ValidateAlignment(alignment float64) error {
	if math.IsNaN(alignment) || math.IsInf(alignment, 0) {
		return New(ErrCodeInvalidAlignment, "alignment must be a finite number, got %v", alignment)
	}
	return nil
}

// ValidateIndex checks that index addresses one of count label slots.
func ValidateIndex(index, count int) error {
	if index < 0 || index >= count {
		return New(ErrCodeInvalidIndex, "label index %d out of range [0,%d)", index, count)
	}
	return nil
}

// ValidateLabel validates a single label text for display.
//
// The validation rules are intentionally conservative:
//   - No empty or whitespace-only labels
//   - No control characters (including newlines)
//   - Valid UTF-8
//   - Maximum length of [MaxLabelLength] runes
func ValidateLabel(text string) error {
	if strings.TrimSpace(text) == "" {
		return New(ErrCodeInvalidLabel, "label text cannot be empty")
	}
	if !utf8.ValidString(text) {
		return New(ErrCodeInvalidLabel, "label text is not valid UTF-8")
	}
	if n := utf8.RuneCountInString(text); n > MaxLabelLength {
		return New(ErrCodeInvalidLabel, "label text too long (%d runes, max %d)", n, MaxLabelLength)
	}
	for _, r := range text {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidLabel, "label text contains invalid control characters")
		}
	}
	return nil
}

// ValidateLabels validates every label and requires at least two of them.
func ValidateLabels(labels []string) error {
	if len(labels) < 2 {
		return New(ErrCodeUnsupportedLabelCount, "a scale needs at least 2 labels, got %d", len(labels))
	}
	for i, l := range labels {
		if err := ValidateLabel(l); err != nil {
			return Wrap(ErrCodeInvalidLabel, err, "label %d", i)
		}
	}
	return nil
}
