package coercer

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// numberPattern picks the first unsigned decimal out of free text such as "25 km".
var numberPattern = regexp.MustCompile(`[0-9]*\.?[0-9]+`)

// TypeCoercer turns raw cell text into the typed values of the place schema.
// Raw cells are strings; an empty string stands for a missing value.
type TypeCoercer struct {
	config CoercionConfig
	truthy map[string]struct{}
}

// CoercionConfig defines the coercion rules
type CoercionConfig struct {
	TruthyTokens     []string `json:"truthy_tokens"`     // lowercase tokens read as true
	NormalizeStrings bool     `json:"normalize_strings"` // whether to trim text cells
}

// DefaultCoercionConfig returns the rules the place loader uses. Free text is
// kept verbatim; only the spooky token is trimmed.
func DefaultCoercionConfig() CoercionConfig {
	return CoercionConfig{
		TruthyTokens:     []string{"true", "1", "yes", "y"},
		NormalizeStrings: false,
	}
}

// NewTypeCoercer creates a coercer with the given config
func NewTypeCoercer(config CoercionConfig) *TypeCoercer {
	truthy := make(map[string]struct{}, len(config.TruthyTokens))
	for _, tok := range config.TruthyTokens {
		truthy[strings.ToLower(strings.TrimSpace(tok))] = struct{}{}
	}
	return &TypeCoercer{config: config, truthy: truthy}
}

// Distance extracts the first number in raw. It returns nil when there is
// none, never zero.
func (c *TypeCoercer) Distance(raw string) *float64 {
	match := numberPattern.FindString(raw)
	if match == "" {
		return nil
	}
	val, err := strconv.ParseFloat(match, 64)
	if err != nil || math.IsInf(val, 0) || math.IsNaN(val) {
		return nil
	}
	return &val
}

// Bool reports whether raw is one of the truthy tokens, ignoring case and
// surrounding whitespace. Blank and unknown values are false.
func (c *TypeCoercer) Bool(raw string) bool {
	_, ok := c.truthy[strings.ToLower(strings.TrimSpace(raw))]
	return ok
}

// Text returns the cell as free text; missing values are already "".
func (c *TypeCoercer) Text(raw string) string {
	if c.config.NormalizeStrings {
		return strings.TrimSpace(raw)
	}
	return raw
}
