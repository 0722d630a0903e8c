package summary

// ScoringConfig holds the constants of the heuristic sentence scorer.
type ScoringConfig struct {
	// KeywordWeight is added per distinct keyword present in a sentence.
	KeywordWeight float64 `yaml:"keyword_weight"` // default: 3
	// LongSentenceLength and VeryLongSentenceLength are character thresholds;
	// crossing each adds LengthBonus to the score.
	LongSentenceLength     int     `yaml:"long_sentence_length"`      // default: 120
	VeryLongSentenceLength int     `yaml:"very_long_sentence_length"` // default: 250
	LengthBonus            float64 `yaml:"length_bonus"`              // default: 1
	// PositionBonusEnabled adds max(0, 1 - i/N) for the sentence at index i
	// of N, rewarding earlier sentences.
	PositionBonusEnabled *bool `yaml:"position_bonus_enabled"` // default: true
}

// DefaultScoringConfig returns the default scoring configuration.
func DefaultScoringConfig() *ScoringConfig {
	enabled := true
	return &ScoringConfig{
		KeywordWeight:          3,
		LongSentenceLength:     120,
		VeryLongSentenceLength: 250,
		LengthBonus:            1,
		PositionBonusEnabled:   &enabled,
	}
}

// ApplyDefaults fills in zero values with defaults.
func (c *ScoringConfig) ApplyDefaults() {
	defaults := DefaultScoringConfig()

	if c.KeywordWeight == 0 {
		c.KeywordWeight = defaults.KeywordWeight
	}
	if c.LongSentenceLength == 0 {
		c.LongSentenceLength = defaults.LongSentenceLength
	}
	if c.VeryLongSentenceLength == 0 {
		c.VeryLongSentenceLength = defaults.VeryLongSentenceLength
	}
	if c.LengthBonus == 0 {
		c.LengthBonus = defaults.LengthBonus
	}
	if c.PositionBonusEnabled == nil {
		c.PositionBonusEnabled = defaults.PositionBonusEnabled
	}
}
