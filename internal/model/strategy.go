package model

// BuildStrategy controls the order words are tried when building a puzzle
type BuildStrategy string

const (
	StrategyAsGiven      BuildStrategy = "as-given"      // Input order
	StrategyLongestFirst BuildStrategy = "longest-first" // Longer words first, ties keep input order
	StrategyShuffled     BuildStrategy = "shuffled"      // Random order
)

// DisplayName returns a human-readable label for a strategy
func (s BuildStrategy) DisplayName() string {
	switch s {
	case StrategyAsGiven:
		return "As given"
	case StrategyLongestFirst:
		return "Longest first"
	case StrategyShuffled:
		return "Shuffled"
	default:
		return string(s)
	}
}

// Valid returns true if s is a known strategy
func (s BuildStrategy) Valid() bool {
	for _, v := range ValidBuildStrategies() {
		if v == s {
			return true
		}
	}
	return false
}

// ValidBuildStrategies returns all valid strategy names
func ValidBuildStrategies() []BuildStrategy {
	return []BuildStrategy{StrategyAsGiven, StrategyLongestFirst, StrategyShuffled}
}
