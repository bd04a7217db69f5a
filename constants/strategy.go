package constants

// Name-derivation strategies selectable via configuration.
const (
	StrategyPattern  = "pattern"  // regex heuristics over extracted text
	StrategyLastLine = "lastline" // last non-empty line of the document
	StrategyOpenAI   = "openai"   // title suggested by the OpenAI chat API
)

// Strategies holds the allowed values for RENAMER_STRATEGY.
var Strategies = map[string]struct{}{
	StrategyPattern:  {},
	StrategyLastLine: {},
	StrategyOpenAI:   {},
}
