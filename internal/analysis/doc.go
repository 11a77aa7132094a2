// Package analysis implements the concurrent analysis of one onboarding
// question/answer pair. A fixed set of independent agents fan out over the
// shared immutable input, each calling the text-generation backend and
// parsing its reply into a typed payload; the executor joins every outcome
// and either merges the payloads into one AnalysisResult or reports every
// failure as an AggregateError. No partial result is ever produced.
package analysis
