// Package generation provides the boundary interface for interacting with
// the external text-generation service used by the analysis agents. It
// abstracts the details of LLM API integration (Gemini), allowing the
// application core to request structured replies without coupling to a
// specific external service.
package generation
