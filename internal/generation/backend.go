package generation

import "context"

// Backend defines the interface for the external text-generation service.
// This interface serves as a boundary between the application core and the
// LLM provider: agents send a system instruction plus user content and
// receive the raw reply text, which they parse and validate themselves.
type Backend interface {
	// Invoke sends one generation request and returns the reply text.
	//
	// Parameters:
	//   - ctx: Context for the operation, which can be used for cancellation
	//   - systemInstruction: The role/format instruction for the model
	//   - userContent: The content to analyze
	//
	// Returns:
	//   - The raw reply text on success
	//   - An error from this package's taxonomy (see errors.go) on failure
	Invoke(ctx context.Context, systemInstruction, userContent string) (string, error)
}

// BackendFunc adapts a plain function to the Backend interface, mirroring
// http.HandlerFunc. It is primarily useful for stubbing the backend in
// tests.
type BackendFunc func(ctx context.Context, systemInstruction, userContent string) (string, error)

// Invoke calls f(ctx, systemInstruction, userContent).
func (f BackendFunc) Invoke(ctx context.Context, systemInstruction, userContent string) (string, error) {
	return f(ctx, systemInstruction, userContent)
}
