// Package gemini implements the generation.Backend interface using
// Google's Gemini API. Each Invoke sends one generation request with a
// system instruction and user content and returns the raw reply text;
// parsing the reply is the calling agent's concern. The backend makes a
// single attempt per call: retry policy, if any, belongs to the caller
// re-invoking the whole analysis.
package gemini
