// Package domain contains the core business entities and value objects of
// the application: the immutable onboarding question/answer input, the
// per-agent payload shapes, and the merged analysis result. It represents
// the heart of the system, independent of any specific infrastructure or
// delivery mechanism.
package domain
