// Package domain mirrors the entities owned by the news backend (articles,
// comments, categories, users) in the shape the backend serializes them. The
// front-end renders and submits these values; it enforces no invariants on
// them beyond form validation.
package domain
