// Package env provides read-only access to environment variables.
//
// Validation never reads ambient process state directly. Callers pass a
// Provider: OS() for the live environment, or a Map snapshot for tests and
// for configuration ingested from elsewhere (see ParseHeroku).
package env
