// Package cli implements the interactive terminal front end of the
// user-management client. Each command is a self-contained screen: it gates
// on the cached session where needed,
// validates input locally, performs exactly one backend call and reports a
// single outcome. Presentation stays here; session and transport semantics
// live in the services and api packages.
package cli
