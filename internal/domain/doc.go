// Package domain contains shared domain types used across entity sub-packages.
// Entity-specific types live in sub-packages (domain/todo, domain/quickadd).
// This root package holds sentinel errors, the field validation error shape,
// and the Action interface used for reversible multi-step writes.
package domain
