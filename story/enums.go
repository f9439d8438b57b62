package story

// Outcome of resolving a single story token.
// ENUM(plain, resolved, unresolved, unknown)
type Kind int
