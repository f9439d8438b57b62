package config

// Which token decides number of spaces after a word: story token as written
// or the word it was resolved to.
// ENUM(original, resolved)
type SpacingSource int

// What to do with the last dictionary key when it has no value.
// ENUM(reject, pad, drop)
type UnpairedPolicy int
