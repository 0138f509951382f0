// Package slot holds the plumbing shared by the nullary, unary and binary
// delegates: the erased storage, nil detection, empty-call errors and
// transition logging.
package slot
