// Package delegate holds the pieces shared by the arity packages (nullary,
// unary, binary): the variant tag, the Void and Number helper types, the
// error values and the package logger.
//
// A delegate is a small value that refers to something callable without
// owning it:
// - a free function
// - a functor (a value with a Call method), mutable or const
// - a method bound to an object, through a method expression like (*T).M or T.M
//
// The zero value is empty. Bind replaces the whole binding, Clear drops it,
// Call dispatches through a function chosen at bind time and Invoke is the
// checked variant that reports an empty delegate as ErrInvalidOperation.
package delegate
