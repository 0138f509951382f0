// Package binary provides Delegate[A1, A2, R] for callables taking two
// arguments. The bindings match the unary package; method expressions take
// the form (*T).M / T.M with signature func(*T, A1, A2) R / func(T, A1, A2) R.
package binary
