// Package unary provides Delegate[A, R], a non-owning handle to something
// callable with one argument of type A that returns R.
//
// Bindings:
// - Bind/New: free function func(A) R
// - BindFunctor/NewFunctor: pointer to a functor (Call may mutate it)
// - BindConstFunctor/NewConstFunctor: pointer to a functor whose Call has a value receiver
// - BindMethod/NewMethod: object pointer plus method expression (*T).M
// - BindConstMethod/NewConstMethod: object pointer plus method expression T.M
// - BindDiscard/BindMethodDiscard: any result, for Delegate[A, delegate.Void]
// - BindConvert: numeric result converted to R
//
// Call panics on an empty delegate; Invoke returns the error instead.
// Use a struct as A when more than one value has to travel with the call.
package unary
