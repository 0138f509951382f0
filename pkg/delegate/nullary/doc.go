// Package nullary provides Delegate[R], a non-owning handle to something
// callable without arguments that returns R.
//
// It carries the same bindings as unary (Bind, BindFunctor, BindConstFunctor,
// BindMethod, BindConstMethod, BindDiscard, BindMethodDiscard, BindConvert)
// with method expressions of the form (*T).M and T.M taking no arguments.
package nullary
