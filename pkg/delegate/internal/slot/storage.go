package slot

import (
	"github.com/ib-77/delegate/pkg/delegate"
)

// Storage is the erased part of a delegate. Context is the bound object or
// functor pointer, code is the function value or method expression. Both are
// pointer-shaped, so keeping them in interfaces does not allocate.
type Storage struct {
	kind    delegate.Kind
	context any
	code    any
}

// Func describes a free function binding.
func Func(code any) Storage {
	return Storage{kind: delegate.KindFunc, code: code}
}

// Functor describes a functor binding. The dispatcher knows the functor's
// type, so no code is kept.
func Functor(functor any, isConst bool) Storage {
	if isConst {
		return Storage{kind: delegate.KindConstFunctor, context: functor}
	}
	return Storage{kind: delegate.KindFunctor, context: functor}
}

// Method describes an object plus method expression binding.
func Method(object, code any, isConst bool) Storage {
	if isConst {
		return Storage{kind: delegate.KindConstMethod, context: object, code: code}
	}
	return Storage{kind: delegate.KindMethod, context: object, code: code}
}

// Kind returns the bound shape, KindNone when empty.
func (s Storage) Kind() delegate.Kind {
	return s.kind
}

// Context returns the bound object or functor pointer.
func (s Storage) Context() any {
	return s.context
}

// Code returns the bound function value or method expression.
func (s Storage) Code() any {
	return s.code
}

// IsEmpty reports whether nothing is stored.
func (s Storage) IsEmpty() bool {
	return s.kind == delegate.KindNone
}
