package unary

import (
	"github.com/ib-77/delegate/pkg/delegate"
)

// Dispatchers are picked by the Bind functions and are only ever paired with
// the storage written next to them, so the assertions below cannot fail.

func callFunc[A, R any](_, code any, a A) R {
	return code.(func(A) R)(a)
}

func callFunctor[A, R, F any, PF interface {
	*F
	Functor[A, R]
}](context, _ any, a A) R {
	return context.(PF).Call(a)
}

func callConstFunctor[A, R any, F Functor[A, R]](context, _ any, a A) R {
	return (*context.(*F)).Call(a)
}

func callMethod[A, R, T any](context, code any, a A) R {
	return code.(func(*T, A) R)(context.(*T), a)
}

func callConstMethod[A, R, T any](context, code any, a A) R {
	return code.(func(T, A) R)(*context.(*T), a)
}

func callDiscard[A, X any](_, code any, a A) delegate.Void {
	code.(func(A) X)(a)
	return delegate.Void{}
}

func callFunctorDiscard[A, X, F any, PF interface {
	*F
	Functor[A, X]
}](context, _ any, a A) delegate.Void {
	context.(PF).Call(a)
	return delegate.Void{}
}

func callConstFunctorDiscard[A, X any, F Functor[A, X]](context, _ any, a A) delegate.Void {
	(*context.(*F)).Call(a)
	return delegate.Void{}
}

func callMethodDiscard[A, X, T any](context, code any, a A) delegate.Void {
	code.(func(*T, A) X)(context.(*T), a)
	return delegate.Void{}
}

func callConstMethodDiscard[A, X, T any](context, code any, a A) delegate.Void {
	code.(func(T, A) X)(*context.(*T), a)
	return delegate.Void{}
}

func callConvert[A any, X, R delegate.Number](_, code any, a A) R {
	return R(code.(func(A) X)(a))
}

func callFunctorConvert[A any, X, R delegate.Number, F any, PF interface {
	*F
	Functor[A, X]
}](context, _ any, a A) R {
	return R(context.(PF).Call(a))
}

func callConstFunctorConvert[A any, X, R delegate.Number, F Functor[A, X]](context, _ any, a A) R {
	return R((*context.(*F)).Call(a))
}

func callMethodConvert[A any, X, R delegate.Number, T any](context, code any, a A) R {
	return R(code.(func(*T, A) X)(context.(*T), a))
}

func callConstMethodConvert[A any, X, R delegate.Number, T any](context, code any, a A) R {
	return R(code.(func(T, A) X)(*context.(*T), a))
}
