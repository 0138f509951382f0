package binary

import (
	"github.com/ib-77/delegate/pkg/delegate"
)

func callFunc[A1, A2, R any](_, code any, a1 A1, a2 A2) R {
	return code.(func(A1, A2) R)(a1, a2)
}

func callFunctor[A1, A2, R, F any, PF interface {
	*F
	Functor[A1, A2, R]
}](context, _ any, a1 A1, a2 A2) R {
	return context.(PF).Call(a1, a2)
}

func callConstFunctor[A1, A2, R any, F Functor[A1, A2, R]](context, _ any, a1 A1, a2 A2) R {
	return (*context.(*F)).Call(a1, a2)
}

func callMethod[A1, A2, R, T any](context, code any, a1 A1, a2 A2) R {
	return code.(func(*T, A1, A2) R)(context.(*T), a1, a2)
}

func callConstMethod[A1, A2, R, T any](context, code any, a1 A1, a2 A2) R {
	return code.(func(T, A1, A2) R)(*context.(*T), a1, a2)
}

func callDiscard[A1, A2, X any](_, code any, a1 A1, a2 A2) delegate.Void {
	code.(func(A1, A2) X)(a1, a2)
	return delegate.Void{}
}

func callFunctorDiscard[A1, A2, X, F any, PF interface {
	*F
	Functor[A1, A2, X]
}](context, _ any, a1 A1, a2 A2) delegate.Void {
	context.(PF).Call(a1, a2)
	return delegate.Void{}
}

func callConstFunctorDiscard[A1, A2, X any, F Functor[A1, A2, X]](context, _ any, a1 A1, a2 A2) delegate.Void {
	(*context.(*F)).Call(a1, a2)
	return delegate.Void{}
}

func callMethodDiscard[A1, A2, X, T any](context, code any, a1 A1, a2 A2) delegate.Void {
	code.(func(*T, A1, A2) X)(context.(*T), a1, a2)
	return delegate.Void{}
}

func callConstMethodDiscard[A1, A2, X, T any](context, code any, a1 A1, a2 A2) delegate.Void {
	code.(func(T, A1, A2) X)(*context.(*T), a1, a2)
	return delegate.Void{}
}

func callConvert[A1, A2 any, X, R delegate.Number](_, code any, a1 A1, a2 A2) R {
	return R(code.(func(A1, A2) X)(a1, a2))
}

func callFunctorConvert[A1, A2 any, X, R delegate.Number, F any, PF interface {
	*F
	Functor[A1, A2, X]
}](context, _ any, a1 A1, a2 A2) R {
	return R(context.(PF).Call(a1, a2))
}

func callConstFunctorConvert[A1, A2 any, X, R delegate.Number, F Functor[A1, A2, X]](context, _ any, a1 A1, a2 A2) R {
	return R((*context.(*F)).Call(a1, a2))
}

func callMethodConvert[A1, A2 any, X, R delegate.Number, T any](context, code any, a1 A1, a2 A2) R {
	return R(code.(func(*T, A1, A2) X)(context.(*T), a1, a2))
}

func callConstMethodConvert[A1, A2 any, X, R delegate.Number, T any](context, code any, a1 A1, a2 A2) R {
	return R(code.(func(T, A1, A2) X)(*context.(*T), a1, a2))
}
