package nullary

import (
	"github.com/ib-77/delegate/pkg/delegate"
)

func callFunc[R any](_, code any) R {
	return code.(func() R)()
}

func callFunctor[R, F any, PF interface {
	*F
	Functor[R]
}](context, _ any) R {
	return context.(PF).Call()
}

func callConstFunctor[R any, F Functor[R]](context, _ any) R {
	return (*context.(*F)).Call()
}

func callMethod[R, T any](context, code any) R {
	return code.(func(*T) R)(context.(*T))
}

func callConstMethod[R, T any](context, code any) R {
	return code.(func(T) R)(*context.(*T))
}

func callDiscard[X any](_, code any) delegate.Void {
	code.(func() X)()
	return delegate.Void{}
}

func callFunctorDiscard[X, F any, PF interface {
	*F
	Functor[X]
}](context, _ any) delegate.Void {
	context.(PF).Call()
	return delegate.Void{}
}

func callConstFunctorDiscard[X any, F Functor[X]](context, _ any) delegate.Void {
	(*context.(*F)).Call()
	return delegate.Void{}
}

func callMethodDiscard[X, T any](context, code any) delegate.Void {
	code.(func(*T) X)(context.(*T))
	return delegate.Void{}
}

func callConstMethodDiscard[X, T any](context, code any) delegate.Void {
	code.(func(T) X)(*context.(*T))
	return delegate.Void{}
}

func callConvert[X, R delegate.Number](_, code any) R {
	return R(code.(func() X)())
}

func callFunctorConvert[X, R delegate.Number, F any, PF interface {
	*F
	Functor[X]
}](context, _ any) R {
	return R(context.(PF).Call())
}

func callConstFunctorConvert[X, R delegate.Number, F Functor[X]](context, _ any) R {
	return R((*context.(*F)).Call())
}

func callMethodConvert[X, R delegate.Number, T any](context, code any) R {
	return R(code.(func(*T) X)(context.(*T)))
}

func callConstMethodConvert[X, R delegate.Number, T any](context, code any) R {
	return R(code.(func(T) X)(*context.(*T)))
}
