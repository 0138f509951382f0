package binary

import (
	"github.com/ib-77/delegate/pkg/delegate"
	"github.com/ib-77/delegate/pkg/delegate/internal/slot"
)

const pkgName = "binary"

// Functor is anything that can be called with two arguments.
type Functor[A1, A2, R any] interface {
	Call(a1 A1, a2 A2) R
}

// Func adapts a plain function to Functor.
type Func[A1, A2, R any] func(a1 A1, a2 A2) R

// Call calls f.
func (f Func[A1, A2, R]) Call(a1 A1, a2 A2) R {
	return f(a1, a2)
}

// Delegate refers to a callable taking two arguments. The zero value is empty.
type Delegate[A1, A2, R any] struct {
	storage slot.Storage
	apply   func(context, code any, a1 A1, a2 A2) R
}

// New returns a delegate bound to a free function.
func New[A1, A2, R any](fn func(A1, A2) R) Delegate[A1, A2, R] {
	var d Delegate[A1, A2, R]
	d.Bind(fn)
	return d
}

// NewFunctor needs A1, A2 and R spelled out.
func NewFunctor[A1, A2, R, F any, PF interface {
	*F
	Functor[A1, A2, R]
}](f PF) Delegate[A1, A2, R] {
	var d Delegate[A1, A2, R]
	BindFunctor(&d, f)
	return d
}

// NewConstFunctor returns a delegate bound to a value-receiver functor.
func NewConstFunctor[A1, A2, R any, F Functor[A1, A2, R]](f *F) Delegate[A1, A2, R] {
	var d Delegate[A1, A2, R]
	BindConstFunctor(&d, f)
	return d
}

// NewMethod returns a delegate bound to obj and a method expression (*T).M.
func NewMethod[A1, A2, R, T any](obj *T, m func(*T, A1, A2) R) Delegate[A1, A2, R] {
	var d Delegate[A1, A2, R]
	BindMethod(&d, obj, m)
	return d
}

// NewConstMethod returns a delegate bound to obj and a method expression T.M.
func NewConstMethod[A1, A2, R, T any](obj *T, m func(T, A1, A2) R) Delegate[A1, A2, R] {
	var d Delegate[A1, A2, R]
	BindConstMethod(&d, obj, m)
	return d
}

// Bind replaces the current binding with a free function.
func (d *Delegate[A1, A2, R]) Bind(fn func(A1, A2) R) {
	if fn == nil {
		d.reset(true)
		return
	}
	d.set(slot.Func(fn), callFunc[A1, A2, R])
}

// BindFunctor binds a functor by pointer.
func BindFunctor[A1, A2, R, F any, PF interface {
	*F
	Functor[A1, A2, R]
}](d *Delegate[A1, A2, R], f PF) {
	if slot.IsNil(f) {
		d.reset(true)
		return
	}
	d.set(slot.Functor(f, false), callFunctor[A1, A2, R, F, PF])
}

// BindConstFunctor binds a functor whose Call is declared on the value type.
func BindConstFunctor[A1, A2, R any, F Functor[A1, A2, R]](d *Delegate[A1, A2, R], f *F) {
	if f == nil {
		d.reset(true)
		return
	}
	d.set(slot.Functor(f, true), callConstFunctor[A1, A2, R, F])
}

// BindMethod binds obj with a pointer-receiver method expression.
func BindMethod[A1, A2, R, T any](d *Delegate[A1, A2, R], obj *T, m func(*T, A1, A2) R) {
	if obj == nil || m == nil {
		d.reset(true)
		return
	}
	d.set(slot.Method(obj, m, false), callMethod[A1, A2, R, T])
}

// BindConstMethod binds obj with a value-receiver method expression.
func BindConstMethod[A1, A2, R, T any](d *Delegate[A1, A2, R], obj *T, m func(T, A1, A2) R) {
	if obj == nil || m == nil {
		d.reset(true)
		return
	}
	d.set(slot.Method(obj, m, true), callConstMethod[A1, A2, R, T])
}

// BindDiscard binds a free function of any result to a delegate that ignores results.
func BindDiscard[A1, A2, X any](d *Delegate[A1, A2, delegate.Void], fn func(A1, A2) X) {
	if fn == nil {
		d.reset(true)
		return
	}
	d.set(slot.Func(fn), callDiscard[A1, A2, X])
}

// BindFunctorDiscard needs A1, A2 and X spelled out.
func BindFunctorDiscard[A1, A2, X, F any, PF interface {
	*F
	Functor[A1, A2, X]
}](d *Delegate[A1, A2, delegate.Void], f PF) {
	if slot.IsNil(f) {
		d.reset(true)
		return
	}
	d.set(slot.Functor(f, false), callFunctorDiscard[A1, A2, X, F, PF])
}

// BindConstFunctorDiscard is BindConstFunctor for a delegate that ignores results.
func BindConstFunctorDiscard[A1, A2, X any, F Functor[A1, A2, X]](d *Delegate[A1, A2, delegate.Void], f *F) {
	if f == nil {
		d.reset(true)
		return
	}
	d.set(slot.Functor(f, true), callConstFunctorDiscard[A1, A2, X, F])
}

// BindMethodDiscard is BindMethod for a delegate that ignores results.
func BindMethodDiscard[A1, A2, X, T any](d *Delegate[A1, A2, delegate.Void], obj *T, m func(*T, A1, A2) X) {
	if obj == nil || m == nil {
		d.reset(true)
		return
	}
	d.set(slot.Method(obj, m, false), callMethodDiscard[A1, A2, X, T])
}

// BindConstMethodDiscard is BindConstMethod for a delegate that ignores results.
func BindConstMethodDiscard[A1, A2, X, T any](d *Delegate[A1, A2, delegate.Void], obj *T, m func(T, A1, A2) X) {
	if obj == nil || m == nil {
		d.reset(true)
		return
	}
	d.set(slot.Method(obj, m, true), callConstMethodDiscard[A1, A2, X, T])
}

// BindConvert binds a free function whose numeric result is converted to R.
func BindConvert[A1, A2 any, X, R delegate.Number](d *Delegate[A1, A2, R], fn func(A1, A2) X) {
	if fn == nil {
		d.reset(true)
		return
	}
	d.set(slot.Func(fn), callConvert[A1, A2, X, R])
}

// BindFunctorConvert needs A1, A2, X and R spelled out.
func BindFunctorConvert[A1, A2 any, X, R delegate.Number, F any, PF interface {
	*F
	Functor[A1, A2, X]
}](d *Delegate[A1, A2, R], f PF) {
	if slot.IsNil(f) {
		d.reset(true)
		return
	}
	d.set(slot.Functor(f, false), callFunctorConvert[A1, A2, X, R, F, PF])
}

// BindConstFunctorConvert is BindConstFunctor with the numeric result converted to R.
func BindConstFunctorConvert[A1, A2 any, X, R delegate.Number, F Functor[A1, A2, X]](d *Delegate[A1, A2, R], f *F) {
	if f == nil {
		d.reset(true)
		return
	}
	d.set(slot.Functor(f, true), callConstFunctorConvert[A1, A2, X, R, F])
}

// BindMethodConvert is BindMethod with the numeric result converted to R.
func BindMethodConvert[A1, A2 any, X, R delegate.Number, T any](d *Delegate[A1, A2, R], obj *T, m func(*T, A1, A2) X) {
	if obj == nil || m == nil {
		d.reset(true)
		return
	}
	d.set(slot.Method(obj, m, false), callMethodConvert[A1, A2, X, R, T])
}

// BindConstMethodConvert is BindConstMethod with the numeric result converted to R.
func BindConstMethodConvert[A1, A2 any, X, R delegate.Number, T any](d *Delegate[A1, A2, R], obj *T, m func(T, A1, A2) X) {
	if obj == nil || m == nil {
		d.reset(true)
		return
	}
	d.set(slot.Method(obj, m, true), callConstMethodConvert[A1, A2, X, R, T])
}

// Call panics with an ErrInvalidOperation error when the delegate is empty.
func (d Delegate[A1, A2, R]) Call(a1 A1, a2 A2) R {
	if d.apply == nil {
		slot.LogEmptyCall(pkgName, slot.OpCall)
		panic(slot.EmptyCallError(pkgName, slot.OpCall))
	}
	return d.apply(d.storage.Context(), d.storage.Code(), a1, a2)
}

// Invoke is Call that reports an empty delegate as an error.
func (d Delegate[A1, A2, R]) Invoke(a1 A1, a2 A2) (R, error) {
	if d.apply == nil {
		slot.LogEmptyCall(pkgName, slot.OpInvoke)
		var zero R
		return zero, slot.EmptyCallError(pkgName, slot.OpInvoke)
	}
	return d.apply(d.storage.Context(), d.storage.Code(), a1, a2), nil
}

// Valid reports whether the delegate is bound.
func (d Delegate[A1, A2, R]) Valid() bool {
	return d.apply != nil
}

// Kind returns the bound shape.
func (d Delegate[A1, A2, R]) Kind() delegate.Kind {
	return d.storage.Kind()
}

// Clear empties the delegate.
func (d *Delegate[A1, A2, R]) Clear() {
	d.reset(false)
}

func (d *Delegate[A1, A2, R]) set(s slot.Storage, apply func(context, code any, a1 A1, a2 A2) R) {
	d.storage = s
	d.apply = apply
	slot.LogBound(pkgName, s.Kind())
}

func (d *Delegate[A1, A2, R]) reset(nilTarget bool) {
	*d = Delegate[A1, A2, R]{}
	slot.LogCleared(pkgName, nilTarget)
}
