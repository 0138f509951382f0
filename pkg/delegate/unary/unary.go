package unary

import (
	"github.com/ib-77/delegate/pkg/delegate"
	"github.com/ib-77/delegate/pkg/delegate/internal/slot"
)

const pkgName = "unary"

// Functor is anything that can be called with one argument.
type Functor[A, R any] interface {
	Call(a A) R
}

// Func adapts a plain function to Functor.
type Func[A, R any] func(a A) R

// Call calls f.
func (f Func[A, R]) Call(a A) R {
	return f(a)
}

// Delegate refers to a callable without owning it. The zero value is empty.
// Copies share the referenced target, not each other.
type Delegate[A, R any] struct {
	storage slot.Storage
	apply   func(context, code any, a A) R
}

// Slot is another name for Delegate.
type Slot[A, R any] = Delegate[A, R]

// New returns a delegate bound to a free function.
func New[A, R any](fn func(A) R) Delegate[A, R] {
	var d Delegate[A, R]
	d.Bind(fn)
	return d
}

// NewFunctor needs A and R spelled out: unary.NewFunctor[int, int](&acc).
func NewFunctor[A, R, F any, PF interface {
	*F
	Functor[A, R]
}](f PF) Delegate[A, R] {
	var d Delegate[A, R]
	BindFunctor(&d, f)
	return d
}

// NewConstFunctor returns a delegate bound to a value-receiver functor.
func NewConstFunctor[A, R any, F Functor[A, R]](f *F) Delegate[A, R] {
	var d Delegate[A, R]
	BindConstFunctor(&d, f)
	return d
}

// NewMethod returns a delegate bound to obj and a method expression (*T).M.
func NewMethod[A, R, T any](obj *T, m func(*T, A) R) Delegate[A, R] {
	var d Delegate[A, R]
	BindMethod(&d, obj, m)
	return d
}

// NewConstMethod returns a delegate bound to obj and a method expression T.M.
func NewConstMethod[A, R, T any](obj *T, m func(T, A) R) Delegate[A, R] {
	var d Delegate[A, R]
	BindConstMethod(&d, obj, m)
	return d
}

// Bind replaces the current binding with a free function.
// A nil function leaves the delegate empty.
func (d *Delegate[A, R]) Bind(fn func(A) R) {
	if fn == nil {
		d.reset(true)
		return
	}
	d.set(slot.Func(fn), callFunc[A, R])
}

// BindFunctor binds a functor by pointer. State changed by Call is visible
// through f afterwards.
func BindFunctor[A, R, F any, PF interface {
	*F
	Functor[A, R]
}](d *Delegate[A, R], f PF) {
	if slot.IsNil(f) {
		d.reset(true)
		return
	}
	d.set(slot.Functor(f, false), callFunctor[A, R, F, PF])
}

// BindConstFunctor binds a functor whose Call is declared on the value type.
func BindConstFunctor[A, R any, F Functor[A, R]](d *Delegate[A, R], f *F) {
	if f == nil {
		d.reset(true)
		return
	}
	d.set(slot.Functor(f, true), callConstFunctor[A, R, F])
}

// BindMethod binds obj with a pointer-receiver method expression, e.g. (*T).M.
func BindMethod[A, R, T any](d *Delegate[A, R], obj *T, m func(*T, A) R) {
	if obj == nil || m == nil {
		d.reset(true)
		return
	}
	d.set(slot.Method(obj, m, false), callMethod[A, R, T])
}

// BindConstMethod binds obj with a value-receiver method expression, e.g. T.M.
// Each call sees the current state of *obj.
func BindConstMethod[A, R, T any](d *Delegate[A, R], obj *T, m func(T, A) R) {
	if obj == nil || m == nil {
		d.reset(true)
		return
	}
	d.set(slot.Method(obj, m, true), callConstMethod[A, R, T])
}

// BindDiscard binds a free function of any result to a delegate that ignores results.
func BindDiscard[A, X any](d *Delegate[A, delegate.Void], fn func(A) X) {
	if fn == nil {
		d.reset(true)
		return
	}
	d.set(slot.Func(fn), callDiscard[A, X])
}

// BindFunctorDiscard is BindFunctor for a delegate that ignores results.
// A and X are spelled out: BindFunctorDiscard[int, string](&d, f).
func BindFunctorDiscard[A, X, F any, PF interface {
	*F
	Functor[A, X]
}](d *Delegate[A, delegate.Void], f PF) {
	if slot.IsNil(f) {
		d.reset(true)
		return
	}
	d.set(slot.Functor(f, false), callFunctorDiscard[A, X, F, PF])
}

// BindConstFunctorDiscard is BindConstFunctor for a delegate that ignores results.
func BindConstFunctorDiscard[A, X any, F Functor[A, X]](d *Delegate[A, delegate.Void], f *F) {
	if f == nil {
		d.reset(true)
		return
	}
	d.set(slot.Functor(f, true), callConstFunctorDiscard[A, X, F])
}

// BindMethodDiscard is BindMethod for a delegate that ignores results.
func BindMethodDiscard[A, X, T any](d *Delegate[A, delegate.Void], obj *T, m func(*T, A) X) {
	if obj == nil || m == nil {
		d.reset(true)
		return
	}
	d.set(slot.Method(obj, m, false), callMethodDiscard[A, X, T])
}

// BindConstMethodDiscard is BindConstMethod for a delegate that ignores results.
func BindConstMethodDiscard[A, X, T any](d *Delegate[A, delegate.Void], obj *T, m func(T, A) X) {
	if obj == nil || m == nil {
		d.reset(true)
		return
	}
	d.set(slot.Method(obj, m, true), callConstMethodDiscard[A, X, T])
}

// BindConvert binds a free function whose numeric result is converted to R.
func BindConvert[A any, X, R delegate.Number](d *Delegate[A, R], fn func(A) X) {
	if fn == nil {
		d.reset(true)
		return
	}
	d.set(slot.Func(fn), callConvert[A, X, R])
}

// BindFunctorConvert is BindFunctor with the numeric result converted to R.
// A, X and R are spelled out: BindFunctorConvert[int, int32, int64](&d, f).
func BindFunctorConvert[A any, X, R delegate.Number, F any, PF interface {
	*F
	Functor[A, X]
}](d *Delegate[A, R], f PF) {
	if slot.IsNil(f) {
		d.reset(true)
		return
	}
	d.set(slot.Functor(f, false), callFunctorConvert[A, X, R, F, PF])
}

// BindConstFunctorConvert is BindConstFunctor with the numeric result converted to R.
func BindConstFunctorConvert[A any, X, R delegate.Number, F Functor[A, X]](d *Delegate[A, R], f *F) {
	if f == nil {
		d.reset(true)
		return
	}
	d.set(slot.Functor(f, true), callConstFunctorConvert[A, X, R, F])
}

// BindMethodConvert is BindMethod with the numeric result converted to R.
func BindMethodConvert[A any, X, R delegate.Number, T any](d *Delegate[A, R], obj *T, m func(*T, A) X) {
	if obj == nil || m == nil {
		d.reset(true)
		return
	}
	d.set(slot.Method(obj, m, false), callMethodConvert[A, X, R, T])
}

// BindConstMethodConvert is BindConstMethod with the numeric result converted to R.
func BindConstMethodConvert[A any, X, R delegate.Number, T any](d *Delegate[A, R], obj *T, m func(T, A) X) {
	if obj == nil || m == nil {
		d.reset(true)
		return
	}
	d.set(slot.Method(obj, m, true), callConstMethodConvert[A, X, R, T])
}

// Call forwards a to the bound callable. It panics with an
// ErrInvalidOperation error when the delegate is empty.
func (d Delegate[A, R]) Call(a A) R {
	if d.apply == nil {
		slot.LogEmptyCall(pkgName, slot.OpCall)
		panic(slot.EmptyCallError(pkgName, slot.OpCall))
	}
	return d.apply(d.storage.Context(), d.storage.Code(), a)
}

// Invoke is Call that reports an empty delegate as an error.
func (d Delegate[A, R]) Invoke(a A) (R, error) {
	if d.apply == nil {
		slot.LogEmptyCall(pkgName, slot.OpInvoke)
		var zero R
		return zero, slot.EmptyCallError(pkgName, slot.OpInvoke)
	}
	return d.apply(d.storage.Context(), d.storage.Code(), a), nil
}

// Valid reports whether the delegate is bound.
func (d Delegate[A, R]) Valid() bool {
	return d.apply != nil
}

// Kind returns the bound shape, delegate.KindNone when empty.
func (d Delegate[A, R]) Kind() delegate.Kind {
	return d.storage.Kind()
}

// Clear empties the delegate. The target is left untouched.
func (d *Delegate[A, R]) Clear() {
	d.reset(false)
}

func (d *Delegate[A, R]) set(s slot.Storage, apply func(context, code any, a A) R) {
	d.storage = s
	d.apply = apply
	slot.LogBound(pkgName, s.Kind())
}

func (d *Delegate[A, R]) reset(nilTarget bool) {
	*d = Delegate[A, R]{}
	slot.LogCleared(pkgName, nilTarget)
}
