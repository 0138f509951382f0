package nullary

import (
	"github.com/ib-77/delegate/pkg/delegate"
	"github.com/ib-77/delegate/pkg/delegate/internal/slot"
)

const pkgName = "nullary"

// Functor is anything that can be called without arguments.
type Functor[R any] interface {
	Call() R
}

// Func adapts a plain function to Functor.
type Func[R any] func() R

// Call calls f.
func (f Func[R]) Call() R {
	return f()
}

// Delegate refers to a callable taking no arguments. The zero value is empty.
type Delegate[R any] struct {
	storage slot.Storage
	apply   func(context, code any) R
}

// New returns a delegate bound to a free function.
func New[R any](fn func() R) Delegate[R] {
	var d Delegate[R]
	d.Bind(fn)
	return d
}

// NewFunctor needs R spelled out: nullary.NewFunctor[int](&ticker).
func NewFunctor[R, F any, PF interface {
	*F
	Functor[R]
}](f PF) Delegate[R] {
	var d Delegate[R]
	BindFunctor(&d, f)
	return d
}

// NewConstFunctor returns a delegate bound to a value-receiver functor.
func NewConstFunctor[R any, F Functor[R]](f *F) Delegate[R] {
	var d Delegate[R]
	BindConstFunctor(&d, f)
	return d
}

// NewMethod returns a delegate bound to obj and a method expression (*T).M.
func NewMethod[R, T any](obj *T, m func(*T) R) Delegate[R] {
	var d Delegate[R]
	BindMethod(&d, obj, m)
	return d
}

// NewConstMethod returns a delegate bound to obj and a method expression T.M.
func NewConstMethod[R, T any](obj *T, m func(T) R) Delegate[R] {
	var d Delegate[R]
	BindConstMethod(&d, obj, m)
	return d
}

// Bind replaces the current binding with a free function.
func (d *Delegate[R]) Bind(fn func() R) {
	if fn == nil {
		d.reset(true)
		return
	}
	d.set(slot.Func(fn), callFunc[R])
}

// BindFunctor binds a functor by pointer.
func BindFunctor[R, F any, PF interface {
	*F
	Functor[R]
}](d *Delegate[R], f PF) {
	if slot.IsNil(f) {
		d.reset(true)
		return
	}
	d.set(slot.Functor(f, false), callFunctor[R, F, PF])
}

// BindConstFunctor binds a functor whose Call is declared on the value type.
func BindConstFunctor[R any, F Functor[R]](d *Delegate[R], f *F) {
	if f == nil {
		d.reset(true)
		return
	}
	d.set(slot.Functor(f, true), callConstFunctor[R, F])
}

// BindMethod binds obj with a pointer-receiver method expression.
func BindMethod[R, T any](d *Delegate[R], obj *T, m func(*T) R) {
	if obj == nil || m == nil {
		d.reset(true)
		return
	}
	d.set(slot.Method(obj, m, false), callMethod[R, T])
}

// BindConstMethod binds obj with a value-receiver method expression.
func BindConstMethod[R, T any](d *Delegate[R], obj *T, m func(T) R) {
	if obj == nil || m == nil {
		d.reset(true)
		return
	}
	d.set(slot.Method(obj, m, true), callConstMethod[R, T])
}

// BindDiscard binds a free function of any result to a delegate that ignores results.
func BindDiscard[X any](d *Delegate[delegate.Void], fn func() X) {
	if fn == nil {
		d.reset(true)
		return
	}
	d.set(slot.Func(fn), callDiscard[X])
}

// BindFunctorDiscard needs X spelled out: BindFunctorDiscard[int](&d, f).
func BindFunctorDiscard[X, F any, PF interface {
	*F
	Functor[X]
}](d *Delegate[delegate.Void], f PF) {
	if slot.IsNil(f) {
		d.reset(true)
		return
	}
	d.set(slot.Functor(f, false), callFunctorDiscard[X, F, PF])
}

// BindConstFunctorDiscard is BindConstFunctor for a delegate that ignores results.
func BindConstFunctorDiscard[X any, F Functor[X]](d *Delegate[delegate.Void], f *F) {
	if f == nil {
		d.reset(true)
		return
	}
	d.set(slot.Functor(f, true), callConstFunctorDiscard[X, F])
}

// BindMethodDiscard is BindMethod for a delegate that ignores results.
func BindMethodDiscard[X, T any](d *Delegate[delegate.Void], obj *T, m func(*T) X) {
	if obj == nil || m == nil {
		d.reset(true)
		return
	}
	d.set(slot.Method(obj, m, false), callMethodDiscard[X, T])
}

// BindConstMethodDiscard is BindConstMethod for a delegate that ignores results.
func BindConstMethodDiscard[X, T any](d *Delegate[delegate.Void], obj *T, m func(T) X) {
	if obj == nil || m == nil {
		d.reset(true)
		return
	}
	d.set(slot.Method(obj, m, true), callConstMethodDiscard[X, T])
}

// BindConvert binds a free function whose numeric result is converted to R.
func BindConvert[X, R delegate.Number](d *Delegate[R], fn func() X) {
	if fn == nil {
		d.reset(true)
		return
	}
	d.set(slot.Func(fn), callConvert[X, R])
}

// BindFunctorConvert needs X and R spelled out: BindFunctorConvert[int32, int64](&d, f).
func BindFunctorConvert[X, R delegate.Number, F any, PF interface {
	*F
	Functor[X]
}](d *Delegate[R], f PF) {
	if slot.IsNil(f) {
		d.reset(true)
		return
	}
	d.set(slot.Functor(f, false), callFunctorConvert[X, R, F, PF])
}

// BindConstFunctorConvert is BindConstFunctor with the numeric result converted to R.
func BindConstFunctorConvert[X, R delegate.Number, F Functor[X]](d *Delegate[R], f *F) {
	if f == nil {
		d.reset(true)
		return
	}
	d.set(slot.Functor(f, true), callConstFunctorConvert[X, R, F])
}

// BindMethodConvert is BindMethod with the numeric result converted to R.
func BindMethodConvert[X, R delegate.Number, T any](d *Delegate[R], obj *T, m func(*T) X) {
	if obj == nil || m == nil {
		d.reset(true)
		return
	}
	d.set(slot.Method(obj, m, false), callMethodConvert[X, R, T])
}

// BindConstMethodConvert is BindConstMethod with the numeric result converted to R.
func BindConstMethodConvert[X, R delegate.Number, T any](d *Delegate[R], obj *T, m func(T) X) {
	if obj == nil || m == nil {
		d.reset(true)
		return
	}
	d.set(slot.Method(obj, m, true), callConstMethodConvert[X, R, T])
}

// Call panics with an ErrInvalidOperation error when the delegate is empty.
func (d Delegate[R]) Call() R {
	if d.apply == nil {
		slot.LogEmptyCall(pkgName, slot.OpCall)
		panic(slot.EmptyCallError(pkgName, slot.OpCall))
	}
	return d.apply(d.storage.Context(), d.storage.Code())
}

// Invoke is Call that reports an empty delegate as an error.
func (d Delegate[R]) Invoke() (R, error) {
	if d.apply == nil {
		slot.LogEmptyCall(pkgName, slot.OpInvoke)
		var zero R
		return zero, slot.EmptyCallError(pkgName, slot.OpInvoke)
	}
	return d.apply(d.storage.Context(), d.storage.Code()), nil
}

// Valid reports whether the delegate is bound.
func (d Delegate[R]) Valid() bool {
	return d.apply != nil
}

// Kind returns the bound shape.
func (d Delegate[R]) Kind() delegate.Kind {
	return d.storage.Kind()
}

// Clear empties the delegate.
func (d *Delegate[R]) Clear() {
	d.reset(false)
}

func (d *Delegate[R]) set(s slot.Storage, apply func(context, code any) R) {
	d.storage = s
	d.apply = apply
	slot.LogBound(pkgName, s.Kind())
}

func (d *Delegate[R]) reset(nilTarget bool) {
	*d = Delegate[R]{}
	slot.LogCleared(pkgName, nilTarget)
}
