package unary

import (
	"strconv"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/ib-77/delegate/pkg/delegate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func square(x int) int { return x * x }

func half(x int) int32 { return int32(x / 2) }

type accumulator struct {
	total int
}

func (a *accumulator) Call(x int) int {
	a.total += x
	return a.total
}

type scaler struct {
	factor int
}

func (s scaler) Call(x int) int {
	return s.factor * x
}

type counter struct {
	n int
}

func (c *counter) Add(k int) int {
	c.n += k
	return c.n
}

func (c counter) Plus(k int) int {
	return c.n + k
}

type halver struct {
	calls int
}

func (h *halver) Call(x int) int32 {
	h.calls++
	return int32(x / 2)
}

type doubler struct {
	offset int32
}

func (d doubler) Call(x int) int32 {
	return int32(x)*2 + d.offset
}

type hits struct {
	n atomic.Int64
}

func (h *hits) Call(x int) int {
	h.n.Add(1)
	return x
}

func recoverErr(fn func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err, _ = r.(error)
		}
	}()
	fn()
	return nil
}

func TestZeroValue_IsEmpty(t *testing.T) {
	t.Parallel()

	var d Delegate[int, int]
	assert.False(t, d.Valid())
	assert.Equal(t, delegate.KindNone, d.Kind())
}

func TestBind_FreeFunction(t *testing.T) {
	t.Parallel()

	d := New(square)
	require.True(t, d.Valid())
	assert.Equal(t, delegate.KindFunc, d.Kind())

	for _, x := range []int{-3, 0, 1, 7} {
		assert.Equal(t, square(x), d.Call(x))
	}
}

func TestBindConvert_NumericResult(t *testing.T) {
	t.Parallel()

	var d Delegate[int, float64]
	BindConvert(&d, half)

	assert.Equal(t, float64(half(9)), d.Call(9))
	assert.Equal(t, delegate.KindFunc, d.Kind())
}

func TestBindDiscard_DropsResult(t *testing.T) {
	t.Parallel()

	var seen []string
	var d Delegate[int, delegate.Void]
	BindDiscard(&d, func(x int) string {
		s := strconv.Itoa(x)
		seen = append(seen, s)
		return s
	})

	assert.Equal(t, delegate.Void{}, d.Call(4))
	assert.Equal(t, delegate.Void{}, d.Call(5))
	assert.Equal(t, []string{"4", "5"}, seen)
}

func TestBindFunctor_MutatesOriginal(t *testing.T) {
	t.Parallel()

	acc := &accumulator{}
	d := NewFunctor[int, int](acc)
	assert.Equal(t, delegate.KindFunctor, d.Kind())

	assert.Equal(t, 2, d.Call(2))
	assert.Equal(t, 5, d.Call(3))
	assert.Equal(t, 5, acc.total)

	acc.total = 100
	assert.Equal(t, 101, d.Call(1))
}

func TestBindConstFunctor_SeesCurrentState(t *testing.T) {
	t.Parallel()

	s := scaler{factor: 3}
	var d Delegate[int, int]
	BindConstFunctor(&d, &s)
	assert.Equal(t, delegate.KindConstFunctor, d.Kind())

	assert.Equal(t, s.Call(4), d.Call(4))

	s.factor = 10
	assert.Equal(t, 40, d.Call(4))
}

func TestBindConstFunctor_FuncAdapter(t *testing.T) {
	t.Parallel()

	f := Func[int, int](square)
	d := NewConstFunctor[int, int](&f)

	assert.Equal(t, 36, d.Call(6))
}

func TestDelegate_IsAConstFunctor(t *testing.T) {
	t.Parallel()

	inner := New(square)
	outer := NewConstFunctor[int, int](&inner)
	assert.Equal(t, 16, outer.Call(4))

	// outer refers to inner, so rebinding inner is visible through outer
	inner.Bind(func(x int) int { return -x })
	assert.Equal(t, -4, outer.Call(4))
}

func TestBindMethod_SideEffectsMatchDirectCall(t *testing.T) {
	t.Parallel()

	viaDelegate := &counter{n: 10}
	direct := &counter{n: 10}

	d := NewMethod(viaDelegate, (*counter).Add)
	assert.Equal(t, delegate.KindMethod, d.Kind())

	assert.Equal(t, direct.Add(5), d.Call(5))
	assert.Equal(t, direct.Add(-2), d.Call(-2))
	assert.Equal(t, direct.n, viaDelegate.n)
}

func TestBindConstMethod(t *testing.T) {
	t.Parallel()

	c := &counter{n: 7}
	d := NewConstMethod(c, counter.Plus)
	assert.Equal(t, delegate.KindConstMethod, d.Kind())

	assert.Equal(t, c.Plus(3), d.Call(3))
	assert.Equal(t, 7, c.n)

	c.n = 20
	assert.Equal(t, 23, d.Call(3))
}

func TestBindMethodDiscard(t *testing.T) {
	t.Parallel()

	c := &counter{}
	var d Delegate[int, delegate.Void]
	BindMethodDiscard(&d, c, (*counter).Add)

	d.Call(4)
	d.Call(4)
	assert.Equal(t, 8, c.n)
	assert.Equal(t, delegate.KindMethod, d.Kind())
}

func TestBindFunctorDiscard(t *testing.T) {
	t.Parallel()

	acc := &accumulator{}
	var d Delegate[int, delegate.Void]
	BindFunctorDiscard[int, int](&d, acc)
	assert.Equal(t, delegate.KindFunctor, d.Kind())

	assert.Equal(t, delegate.Void{}, d.Call(2))
	d.Call(3)
	assert.Equal(t, 5, acc.total)
}

func TestBindConstFunctorDiscard(t *testing.T) {
	t.Parallel()

	s := scaler{factor: 2}
	var d Delegate[int, delegate.Void]
	BindConstFunctorDiscard[int, int](&d, &s)
	assert.Equal(t, delegate.KindConstFunctor, d.Kind())

	assert.Equal(t, delegate.Void{}, d.Call(4))
	assert.Equal(t, 2, s.factor)
}

func TestBindConstMethodDiscard(t *testing.T) {
	t.Parallel()

	c := &counter{n: 3}
	var d Delegate[int, delegate.Void]
	BindConstMethodDiscard(&d, c, counter.Plus)
	assert.Equal(t, delegate.KindConstMethod, d.Kind())

	assert.Equal(t, delegate.Void{}, d.Call(4))
	assert.Equal(t, 3, c.n)
}

func TestBindFunctorConvert(t *testing.T) {
	t.Parallel()

	h := &halver{}
	var d Delegate[int, int64]
	BindFunctorConvert[int, int32, int64](&d, h)
	assert.Equal(t, delegate.KindFunctor, d.Kind())

	assert.Equal(t, int64(4), d.Call(9))
	assert.Equal(t, int64(-3), d.Call(-7))
	assert.Equal(t, 2, h.calls)
}

func TestBindConstFunctorConvert(t *testing.T) {
	t.Parallel()

	db := doubler{offset: 1}
	var d Delegate[int, float64]
	BindConstFunctorConvert[int, int32, float64](&d, &db)
	assert.Equal(t, delegate.KindConstFunctor, d.Kind())

	assert.Equal(t, float64(db.Call(5)), d.Call(5))

	db.offset = 100
	assert.Equal(t, float64(110), d.Call(5))
}

func TestBindMethodConvert(t *testing.T) {
	t.Parallel()

	c := &counter{n: 1}
	var d Delegate[int, int64]
	BindMethodConvert(&d, c, (*counter).Add)
	assert.Equal(t, delegate.KindMethod, d.Kind())

	assert.Equal(t, int64(6), d.Call(5))
	assert.Equal(t, 6, c.n)
}

func TestBindConstMethodConvert(t *testing.T) {
	t.Parallel()

	c := &counter{n: 10}
	var d Delegate[int, uint8]
	BindConstMethodConvert(&d, c, counter.Plus)
	assert.Equal(t, delegate.KindConstMethod, d.Kind())

	assert.Equal(t, uint8(15), d.Call(5))
	assert.Equal(t, 10, c.n)
}

func TestRebind_ReplacesPreviousBinding(t *testing.T) {
	t.Parallel()

	calls := 0
	d := New(func(x int) int {
		calls++
		return x
	})
	assert.Equal(t, 1, d.Call(1))

	c := &counter{n: 10}
	BindMethod(&d, c, (*counter).Add)
	assert.Equal(t, 11, d.Call(1))
	assert.Equal(t, 12, d.Call(1))
	assert.Equal(t, 1, calls)

	acc := &accumulator{}
	BindFunctor(&d, acc)
	assert.Equal(t, 3, d.Call(3))
	assert.Equal(t, 12, c.n)
	assert.Equal(t, delegate.KindFunctor, d.Kind())
}

func TestClear_ThenCallIsAnError(t *testing.T) {
	t.Parallel()

	d := New(square)
	d.Clear()

	assert.False(t, d.Valid())
	assert.Equal(t, delegate.KindNone, d.Kind())

	v, err := d.Invoke(3)
	require.Error(t, err)
	assert.True(t, delegate.IsInvalidOperation(err))
	assert.Equal(t, 0, v)

	err = recoverErr(func() { d.Call(3) })
	require.Error(t, err)
	assert.True(t, delegate.IsInvalidOperation(err))
}

func TestInvoke_Bound(t *testing.T) {
	t.Parallel()

	d := New(square)
	v, err := d.Invoke(5)
	require.NoError(t, err)
	assert.Equal(t, 25, v)
}

func TestCopy_SurvivesClearOfOriginal(t *testing.T) {
	t.Parallel()

	c := &counter{n: 1}
	original := NewMethod(c, (*counter).Add)
	cp := original

	original.Clear()
	require.False(t, original.Valid())
	require.True(t, cp.Valid())

	assert.Equal(t, 3, cp.Call(2))
	assert.Equal(t, 3, c.n)
}

func TestBind_NilTargetsLeaveEmpty(t *testing.T) {
	t.Parallel()

	d := New(square)
	d.Bind(nil)
	assert.False(t, d.Valid())

	d = New(square)
	BindMethod(&d, (*counter)(nil), (*counter).Add)
	assert.False(t, d.Valid())

	d = New(square)
	BindMethod[int, int, counter](&d, &counter{}, nil)
	assert.False(t, d.Valid())

	d = New(square)
	BindFunctor(&d, (*accumulator)(nil))
	assert.False(t, d.Valid())

	d = New(square)
	BindConstFunctor(&d, (*scaler)(nil))
	assert.False(t, d.Valid())

	d = New(square)
	BindConstMethod(&d, (*counter)(nil), counter.Plus)
	assert.False(t, d.Valid())

	var v Delegate[int, delegate.Void]
	BindFunctorDiscard[int, int](&v, (*accumulator)(nil))
	assert.False(t, v.Valid())
	BindConstMethodDiscard(&v, (*counter)(nil), counter.Plus)
	assert.False(t, v.Valid())

	var w Delegate[int, int64]
	BindFunctorConvert[int, int32, int64](&w, (*halver)(nil))
	assert.False(t, w.Valid())
	BindConstFunctorConvert[int, int32, int64](&w, (*doubler)(nil))
	assert.False(t, w.Valid())
	BindMethodConvert(&w, (*counter)(nil), (*counter).Add)
	assert.False(t, w.Valid())

	_, err := d.Invoke(1)
	assert.True(t, delegate.IsInvalidOperation(err))
}

func TestSlot_IsDelegate(t *testing.T) {
	t.Parallel()

	var s Slot[int, int] = New(square)
	var d Delegate[int, int] = s

	assert.Equal(t, 9, d.Call(3))
}

func TestConcurrentCallsThroughCopies(t *testing.T) {
	t.Parallel()

	h := &hits{}
	d := NewFunctor[int, int](h)

	const workers, perWorker = 8, 500
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		cp := d
		go func() {
			defer wg.Done()
			for j := 0; j < perWorker; j++ {
				cp.Call(j)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int64(workers*perWorker), h.n.Load())
}

// Not parallel: swaps the package logger.
func TestCall_EmptyWithNilLogger(t *testing.T) {
	prev := delegate.Logger()
	t.Cleanup(func() { delegate.SetLogger(prev) })
	delegate.SetLogger(nil)

	var d Delegate[int, int]
	err := recoverErr(func() { d.Call(1) })
	require.Error(t, err)
	assert.True(t, delegate.IsInvalidOperation(err))

	_, err = d.Invoke(1)
	assert.True(t, delegate.IsInvalidOperation(err))
}

// Not parallel: AllocsPerRun counts allocations of the whole process.
func TestCall_DoesNotAllocate(t *testing.T) {
	c := &counter{}
	d := NewMethod(c, (*counter).Add)

	allocs := testing.AllocsPerRun(100, func() {
		d.Call(1)
	})
	assert.Equal(t, float64(0), allocs)
}
