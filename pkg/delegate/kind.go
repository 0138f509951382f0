package delegate

// Kind tags which callable shape a delegate is bound to.
type Kind uint8

const (
	// KindNone marks an empty delegate.
	KindNone Kind = iota
	KindFunc
	KindFunctor
	KindConstFunctor
	KindMethod
	KindConstMethod
)

// String returns the lower-case name used in log fields.
func (k Kind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindFunc:
		return "func"
	case KindFunctor:
		return "functor"
	case KindConstFunctor:
		return "const_functor"
	case KindMethod:
		return "method"
	case KindConstMethod:
		return "const_method"
	default:
		return "unknown"
	}
}
