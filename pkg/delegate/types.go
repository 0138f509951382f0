package delegate

// Void is the "ignore result" type. A delegate returning Void accepts
// callables with any result through the Discard bindings.
type Void struct{}

// Number admits the types between which BindConvert may convert results.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}
