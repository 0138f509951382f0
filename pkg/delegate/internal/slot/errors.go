package slot

import (
	"github.com/brickingsoft/errors"
	"github.com/ib-77/delegate/pkg/delegate"
)

const (
	errMetaPkgKey = "pkg"
	errMetaOpKey  = "op"
)

// Operation labels attached to empty-call errors.
const (
	OpCall   = "call"
	OpInvoke = "invoke"
)

// EmptyCallError is returned or raised when an empty delegate is called.
// pkg names the arity package, op is OpCall or OpInvoke.
func EmptyCallError(pkg string, op string) error {
	return errors.From(
		delegate.ErrInvalidOperation,
		errors.WithMeta(errMetaPkgKey, pkg),
		errors.WithMeta(errMetaOpKey, op),
	)
}
