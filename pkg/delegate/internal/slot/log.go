package slot

import (
	"github.com/ib-77/delegate/pkg/delegate"
	"go.uber.org/zap"
)

// LogBound records a transition into the bound state.
func LogBound(pkg string, kind delegate.Kind) {
	if ce := delegate.Logger().Check(zap.DebugLevel, "delegate bound"); ce != nil {
		ce.Write(zap.String("pkg", pkg), zap.Stringer("kind", kind))
	}
}

// LogCleared records a transition into the empty state. A bind with a nil
// target is reported the same way with nilTarget set.
func LogCleared(pkg string, nilTarget bool) {
	if ce := delegate.Logger().Check(zap.DebugLevel, "delegate cleared"); ce != nil {
		ce.Write(zap.String("pkg", pkg), zap.Bool("nil_target", nilTarget))
	}
}

// LogEmptyCall records a call on an empty delegate.
func LogEmptyCall(pkg string, op string) {
	if ce := delegate.Logger().Check(zap.DebugLevel, "call on empty delegate"); ce != nil {
		ce.Write(zap.String("pkg", pkg), zap.String("op", op))
	}
}
