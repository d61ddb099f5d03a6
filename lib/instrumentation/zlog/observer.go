package zlog

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"gfx.cafe/gfx/rbtree/lib/rbtree"
)

// Observer logs tree events at debug level. Rotations and fixup cases are
// very chatty, so Structural controls whether they are logged at all.
type Observer struct {
	Logger     *zap.Logger
	Structural bool
}

func NewObserver(logger *zap.Logger, tree string) *Observer {
	return &Observer{
		Logger: logger.Named("rbtree").With(zap.String("tree", tree)),
	}
}

func (T *Observer) Observe(event rbtree.Event, size int) {
	switch event {
	case rbtree.EventInsert, rbtree.EventDuplicate, rbtree.EventRemove, rbtree.EventRemoveMiss:
	default:
		if !T.Structural {
			return
		}
	}

	if ce := T.Logger.Check(zapcore.DebugLevel, "tree event"); ce != nil {
		ce.Write(zap.Stringer("event", event), zap.Int("size", size))
	}
}

var _ rbtree.Observer = (*Observer)(nil)
