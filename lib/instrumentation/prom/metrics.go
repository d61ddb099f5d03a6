package prom

import (
	"gfx.cafe/open/gotoprom"
	"github.com/prometheus/client_golang/prometheus"

	"gfx.cafe/gfx/rbtree/lib/rbtree"
)

type TreeLabels struct {
	Tree string `label:"tree"`
}

type TreeEventLabels struct {
	Tree  string `label:"tree"`
	Event string `label:"event"`
}

var Tree struct {
	Events func(TreeEventLabels) prometheus.Counter `name:"events" help:"tree events by kind"`
	Size   func(TreeLabels) prometheus.Gauge        `name:"size" help:"keys currently in the tree"`
}

func init() {
	gotoprom.MustInit(&Tree, "rbtree_tree", prometheus.Labels{})
}

// Observer exports the events of one tree, labelled by its name.
type Observer struct {
	size   prometheus.Gauge
	events [len(eventLabels)]prometheus.Counter
}

var eventLabels = [...]rbtree.Event{
	rbtree.EventInsert,
	rbtree.EventDuplicate,
	rbtree.EventRemove,
	rbtree.EventRemoveMiss,
	rbtree.EventRotateLeft,
	rbtree.EventRotateRight,
	rbtree.EventInsertRecolor,
	rbtree.EventInsertRotate,
	rbtree.EventRemoveSiblingRed,
	rbtree.EventRemoveRecolor,
	rbtree.EventRemoveNearNephew,
	rbtree.EventRemoveFarNephew,
}

// NewObserver resolves every labelled metric up front so Observe does no
// label lookups.
func NewObserver(tree string) *Observer {
	o := &Observer{
		size: Tree.Size(TreeLabels{Tree: tree}),
	}
	for i, event := range eventLabels {
		o.events[i] = Tree.Events(TreeEventLabels{
			Tree:  tree,
			Event: event.String(),
		})
	}
	return o
}

func (T *Observer) Observe(event rbtree.Event, size int) {
	if int(event) < len(T.events) {
		T.events[event].Inc()
	}
	switch event {
	case rbtree.EventInsert, rbtree.EventRemove:
		T.size.Set(float64(size))
	}
}

var _ rbtree.Observer = (*Observer)(nil)
