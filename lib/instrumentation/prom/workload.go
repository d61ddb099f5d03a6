package prom

import (
	"gfx.cafe/open/gotoprom"
	"github.com/prometheus/client_golang/prometheus"
)

func init() {
	gotoprom.MustInit(&Workload, "rbtree_workload", make(prometheus.Labels))
}

type WorkloadLabels struct {
	Workload string `label:"workload"`
	Phase    string `label:"phase"`
}

var Workload struct {
	Duration func(WorkloadLabels) prometheus.Histogram `name:"phase_ms" buckets:"0.1,0.5,1,5,10,50,100,250,500,1000,2500,5000,10000" help:"ms a workload phase took"`
	Ops      func(WorkloadLabels) prometheus.Counter   `name:"ops" help:"operations applied by workload phases"`
	Runs     func(WorkloadLabels) prometheus.Counter   `name:"runs" help:"completed workload phases"`
}
