package main

import (
	"context"
	"os"

	"gfx.cafe/util/go/gotel"

	rbtreecmd "gfx.cafe/gfx/rbtree/cmd"
)

func main() {
	fn, _ := gotel.InitTracing(context.Background(), gotel.WithServiceName("rbtree"))

	err := rbtreecmd.Main()
	// flush spans before exiting, including those of a failed run
	_ = fn(context.Background())
	if err != nil {
		os.Exit(1)
	}
}
