package main

// This demonstrates the simplest use of the ring: a fixed set of hosts
// and plain lookups. See cmd/demo for load-aware routing.

import (
	"fmt"
	"os"

	"github.com/routamo/hashring"
)

func main() {
	r := hashring.New(hashring.Config{})

	r.Add("1.1.1.1")
	r.Add("2.2.2.2")
	r.Add("3.3.3.3")

	keys := os.Args[1:]
	if len(keys) == 0 {
		keys = []string{"1.1.1.1", "8.8.8.8", "/foo", "/bar"}
	}
	for _, key := range keys {
		host, ok := r.Get(key)
		if !ok {
			fmt.Printf("%v -> no hosts registered\n", key)
			continue
		}
		fmt.Printf("%v -> %v\n", key, host)
	}
}
