package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/raysh454/sokudo/internal/demoserver"
)

func main() {
	cfg := demoserver.DefaultConfig()
	flag.IntVar(&cfg.Port, "port", cfg.Port, "Port for the demo upstream")
	flag.Parse()

	if err := demoserver.NewDemoServer(cfg).Start(); err != nil {
		fmt.Fprintln(os.Stderr, "demoserver:", err)
		os.Exit(1)
	}
}
