package main

import (
	"os"

	"github.com/go-i2p/go-rcstore/lib/console"
)

func main() {
	if err := console.Execute(); err != nil {
		os.Exit(1)
	}
}
