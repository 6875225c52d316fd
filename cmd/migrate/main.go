package main

import (
	"log"
	"os"

	"lodge/config"
	"lodge/helper"
)

const (
	argLength = 2
)

func main() {
	if len(os.Args) < argLength {
		log.Fatal("Migration action (up/down/step-up/drop) is required")
	}

	if err := helper.Runner(config.Get(), os.Args[1]); err != nil {
		log.Fatal(err)
	}
}
