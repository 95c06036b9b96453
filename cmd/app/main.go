package main

import (
	"github.com/labstack/gommon/log"
)

func main() {
	if err := NewRootCommand().Execute(); err != nil {
		log.Fatal(err)
	}
}
