package main

import (
	"log"

	"talentsift/resume-screener/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		log.Fatal(err)
	}
}
