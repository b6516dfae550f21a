package main

import (
	"log"

	"github.com/spec-kit/helpdesk-admin/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
