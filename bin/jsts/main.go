package main

import (
	"log"

	"github.com/peterhenningsen/jsts/cmd"
)

func main() {
	err := cmd.Run()
	if err != nil {
		log.Fatal(err.Error())
	}
}
