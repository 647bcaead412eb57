package main

import (
	"log"
	"os"
)

func main() {
	// disable logging timestamps
	log.SetFlags(0)

	if err := newApp().Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
