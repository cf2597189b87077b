package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/fosdem/trisurface/lib/config"
	yaml "github.com/goccy/go-yaml"
)

func main() {
	defaultsPtr := flag.Bool("defaults", false, "Print the default config and exit")
	flag.Parse()

	if *defaultsPtr {
		out, err := yaml.Marshal(config.Default())
		if err != nil {
			log.Fatalf("could not marshal default config: %s", err)
		}
		fmt.Print(string(out))
		return
	}

	if flag.NArg() < 1 {
		log.Fatalf("Usage: %s [-defaults] <config file>", os.Args[0])
	}
	cfg, err := config.Parse(flag.Arg(0))
	if err != nil {
		fmt.Printf("Config invalid: %s\n", err)
		os.Exit(1)
	}

	fmt.Print("Config valid!\n\n")

	fmt.Print(cfg)
}
