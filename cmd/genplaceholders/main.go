package main

import (
	"flag"
	"fmt"
	"os"

	"chosenoffset.com/raccoon/internal/config"
	"chosenoffset.com/raccoon/internal/placeholders"
)

func main() {
	configPath := flag.String("config", "data/raccoon.yaml", "path to the YAML config")
	root := flag.String("assets", "", "asset root directory (overrides the config)")
	flag.Parse()

	fmt.Println("Raccoon House Placeholder Generator")
	fmt.Println("===================================")
	fmt.Println()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if *root == "" {
		*root = cfg.Assets.Root
	}

	generated, err := placeholders.GenerateMissing(*root, cfg.Assets.Manifest.All())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Println()
	fmt.Printf("Done! Generated %d placeholder(s) under %s.\n", len(generated), *root)
}
