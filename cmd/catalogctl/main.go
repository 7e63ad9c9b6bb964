package main

import (
	"fmt"
	"os"

	"catalog-service/cmd/catalogctl/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
