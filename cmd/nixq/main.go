// cmd/nixq/main.go
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/arc-language/nixq/internal/cli"
)

func main() {
	err := cli.Execute()
	if err == nil {
		return
	}

	fmt.Fprintf(os.Stderr, "Error: %v\n", err)

	var usageErr *cli.UsageError
	if errors.As(err, &usageErr) {
		os.Exit(2)
	}
	os.Exit(1)
}
