package main

import (
	"context"
	"fmt"
	"os"

	"github.com/michaelangeloio/qapp/internal/cli"
	"github.com/michaelangeloio/qapp/internal/config"
	"github.com/michaelangeloio/qapp/internal/logging"
)

func main() {
	cfg := config.MustLoad()
	if err := cli.New(cfg).Run(context.Background(), os.Args); err != nil {
		logging.Error(err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
