package main

import (
	"context"
	"fmt"
	"os"

	"truckctl/pkg/logger"
)

const ServiceName = "truckctl"

func init() {
	logger.InitGlobalSlog(ServiceName)
}

func main() {
	if err := newApp().Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "truckctl: %s\n", err)
		os.Exit(1)
	}
}
