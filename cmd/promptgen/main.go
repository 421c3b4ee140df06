package main

import (
	"context"
	"os"
	"os/signal"

	logpkg "onebuttonprompt/internal/log"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		logger := logpkg.CreateLogger()
		logger.Fatal("%v", err)
	}
}
