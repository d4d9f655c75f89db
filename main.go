package main

import (
	"context"
	"log"
	"os"
	"os/signal"

	"github.com/samuelfneumann/gobandits/cmd"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := cmd.RootCommand().ExecuteContext(ctx); err != nil {
		log.Fatal(err)
	}
}
