package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/joho/godotenv"

	"github.com/amamam1231/ai-project-312/internal/contactctl"
)

func main() {
	_ = godotenv.Load(".env")
	_ = godotenv.Overload(".env.local")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := contactctl.NewRootCommand().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
