package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/patrickprogramme/yt2xml/internal/cli"
)

func main() {
	// .env optionnel : les variables YT2XML_* qu'il contient priment sur le fichier de config
	_ = godotenv.Load()

	// root context qui s'annule sur SIGINT / SIGTERM
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := cli.Execute(ctx)
	stop()
	os.Exit(code)
}
