package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	eventlogcmd "github.com/jonmarkgo/condottieri-events/internal/cmd/eventlog"
)

func main() {
	cfg, err := eventlogcmd.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatalf("parse flags: %v", err)
	}
	log.SetPrefix("[EVENTLOG] ")
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := eventlogcmd.Run(ctx, cfg); err != nil {
		log.Fatalf("eventlog: %v", err)
	}
}
