package main

import (
	"context"
	"net/http"

	log "github.com/sirupsen/logrus"
)

func run() error {
	server, cleanup, err := live(context.Background())
	if err != nil {
		log.Fatalf("failed to configure server: %v", err)
	}
	defer cleanup()

	server.Log.Info().Str("address", server.Address).Msg("listening")
	return http.ListenAndServe(server.Address, server.Handler)
}

func main() {
	if err := run(); err != nil {
		log.Fatal("ListenAndServe:", err)
	}
}
