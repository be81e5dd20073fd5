// Package main runs the capscan HTTP service.
package main

import (
	"log"
	"net/http"

	"github.com/knakagawa/capscan-go/internal/config"
	"github.com/knakagawa/capscan-go/internal/server"
	"github.com/knakagawa/capscan-go/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("[server] config: %v", err)
	}

	srv := server.New(store.NewMemory(), cfg.MaxUploadBytes)

	log.Printf("[server] listening on %s", cfg.Addr)
	if err := http.ListenAndServe(cfg.Addr, srv); err != nil {
		log.Fatalf("[server] %v", err)
	}
}
