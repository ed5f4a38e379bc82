package main

import (
	"log"

	"teamraw-backend/internal/api"
	"teamraw-backend/internal/auth"
	"teamraw-backend/internal/config"
	"teamraw-backend/internal/llm"
	"teamraw-backend/internal/store"
	"teamraw-backend/internal/ws"
)

func main() {
	cfg := config.LoadConfig()

	st := store.NewStore(cfg.ContactsFile)
	authSvc := auth.NewService(cfg.JWTSecret, auth.DefaultAdmins)
	llmClient := llm.NewClient(cfg)

	hub := ws.NewHub()
	go hub.Run()

	r := api.NewRouter(cfg, st, authSvc, hub, llmClient)

	log.Printf("Server starting on port %s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}
