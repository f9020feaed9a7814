package main

import (
	"log"
	"net/http"

	"github.com/parkerc/last-quiz-standing/internal/config"
	"github.com/parkerc/last-quiz-standing/internal/oracle"
	"github.com/parkerc/last-quiz-standing/internal/session"
	"github.com/parkerc/last-quiz-standing/internal/store"
	"github.com/parkerc/last-quiz-standing/internal/web"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config: ", err)
	}
	if cfg.LLMAPIKey == "" {
		log.Printf("WARN: LLM_API_KEY is empty, question generation will fail")
	}

	games := store.NewGameStore()
	llm := oracle.NewClient(cfg.LLMBaseURL, cfg.LLMAPIKey, cfg.LLMModel)
	router := session.NewRouter(games, llm, cfg.QuestionTimeout, cfg.OracleTimeout)
	handler := &web.Handler{Store: games, PublicURL: cfg.PublicURL}

	http.HandleFunc("/healthz", handler.HandleHealthz)
	http.HandleFunc("/rooms", handler.HandleCreateRoom)
	http.HandleFunc("/join/", handler.HandleJoinQR)
	http.HandleFunc("/ws/", router.HandleWS)

	log.Printf("Server starting on %s", cfg.Addr)
	log.Fatal(http.ListenAndServe(cfg.Addr, nil))
}
