// Package web serves the small plain-HTTP surface around the websocket
// game: room creation, health and join QR codes.
package web

import (
	"encoding/json"
	"log"
	"math/rand"
	"net/http"
	"strings"
	"time"

	qrcode "github.com/skip2/go-qrcode"

	"github.com/parkerc/last-quiz-standing/internal/models"
	"github.com/parkerc/last-quiz-standing/internal/store"
)

// Handler holds shared dependencies for the HTTP endpoints
type Handler struct {
	Store     *store.GameStore
	PublicURL string
}

// HandleHealthz reports liveness
func (h *Handler) HandleHealthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}

// HandleCreateRoom creates a new game room and returns its code
func (h *Handler) HandleCreateRoom(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	code := h.Store.UniqueCode()
	g := models.NewGame(code, rand.New(rand.NewSource(time.Now().UnixNano())))
	h.Store.Set(code, g)

	log.Printf("web: created room code=%s", code)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"code": code})
}

// HandleJoinQR renders a QR code of the room's join URL so the presenter
// can put it on screen. Path: /join/{code}/qr.png
func (h *Handler) HandleJoinQR(w http.ResponseWriter, r *http.Request) {
	path := strings.TrimPrefix(r.URL.Path, "/join/")
	code := strings.ToUpper(strings.TrimSuffix(path, "/qr.png"))
	if code == "" || strings.Contains(code, "/") {
		http.Error(w, "Invalid URL", http.StatusBadRequest)
		return
	}
	if !h.Store.Exists(code) {
		http.Error(w, "Room not found", http.StatusNotFound)
		return
	}

	png, err := qrcode.Encode(h.PublicURL+"/join/"+code, qrcode.Medium, 256)
	if err != nil {
		log.Printf("web: qr encode failed for room %s: %v", code, err)
		http.Error(w, "QR generation failed", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Write(png)
}
