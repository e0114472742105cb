package ws

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/KirkDiggler/ludo/internal/models"
	"github.com/KirkDiggler/ludo/internal/room"
	"github.com/KirkDiggler/ludo/internal/services/match"
	"github.com/KirkDiggler/ludo/internal/validate"
	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

// EventRoomSnapshot is the first message a spectator receives
const EventRoomSnapshot models.EventKind = "room_snapshot"

// ServerError is a custom error type for spectator server errors
type ServerError string

// Error implements the error interface
func (e ServerError) Error() string {
	return string(e)
}

const (
	ErrNilConfig       ServerError = "config cannot be nil"
	ErrNilMatchService ServerError = "match service cannot be nil"
	ErrNilHub          ServerError = "hub cannot be nil"
)

// Config holds configuration for the spectator server
type Config struct {
	MatchService match.Service
	Hub          *Hub

	// Optional logger
	Logger *zap.Logger
}

// Server exposes room listings and a live event feed over HTTP
type Server struct {
	matchService match.Service
	hub          *Hub
	upgrader     websocket.Upgrader
	logger       *zap.Logger
}

// New creates a spectator server
func New(cfg *Config) (*Server, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.MatchService == nil {
		return nil, ErrNilMatchService
	}

	if cfg.Hub == nil {
		return nil, ErrNilHub
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Server{
		matchService: cfg.MatchService,
		hub:          cfg.Hub,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		logger: logger,
	}, nil
}

// Routes returns the HTTP handler
func (s *Server) Routes() http.Handler {
	r := mux.NewRouter()
	r.Use(corsMiddleware)

	r.HandleFunc("/healthz", s.handleHealth).Methods(http.MethodGet)
	r.HandleFunc("/rooms", s.handleListRooms).Methods(http.MethodGet)
	r.HandleFunc("/rooms/{roomID}", s.handleGetRoom).Methods(http.MethodGet)
	r.HandleFunc("/rooms/{roomID}/ws", s.handleWebSocket).Methods(http.MethodGet)

	return r
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Accept, Content-Type")

		// Websocket upgrades skip further CORS handling
		if strings.ToLower(r.Header.Get("Upgrade")) == "websocket" {
			next.ServeHTTP(w, r)
			return
		}

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.logger.Warn("failed to encode response", zap.Error(err))
	}
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	var invalid validate.ValidationError
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, room.ErrRoomNotFound):
		status = http.StatusNotFound
	case errors.As(err, &invalid):
		status = http.StatusBadRequest
	default:
		s.logger.Error("spectator request failed", zap.Error(err))
	}
	s.writeJSON(w, status, map[string]string{"error": err.Error()})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleListRooms(w http.ResponseWriter, r *http.Request) {
	out, err := s.matchService.ListRooms(r.Context(), &match.ListRoomsInput{})
	if err != nil {
		s.writeError(w, err)
		return
	}

	rooms := out.Rooms
	if rooms == nil {
		rooms = []*models.RoomSnapshot{}
	}
	s.writeJSON(w, http.StatusOK, rooms)
}

func (s *Server) handleGetRoom(w http.ResponseWriter, r *http.Request) {
	out, err := s.matchService.GetRoom(r.Context(), &match.GetRoomInput{
		RoomID: mux.Vars(r)["roomID"],
	})
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, out.Room)
}

// handleWebSocket subscribes a spectator to a room. The current snapshot is
// sent first, then every event as it happens.
func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	roomID := mux.Vars(r)["roomID"]

	out, err := s.matchService.GetRoom(r.Context(), &match.GetRoomInput{
		RoomID: roomID,
	})
	if err != nil {
		s.writeError(w, err)
		return
	}

	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade already wrote the HTTP error
		s.logger.Debug("websocket upgrade failed", zap.String("room_id", roomID), zap.Error(err))
		return
	}

	snapshot, err := json.Marshal(&models.Event{
		Kind:      EventRoomSnapshot,
		RoomID:    out.Room.RoomID,
		ChannelID: out.Room.ChannelID,
		Room:      out.Room,
	})
	if err != nil {
		s.logger.Error("failed to encode room snapshot", zap.String("room_id", roomID), zap.Error(err))
		snapshot = nil
	}

	sub := s.hub.subscribe(out.Room.RoomID, conn, snapshot)

	go s.hub.writePump(sub)
	go s.hub.readPump(sub)
}
