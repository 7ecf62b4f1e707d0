package spectate

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/KirkDiggler/creature-battle/internal/domain/game/combat"
	apperrors "github.com/KirkDiggler/creature-battle/internal/errors"
	"github.com/KirkDiggler/creature-battle/internal/events"
	battleService "github.com/KirkDiggler/creature-battle/internal/services/battle"
	"github.com/KirkDiggler/creature-battle/internal/uuid"
	"github.com/gorilla/websocket"
)

const (
	// WatchPattern is the route spectators connect to
	WatchPattern = "GET /battles/{id}/watch"

	defaultBufferSize   = 64
	defaultWriteTimeout = 10 * time.Second
	pongWait            = 60 * time.Second
	pingPeriod          = pongWait * 9 / 10
)

// Message is one frame sent to a spectator
type Message struct {
	Type     string          `json:"type"`
	BattleID string          `json:"battle_id"`
	Payload  json.RawMessage `json:"payload"`
}

// MessageTypeSnapshot is sent once on connect with the current battle state
const MessageTypeSnapshot = "snapshot"

// Handler streams battle events to websocket spectators
type Handler struct {
	battleService battleService.Service
	eventBus      *events.Bus
	uuidGenerator uuid.Generator
	upgrader      websocket.Upgrader
	bufferSize    int
	writeTimeout  time.Duration
}

// HandlerConfig holds configuration for the spectate handler
type HandlerConfig struct {
	BattleService battleService.Service
	EventBus      *events.Bus
	UUIDGenerator uuid.Generator

	// CheckOrigin overrides the upgrader's same-origin check
	CheckOrigin func(r *http.Request) bool

	// BufferSize is how many frames may queue per spectator before new ones are dropped
	BufferSize   int
	WriteTimeout time.Duration
}

// NewHandler creates a new spectate handler
func NewHandler(cfg *HandlerConfig) *Handler {
	if cfg.BattleService == nil {
		panic("battle service is required")
	}
	if cfg.EventBus == nil {
		panic("event bus is required")
	}

	h := &Handler{
		battleService: cfg.BattleService,
		eventBus:      cfg.EventBus,
		uuidGenerator: cfg.UUIDGenerator,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     cfg.CheckOrigin,
		},
		bufferSize:   cfg.BufferSize,
		writeTimeout: cfg.WriteTimeout,
	}

	if h.uuidGenerator == nil {
		h.uuidGenerator = uuid.NewGoogleUUIDGenerator()
	}
	if h.bufferSize <= 0 {
		h.bufferSize = defaultBufferSize
	}
	if h.writeTimeout <= 0 {
		h.writeTimeout = defaultWriteTimeout
	}

	return h
}

// Register adds the spectator route to mux
func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc(WatchPattern, h.Watch)
}

// Watch upgrades the request and streams every event of the battle in the
// path until the battle finishes or the spectator disconnects
func (h *Handler) Watch(w http.ResponseWriter, r *http.Request) {
	battleID := r.PathValue("id")

	b, err := h.battleService.GetBattle(r.Context(), battleID)
	if err != nil {
		http.Error(w, err.Error(), apperrors.HTTPStatus(err))
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade already wrote the HTTP error
		log.Printf("Spectate: Failed to upgrade %s: %v", r.RemoteAddr, err)
		return
	}

	sub := &subscriber{
		id:       "spectator-" + h.uuidGenerator.New(),
		battleID: battleID,
		frames:   make(chan []byte, h.bufferSize),
		done:     make(chan struct{}),
		closed:   make(chan struct{}),
	}

	// Subscribe before the snapshot so no event between the two is lost
	h.eventBus.SubscribeAll(sub.listener())
	defer h.eventBus.UnsubscribeAll(sub.id)

	log.Printf("Spectate: %s watching battle %s from %s", sub.id, battleID, r.RemoteAddr)

	if latest, err := h.battleService.GetBattle(r.Context(), battleID); err == nil {
		b = latest
	}
	if frame, err := snapshotFrame(b); err == nil {
		sub.push(frame)
	}
	if b.IsOver() {
		sub.finish()
	}

	go sub.readLoop(conn)
	h.writeLoop(conn, sub)

	log.Printf("Spectate: %s stopped watching battle %s", sub.id, battleID)
}

func (h *Handler) writeLoop(conn *websocket.Conn, sub *subscriber) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = conn.Close()
	}()

	for {
		select {
		case frame := <-sub.frames:
			if err := h.write(conn, websocket.TextMessage, frame); err != nil {
				return
			}
		case <-ticker.C:
			if err := h.write(conn, websocket.PingMessage, nil); err != nil {
				return
			}
		case <-sub.done:
			// Drain whatever was queued before the battle ended
			for {
				select {
				case frame := <-sub.frames:
					if err := h.write(conn, websocket.TextMessage, frame); err != nil {
						return
					}
				default:
					closeMsg := websocket.FormatCloseMessage(websocket.CloseNormalClosure, "battle finished")
					_ = h.write(conn, websocket.CloseMessage, closeMsg)
					return
				}
			}
		case <-sub.closed:
			return
		}
	}
}

func (h *Handler) write(conn *websocket.Conn, messageType int, data []byte) error {
	if err := conn.SetWriteDeadline(time.Now().Add(h.writeTimeout)); err != nil {
		return err
	}
	return conn.WriteMessage(messageType, data)
}

type subscriber struct {
	id       string
	battleID string
	frames   chan []byte

	// done closes once the battle finishes
	done     chan struct{}
	doneOnce sync.Once

	// closed closes once the spectator disconnects
	closed chan struct{}
}

func (s *subscriber) listener() events.EventListener {
	return events.NewListenerFunc(s.id, events.PriorityNotification, func(e events.Event) error {
		if e.GetBattleID() != s.battleID {
			return nil
		}

		frame, err := eventFrame(e)
		if err != nil {
			log.Printf("Spectate: Failed to encode %s for %s: %v", e.GetType(), s.id, err)
			return nil
		}
		s.push(frame)

		if e.GetType() == events.EventTypeBattleFinished {
			s.finish()
		}
		return nil
	})
}

// push queues a frame without blocking the event bus
func (s *subscriber) push(frame []byte) {
	select {
	case s.frames <- frame:
	default:
		log.Printf("Spectate: Dropping frame for slow spectator %s", s.id)
	}
}

func (s *subscriber) finish() {
	s.doneOnce.Do(func() { close(s.done) })
}

// readLoop discards client frames and notices disconnects
func (s *subscriber) readLoop(conn *websocket.Conn) {
	defer close(s.closed)

	conn.SetReadLimit(512)
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

func eventFrame(e events.Event) ([]byte, error) {
	payload, err := json.Marshal(e)
	if err != nil {
		return nil, err
	}
	return json.Marshal(&Message{
		Type:     string(e.GetType()),
		BattleID: e.GetBattleID(),
		Payload:  payload,
	})
}

func snapshotFrame(b *combat.Battle) ([]byte, error) {
	payload, err := json.Marshal(b)
	if err != nil {
		return nil, err
	}
	return json.Marshal(&Message{
		Type:     MessageTypeSnapshot,
		BattleID: b.ID,
		Payload:  payload,
	})
}
