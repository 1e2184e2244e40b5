package push

import (
	"encoding/json"
	"log"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// EventVideoUpdated is published by the backend when video content
// changes; subscribers use it to trigger a re-fetch.
const EventVideoUpdated = "VIDEO_UPDATED"

// reconnectDelay is the fixed backoff between dial attempts.
const reconnectDelay = 5 * time.Second

// Event is one message from the push-update channel.
type Event struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// Subscriber maintains a persistent websocket connection to the backend's
// push channel and dispatches events to registered handlers.
type Subscriber struct {
	url string

	mu       sync.Mutex
	handlers map[string][]func(Event)
	conn     *websocket.Conn
}

// New builds a subscriber for the given websocket URL.
func New(url string) *Subscriber {
	return &Subscriber{url: url, handlers: map[string][]func(Event){}}
}

// On registers a handler for an event type. Handlers run on the read
// goroutine and should hand off anything slow.
func (s *Subscriber) On(eventType string, handler func(Event)) {
	s.mu.Lock()
	s.handlers[eventType] = append(s.handlers[eventType], handler)
	s.mu.Unlock()
}

// Handle tears down the subscription loop.
type Handle struct {
	stop chan struct{}
	done chan struct{}
	once sync.Once
	sub  *Subscriber
}

// Stop closes the connection and ends the loop.
func (h *Handle) Stop() {
	h.once.Do(func() {
		close(h.stop)
		h.sub.closeConn()
	})
	<-h.done
}

// Start connects and keeps reading until stopped, redialing with a fixed
// backoff on connection loss.
func (s *Subscriber) Start() *Handle {
	handle := &Handle{stop: make(chan struct{}), done: make(chan struct{}), sub: s}

	go func() {
		defer close(handle.done)
		for {
			select {
			case <-handle.stop:
				return
			default:
			}

			conn, _, err := websocket.DefaultDialer.Dial(s.url, nil)
			if err != nil {
				log.Printf("[PUSH] dial %s failed: %v (retrying)", s.url, err)
				select {
				case <-handle.stop:
					return
				case <-time.After(reconnectDelay):
					continue
				}
			}

			s.mu.Lock()
			s.conn = conn
			s.mu.Unlock()
			log.Printf("[PUSH] connected to %s", s.url)

			s.readLoop(conn, handle.stop)

			s.mu.Lock()
			s.conn = nil
			s.mu.Unlock()
		}
	}()

	return handle
}

// readLoop reads and dispatches until the connection drops or the
// subscriber is stopped.
func (s *Subscriber) readLoop(conn *websocket.Conn, stop <-chan struct{}) {
	for {
		_, raw, err := conn.ReadMessage()
		if err != nil {
			select {
			case <-stop:
			default:
				log.Printf("[PUSH] connection lost: %v", err)
			}
			conn.Close()
			return
		}

		var event Event
		if err := json.Unmarshal(raw, &event); err != nil {
			log.Printf("[PUSH] ignoring malformed event: %v", err)
			continue
		}

		s.mu.Lock()
		handlers := append([]func(Event){}, s.handlers[event.Type]...)
		s.mu.Unlock()
		for _, handler := range handlers {
			handler(event)
		}
	}
}

func (s *Subscriber) closeConn() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.conn != nil {
		s.conn.Close()
	}
}
