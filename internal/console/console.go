// Package console exposes the server's command processing over a websocket,
// so operators and deployment scripts can drive it remotely.
package console

import (
	"log"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
)

type Server struct {
	handler  func(line string) string
	logger   *log.Logger
	upgrader websocket.Upgrader
}

// NewServer returns a console that feeds every received line to handler and
// writes the reply back. handler is called from the connection's goroutine
// and must do its own synchronization; the server's command loop takes care
// of that.
func NewServer(handler func(line string) string, logger *log.Logger) *Server {
	return &Server{
		handler: handler,
		logger:  logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  4 * 1024,
			WriteBufferSize: 4 * 1024,
			CheckOrigin:     func(r *http.Request) bool { return true }, // operators only, bind locally
		},
	}
}

func (s *Server) Handler() http.HandlerFunc {
	return func(rw http.ResponseWriter, r *http.Request) {
		conn, err := s.upgrader.Upgrade(rw, r, nil)
		if err != nil {
			return
		}
		defer conn.Close()

		s.logger.Printf("console: %s connected", conn.RemoteAddr())
		defer s.logger.Printf("console: %s disconnected", conn.RemoteAddr())

		for {
			mt, msg, err := conn.ReadMessage()
			if err != nil {
				return
			}
			if mt != websocket.TextMessage {
				continue
			}

			reply := s.handler(string(msg))

			_ = conn.SetWriteDeadline(time.Now().Add(5 * time.Second))
			if err := conn.WriteMessage(websocket.TextMessage, []byte(reply)); err != nil {
				return
			}
		}
	}
}

// ListenAndServe serves the console on addr at /console.
func (s *Server) ListenAndServe(addr string) error {
	mux := http.NewServeMux()
	mux.Handle("/console", s.Handler())
	return http.ListenAndServe(addr, mux)
}
