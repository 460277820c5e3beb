package websocket

import (
	"context"
	"encoding/json"
	"log"
	"net"
	"net/http"

	"github.com/esimov/ascii-cloth/input"
	"github.com/gorilla/websocket"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/spatial/r2"
)

// gestureBuffer is how many remote gestures may wait for the frame loop
// before new ones are dropped.
const gestureBuffer = 64

// HttpParams holds the address the server listens on and the directory it
// serves static files from under Prefix.
type HttpParams struct {
	Address string
	Prefix  string
	Root    string
}

// Message is a pointer gesture sent by a remote client, in simulation
// coordinates.
type Message struct {
	Type string  `json:"type"`
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
	DX   float64 `json:"dx"`
	DY   float64 `json:"dy"`
}

// Reply acknowledges every message read from the socket.
type Reply struct {
	OK    bool   `json:"ok"`
	Error string `json:"error,omitempty"`
}

// Server accepts websocket connections and forwards the gestures read from
// them to the frame loop. It never touches the cloth itself.
type Server struct {
	params   HttpParams
	upgrader websocket.Upgrader
	gestures chan input.Gesture
	srv      *http.Server
}

// NewServer creates a server for the given parameters.
func NewServer(p HttpParams) *Server {
	s := &Server{
		params: p,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
		gestures: make(chan input.Gesture, gestureBuffer),
	}
	s.srv = &http.Server{Handler: s.Handler()}
	return s
}

// Gestures returns the channel the decoded gestures are delivered on.
func (s *Server) Gestures() <-chan input.Gesture {
	return s.gestures
}

// Addr returns the address the server was configured with.
func (s *Server) Addr() string {
	return s.params.Address
}

// Handler returns the logging handler serving the static root and the /ws
// endpoint.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.Handle(s.params.Prefix, http.StripPrefix(s.params.Prefix, http.FileServer(http.Dir(s.params.Root))))
	mux.HandleFunc("/ws", s.wsHandler)

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log.Print(r.RemoteAddr + " " + r.Method + " " + r.URL.String())
		mux.ServeHTTP(w, r)
	})
}

// Serve accepts connections on ln until Shutdown is called.
func (s *Server) Serve(ln net.Listener) error {
	log.Printf("serving %s as %s on %s", s.params.Root, s.params.Prefix, ln.Addr())
	if err := s.srv.Serve(ln); err != nil && err != http.ErrServerClosed {
		return errors.Wrap(err, "websocket server")
	}
	return nil
}

// Shutdown stops the server gracefully.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}

// wsHandler defines the websocket connection endpoint
func (s *Server) wsHandler(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		if _, ok := err.(websocket.HandshakeError); !ok {
			log.Println(err)
		}
		return
	}
	go s.readSocket(conn)
}

// readSocket listens for new gestures being sent to the websocket
func (s *Server) readSocket(conn *websocket.Conn) {
	defer conn.Close()

	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("error: %v", err)
			}
			return
		}

		reply := Reply{OK: true}
		if g, err := decode(msg); err != nil {
			reply = Reply{Error: err.Error()}
		} else {
			select {
			case s.gestures <- g:
			default:
				log.Printf("dropping %v gesture: frame loop busy", g.Kind)
			}
		}

		if err := conn.WriteJSON(reply); err != nil {
			log.Println(err)
			return
		}
	}
}

func decode(msg []byte) (input.Gesture, error) {
	var m Message
	if err := json.Unmarshal(msg, &m); err != nil {
		return input.Gesture{}, errors.Wrap(err, "decoding gesture")
	}
	kind, err := input.ParseKind(m.Type)
	if err != nil {
		return input.Gesture{}, err
	}
	return input.Gesture{
		Kind:  kind,
		Pos:   r2.Vec{X: m.X, Y: m.Y},
		Delta: r2.Vec{X: m.DX, Y: m.DY},
	}, nil
}
