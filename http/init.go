package http

import (
	"log"
	"net"
	"path/filepath"

	"github.com/esimov/ascii-cloth/websocket"
	"github.com/pkg/errors"
)

// InitServer starts the remote input server in the background and returns
// it once it is listening.
func InitServer(p websocket.HttpParams) (*websocket.Server, error) {
	root, err := filepath.Abs(p.Root)
	if err != nil {
		return nil, errors.Wrap(err, "resolving root")
	}
	p.Root = root

	ln, err := net.Listen("tcp", p.Address)
	if err != nil {
		return nil, errors.Wrapf(err, "listening on %s", p.Address)
	}

	p.Address = ln.Addr().String()

	srv := websocket.NewServer(p)
	go func() {
		if err := srv.Serve(ln); err != nil {
			log.Println(err)
		}
	}()
	return srv, nil
}
