package transport

import (
	"errors"
	"fmt"

	"github.com/shrtyk/raft-replicator/api"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

// SetupConnections dials every cluster member and returns the connection
// map alongside a close function. On any dial error all already-opened
// connections are closed.
func SetupConnections(members map[api.MemberID]string) (map[api.MemberID]*grpc.ClientConn, func() error, error) {
	conns := make(map[api.MemberID]*grpc.ClientConn, len(members))

	closeAll := func() error {
		var err error
		for id, conn := range conns {
			if cerr := conn.Close(); cerr != nil {
				err = errors.Join(err, fmt.Errorf("failed to close connection to member %q: %w", id, cerr))
			}
		}
		return err
	}

	for id, addr := range members {
		conn, dialErr := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
		if dialErr != nil {
			err := fmt.Errorf("failed to dial member %q: %w", id, dialErr)
			return nil, nil, errors.Join(err, closeAll())
		}
		conns[id] = conn
	}

	return conns, closeAll, nil
}
