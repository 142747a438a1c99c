package checks

import (
	"context"
	"net"
	"strconv"
	"time"

	"github.com/roach88/is/internal/predicate"
)

// onlineEndpoint is the well-known endpoint probed by `net online`:
// Cloudflare's public DNS resolver. Package variable so tests can point
// the probe at a local listener.
var onlineEndpoint = "1.1.1.1:53"

// defaultProbeTimeout bounds every network predicate. Unreachability must
// resolve to false within this window rather than hang the calling shell.
const defaultProbeTimeout = 2 * time.Second

// dialOK makes a single TCP connection attempt bounded by the context
// deadline. Any failure - refused, unreachable, timed out - is a
// legitimate false, never an error.
func dialOK(ctx context.Context, addr string) bool {
	var d net.Dialer
	conn, err := d.DialContext(ctx, "tcp", addr)
	if err != nil {
		return false
	}
	_ = conn.Close()
	return true
}

func registerNet(r *predicate.Registry) error {
	return registerSpecs(r, []predicate.Spec{
		{
			Category: "net", Name: "online",
			Help:    "internet is reachable (TCP probe to a public DNS resolver)",
			Timeout: defaultProbeTimeout,
			Eval: func(ctx context.Context, _ []predicate.Operand) (bool, error) {
				return dialOK(ctx, onlineEndpoint), nil
			},
		},
		{
			Category: "net", Name: "port-open",
			Kinds:   []predicate.Kind{predicate.KindString, predicate.KindInt},
			Params:  []string{"host", "port"},
			Help:    "TCP port is accepting connections on the host",
			Timeout: defaultProbeTimeout,
			Eval: func(ctx context.Context, ops []predicate.Operand) (bool, error) {
				port := ops[1].Int()
				if port < 1 || port > 65535 {
					return false, nil
				}
				addr := net.JoinHostPort(ops[0].Str(), strconv.FormatInt(port, 10))
				return dialOK(ctx, addr), nil
			},
		},
	})
}
