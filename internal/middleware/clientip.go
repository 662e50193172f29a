package middleware

import (
	"net/http"
	"net/netip"
	"strings"
)

// ClientIPResolver identifies the caller of a request. Forwarding headers are
// read only when the direct peer is one of the trusted proxies; otherwise the
// peer address is the client.
type ClientIPResolver struct {
	trusted []netip.Prefix
}

func NewClientIPResolver(trusted []netip.Prefix) *ClientIPResolver {
	return &ClientIPResolver{trusted: trusted}
}

func (c *ClientIPResolver) ClientIP(r *http.Request) string {
	peer, ok := peerAddr(r)
	if !ok {
		return remoteHost(r)
	}
	if !c.trusts(peer) {
		return peer.String()
	}

	// Walk X-Forwarded-For right to left; the first hop not added by one of
	// our proxies is the client.
	hops := strings.Split(r.Header.Get("X-Forwarded-For"), ",")
	for i := len(hops) - 1; i >= 0; i-- {
		hop := strings.TrimSpace(hops[i])
		if hop == "" {
			continue
		}
		addr, err := netip.ParseAddr(hop)
		if err != nil {
			break
		}
		addr = addr.Unmap()
		if !c.trusts(addr) {
			return addr.String()
		}
	}

	if addr, err := netip.ParseAddr(strings.TrimSpace(r.Header.Get("X-Real-IP"))); err == nil {
		return addr.Unmap().String()
	}

	return peer.String()
}

func (c *ClientIPResolver) trusts(addr netip.Addr) bool {
	if c == nil {
		return false
	}
	for _, prefix := range c.trusted {
		if prefix.Contains(addr) {
			return true
		}
	}
	return false
}

func peerAddr(r *http.Request) (netip.Addr, bool) {
	remote := strings.TrimSpace(r.RemoteAddr)
	if ap, err := netip.ParseAddrPort(remote); err == nil {
		return ap.Addr().Unmap(), true
	}
	if addr, err := netip.ParseAddr(remote); err == nil {
		return addr.Unmap(), true
	}
	return netip.Addr{}, false
}

// remoteHost is the peer as reported by net/http, used for logging and as a
// last resort when RemoteAddr is not a parseable address.
func remoteHost(r *http.Request) string {
	if addr, ok := peerAddr(r); ok {
		return addr.String()
	}
	if remote := strings.TrimSpace(r.RemoteAddr); remote != "" {
		return remote
	}
	return "unknown"
}
