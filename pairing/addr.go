package pairing

import (
	"errors"
	"net"
)

// ErrNoNetwork means no LAN-reachable IPv4 address could be found, so there
// is nothing a phone could connect to.
var ErrNoNetwork = errors.New("pairing: no usable network address")

// LocalIP returns the machine's first non-loopback IPv4 address.
func LocalIP() (string, error) {
	addrs, err := net.InterfaceAddrs()
	if err != nil {
		return "", err
	}
	for _, addr := range addrs {
		if ipnet, ok := addr.(*net.IPNet); ok && !ipnet.IP.IsLoopback() && ipnet.IP.To4() != nil {
			return ipnet.IP.String(), nil
		}
	}
	return "", ErrNoNetwork
}
