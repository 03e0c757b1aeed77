//go:build linux
// +build linux

package netcheck

import "github.com/vishvananda/netlink"

// defaultRoutePresent reports whether any IPv4 route table entry is a
// default route.
func defaultRoutePresent() bool {
	routes, err := netlink.RouteList(nil, netlink.FAMILY_V4)
	if err != nil {
		return true
	}
	for _, route := range routes {
		if route.Dst == nil || route.Dst.IP.IsUnspecified() {
			return true
		}
	}
	return false
}
