// Package ipcalc holds the address arithmetic for AWS subnet planning.
package ipcalc

import (
	"fmt"
	"math"
)

// MaxSubnetSize is the narrowest prefix offered when picking a subnet size.
const MaxSubnetSize = 27

// SubnetSize pairs a CIDR prefix length with its usable-address count.
type SubnetSize struct {
	Size         int
	AvailableIPs int
}

// Label renders a subnet size the way pickers and prompts display it.
func (s SubnetSize) Label() string {
	return fmt.Sprintf("/%d (%d IPs)", s.Size, s.AvailableIPs)
}

// AvailableIPs returns the usable addresses in a subnet of the given prefix
// length. AWS reserves four low addresses and one high address per subnet.
// Prefixes of /30 and narrower come out negative; the value is passed
// through unclamped so callers can surface the degenerate configuration.
func AvailableIPs(cidrSize int) int {
	return int(math.Pow(2, float64(32-cidrSize))) - 5
}

// TotalCapacity returns the usable addresses across azCount subnets of the
// given prefix length, one per availability zone.
func TotalCapacity(azCount, cidrSize int) int {
	return AvailableIPs(cidrSize) * azCount
}

// ValidSubnetSizes enumerates every prefix length usable inside a VPC of the
// given size, from one bit narrower than the VPC block down to /27. The
// slice is rebuilt on every call.
func ValidSubnetSizes(vpcCIDRSize int) []SubnetSize {
	var sizes []SubnetSize
	for size := vpcCIDRSize + 1; size <= MaxSubnetSize; size++ {
		sizes = append(sizes, SubnetSize{Size: size, AvailableIPs: AvailableIPs(size)})
	}
	return sizes
}
