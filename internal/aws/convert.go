package aws

import (
	"net/netip"
	"strings"

	"github.com/vietdv277/stratus/internal/ipcalc"
	pkgtypes "github.com/vietdv277/stratus/pkg/types"
)

// ToPlanSubnet converts a live subnet into plan form. The AWS subnet id
// becomes the plan id so re-imports and fleet subnet references line up.
// Available addresses come from the planning formula, not the live count:
// the plan reasons about nominal capacity, and the live figure is only
// shown in the import preview.
func ToPlanSubnet(s pkgtypes.AWSSubnet) pkgtypes.Subnet {
	size := CIDRSize(s.CIDR)
	name := s.Name
	if name == "" {
		name = s.ID
	}
	return pkgtypes.Subnet{
		ID:           s.ID,
		Name:         name,
		Region:       RegionOfAZ(s.AZ),
		AZ:           ZoneLetter(s.AZ),
		CIDRSize:     size,
		AvailableIPs: ipcalc.AvailableIPs(size),
	}
}

// ToPlanRunner converts a fleet into plan form. Users are seeded from the
// desired capacity, like a manual edit: adding the runner this way never
// redistributes the allocations already in the plan.
func ToPlanRunner(f pkgtypes.RunnerFleet, region string) pkgtypes.Runner {
	return pkgtypes.Runner{
		ID:        f.Name,
		Name:      f.Name,
		Region:    region,
		Users:     f.DesiredCapacity,
		SubnetIDs: append([]string{}, f.SubnetIDs...),
	}
}

// CIDRSize returns the prefix length of a CIDR block, or 0 when the block
// does not parse.
func CIDRSize(cidr string) int {
	prefix, err := netip.ParsePrefix(cidr)
	if err != nil {
		return 0
	}
	return prefix.Bits()
}

// ZoneLetter returns the zone suffix of an availability zone name,
// "us-east-1a" -> "a".
func ZoneLetter(az string) string {
	if az == "" {
		return ""
	}
	return az[len(az)-1:]
}

// RegionOfAZ returns the region an availability zone belongs to,
// "us-east-1a" -> "us-east-1".
func RegionOfAZ(az string) string {
	if az == "" {
		return ""
	}
	return strings.TrimRight(az, "abcdef")
}
