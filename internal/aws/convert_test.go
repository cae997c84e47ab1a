package aws

import (
	"testing"

	"github.com/stretchr/testify/assert"

	pkgtypes "github.com/vietdv277/stratus/pkg/types"
)

func TestToPlanSubnet(t *testing.T) {
	t.Run("maps CIDR, zone letter, and formula capacity", func(t *testing.T) {
		// given
		live := pkgtypes.AWSSubnet{
			ID:           "subnet-0abc",
			Name:         "ci-private-a",
			VPCID:        "vpc-1",
			CIDR:         "10.0.1.0/24",
			AZ:           "eu-west-1a",
			AvailableIPs: 197, // live count deliberately ignored
		}

		// when
		s := ToPlanSubnet(live)

		// then
		assert.Equal(t, "subnet-0abc", s.ID)
		assert.Equal(t, "ci-private-a", s.Name)
		assert.Equal(t, "eu-west-1", s.Region)
		assert.Equal(t, "a", s.AZ)
		assert.Equal(t, 24, s.CIDRSize)
		assert.Equal(t, 251, s.AvailableIPs)
	})

	t.Run("falls back to the subnet id when the name tag is missing", func(t *testing.T) {
		s := ToPlanSubnet(pkgtypes.AWSSubnet{ID: "subnet-0abc", CIDR: "10.0.0.0/20", AZ: "us-east-1c"})
		assert.Equal(t, "subnet-0abc", s.Name)
	})
}

func TestToPlanRunner(t *testing.T) {
	// given
	fleet := pkgtypes.RunnerFleet{
		Name:            "ci-runners",
		DesiredCapacity: 8,
		SubnetIDs:       []string{"subnet-0abc", "subnet-0def"},
	}

	// when
	r := ToPlanRunner(fleet, "eu-west-1")

	// then
	assert.Equal(t, "ci-runners", r.ID)
	assert.Equal(t, "eu-west-1", r.Region)
	assert.Equal(t, 8, r.Users)
	assert.Equal(t, []string{"subnet-0abc", "subnet-0def"}, r.SubnetIDs)
	assert.Zero(t, r.Capacity)
}

func TestCIDRSize(t *testing.T) {
	assert.Equal(t, 24, CIDRSize("10.0.1.0/24"))
	assert.Equal(t, 16, CIDRSize("172.31.0.0/16"))
	assert.Equal(t, 0, CIDRSize("not-a-cidr"))
}

func TestSplitZoneIdentifier(t *testing.T) {
	assert.Equal(t, []string{"subnet-1", "subnet-2"}, SplitZoneIdentifier("subnet-1,subnet-2"))
	assert.Equal(t, []string{"subnet-1"}, SplitZoneIdentifier(" subnet-1 ,"))
	assert.Nil(t, SplitZoneIdentifier(""))
}

func TestZoneHelpers(t *testing.T) {
	assert.Equal(t, "a", ZoneLetter("us-east-1a"))
	assert.Equal(t, "us-east-1", RegionOfAZ("us-east-1a"))
	assert.Equal(t, "", ZoneLetter(""))
}
