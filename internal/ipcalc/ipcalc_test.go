package ipcalc

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAvailableIPs(t *testing.T) {
	t.Run("matches the AWS reserved-address formula across the usable range", func(t *testing.T) {
		for size := 16; size <= 28; size++ {
			expected := 1<<(32-size) - 5
			assert.Equal(t, expected, AvailableIPs(size), "prefix /%d", size)
		}
	})

	t.Run("well-known sizes", func(t *testing.T) {
		assert.Equal(t, 65531, AvailableIPs(16))
		assert.Equal(t, 251, AvailableIPs(24))
		assert.Equal(t, 11, AvailableIPs(28))
	})

	t.Run("degenerate prefixes go negative without clamping", func(t *testing.T) {
		assert.Equal(t, -1, AvailableIPs(30))
		assert.Equal(t, -3, AvailableIPs(31))
		assert.Equal(t, -4, AvailableIPs(32))
	})
}

func TestTotalCapacity(t *testing.T) {
	t.Run("multiplies per-subnet addresses by zone count", func(t *testing.T) {
		assert.Equal(t, 502, TotalCapacity(2, 24))
		assert.Equal(t, 3*65531, TotalCapacity(3, 16))
	})

	t.Run("zero zones yield zero capacity", func(t *testing.T) {
		assert.Equal(t, 0, TotalCapacity(0, 24))
	})
}

func TestValidSubnetSizes(t *testing.T) {
	t.Run("enumerates from one past the VPC block down to /27", func(t *testing.T) {
		// given
		vpcSize := 16

		// when
		sizes := ValidSubnetSizes(vpcSize)

		// then
		require.Len(t, sizes, 11)
		assert.Equal(t, SubnetSize{Size: 17, AvailableIPs: 32763}, sizes[0])
		assert.Equal(t, SubnetSize{Size: 27, AvailableIPs: 27}, sizes[len(sizes)-1])
	})

	t.Run("narrow VPC leaves few choices", func(t *testing.T) {
		sizes := ValidSubnetSizes(26)
		require.Len(t, sizes, 1)
		assert.Equal(t, 27, sizes[0].Size)
	})

	t.Run("VPC at the floor leaves none", func(t *testing.T) {
		assert.Empty(t, ValidSubnetSizes(27))
	})

	t.Run("rebuilt fresh on every call", func(t *testing.T) {
		first := ValidSubnetSizes(20)
		first[0].AvailableIPs = -1
		second := ValidSubnetSizes(20)
		assert.Equal(t, AvailableIPs(21), second[0].AvailableIPs)
	})
}

func TestSubnetSizeLabel(t *testing.T) {
	s := SubnetSize{Size: 24, AvailableIPs: AvailableIPs(24)}
	assert.Equal(t, fmt.Sprintf("/24 (%d IPs)", 251), s.Label())
}
