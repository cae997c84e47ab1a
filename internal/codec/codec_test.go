package codec

import (
	"encoding/base64"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vietdv277/stratus/internal/ipcalc"
	"github.com/vietdv277/stratus/internal/plan"
	"github.com/vietdv277/stratus/pkg/types"
)

func token(payload string) string {
	return base64.RawURLEncoding.EncodeToString([]byte(payload))
}

func fixRichPlan() types.Plan {
	return types.Plan{
		TotalUsers:      250,
		EnvsPerUser:     3,
		AZCount:         3,
		VPCCIDRSize:     18,
		SelectedRegions: []string{"eu-west-1", "us-east-1"},
		Subnets: []types.Subnet{
			{ID: "sub-a", Name: "subnet-1", Region: "eu-west-1", AZ: "a", CIDRSize: 24, AvailableIPs: ipcalc.AvailableIPs(24)},
			{ID: "sub-b", Name: "subnet-2", Region: "us-east-1", AZ: "b", CIDRSize: 20, AvailableIPs: ipcalc.AvailableIPs(20)},
		},
		Runners: []types.Runner{
			{ID: "run-1", Name: "runner-1", Region: "eu-west-1", Users: 125, SubnetIDs: []string{"sub-a"}, Capacity: 251},
			{ID: "run-2", Name: "runner-2", Region: "us-east-1", Users: 125, SubnetIDs: []string{"sub-b"}, Capacity: 4091},
		},
		NextRunnerID: 3,
	}
}

func TestRoundTrip(t *testing.T) {
	t.Run("default plan survives unchanged", func(t *testing.T) {
		// given
		p := plan.Default()

		// when
		tok, err := Encode(p)
		require.NoError(t, err)
		decoded, err := Decode(tok)

		// then
		require.NoError(t, err)
		assert.Equal(t, p, decoded)
	})

	t.Run("populated plan survives unchanged", func(t *testing.T) {
		// given
		p := fixRichPlan()

		// when
		tok, err := Encode(p)
		require.NoError(t, err)
		decoded, err := Decode(tok)

		// then
		require.NoError(t, err)
		assert.Equal(t, p, decoded)
	})

	t.Run("encoding is deterministic", func(t *testing.T) {
		a, err := Encode(fixRichPlan())
		require.NoError(t, err)
		b, err := Encode(fixRichPlan())
		require.NoError(t, err)
		assert.Equal(t, a, b)
	})

	t.Run("tokens use only the URL-safe alphabet", func(t *testing.T) {
		tok, err := Encode(fixRichPlan())
		require.NoError(t, err)
		assert.NotContains(t, tok, "+")
		assert.NotContains(t, tok, "/")
		assert.NotContains(t, tok, "=")
	})
}

func TestDecodeDefaulting(t *testing.T) {
	t.Run("an empty object decodes to the default plan", func(t *testing.T) {
		// when
		decoded, err := Decode(token(`{}`))

		// then
		require.NoError(t, err)
		assert.Equal(t, plan.Default(), decoded)
	})

	t.Run("out-of-range numbers are clamped", func(t *testing.T) {
		// given
		tok := token(`{"totalUsers":0,"environmentsPerUser":99,"azCount":9,"subnetSize":8}`)

		// when
		decoded, err := Decode(tok)

		// then
		require.NoError(t, err)
		assert.Equal(t, 1, decoded.TotalUsers)
		assert.Equal(t, 10, decoded.EnvsPerUser)
		assert.Equal(t, 3, decoded.AZCount)
		assert.Equal(t, 16, decoded.VPCCIDRSize)

		decoded, err = Decode(token(`{"totalUsers":1000000,"subnetSize":30}`))
		require.NoError(t, err)
		assert.Equal(t, 99999, decoded.TotalUsers)
		assert.Equal(t, 22, decoded.VPCCIDRSize)
	})

	t.Run("ill-typed fields fall back independently", func(t *testing.T) {
		// given a payload with field-level garbage but sound structure
		tok := token(`{"totalUsers":"many","selectedRegions":42,"subnets":{"a":1},"runners":null,"azCount":3}`)

		// when
		decoded, err := Decode(tok)

		// then
		require.NoError(t, err)
		assert.Equal(t, 10, decoded.TotalUsers)
		assert.Equal(t, 3, decoded.AZCount)
		assert.Equal(t, []string{}, decoded.SelectedRegions)
		assert.Equal(t, []types.Subnet{}, decoded.Subnets)
		assert.Equal(t, []types.Runner{}, decoded.Runners)
	})

	t.Run("the runner counter never goes below one", func(t *testing.T) {
		decoded, err := Decode(token(`{"nextRunnerId":0}`))
		require.NoError(t, err)
		assert.Equal(t, 1, decoded.NextRunnerID)

		decoded, err = Decode(token(`{"nextRunnerId":-7}`))
		require.NoError(t, err)
		assert.Equal(t, 1, decoded.NextRunnerID)

		decoded, err = Decode(token(`{"nextRunnerId":12}`))
		require.NoError(t, err)
		assert.Equal(t, 12, decoded.NextRunnerID)
	})

	t.Run("runners without a subnet list get an empty one", func(t *testing.T) {
		// given
		tok := token(`{"runners":[{"id":"r","name":"runner-1","region":"eu-west-1","users":5}]}`)

		// when
		decoded, err := Decode(tok)

		// then
		require.NoError(t, err)
		require.Len(t, decoded.Runners, 1)
		assert.NotNil(t, decoded.Runners[0].SubnetIDs)
		assert.Empty(t, decoded.Runners[0].SubnetIDs)
	})
}

func TestDecodeFailures(t *testing.T) {
	cases := []struct {
		name  string
		token string
	}{
		{"not base64", "%%%%"},
		{"standard alphabet padding", token(`{}`) + "=="},
		{"payload is not JSON", token(`{"totalUsers":`)},
		{"payload is a bare number", token(`42`)},
		{"payload is an array", token(`[1,2,3]`)},
		{"payload is null", token(`null`)},
		{"empty token", token(``)},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			// when
			_, err := Decode(tc.token)

			// then
			require.Error(t, err)
			var decodeErr *DecodeError
			assert.True(t, errors.As(err, &decodeErr), "expected a DecodeError, got %T", err)
		})
	}
}
