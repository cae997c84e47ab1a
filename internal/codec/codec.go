// Package codec turns a plan into a URL-safe share token and back. Tokens
// are the only persistence mechanism: the JSON form of the plan, base64
// encoded with the URL alphabet and no padding.
package codec

import (
	"encoding/base64"
	"encoding/json"

	"github.com/pkg/errors"

	"github.com/vietdv277/stratus/internal/plan"
	"github.com/vietdv277/stratus/pkg/types"
)

// DecodeError reports a share token that could not be read. A bad encoding
// alphabet and an unparseable payload are collapsed into this single kind;
// callers treat every decode failure the same way, by discarding the token
// and starting from the default plan.
type DecodeError struct {
	cause error
}

func (e *DecodeError) Error() string { return "invalid plan token: " + e.cause.Error() }

func (e *DecodeError) Unwrap() error { return e.cause }

// Encode serializes the plan to its share-token form.
func Encode(p types.Plan) (string, error) {
	raw, err := json.Marshal(p)
	if err != nil {
		return "", errors.Wrap(err, "while marshaling plan")
	}
	return base64.RawURLEncoding.EncodeToString(raw), nil
}

// Decode parses a share token back into a plan. Every field is read
// independently: missing or ill-typed numeric fields fall back to their
// defaults and are clamped to their bounds, collections that are not proper
// sequences come back empty. Only an undecodable token or a payload that is
// not a JSON object fails, with a DecodeError.
func Decode(token string) (types.Plan, error) {
	raw, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return types.Plan{}, &DecodeError{cause: err}
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return types.Plan{}, &DecodeError{cause: err}
	}
	if fields == nil {
		return types.Plan{}, &DecodeError{cause: errors.New("payload is not an object")}
	}

	p := types.Plan{
		TotalUsers:      clampField(fields, "totalUsers", plan.DefaultTotalUsers, plan.MinTotalUsers, plan.MaxTotalUsers),
		EnvsPerUser:     clampField(fields, "environmentsPerUser", plan.DefaultEnvsPerUser, plan.MinEnvsPerUser, plan.MaxEnvsPerUser),
		AZCount:         clampField(fields, "azCount", plan.DefaultAZCount, plan.MinAZCount, plan.MaxAZCount),
		VPCCIDRSize:     clampField(fields, "subnetSize", plan.DefaultVPCCIDRSize, plan.MinVPCCIDRSize, plan.MaxVPCCIDRSize),
		SelectedRegions: regionsField(fields),
		Subnets:         subnetsField(fields),
		Runners:         runnersField(fields),
		NextRunnerID:    counterField(fields),
	}
	return p, nil
}

func intField(fields map[string]json.RawMessage, key string, def int) int {
	raw, ok := fields[key]
	if !ok {
		return def
	}
	var v *int
	if err := json.Unmarshal(raw, &v); err != nil || v == nil {
		return def
	}
	return *v
}

func clampField(fields map[string]json.RawMessage, key string, def, lo, hi int) int {
	return plan.Clamp(intField(fields, key, def), lo, hi)
}

func counterField(fields map[string]json.RawMessage) int {
	v := intField(fields, "nextRunnerId", 1)
	if v < 1 {
		return 1
	}
	return v
}

func regionsField(fields map[string]json.RawMessage) []string {
	raw, ok := fields["selectedRegions"]
	if !ok {
		return []string{}
	}
	var v []string
	if err := json.Unmarshal(raw, &v); err != nil || v == nil {
		return []string{}
	}
	return v
}

func subnetsField(fields map[string]json.RawMessage) []types.Subnet {
	raw, ok := fields["subnets"]
	if !ok {
		return []types.Subnet{}
	}
	var v []types.Subnet
	if err := json.Unmarshal(raw, &v); err != nil || v == nil {
		return []types.Subnet{}
	}
	return v
}

func runnersField(fields map[string]json.RawMessage) []types.Runner {
	raw, ok := fields["runners"]
	if !ok {
		return []types.Runner{}
	}
	var v []types.Runner
	if err := json.Unmarshal(raw, &v); err != nil || v == nil {
		return []types.Runner{}
	}
	for i := range v {
		if v[i].SubnetIDs == nil {
			v[i].SubnetIDs = []string{}
		}
	}
	return v
}
