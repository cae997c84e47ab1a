package codec

import (
	"net/url"
	"strings"
)

// StateParam is the query parameter carrying the encoded plan.
const StateParam = "state"

// BuildURL places the token on the share URL as its only query parameter.
func BuildURL(baseURL, token string) string {
	q := url.Values{}
	q.Set(StateParam, token)
	return strings.TrimRight(baseURL, "?&") + "?" + q.Encode()
}

// TokenFromInput extracts the plan token from user input, which may be a
// full share URL or a bare token. Anything that does not look like a URL
// carrying a state parameter is returned as-is and left to Decode to judge.
func TokenFromInput(s string) string {
	s = strings.TrimSpace(s)
	u, err := url.Parse(s)
	if err != nil {
		return s
	}
	if token := u.Query().Get(StateParam); token != "" {
		return token
	}
	return s
}
