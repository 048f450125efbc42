package tiltify

import (
	"encoding/json"
	"errors"
	"fmt"
)

// APIResponse is the union-shaped envelope the API answers with: either
// data carrying a campaign, or a list of errors. Both slots are
// optional on the wire.
type APIResponse struct {
	Data   *APIData   `json:"data"`
	Errors []APIError `json:"errors"`
}

// APIData wraps the campaign inside a successful response.
type APIData struct {
	Campaign *Campaign `json:"campaign"`
}

// APIError is a single server-reported query error.
type APIError struct {
	Message   string     `json:"message"`
	Locations []Location `json:"locations"`
}

// Location points into the outgoing query text. Line and column are
// 1-based.
type Location struct {
	Line   int `json:"line"`
	Column int `json:"column"`
}

// String renders the error the way the CLI reports it: "~ <message>"
// without locations, "~:<line>:<column> <message>" with the first one.
func (e APIError) String() string {
	if len(e.Locations) == 0 {
		return fmt.Sprintf("~ %s", e.Message)
	}
	loc := e.Locations[0]
	return fmt.Sprintf("~:%d:%d %s", loc.Line, loc.Column, e.Message)
}

// DecodeCampaignResponse parses a response body and discriminates the
// envelope: campaign data wins if present; otherwise the server's
// errors are surfaced as a RemoteError in received order; an envelope
// with neither yields ErrEmptyResponse.
func DecodeCampaignResponse(body []byte) (Campaign, error) {
	var res APIResponse
	if err := json.Unmarshal(body, &res); err != nil {
		var malformedAmount *MalformedAmountError
		if errors.As(err, &malformedAmount) {
			return Campaign{}, malformedAmount
		}
		return Campaign{}, &MalformedResponseError{Err: err}
	}

	if res.Data != nil {
		if res.Data.Campaign == nil {
			return Campaign{}, &MalformedResponseError{Err: errors.New("data is present but carries no campaign")}
		}
		return *res.Data.Campaign, nil
	}

	if len(res.Errors) == 0 {
		return Campaign{}, ErrEmptyResponse
	}

	return Campaign{}, &RemoteError{Errors: res.Errors}
}
