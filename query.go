package tiltify

// Wire shape for the GraphQL query POSTed to the API. The operation and
// query text are fixed; only the variables change per call.
type graphQLRequest struct {
	OperationName string         `json:"operationName"`
	Variables     queryVariables `json:"variables"`
	Query         string         `json:"query"`
}

type queryVariables struct {
	Vanity string `json:"vanity"`
	Slug   string `json:"slug"`
}

const campaignOperationName = "get_campaign_by_vanity_and_slug"

const campaignQuery = `query get_campaign_by_vanity_and_slug($vanity: String, $slug: String) {
  campaign(vanity: $vanity, slug: $slug) {
    name
    description
    totalAmountRaised { currency value }
    goal { currency value }
    milestones { name amount { currency value } }
  }
}`

// buildCampaignQuery assembles the request payload for a vanity and
// slug. Neither input is validated; both pass through verbatim.
func buildCampaignQuery(vanity, slug string) graphQLRequest {
	return graphQLRequest{
		OperationName: campaignOperationName,
		Variables: queryVariables{
			Vanity: vanity,
			Slug:   slug,
		},
		Query: campaignQuery,
	}
}
