package tiltify

// Campaign represents a fundraising campaign with its goal, current
// progress, and milestones, as returned by a successful query.
type Campaign struct {
	// Name is the registered display title of the campaign.
	Name string `json:"name"`

	// Description is the long-form prose describing the campaign.
	Description string `json:"description"`

	// TotalAmountRaised is the amount raised so far.
	TotalAmountRaised Currency `json:"totalAmountRaised"`

	// Goal is the fundraising target.
	Goal Currency `json:"goal"`

	// Milestones lists the campaign's milestones. Order on the wire
	// carries no meaning; a payload without milestones decodes to an
	// empty sequence.
	Milestones []Milestone `json:"milestones"`
}

// Milestone is a named fundraising checkpoint. New events are unlocked
// when the raised amount passes the milestone's threshold.
type Milestone struct {
	// Description says what happens when the milestone is reached.
	// The API calls this field "name".
	Description string `json:"name"`

	// Amount is the threshold, in USD, for this milestone.
	Amount Currency `json:"amount"`
}
