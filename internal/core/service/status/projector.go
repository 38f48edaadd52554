package status

import "strings"

// Raw status tokens emitted by the backend
const (
	StatusConfirmed      = "confirmed"
	StatusShipped        = "shipped"
	StatusOutForDelivery = "out_for_delivery"
	StatusDelivered      = "delivered"
	StatusCancelled      = "cancelled"
)

// Milestone is one step of the shipment progression
type Milestone struct {
	Key       string `json:"key"`
	Label     string `json:"label"`
	Active    bool   `json:"active"`
	Completed bool   `json:"completed"`
}

// Progression is the presentation-ready projection of a raw status
// token. When Cancelled is set the milestone sequence is suppressed and
// the caller renders a cancellation notice instead.
type Progression struct {
	Status     string      `json:"status"`
	Cancelled  bool        `json:"cancelled"`
	Milestones []Milestone `json:"milestones,omitempty"`
}

var steps = []struct {
	key   string
	label string
}{
	{StatusConfirmed, "Order Confirmed"},
	{StatusShipped, "Shipped"},
	{StatusOutForDelivery, "Out for Delivery"},
	{StatusDelivered, "Delivered"},
}

var rank = map[string]int{
	StatusConfirmed:      1,
	StatusShipped:        2,
	StatusOutForDelivery: 3,
	StatusDelivered:      4,
}

// Project derives the milestone progression from a raw status token.
// It is a total function: any input, including the empty string and
// unknown tokens, yields a well-formed progression. An unknown token
// degrades to "confirmed only" rather than an error.
func Project(raw string) Progression {
	token := strings.TrimSpace(raw)

	if token == StatusCancelled {
		return Progression{Status: token, Cancelled: true}
	}

	reached, ok := rank[token]
	if !ok {
		reached = rank[StatusConfirmed]
	}

	milestones := make([]Milestone, 0, len(steps))
	for i, step := range steps {
		done := i < reached
		milestones = append(milestones, Milestone{
			Key:       step.key,
			Label:     step.label,
			Active:    done,
			Completed: done,
		})
	}

	return Progression{
		Status:     token,
		Milestones: milestones,
	}
}
