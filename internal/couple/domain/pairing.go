package domain

import "time"

// Status is the lifecycle state of a pairing. A pairing starts Pending and
// transitions to Completed exactly once.
type Status string

const (
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
)

// PartnerKind discriminates how the second person is attached to a pairing.
type PartnerKind int

const (
	// PartnerNone means no partner yet; the pairing is still pending.
	PartnerNone PartnerKind = iota
	// PartnerAnonymous means the partner completed the quiz without an
	// account; their name and answers live inline on the record.
	PartnerAnonymous
	// PartnerLinked means a registered account joined the pairing; answers
	// come from that user's stored answer set.
	PartnerLinked
)

// Partner is a tagged variant: exactly the fields implied by Kind are set.
type Partner struct {
	Kind        PartnerKind
	UserID      string    // Kind == PartnerLinked
	DisplayName string    // Kind == PartnerAnonymous
	Answers     AnswerSet // Kind == PartnerAnonymous; inline snapshot
}

// AnonymousPartner builds the anonymous variant.
func AnonymousPartner(displayName string, answers AnswerSet) Partner {
	return Partner{Kind: PartnerAnonymous, DisplayName: displayName, Answers: answers}
}

// LinkedPartner builds the linked-account variant.
func LinkedPartner(userID string) Partner {
	return Partner{Kind: PartnerLinked, UserID: userID}
}

// Pairing tracks one initiator/partner relationship keyed externally by its
// invite key. InviteKey and InitiatorID are immutable after creation; Partner
// and Status mutate exactly once, together.
type Pairing struct {
	ID          string
	InviteKey   string
	InitiatorID string
	Partner     Partner
	Status      Status
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Completed reports whether the pairing has reached its terminal state.
func (p Pairing) Completed() bool { return p.Status == StatusCompleted }
