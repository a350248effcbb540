package service

import "github.com/secondate/secondate/internal/couple/domain"

// Result is the shared outcome of a completed pairing: both names and both
// full answer sets, ready for scoring on the client.
type Result struct {
	FirstPersonName     string
	SecondPersonName    string
	FirstPersonAnswers  domain.AnswerSet
	SecondPersonAnswers domain.AnswerSet
	Status              domain.Status
}

func assembleResult(
	p domain.Pairing,
	initiator domain.User,
	initiatorAnswers domain.AnswerSet,
	partner *domain.User,
	partnerStored domain.AnswerSet,
	partnerStoredOK bool,
) Result {
	return Result{
		FirstPersonName:     initiator.FullName,
		SecondPersonName:    resolvePartnerName(p, partner),
		FirstPersonAnswers:  initiatorAnswers,
		SecondPersonAnswers: resolvePartnerAnswers(p, partnerStored, partnerStoredOK),
		Status:              p.Status,
	}
}

// resolvePartnerAnswers prefers the linked partner's live answer set and
// falls back to the inline snapshot taken at completion time. The two
// sources are never merged.
func resolvePartnerAnswers(p domain.Pairing, stored domain.AnswerSet, storedOK bool) domain.AnswerSet {
	if p.Partner.Kind == domain.PartnerLinked && storedOK {
		return stored
	}
	return p.Partner.Answers
}

// resolvePartnerName prefers the linked partner's current profile name and
// falls back to the name recorded on the pairing.
func resolvePartnerName(p domain.Pairing, partner *domain.User) string {
	if p.Partner.Kind == domain.PartnerLinked && partner != nil && partner.FullName != "" {
		return partner.FullName
	}
	return p.Partner.DisplayName
}
