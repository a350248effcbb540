package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/secondate/secondate/internal/couple/domain"
	"github.com/secondate/secondate/internal/couple/store"
	"github.com/secondate/secondate/pkg/cryptox"
	"github.com/secondate/secondate/pkg/idx"
	"github.com/secondate/secondate/pkg/slogx"
)

var (
	ErrAnswersRequired     = errors.New("caller has no saved answers")
	ErrNameRequired        = errors.New("caller has no display name")
	ErrInviteKeyRequired   = errors.New("invite key is required")
	ErrInviteNotFound      = errors.New("invite not found")
	ErrInviteCompleted     = errors.New("invite already completed")
	ErrSelfLink            = errors.New("cannot link to own invite")
	ErrPartnerNameRequired = errors.New("partner name must not be empty")
	ErrResultNotReady      = errors.New("pairing not completed yet")
)

// inviteKeyAttempts bounds the uniqueness-checked short key draws before
// falling back to a longer key that is issued unchecked.
const inviteKeyAttempts = 10

// PairingService drives the invite lifecycle: a logged-in initiator opens a
// pending pairing, exactly one partner completes it (anonymously or by
// linking an account), and the shared result becomes readable by anyone
// holding the invite key.
type PairingService struct {
	Store store.Store
}

// CreateInvite opens a pending pairing for the initiator, or returns the
// existing one: an initiator holds at most one pending invite at a time.
// The second return value reports whether a new pairing was created.
func (s *PairingService) CreateInvite(ctx context.Context, initiatorID string) (domain.Pairing, bool, error) {
	log := slogx.FromContext(ctx)

	ok, err := s.Store.Answers().HasAnswers(ctx, initiatorID)
	if err != nil {
		return domain.Pairing{}, false, err
	}
	if !ok {
		return domain.Pairing{}, false, ErrAnswersRequired
	}

	initiator, err := s.Store.Users().GetUserByID(ctx, initiatorID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Pairing{}, false, ErrUserNotFound
		}
		return domain.Pairing{}, false, err
	}
	if strings.TrimSpace(initiator.FullName) == "" {
		return domain.Pairing{}, false, ErrNameRequired
	}

	existing, err := s.Store.Pairings().GetPendingPairingByInitiator(ctx, initiatorID)
	if err == nil {
		return existing, false, nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return domain.Pairing{}, false, err
	}

	key, err := s.generateInviteKey(ctx)
	if err != nil {
		return domain.Pairing{}, false, err
	}

	pairing := domain.Pairing{
		ID:          idx.New().String(),
		InviteKey:   key,
		InitiatorID: initiatorID,
		Status:      domain.StatusPending,
	}

	if err := s.Store.Pairings().CreatePairing(ctx, pairing); err != nil {
		// Concurrent first invites for the same initiator collapse onto
		// whichever insert won; hand the winner back.
		if errors.Is(err, store.ErrAlreadyExists) {
			existing, rerr := s.Store.Pairings().GetPendingPairingByInitiator(ctx, initiatorID)
			if rerr == nil {
				return existing, false, nil
			}
		}
		log.Error("failed to create pairing", slog.Any("error", err))
		return domain.Pairing{}, false, err
	}

	log.Info("invite created",
		slog.String("pairing_id", pairing.ID),
		slog.String("initiator_id", initiatorID),
	)
	return pairing, true, nil
}

// generateInviteKey draws short random keys and checks them for uniqueness.
// If every attempt collides it falls back to a longer key whose collision
// odds are negligible, trading key length for a guaranteed answer.
func (s *PairingService) generateInviteKey(ctx context.Context) (string, error) {
	for range inviteKeyAttempts {
		key, err := cryptox.GenerateToken(cryptox.TokenSize32)
		if err != nil {
			return "", fmt.Errorf("generate invite key: %w", err)
		}

		taken, err := s.Store.Pairings().InviteKeyExists(ctx, key)
		if err != nil {
			return "", err
		}
		if !taken {
			return key, nil
		}
	}

	key, err := cryptox.GenerateToken(cryptox.TokenSize48)
	if err != nil {
		return "", fmt.Errorf("generate fallback invite key: %w", err)
	}
	slogx.FromContext(ctx).Warn("invite key space congested, issued fallback key")
	return key, nil
}

// GetInvite returns the pairing behind an invite key. It is a public read:
// holding the key is the only credential.
func (s *PairingService) GetInvite(ctx context.Context, inviteKey string) (domain.Pairing, error) {
	if inviteKey == "" {
		return domain.Pairing{}, ErrInviteKeyRequired
	}

	pairing, err := s.Store.Pairings().GetPairingByKey(ctx, inviteKey)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Pairing{}, ErrInviteNotFound
		}
		return domain.Pairing{}, err
	}
	return pairing, nil
}

// CompleteInvite finishes a pending pairing with an anonymous partner's name
// and answers. The first completion wins; any later attempt reports the
// pairing as already completed.
func (s *PairingService) CompleteInvite(ctx context.Context, inviteKey, partnerName string, answers domain.AnswerSet) error {
	if inviteKey == "" {
		return ErrInviteKeyRequired
	}
	partnerName = strings.TrimSpace(partnerName)
	if partnerName == "" {
		return ErrPartnerNameRequired
	}
	if len(answers) == 0 {
		return ErrEmptyAnswers
	}

	err := s.Store.Pairings().CompletePairingAnonymous(ctx, inviteKey, partnerName, answers)
	switch {
	case errors.Is(err, store.ErrNotFound):
		return ErrInviteNotFound
	case errors.Is(err, store.ErrConflict):
		return ErrInviteCompleted
	case err != nil:
		slogx.FromContext(ctx).Error("failed to complete pairing", slog.Any("error", err))
		return err
	}

	slogx.FromContext(ctx).Info("invite completed", slog.String("invite_key", inviteKey))
	return nil
}

// LinkAccount completes a pending pairing by attaching the caller's account
// as the partner. The caller must have saved answers; a missing display name
// is backfilled from the pairing's inline partner name when one exists.
func (s *PairingService) LinkAccount(ctx context.Context, linkerID, inviteKey string) (domain.Pairing, error) {
	log := slogx.FromContext(ctx)

	if inviteKey == "" {
		return domain.Pairing{}, ErrInviteKeyRequired
	}

	ok, err := s.Store.Answers().HasAnswers(ctx, linkerID)
	if err != nil {
		return domain.Pairing{}, err
	}
	if !ok {
		return domain.Pairing{}, ErrAnswersRequired
	}

	linker, err := s.Store.Users().GetUserByID(ctx, linkerID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Pairing{}, ErrUserNotFound
		}
		return domain.Pairing{}, err
	}

	pairing, err := s.Store.Pairings().GetPairingByKey(ctx, inviteKey)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Pairing{}, ErrInviteNotFound
		}
		return domain.Pairing{}, err
	}

	// Linking your own invite is refused no matter what state the pairing
	// is in.
	if pairing.InitiatorID == linkerID {
		return domain.Pairing{}, ErrSelfLink
	}
	if pairing.Completed() {
		return domain.Pairing{}, ErrInviteCompleted
	}

	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		if strings.TrimSpace(linker.FullName) == "" {
			if pairing.Partner.DisplayName == "" {
				return ErrNameRequired
			}
			if err := tx.Users().UpdateFullName(ctx, linkerID, pairing.Partner.DisplayName); err != nil {
				return err
			}
		}
		return tx.Pairings().LinkPairingPartner(ctx, inviteKey, linkerID)
	})
	switch {
	case errors.Is(err, store.ErrNotFound):
		return domain.Pairing{}, ErrInviteNotFound
	case errors.Is(err, store.ErrConflict):
		// Someone else completed the pairing between our read and the
		// guarded update.
		return domain.Pairing{}, ErrInviteCompleted
	case err != nil:
		if errors.Is(err, ErrNameRequired) {
			return domain.Pairing{}, err
		}
		log.Error("failed to link pairing", slog.Any("error", err))
		return domain.Pairing{}, err
	}

	linked, err := s.Store.Pairings().GetPairingByKey(ctx, inviteKey)
	if err != nil {
		return domain.Pairing{}, err
	}

	log.Info("invite linked",
		slog.String("invite_key", inviteKey),
		slog.String("partner_id", linkerID),
	)
	return linked, nil
}

// GetResult assembles the shared outcome of a completed pairing.
func (s *PairingService) GetResult(ctx context.Context, inviteKey string) (Result, error) {
	pairing, err := s.GetInvite(ctx, inviteKey)
	if err != nil {
		return Result{}, err
	}
	if !pairing.Completed() {
		return Result{}, ErrResultNotReady
	}

	initiator, err := s.Store.Users().GetUserByID(ctx, pairing.InitiatorID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return Result{}, ErrUserNotFound
		}
		return Result{}, err
	}

	initiatorRec, err := s.Store.Answers().GetAnswers(ctx, pairing.InitiatorID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return Result{}, ErrAnswersNotFound
		}
		return Result{}, err
	}

	var partner *domain.User
	var partnerStored domain.AnswerSet
	var partnerStoredOK bool
	if pairing.Partner.Kind == domain.PartnerLinked {
		if u, err := s.Store.Users().GetUserByID(ctx, pairing.Partner.UserID); err == nil {
			partner = &u
		} else if !errors.Is(err, store.ErrNotFound) {
			return Result{}, err
		}

		rec, err := s.Store.Answers().GetAnswers(ctx, pairing.Partner.UserID)
		switch {
		case err == nil:
			partnerStored = rec.Answers
			partnerStoredOK = true
		case !errors.Is(err, store.ErrNotFound):
			return Result{}, err
		}
	}

	return assembleResult(pairing, initiator, initiatorRec.Answers, partner, partnerStored, partnerStoredOK), nil
}

// InviteListEntry is one row of a user's invite overview, with the profiles
// needed to render names.
type InviteListEntry struct {
	Pairing   domain.Pairing
	Initiator domain.User
	// Partner is the linked partner's profile, nil for anonymous or pending
	// pairings.
	Partner *domain.User
}

// ListInvitesForUser returns every pairing the user takes part in, newest
// first. Answer sets are never included in listings.
func (s *PairingService) ListInvitesForUser(ctx context.Context, userID string) ([]InviteListEntry, error) {
	pairings, err := s.Store.Pairings().ListPairingsForUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	// Profiles repeat across rows; resolve each id once.
	profiles := make(map[string]domain.User)
	lookup := func(id string) (domain.User, bool, error) {
		if u, ok := profiles[id]; ok {
			return u, true, nil
		}
		u, err := s.Store.Users().GetUserByID(ctx, id)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return domain.User{}, false, nil
			}
			return domain.User{}, false, err
		}
		profiles[id] = u
		return u, true, nil
	}

	entries := make([]InviteListEntry, 0, len(pairings))
	for _, p := range pairings {
		entry := InviteListEntry{Pairing: p}

		if u, ok, err := lookup(p.InitiatorID); err != nil {
			return nil, err
		} else if ok {
			entry.Initiator = u
		}

		if p.Partner.Kind == domain.PartnerLinked {
			if u, ok, err := lookup(p.Partner.UserID); err != nil {
				return nil, err
			} else if ok {
				entry.Partner = &u
			}
		}

		entries = append(entries, entry)
	}
	return entries, nil
}
