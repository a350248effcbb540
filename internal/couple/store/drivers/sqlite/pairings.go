package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/secondate/secondate/internal/couple/domain"
	"github.com/secondate/secondate/internal/couple/store"
)

type pairingsRepo struct {
	db dbtx
}

func (r *pairingsRepo) CreatePairing(ctx context.Context, p domain.Pairing) error {
	now := time.Now().UTC()
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO pairings (id, invite_key, initiator_id, status, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		p.ID, p.InviteKey, p.InitiatorID, string(domain.StatusPending), now, now)
	return mapUnique(err)
}

func (r *pairingsRepo) GetPairingByKey(ctx context.Context, inviteKey string) (domain.Pairing, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, invite_key, initiator_id, partner_user_id, partner_name, partner_answers,
		        status, created_at, updated_at
		 FROM pairings WHERE invite_key = ?`, inviteKey)
	return scanPairing(row)
}

func (r *pairingsRepo) GetPendingPairingByInitiator(ctx context.Context, initiatorID string) (domain.Pairing, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, invite_key, initiator_id, partner_user_id, partner_name, partner_answers,
		        status, created_at, updated_at
		 FROM pairings WHERE initiator_id = ? AND status = ?`,
		initiatorID, string(domain.StatusPending))
	return scanPairing(row)
}

func (r *pairingsRepo) InviteKeyExists(ctx context.Context, inviteKey string) (bool, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(1) FROM pairings WHERE invite_key = ?`, inviteKey).Scan(&count)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// ListPairingsForUser deliberately does not select partner_answers; the
// inline snapshot must never reach a listing payload.
func (r *pairingsRepo) ListPairingsForUser(ctx context.Context, userID string) ([]domain.Pairing, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, invite_key, initiator_id, partner_user_id, partner_name,
		        status, created_at, updated_at
		 FROM pairings
		 WHERE initiator_id = ? OR partner_user_id = ?
		 ORDER BY created_at DESC, id DESC`,
		userID, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Pairing
	for rows.Next() {
		var p domain.Pairing
		var status string
		var partnerUserID, partnerName sql.NullString
		if err := rows.Scan(&p.ID, &p.InviteKey, &p.InitiatorID,
			&partnerUserID, &partnerName, &status, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		p.Status = domain.Status(status)
		p.Partner = mapPartner(partnerUserID, partnerName, nil)
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *pairingsRepo) CompletePairingAnonymous(ctx context.Context, inviteKey, displayName string, answers domain.AnswerSet) error {
	raw, err := json.Marshal(answers)
	if err != nil {
		return fmt.Errorf("encode partner answers: %w", err)
	}

	res, err := r.db.ExecContext(ctx,
		`UPDATE pairings
		 SET partner_name = ?, partner_answers = ?, status = ?, updated_at = ?
		 WHERE invite_key = ? AND status = ?`,
		displayName, string(raw), string(domain.StatusCompleted), time.Now().UTC(),
		inviteKey, string(domain.StatusPending))
	if err != nil {
		return err
	}
	return r.mapConditionalUpdate(ctx, res, inviteKey)
}

func (r *pairingsRepo) LinkPairingPartner(ctx context.Context, inviteKey, partnerID string) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE pairings
		 SET partner_user_id = ?, status = ?, updated_at = ?
		 WHERE invite_key = ? AND status = ? AND partner_user_id IS NULL`,
		partnerID, string(domain.StatusCompleted), time.Now().UTC(),
		inviteKey, string(domain.StatusPending))
	if err != nil {
		return err
	}
	return r.mapConditionalUpdate(ctx, res, inviteKey)
}

// mapConditionalUpdate distinguishes "no such pairing" from "pairing exists
// but the guard failed" after a zero-row conditional update.
func (r *pairingsRepo) mapConditionalUpdate(ctx context.Context, res sql.Result, inviteKey string) error {
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected > 0 {
		return nil
	}

	exists, err := r.InviteKeyExists(ctx, inviteKey)
	if err != nil {
		return err
	}
	if !exists {
		return store.ErrNotFound
	}
	return store.ErrConflict
}

func scanPairing(row rowScanner) (domain.Pairing, error) {
	var p domain.Pairing
	var status string
	var partnerUserID, partnerName, partnerAnswers sql.NullString

	err := row.Scan(&p.ID, &p.InviteKey, &p.InitiatorID,
		&partnerUserID, &partnerName, &partnerAnswers,
		&status, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return domain.Pairing{}, mapNotFound(err)
	}

	var answers domain.AnswerSet
	if partnerAnswers.Valid && partnerAnswers.String != "" {
		if err := json.Unmarshal([]byte(partnerAnswers.String), &answers); err != nil {
			return domain.Pairing{}, fmt.Errorf("decode partner answers for key %s: %w", p.InviteKey, err)
		}
	}

	p.Status = domain.Status(status)
	p.Partner = mapPartner(partnerUserID, partnerName, answers)
	return p, nil
}

func mapPartner(userID, name sql.NullString, answers domain.AnswerSet) domain.Partner {
	switch {
	case userID.Valid && userID.String != "":
		return domain.LinkedPartner(userID.String)
	case name.Valid && name.String != "":
		return domain.AnonymousPartner(name.String, answers)
	default:
		return domain.Partner{Kind: domain.PartnerNone}
	}
}
