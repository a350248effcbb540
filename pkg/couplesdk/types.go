package couplesdk

import "time"

// ============================================================================
// Auth
// ============================================================================

// SignupRequest creates a new account.
type SignupRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"fullName"`
}

// LoginRequest authenticates an existing account.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserPayload is the public projection of an account.
type UserPayload struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	FullName string `json:"fullName"`
}

// AuthResponse is returned from signup and login. The token is also set as an
// httpOnly session cookie.
type AuthResponse struct {
	Success bool        `json:"success"`
	Token   string      `json:"token"`
	User    UserPayload `json:"user"`
}

// MeResponse is returned from GET /api/auth/me.
type MeResponse struct {
	Success bool        `json:"success"`
	User    UserPayload `json:"user"`
}

// ============================================================================
// Answers
// ============================================================================

// SaveAnswersRequest stores the caller's questionnaire submission,
// replacing any previous one.
type SaveAnswersRequest struct {
	Answers map[string]string `json:"answers"`
}

// GetAnswersResponse carries the caller's stored answer set.
type GetAnswersResponse struct {
	Success bool              `json:"success"`
	Answers map[string]string `json:"answers"`
}

// ============================================================================
// Pairing
// ============================================================================

// CreateInviteResponse is returned from POST /api/couple/invite. Status is
// "pending" for both a freshly created invite (201) and an existing one (200).
type CreateInviteResponse struct {
	Success   bool   `json:"success"`
	InviteKey string `json:"inviteKey"`
	Status    string `json:"status"`
}

// GetInviteResponse is the pre-authentication projection of a pairing: status
// and initiator only, never partner data.
type GetInviteResponse struct {
	Success       bool   `json:"success"`
	Status        string `json:"status"`
	FirstPersonID string `json:"firstPersonId"`
}

// CompleteInviteRequest finishes a pairing anonymously with the partner's
// name and inline answers.
type CompleteInviteRequest struct {
	PartnerName    string            `json:"partnerName"`
	PartnerAnswers map[string]string `json:"partnerAnswers"`
}

// CompleteInviteResponse acknowledges an anonymous completion.
type CompleteInviteResponse struct {
	Success bool   `json:"success"`
	Status  string `json:"status"`
}

// LinkAccountRequest attaches the authenticated caller as the partner of a
// pending pairing.
type LinkAccountRequest struct {
	InviteKey string `json:"inviteKey"`
}

// LinkAccountResponse acknowledges a link.
type LinkAccountResponse struct {
	Success   bool   `json:"success"`
	InviteKey string `json:"inviteKey"`
}

// ResultResponse joins both sides of a completed pairing.
type ResultResponse struct {
	Success             bool              `json:"success"`
	FirstPersonName     string            `json:"firstPersonName"`
	SecondPersonName    string            `json:"secondPersonName"`
	FirstPersonAnswers  map[string]string `json:"firstPersonAnswers"`
	SecondPersonAnswers map[string]string `json:"secondPersonAnswers"`
	Status              string            `json:"status"`
}

// PersonRef identifies a registered participant in a listing.
type PersonRef struct {
	ID       string `json:"id"`
	FullName string `json:"fullName"`
}

// InviteSummary is one row of the caller's pairing history. It never carries
// the partner's inline answers.
type InviteSummary struct {
	InviteKey    string     `json:"inviteKey"`
	Status       string     `json:"status"`
	FirstPerson  PersonRef  `json:"firstPerson"`
	SecondPerson *PersonRef `json:"secondPerson,omitempty"`
	PartnerName  string     `json:"partnerName,omitempty"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}

// MyInvitesResponse lists the caller's pairings, newest first.
type MyInvitesResponse struct {
	Success bool            `json:"success"`
	Invites []InviteSummary `json:"invites"`
}

// OKResponse is the bare success acknowledgement.
type OKResponse struct {
	Success bool `json:"success"`
}

// ============================================================================
// Health
// ============================================================================

// HealthChecks reports the state of each critical dependency.
type HealthChecks struct {
	Database string `json:"database"`
}

// HealthResponse is returned from the liveness and readiness probes.
type HealthResponse struct {
	Status  string        `json:"status"`
	Uptime  string        `json:"uptime"`
	Version string        `json:"version"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}
