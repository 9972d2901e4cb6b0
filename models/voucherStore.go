package models

import (
	"context"
	"errors"
	"sync"

	"github.com/mmdatafocus/books_gateway/utils"
)

// VoucherSubmitter hands a finished draft to the upstream ERP API.
// Only the success/failure signal matters to the draft lifecycle.
type VoucherSubmitter interface {
	SubmitVoucher(ctx context.Context, draft *VoucherDraft) error
}

// DraftStore is the owned, injectable container for in-flight voucher
// drafts. Drafts live in memory only: each session starts fresh, and a
// draft is discarded on submit or explicit discard. The mutex guards the
// map and the mutate+recompute transaction; with a single user per
// session no further locking discipline is needed.
type DraftStore struct {
	mu        sync.Mutex
	drafts    map[string]*VoucherDraft
	submitter VoucherSubmitter
}

func NewDraftStore(submitter VoucherSubmitter) *DraftStore {
	return &DraftStore{
		drafts:    make(map[string]*VoucherDraft),
		submitter: submitter,
	}
}

func (s *DraftStore) CreateDraft(ctx context.Context, voucherType VoucherType) (*VoucherDraft, error) {
	owner, ok := utils.GetUsernameFromContext(ctx)
	if !ok || owner == "" {
		return nil, errors.New("username is required")
	}

	draft := NewVoucherDraft(owner, voucherType)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.drafts[draft.ID] = draft
	return draft.clone(), nil
}

func (s *DraftStore) GetDraft(ctx context.Context, id string) (*VoucherDraft, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	draft, err := s.ownedDraft(ctx, id)
	if err != nil {
		return nil, err
	}
	return draft.clone(), nil
}

// MutateDraft applies one logical edit as a two-phase transaction:
// apply the mutation, then recompute totals, sync the counter entry and
// re-validate — all under the same lock, so totals are always consistent
// with the latest committed rows before the next edit is processed.
func (s *DraftStore) MutateDraft(ctx context.Context, id string, mutate func(*VoucherDraft) error) (*VoucherDraft, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	draft, err := s.ownedDraft(ctx, id)
	if err != nil {
		return nil, err
	}
	if draft.State == DraftStateSubmitting {
		return nil, ErrorSubmitInFlight
	}

	draft.State = DraftStateEditing
	if err := mutate(draft); err != nil {
		draft.Recompute()
		return nil, err
	}
	draft.Recompute()
	return draft.clone(), nil
}

func (s *DraftStore) DiscardDraft(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, err := s.ownedDraft(ctx, id); err != nil {
		return err
	}
	delete(s.drafts, id)
	return nil
}

type SubmitResult struct {
	Draft          *VoucherDraft `json:"draft"`
	Balanced       bool          `json:"balanced"`
	BalanceWarning string        `json:"balance_warning,omitempty"`
}

// SubmitDraft runs the Submitting transition. Validation failures block
// submission; an unbalanced voucher only warns. On success the draft is
// cleared back to Empty; on failure every field is retained, the error is
// surfaced, and the state returns to Editing for correction and resubmit.
func (s *DraftStore) SubmitDraft(ctx context.Context, id string) (*SubmitResult, error) {
	s.mu.Lock()
	draft, err := s.ownedDraft(ctx, id)
	if err != nil {
		s.mu.Unlock()
		return nil, err
	}
	if draft.State == DraftStateSubmitting {
		s.mu.Unlock()
		return nil, ErrorSubmitInFlight
	}

	draft.revalidate()
	if draft.State != DraftStateValid {
		snapshot := draft.clone()
		s.mu.Unlock()
		return &SubmitResult{Draft: snapshot}, ErrorDraftInvalid
	}

	balanced := IsBalanced(draft.Entries)
	draft.State = DraftStateSubmitting
	payload := draft.clone()
	s.mu.Unlock()

	// The upstream call happens outside the lock; a second submit for the
	// same draft is rejected by the Submitting state above.
	submitErr := s.submitter.SubmitVoucher(ctx, payload)

	s.mu.Lock()
	defer s.mu.Unlock()
	// The draft may have been discarded while the call was in flight.
	draft, stillThere := s.drafts[id]
	if !stillThere {
		return nil, utils.ErrorDraftNotFound
	}

	if submitErr != nil {
		// SubmitFailed is transient: the error is surfaced and the draft
		// immediately returns to Editing with every field retained.
		draft.State = DraftStateSubmitFailed
		draft.LastError = submitErr.Error()
		draft.Recompute()
		return &SubmitResult{Draft: draft.clone(), Balanced: balanced}, submitErr
	}

	draft.State = DraftStateSubmitted
	draft.reset()

	result := &SubmitResult{Draft: draft.clone(), Balanced: balanced}
	if !balanced {
		result.BalanceWarning = "total debits and credits differ by more than 0.01"
	}
	return result, nil
}

var (
	ErrorDraftInvalid   = errors.New("draft has validation errors")
	ErrorSubmitInFlight = errors.New("draft submit is in flight")
)

func (s *DraftStore) ownedDraft(ctx context.Context, id string) (*VoucherDraft, error) {
	owner, ok := utils.GetUsernameFromContext(ctx)
	if !ok || owner == "" {
		return nil, errors.New("username is required")
	}
	draft, exists := s.drafts[id]
	if !exists || draft.Owner != owner {
		return nil, utils.ErrorDraftNotFound
	}
	return draft, nil
}
