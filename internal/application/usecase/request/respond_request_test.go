package request

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/household-budget/backend/internal/domain/entity"
	domainerror "github.com/household-budget/backend/internal/domain/error"
	"github.com/household-budget/backend/internal/domain/valueobject"
)

type fakeRequestRepo struct {
	items []*entity.PurchaseRequest
}

func (f *fakeRequestRepo) Create(_ context.Context, r *entity.PurchaseRequest) error {
	f.items = append(f.items, r)
	return nil
}

func (f *fakeRequestRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.PurchaseRequest, error) {
	for _, r := range f.items {
		if r.ID == id {
			return r, nil
		}
	}
	return nil, domainerror.ErrRequestNotFound
}

func (f *fakeRequestRepo) FindByRecipient(_ context.Context, recipient valueobject.Profile) ([]*entity.PurchaseRequest, error) {
	var out []*entity.PurchaseRequest
	for _, r := range f.items {
		if r.Recipient == recipient {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeRequestRepo) FindByRequester(_ context.Context, requester valueobject.Profile) ([]*entity.PurchaseRequest, error) {
	var out []*entity.PurchaseRequest
	for _, r := range f.items {
		if r.Requester == requester {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeRequestRepo) Update(_ context.Context, _ *entity.PurchaseRequest) error { return nil }
func (f *fakeRequestRepo) Delete(_ context.Context, _ uuid.UUID) error               { return nil }

func pendingRequest(requester, recipient string) *entity.PurchaseRequest {
	return entity.NewPurchaseRequest(
		valueobject.Profile(requester),
		valueobject.Profile(recipient),
		"Fone de ouvido",
		"O meu quebrou",
		decimal.RequireFromString("199.90"),
	)
}

func TestCreateRequest_ToSelfRejected(t *testing.T) {
	repo := &fakeRequestRepo{}
	uc := NewCreateRequestUseCase(repo)

	_, err := uc.Execute(context.Background(), CreateRequestInput{
		Requester: valueobject.Profile("Gabriel"),
		Recipient: valueobject.Profile("Gabriel"),
		Item:      "Tênis",
		Amount:    decimal.RequireFromString("350.00"),
	})
	if !errors.Is(err, domainerror.ErrRequestToSelf) {
		t.Errorf("expected ErrRequestToSelf, got %v", err)
	}
	if len(repo.items) != 0 {
		t.Errorf("expected nothing persisted, got %d", len(repo.items))
	}
}

func TestRespondRequest_RecipientApproves(t *testing.T) {
	req := pendingRequest("Gabriel", "Paloma")
	repo := &fakeRequestRepo{items: []*entity.PurchaseRequest{req}}
	uc := NewRespondRequestUseCase(repo)

	out, err := uc.Execute(context.Background(), RespondRequestInput{
		RequestID: req.ID,
		Member:    valueobject.Profile("Paloma"),
		Status:    entity.RequestStatusApproved,
		Note:      "Pode comprar",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Request.Status != string(entity.RequestStatusApproved) {
		t.Errorf("expected status aprovado, got %s", out.Request.Status)
	}
	if out.Request.RespondedAt == nil {
		t.Error("expected RespondedAt to be set")
	}
}

func TestRespondRequest_OnlyRecipientCanRespond(t *testing.T) {
	req := pendingRequest("Gabriel", "Paloma")
	repo := &fakeRequestRepo{items: []*entity.PurchaseRequest{req}}
	uc := NewRespondRequestUseCase(repo)

	_, err := uc.Execute(context.Background(), RespondRequestInput{
		RequestID: req.ID,
		Member:    valueobject.Profile("Gabriel"),
		Status:    entity.RequestStatusApproved,
	})
	if !errors.Is(err, domainerror.ErrNotRequestRecipient) {
		t.Errorf("expected ErrNotRequestRecipient, got %v", err)
	}
}

func TestRespondRequest_ResolvedRequestImmutable(t *testing.T) {
	req := pendingRequest("Paloma", "Gabriel")
	req.Respond(entity.RequestStatusRejected, "Mês apertado")
	repo := &fakeRequestRepo{items: []*entity.PurchaseRequest{req}}
	uc := NewRespondRequestUseCase(repo)

	_, err := uc.Execute(context.Background(), RespondRequestInput{
		RequestID: req.ID,
		Member:    valueobject.Profile("Gabriel"),
		Status:    entity.RequestStatusApproved,
	})
	if !errors.Is(err, domainerror.ErrRequestAlreadyResolved) {
		t.Errorf("expected ErrRequestAlreadyResolved, got %v", err)
	}
}

func TestRespondRequest_InvalidStatus(t *testing.T) {
	req := pendingRequest("Gabriel", "Paloma")
	repo := &fakeRequestRepo{items: []*entity.PurchaseRequest{req}}
	uc := NewRespondRequestUseCase(repo)

	_, err := uc.Execute(context.Background(), RespondRequestInput{
		RequestID: req.ID,
		Member:    valueobject.Profile("Paloma"),
		Status:    entity.RequestStatus("talvez"),
	})
	if !errors.Is(err, domainerror.ErrInvalidRequestStatus) {
		t.Errorf("expected ErrInvalidRequestStatus, got %v", err)
	}
}
