package service

import (
	"context"
	"fmt"
	"strings"

	"storefront-api/internal/events"
	"storefront-api/internal/model"
	"storefront-api/internal/repository"
)

type LeadService interface {
	SubmitLead(ctx context.Context, req *SubmitLeadRequest) (*model.Lead, error)
	ListLeads(ctx context.Context) ([]model.Lead, error)
}

type SubmitLeadRequest struct {
	Name   string `json:"name" validate:"notblank"`
	Email  string `json:"email" validate:"notblank"`
	Phone  string `json:"phone"`
	Intent string `json:"intent"`
}

type leadService struct {
	leadRepo  repository.LeadRepository
	publisher events.Publisher
}

func NewLeadService(lRepo repository.LeadRepository, pub events.Publisher) LeadService {
	if pub == nil {
		pub = events.Nop()
	}
	return &leadService{leadRepo: lRepo, publisher: pub}
}

func (s *leadService) SubmitLead(ctx context.Context, req *SubmitLeadRequest) (*model.Lead, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	lead := &model.Lead{
		BaseModel: model.BaseModel{CreatedAt: nowFunc()},
		Name:      strings.TrimSpace(req.Name),
		Email:     strings.TrimSpace(req.Email),
		Phone:     strings.TrimSpace(req.Phone),
		Intent:    strings.TrimSpace(req.Intent),
	}
	if err := s.leadRepo.Create(ctx, lead); err != nil {
		return nil, err
	}

	events.Emit(ctx, s.publisher, events.New(
		events.TypeLead, events.ActionLeadSubmitted, lead.ID,
		fmt.Sprintf("new lead from %s", lead.Name), lead,
	))
	return lead, nil
}

func (s *leadService) ListLeads(ctx context.Context) ([]model.Lead, error) {
	return s.leadRepo.FindAll(ctx)
}
