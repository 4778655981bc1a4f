package mirror

import (
	"context"
	"errors"
	"fmt"
)

var ErrNoCode = errors.New("no authorization code given")

// LinkService registers Budgea users for mirroring.
type LinkService struct {
	client   BudgeaClient
	userRepo UserRepository
}

func NewLinkService(client BudgeaClient, userRepo UserRepository) *LinkService {
	return &LinkService{client: client, userRepo: userRepo}
}

// Link checks token against Budgea and stores it for the user it belongs to.
func (s *LinkService) Link(ctx context.Context, token, label string) (*LinkedUser, error) {
	if token == "" {
		return nil, ErrNoToken
	}
	me, err := s.client.GetUser(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve token owner: %w", err)
	}
	u, err := s.userRepo.Create(ctx, me.ID, label, token)
	if err != nil {
		return nil, fmt.Errorf("failed to store linked user: %w", err)
	}
	return u, nil
}

// LinkCode exchanges a temporary code for a permanent token, then links it.
func (s *LinkService) LinkCode(ctx context.Context, code, label string) (*LinkedUser, error) {
	if code == "" {
		return nil, ErrNoCode
	}
	token, err := s.client.ExchangeCode(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to exchange code: %w", err)
	}
	return s.Link(ctx, token, label)
}
