package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/stpnv0/EventTicketing/internal/domain"
	"github.com/stpnv0/EventTicketing/internal/service/ports"
)

type UserService struct {
	repo ports.UserRepo
}

func NewUserService(repo ports.UserRepo) *UserService {
	return &UserService{repo: repo}
}

func (s *UserService) RegisterConsumer(ctx context.Context, input domain.CreateConsumerInput) (*domain.User, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	if err := validateEmails(input.Email, input.PaymentAccountEmail); err != nil {
		return nil, err
	}

	user := &domain.User{
		ID:                  uuid.New().String(),
		Role:                domain.RoleConsumer,
		Email:               normaliseEmail(input.Email),
		PaymentAccountEmail: normaliseEmail(input.PaymentAccountEmail),
		Name:                strings.TrimSpace(input.Name),
		PhoneNumber:         strings.TrimSpace(input.PhoneNumber),
		TelegramChatID:      input.TelegramChatID,
		CreatedAt:           time.Now().UTC(),
	}

	return s.create(ctx, user)
}

func (s *UserService) RegisterOrganiser(ctx context.Context, input domain.CreateOrganiserInput) (*domain.User, error) {
	if strings.TrimSpace(input.OrgName) == "" {
		return nil, fmt.Errorf("%w: org_name is required", domain.ErrValidation)
	}
	if strings.TrimSpace(input.OrgAddress) == "" {
		return nil, fmt.Errorf("%w: org_address is required", domain.ErrValidation)
	}
	if err := validateEmails(input.Email, input.PaymentAccountEmail); err != nil {
		return nil, err
	}

	user := &domain.User{
		ID:                  uuid.New().String(),
		Role:                domain.RoleOrganiser,
		Email:               normaliseEmail(input.Email),
		PaymentAccountEmail: normaliseEmail(input.PaymentAccountEmail),
		OrgName:             strings.TrimSpace(input.OrgName),
		OrgAddress:          strings.TrimSpace(input.OrgAddress),
		CreatedAt:           time.Now().UTC(),
	}

	return s.create(ctx, user)
}

func (s *UserService) create(ctx context.Context, user *domain.User) (*domain.User, error) {
	_, err := s.repo.GetByEmail(ctx, user.Email)
	switch {
	case err == nil:
		return nil, domain.ErrEmailTaken
	case !errors.Is(err, domain.ErrUserNotFound):
		return nil, fmt.Errorf("check email: %w", err)
	}

	if err = s.repo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	return user, nil
}

func (s *UserService) GetByID(ctx context.Context, id string) (*domain.User, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *UserService) List(ctx context.Context) ([]*domain.User, error) {
	return s.repo.List(ctx)
}

func validateEmails(email, paymentEmail string) error {
	if !looksLikeEmail(email) {
		return fmt.Errorf("%w: email is not valid", domain.ErrValidation)
	}
	if !looksLikeEmail(paymentEmail) {
		return fmt.Errorf("%w: payment_account_email is not valid", domain.ErrValidation)
	}
	return nil
}

// looksLikeEmail does a basic structural check only.
func looksLikeEmail(email string) bool {
	parts := strings.Split(strings.TrimSpace(email), "@")
	if len(parts) != 2 {
		return false
	}
	return len(parts[0]) > 0 && strings.Contains(parts[1], ".")
}

func normaliseEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
