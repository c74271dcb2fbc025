package services

import (
	"errors"
	"fmt"

	"github.com/takeru-oka/kanban-board/internal/models"
	"github.com/takeru-oka/kanban-board/internal/repository"
	"github.com/takeru-oka/kanban-board/internal/utils"
	"gorm.io/gorm"
)

var (
	ErrMemberNotFound   = errors.New("member not found")
	ErrMemberIDRequired = errors.New("member id is required")
	ErrNameRequired     = errors.New("name is required")
)

// MemberService handles member business logic
type MemberService struct {
	memberRepo repository.MemberRepository
}

// NewMemberService creates a new MemberService
func NewMemberService(memberRepo repository.MemberRepository) *MemberService {
	return &MemberService{memberRepo: memberRepo}
}

// CreateMemberInput represents input for creating a member
type CreateMemberInput struct {
	ID    string
	Name  string
	Color string
}

// ListMembers returns a page of members
func (s *MemberService) ListMembers(params utils.PaginationParams) ([]models.Member, int64, error) {
	members, total, err := s.memberRepo.List(params)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list members: %w", err)
	}
	return members, total, nil
}

// CreateMember creates a new member with a caller-supplied id
func (s *MemberService) CreateMember(input CreateMemberInput) (*models.Member, error) {
	if input.ID == "" {
		return nil, ErrMemberIDRequired
	}
	if input.Name == "" {
		return nil, ErrNameRequired
	}

	member := &models.Member{
		ID:    input.ID,
		Name:  input.Name,
		Color: input.Color,
	}

	if err := s.memberRepo.Create(member); err != nil {
		return nil, fmt.Errorf("failed to create member: %w", err)
	}

	return member, nil
}

// DeleteMember removes a member. Tasks assigned to or requested by the
// member are removed with it; the schema inherited this aggressive cascade
// and callers are expected to know about it.
func (s *MemberService) DeleteMember(id string) error {
	if _, err := s.memberRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrMemberNotFound
		}
		return fmt.Errorf("failed to find member: %w", err)
	}

	if err := s.memberRepo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete member: %w", err)
	}

	return nil
}
