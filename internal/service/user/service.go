package user

import (
	"context"
	"errors"

	"github.com/shiftboard/shiftboard-backend-go/internal/domain/user"
)

type UserServiceImpl struct {
	userRepo user.Repository
}

func NewUserService(userRepo user.Repository) user.UserService {
	return &UserServiceImpl{userRepo: userRepo}
}

// List returns the full roster, admins only.
func (s *UserServiceImpl) List(ctx context.Context, actor user.Actor) ([]user.UserResponse, error) {
	if !actor.IsAdmin() {
		return nil, user.ErrAdminAccessRequired
	}

	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]user.UserResponse, 0, len(users))
	for _, u := range users {
		responses = append(responses, user.NewUserResponse(u))
	}
	return responses, nil
}

func (s *UserServiceImpl) Get(ctx context.Context, actor user.Actor, id string) (user.UserResponse, error) {
	if !actor.IsAdmin() && !actor.Owns(id) {
		return user.UserResponse{}, user.ErrNotRecordOwner
	}

	u, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return user.UserResponse{}, err
	}
	return user.NewUserResponse(u), nil
}

// Update edits another user's profile fields or role, admins only.
func (s *UserServiceImpl) Update(ctx context.Context, actor user.Actor, req user.UpdateUserRequest) (user.UserResponse, error) {
	if !actor.IsAdmin() {
		return user.UserResponse{}, user.ErrAdminAccessRequired
	}

	if err := req.Validate(); err != nil {
		return user.UserResponse{}, err
	}

	if _, err := s.userRepo.GetByID(ctx, req.ID); err != nil {
		return user.UserResponse{}, err
	}

	if req.Email != nil {
		existing, err := s.userRepo.GetByEmail(ctx, *req.Email)
		if err == nil && existing.ID != req.ID {
			return user.UserResponse{}, user.ErrEmailExists
		}
		if err != nil && !errors.Is(err, user.ErrUserNotFound) {
			return user.UserResponse{}, err
		}
	}

	if err := s.userRepo.Update(ctx, req); err != nil {
		return user.UserResponse{}, err
	}

	u, err := s.userRepo.GetByID(ctx, req.ID)
	if err != nil {
		return user.UserResponse{}, err
	}
	return user.NewUserResponse(u), nil
}
