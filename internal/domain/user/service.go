package user

import (
	"context"
)

type UserService interface {
	List(ctx context.Context, actor Actor) ([]UserResponse, error)
	Get(ctx context.Context, actor Actor, id string) (UserResponse, error)
	Update(ctx context.Context, actor Actor, req UpdateUserRequest) (UserResponse, error)
}
