package usecase

import (
	"context"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"
)

type userUsecase struct {
	userRepo   domain.UserRepository
	hasher     PasswordHasher
	tokenStore ConfirmTokenStore
}

func NewUserUsecase(
	userRepo domain.UserRepository,
	hasher PasswordHasher,
	tokenStore ConfirmTokenStore,
) domain.UserUsecase {
	return &userUsecase{
		userRepo:   userRepo,
		hasher:     hasher,
		tokenStore: tokenStore,
	}
}

func (u *userUsecase) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	user, err := u.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if err == domain.ErrNotFound {
			return nil, apperror.NotFound("User not found")
		}
		return nil, err
	}
	return user, nil
}

func (u *userUsecase) UpdateProfile(ctx context.Context, in *domain.UpdateUserInput) error {
	ctxUserID, ok := ctx.Value(domain.KeyUserID).(int64)
	if !ok || ctxUserID == 0 {
		return apperror.Unauthorized("User not authenticated")
	}
	in.UserID = ctxUserID

	if in.Password != nil {
		hashed, err := u.hasher.Hash(*in.Password)
		if err != nil {
			return apperror.Internal(err)
		}
		in.Password = &hashed
	}

	if err := u.userRepo.Update(ctx, in); err != nil {
		if err == domain.ErrNotFound {
			return apperror.NotFound("User not found")
		}
		return err
	}
	return nil
}

// ConfirmEmail resolves a single-use token to its user and flips the
// confirmation flag. A spent or expired token reads as not found.
func (u *userUsecase) ConfirmEmail(ctx context.Context, token string) error {
	userID, err := u.tokenStore.Take(ctx, token)
	if err != nil {
		return apperror.NotFound("Confirmation token is invalid or expired")
	}
	if err := u.userRepo.Confirm(ctx, userID); err != nil {
		if err == domain.ErrNotFound {
			return apperror.NotFound("User not found")
		}
		return err
	}
	return nil
}
