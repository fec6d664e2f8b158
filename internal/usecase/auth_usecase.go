package usecase

import (
	"context"

	"github.com/go-playground/validator/v10"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"
	"go-jobboard-backend/pkg/token"
)

type authUsecase struct {
	userRepo domain.UserRepository
	hasher   PasswordHasher
	tokens   TokenIssuer
	validate *validator.Validate
}

func NewAuthUsecase(
	userRepo domain.UserRepository,
	hasher PasswordHasher,
	tokens TokenIssuer,
	validate *validator.Validate,
) domain.AuthUsecase {
	return &authUsecase{
		userRepo: userRepo,
		hasher:   hasher,
		tokens:   tokens,
		validate: validate,
	}
}

// Login checks credentials and issues an access token carrying the user id
// and actor side. Wrong email and wrong password are indistinguishable to
// the caller.
func (u *authUsecase) Login(ctx context.Context, in *domain.LoginInput) (*domain.AuthResult, error) {
	if err := u.validate.Struct(in); err != nil {
		return nil, apperror.BadRequest(err.Error())
	}

	user, err := u.userRepo.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, apperror.Unauthorized("Invalid email or password")
	}
	if err := u.hasher.Compare(user.Password, in.Password); err != nil {
		return nil, apperror.Unauthorized("Invalid email or password")
	}

	actorType := domain.ActorApplicant
	if user.UserType == domain.UserTypeCompany {
		actorType = domain.ActorCompany
	}

	t, err := u.tokens.Issue(token.Claims{
		UserID:    user.ID,
		Email:     user.Email,
		ActorType: actorType,
	})
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return &domain.AuthResult{Token: t, User: user}, nil
}
