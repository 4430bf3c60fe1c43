package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/Juantrevi/Backend-Learning-Management-System/models"
	"github.com/Juantrevi/Backend-Learning-Management-System/repository"
)

type UserService struct {
	store repository.Store
}

func NewUserService(store repository.Store) *UserService {
	return &UserService{store: store}
}

type RegisterInput struct {
	FullName string
	Email    string
	Password string
}

// Register creates an account and its profile in one transaction, so
// no user row ever exists without a profile row.
func (s *UserService) Register(ctx context.Context, in RegisterInput) (*models.User, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	var user *models.User
	err = s.store.Atomic(ctx, func(tx repository.Store) error {
		_, err := tx.Users().GetByEmail(ctx, in.Email)
		if err == nil {
			return ErrEmailTaken
		}
		if !errors.Is(err, repository.ErrNotFound) {
			return err
		}

		user = &models.User{
			FullName: in.FullName,
			Email:    in.Email,
			Password: string(hashed),
			Role:     "student",
		}
		if err := tx.Users().Create(ctx, user); err != nil {
			return err
		}

		profile := &models.Profile{
			UserID:   user.ID,
			FullName: in.FullName,
		}
		if err := tx.Users().CreateProfile(ctx, profile); err != nil {
			return err
		}
		user.Profile = profile
		return nil
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) GetProfile(ctx context.Context, userID uuid.UUID) (*models.User, error) {
	user, err := s.store.Users().GetByID(ctx, userID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrUserNotFound
	}
	return user, err
}

type UpdateProfileInput struct {
	FullName string
	ImageURL *string
	Country  *string
	About    *string
}

func (s *UserService) UpdateProfile(ctx context.Context, userID uuid.UUID, in UpdateProfileInput) (*models.Profile, error) {
	user, err := s.store.Users().GetByID(ctx, userID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}

	profile := user.Profile
	if profile == nil {
		// Accounts seeded before the profile factory existed have no
		// profile row; create it on first update.
		profile = &models.Profile{UserID: user.ID}
		profile.FullName = in.FullName
		profile.ImageURL = in.ImageURL
		profile.Country = in.Country
		profile.About = in.About
		if err := s.store.Users().CreateProfile(ctx, profile); err != nil {
			return nil, err
		}
		return profile, nil
	}
	profile.FullName = in.FullName
	profile.ImageURL = in.ImageURL
	profile.Country = in.Country
	profile.About = in.About
	if err := s.store.Users().SaveProfile(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}
