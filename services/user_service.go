package services

import (
	"context"
	"errors"
	"strings"

	"marketplace/entity"
	"marketplace/pkg/apperr"
	"marketplace/repository"

	"golang.org/x/crypto/bcrypt"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var errBadCredentials = apperr.Unauthorized("Invalid email or password")

type CredentialsInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type LoginInput struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type UserService struct {
	Users UserStore
}

func NewUserService(users UserStore) *UserService {
	return &UserService{Users: users}
}

func (s *UserService) Signup(ctx context.Context, in CredentialsInput) (*entity.User, error) {
	email := normalizeEmail(in.Email)
	if email == "" {
		return nil, apperr.MissingField("email")
	}
	if in.Password == "" {
		return nil, apperr.MissingField("password")
	}

	if _, err := s.Users.FindByEmail(ctx, email); err == nil {
		return nil, apperr.AlreadyExists("User")
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	u := &entity.User{Email: email, Password: string(hash)}
	if err := u.Validate(); err != nil {
		return nil, apperr.MissingField("email")
	}
	if err := s.Users.Create(ctx, u); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, apperr.AlreadyExists("User")
		}
		return nil, err
	}
	return u, nil
}

// Login fails the same way for an unknown email and a wrong password.
func (s *UserService) Login(ctx context.Context, in LoginInput) (*entity.User, error) {
	u, err := s.Users.FindByEmail(ctx, normalizeEmail(in.Email))
	if errors.Is(err, repository.ErrNotFound) {
		return nil, errBadCredentials
	}
	if err != nil {
		return nil, err
	}
	if u.Password == "" {
		return nil, errBadCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(in.Password)) != nil {
		return nil, errBadCredentials
	}
	return u, nil
}

func (s *UserService) Me(ctx context.Context, userID primitive.ObjectID) (*entity.User, error) {
	u, err := s.Users.FindByID(ctx, userID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, apperr.Unauthorized("")
	}
	return u, err
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
