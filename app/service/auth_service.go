package service

import (
	"errors"

	"github.com/Frezz12/AchStudentsBackend/app/apperr"
	"github.com/Frezz12/AchStudentsBackend/app/model"
	"github.com/Frezz12/AchStudentsBackend/app/repo"
	"github.com/Frezz12/AchStudentsBackend/helper"
)

// ErrInvalidCredentials is returned on login failure. It deliberately
// does not say whether the email or the password was wrong.
var ErrInvalidCredentials = errors.New("invalid credentials")

type AuthService struct {
	users repo.UserRepository
}

func NewAuthService(users repo.UserRepository) *AuthService {
	return &AuthService{users: users}
}

func (s *AuthService) Register(req model.RegisterRequest) (*model.AuthResponse, error) {
	_, err := s.users.FindByEmail(req.Email)
	if err == nil {
		return nil, apperr.Conflictf("user with email %s already exists", req.Email)
	}
	if !errors.Is(err, apperr.ErrNotFound) {
		return nil, err
	}

	role := req.Role
	if role == "" {
		role = model.RoleStudent
	}
	if !role.IsValid() {
		return nil, apperr.InvalidInputf("unknown role %q", role)
	}

	hash, err := helper.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Firstname:    req.Firstname,
		Lastname:     req.Lastname,
		Surname:      req.Surname,
		Email:        req.Email,
		PasswordHash: hash,
		Role:         role,
		College:      req.College,
	}
	if err := s.users.Create(user); err != nil {
		return nil, err
	}

	token, err := helper.GenerateToken(*user)
	if err != nil {
		return nil, err
	}
	return &model.AuthResponse{User: *user, Token: token}, nil
}

func (s *AuthService) Login(req model.LoginRequest) (*model.AuthResponse, error) {
	user, err := s.users.FindByEmail(req.Email)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if !helper.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	token, err := helper.GenerateToken(*user)
	if err != nil {
		return nil, err
	}
	return &model.AuthResponse{User: *user, Token: token}, nil
}

func (s *AuthService) Profile(actorID int64) (*model.User, error) {
	return s.users.FindByID(actorID)
}
