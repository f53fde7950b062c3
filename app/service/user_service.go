package service

import (
	"github.com/Frezz12/AchStudentsBackend/app/apperr"
	"github.com/Frezz12/AchStudentsBackend/app/model"
	"github.com/Frezz12/AchStudentsBackend/app/policy"
	"github.com/Frezz12/AchStudentsBackend/app/repo"
	"github.com/Frezz12/AchStudentsBackend/helper"
)

type UserService struct {
	users repo.UserRepository
}

func NewUserService(users repo.UserRepository) *UserService {
	return &UserService{users: users}
}

// Create adds a user through the API. Admin only; registration is the
// self-service path.
func (s *UserService) Create(actor model.Actor, req model.CreateUserRequest) (*model.User, error) {
	if !actor.IsAdmin() {
		return nil, apperr.Forbiddenf("only admins can create users")
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
	return user, nil
}

func (s *UserService) List() ([]model.User, error) {
	return s.users.FindAll()
}

func (s *UserService) ListByRole(role model.Role) ([]model.User, error) {
	if !role.IsValid() {
		return nil, apperr.InvalidInputf("unknown role %q", role)
	}
	return s.users.FindByRole(role)
}

func (s *UserService) Get(id int64) (*model.User, error) {
	return s.users.FindByID(id)
}

func (s *UserService) GetByUUID(uid string) (*model.User, error) {
	return s.users.FindByUUID(uid)
}

// Update merges only the supplied fields. Self or admin.
func (s *UserService) Update(actor model.Actor, id int64, req model.UpdateUserRequest) (*model.User, error) {
	user, err := s.users.FindByID(id)
	if err != nil {
		return nil, err
	}
	if !policy.CanManageUser(actor, user.ID) {
		return nil, apperr.Forbiddenf("not allowed to update user %d", id)
	}

	if req.Firstname != nil {
		user.Firstname = *req.Firstname
	}
	if req.Lastname != nil {
		user.Lastname = *req.Lastname
	}
	if req.Surname != nil {
		user.Surname = *req.Surname
	}
	if req.Email != nil {
		user.Email = *req.Email
	}
	if req.College != nil {
		user.College = *req.College
	}
	if req.Password != nil {
		hash, err := helper.HashPassword(*req.Password)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = hash
	}

	if err := s.users.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) Delete(actor model.Actor, id int64) error {
	user, err := s.users.FindByID(id)
	if err != nil {
		return err
	}
	if !policy.CanManageUser(actor, user.ID) {
		return apperr.Forbiddenf("not allowed to delete user %d", id)
	}
	return s.users.Delete(id)
}
