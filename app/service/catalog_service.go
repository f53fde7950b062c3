package service

import (
	"github.com/Frezz12/AchStudentsBackend/app/apperr"
	"github.com/Frezz12/AchStudentsBackend/app/model"
	"github.com/Frezz12/AchStudentsBackend/app/policy"
	"github.com/Frezz12/AchStudentsBackend/app/repo"
)

// CatalogService manages achievement definitions. Methods take the
// authenticated actor and plain parameters; the transport layer never
// leaks in here.
type CatalogService struct {
	achievements repo.AchievementRepository
}

func NewCatalogService(achievements repo.AchievementRepository) *CatalogService {
	return &CatalogService{achievements: achievements}
}

func (s *CatalogService) Create(actor model.Actor, req model.CreateAchievementRequest) (*model.Achievement, error) {
	if req.StarPoints < 0 {
		return nil, apperr.InvalidInputf("star points must not be negative")
	}
	category := req.Category
	if category == "" {
		category = model.CategoryAcademic
	}
	if !category.IsValid() {
		return nil, apperr.InvalidInputf("unknown category %q", category)
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	creatorID := actor.ID
	a := &model.Achievement{
		Title:       req.Title,
		Description: req.Description,
		StarPoints:  req.StarPoints,
		Category:    category,
		IconURL:     req.IconURL,
		IsActive:    isActive,
		CreatedByID: &creatorID,
	}
	if err := s.achievements.Create(a); err != nil {
		return nil, err
	}
	return a, nil
}

// Update applies a whitelisted field merge: only the fields present in
// the request are written, and status-bearing fields simply do not
// exist on this entity.
func (s *CatalogService) Update(actor model.Actor, id int64, req model.UpdateAchievementRequest) (*model.Achievement, error) {
	a, err := s.achievements.FindByID(id)
	if err != nil {
		return nil, err
	}
	if !policy.CanEditAchievement(actor, a.CreatedByID) {
		return nil, apperr.Forbiddenf("not allowed to edit achievement %d", id)
	}

	if req.Title != nil {
		a.Title = *req.Title
	}
	if req.Description != nil {
		a.Description = *req.Description
	}
	if req.StarPoints != nil {
		if *req.StarPoints < 0 {
			return nil, apperr.InvalidInputf("star points must not be negative")
		}
		a.StarPoints = *req.StarPoints
	}
	if req.Category != nil {
		if !req.Category.IsValid() {
			return nil, apperr.InvalidInputf("unknown category %q", *req.Category)
		}
		a.Category = *req.Category
	}
	if req.IconURL != nil {
		a.IconURL = *req.IconURL
	}
	if req.IsActive != nil {
		a.IsActive = *req.IsActive
	}

	if err := s.achievements.Update(a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *CatalogService) Delete(actor model.Actor, id int64) error {
	a, err := s.achievements.FindByID(id)
	if err != nil {
		return err
	}
	if !policy.CanDeleteAchievement(actor, a.CreatedByID) {
		return apperr.Forbiddenf("not allowed to delete achievement %d", id)
	}
	return s.achievements.Delete(id)
}

func (s *CatalogService) Get(id int64) (*model.Achievement, error) {
	return s.achievements.FindByID(id)
}

func (s *CatalogService) GetByUUID(uid string) (*model.Achievement, error) {
	return s.achievements.FindByUUID(uid)
}

func (s *CatalogService) List() ([]model.Achievement, error) {
	return s.achievements.FindAllActive()
}

func (s *CatalogService) ListByCategory(category model.Category) ([]model.Achievement, error) {
	if !category.IsValid() {
		return nil, apperr.InvalidInputf("unknown category %q", category)
	}
	return s.achievements.FindByCategory(category)
}

// Search matches a case-insensitive substring against title and
// description of active entries. An empty term matches everything.
func (s *CatalogService) Search(term string) ([]model.Achievement, error) {
	return s.achievements.Search(term)
}
