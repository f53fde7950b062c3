package service

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/Frezz12/AchStudentsBackend/app/apperr"
	"github.com/Frezz12/AchStudentsBackend/app/model"
)

// In-memory repository fakes. They reproduce the store's observable
// behavior: sentinel-wrapped not-found errors, the unique constraint on
// (student_id, achievement_id), and uuid assignment on insert.

type fakeUserRepo struct {
	users  map[int64]*model.User
	nextID int64
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[int64]*model.User{}, nextID: 1}
}

func (r *fakeUserRepo) Create(u *model.User) error {
	for _, existing := range r.users {
		if existing.Email == u.Email {
			return apperr.Conflictf("user with email %s already exists", u.Email)
		}
	}
	u.ID = r.nextID
	r.nextID++
	if u.UUID == "" {
		u.UUID = uuid.NewString()
	}
	clone := *u
	r.users[u.ID] = &clone
	return nil
}

func (r *fakeUserRepo) FindByID(id int64) (*model.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, apperr.NotFoundf("user %d not found", id)
	}
	clone := *u
	return &clone, nil
}

func (r *fakeUserRepo) FindByUUID(uid string) (*model.User, error) {
	for _, u := range r.users {
		if u.UUID == uid {
			clone := *u
			return &clone, nil
		}
	}
	return nil, apperr.NotFoundf("user %s not found", uid)
}

func (r *fakeUserRepo) FindByEmail(email string) (*model.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			clone := *u
			return &clone, nil
		}
	}
	return nil, apperr.NotFoundf("user with email %s not found", email)
}

func (r *fakeUserRepo) FindAll() ([]model.User, error) {
	out := make([]model.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, *u)
	}
	return out, nil
}

func (r *fakeUserRepo) FindByRole(role model.Role) ([]model.User, error) {
	var out []model.User
	for _, u := range r.users {
		if u.Role == role {
			out = append(out, *u)
		}
	}
	return out, nil
}

func (r *fakeUserRepo) Update(u *model.User) error {
	if _, ok := r.users[u.ID]; !ok {
		return apperr.NotFoundf("user %d not found", u.ID)
	}
	clone := *u
	r.users[u.ID] = &clone
	return nil
}

func (r *fakeUserRepo) Delete(id int64) error {
	if _, ok := r.users[id]; !ok {
		return apperr.NotFoundf("user %d not found", id)
	}
	delete(r.users, id)
	return nil
}

func (r *fakeUserRepo) CountByRole() (*model.UserStats, error) {
	stats := &model.UserStats{}
	for _, u := range r.users {
		stats.TotalUsers++
		switch u.Role {
		case model.RoleStudent:
			stats.Students++
		case model.RoleCurator:
			stats.Curators++
		case model.RoleAdmin:
			stats.Admins++
		}
	}
	return stats, nil
}

type fakeAchievementRepo struct {
	achievements map[int64]*model.Achievement
	nextID       int64
}

func newFakeAchievementRepo() *fakeAchievementRepo {
	return &fakeAchievementRepo{achievements: map[int64]*model.Achievement{}, nextID: 1}
}

func (r *fakeAchievementRepo) Create(a *model.Achievement) error {
	a.ID = r.nextID
	r.nextID++
	if a.UUID == "" {
		a.UUID = uuid.NewString()
	}
	clone := *a
	r.achievements[a.ID] = &clone
	return nil
}

func (r *fakeAchievementRepo) FindByID(id int64) (*model.Achievement, error) {
	a, ok := r.achievements[id]
	if !ok {
		return nil, apperr.NotFoundf("achievement %d not found", id)
	}
	clone := *a
	return &clone, nil
}

func (r *fakeAchievementRepo) FindByUUID(uid string) (*model.Achievement, error) {
	for _, a := range r.achievements {
		if a.UUID == uid {
			clone := *a
			return &clone, nil
		}
	}
	return nil, apperr.NotFoundf("achievement %s not found", uid)
}

func (r *fakeAchievementRepo) FindByIDs(ids []int64) ([]model.Achievement, error) {
	var out []model.Achievement
	for _, id := range ids {
		if a, ok := r.achievements[id]; ok {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (r *fakeAchievementRepo) FindAllActive() ([]model.Achievement, error) {
	var out []model.Achievement
	for _, a := range r.achievements {
		if a.IsActive {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (r *fakeAchievementRepo) FindByCategory(category model.Category) ([]model.Achievement, error) {
	var out []model.Achievement
	for _, a := range r.achievements {
		if a.IsActive && a.Category == category {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (r *fakeAchievementRepo) Search(term string) ([]model.Achievement, error) {
	return r.FindAllActive()
}

func (r *fakeAchievementRepo) Update(a *model.Achievement) error {
	if _, ok := r.achievements[a.ID]; !ok {
		return apperr.NotFoundf("achievement %d not found", a.ID)
	}
	clone := *a
	r.achievements[a.ID] = &clone
	return nil
}

func (r *fakeAchievementRepo) Delete(id int64) error {
	if _, ok := r.achievements[id]; !ok {
		return apperr.NotFoundf("achievement %d not found", id)
	}
	delete(r.achievements, id)
	return nil
}

type fakeAwardRepo struct {
	awards map[int64]*model.StudentAchievement
	nextID int64
}

func newFakeAwardRepo() *fakeAwardRepo {
	return &fakeAwardRepo{awards: map[int64]*model.StudentAchievement{}, nextID: 1}
}

func (r *fakeAwardRepo) Create(sa *model.StudentAchievement) error {
	for _, existing := range r.awards {
		if existing.StudentID == sa.StudentID && existing.AchievementID == sa.AchievementID {
			return apperr.Conflictf("student %d already has achievement %d", sa.StudentID, sa.AchievementID)
		}
	}
	sa.ID = r.nextID
	r.nextID++
	if sa.UUID == "" {
		sa.UUID = uuid.NewString()
	}
	clone := *sa
	r.awards[sa.ID] = &clone
	return nil
}

func (r *fakeAwardRepo) FindByID(id int64) (*model.StudentAchievement, error) {
	sa, ok := r.awards[id]
	if !ok {
		return nil, apperr.NotFoundf("student achievement %d not found", id)
	}
	clone := *sa
	return &clone, nil
}

func (r *fakeAwardRepo) FindByUUID(uid string) (*model.StudentAchievement, error) {
	for _, sa := range r.awards {
		if sa.UUID == uid {
			clone := *sa
			return &clone, nil
		}
	}
	return nil, apperr.NotFoundf("student achievement %s not found", uid)
}

func (r *fakeAwardRepo) FindByPair(studentID, achievementID int64) (*model.StudentAchievement, error) {
	for _, sa := range r.awards {
		if sa.StudentID == studentID && sa.AchievementID == achievementID {
			clone := *sa
			return &clone, nil
		}
	}
	return nil, apperr.NotFoundf("student achievement for pair (%d, %d) not found", studentID, achievementID)
}

func (r *fakeAwardRepo) Find(filter model.AwardFilter) ([]model.StudentAchievement, error) {
	var out []model.StudentAchievement
	for _, sa := range r.awards {
		if filter.StudentID != 0 && sa.StudentID != filter.StudentID {
			continue
		}
		if filter.AchievementID != 0 && sa.AchievementID != filter.AchievementID {
			continue
		}
		if filter.Status != "" && sa.Status != filter.Status {
			continue
		}
		out = append(out, *sa)
	}
	return out, nil
}

func (r *fakeAwardRepo) Update(sa *model.StudentAchievement) error {
	if _, ok := r.awards[sa.ID]; !ok {
		return apperr.NotFoundf("student achievement %d not found", sa.ID)
	}
	clone := *sa
	r.awards[sa.ID] = &clone
	return nil
}

func (r *fakeAwardRepo) Delete(id int64) error {
	if _, ok := r.awards[id]; !ok {
		return apperr.NotFoundf("student achievement %d not found", id)
	}
	delete(r.awards, id)
	return nil
}

func (r *fakeAwardRepo) ApprovedPointsByStudent() ([]model.StudentPoints, error) {
	// Achievement points are not reachable from here, so the fake treats
	// every approved record as worth one point. Tests that care about
	// real sums go through the service's Find/FindByIDs path instead.
	byStudent := map[int64]int{}
	for _, sa := range r.awards {
		if sa.Status == model.StatusApproved {
			byStudent[sa.StudentID]++
		}
	}
	out := make([]model.StudentPoints, 0, len(byStudent))
	for id, points := range byStudent {
		out = append(out, model.StudentPoints{StudentID: id, Points: points})
	}
	return out, nil
}

type fakeEvidenceRepo struct {
	docs []model.Evidence
}

func newFakeEvidenceRepo() *fakeEvidenceRepo {
	return &fakeEvidenceRepo{}
}

func (r *fakeEvidenceRepo) Add(e model.Evidence) error {
	r.docs = append(r.docs, e)
	return nil
}

func (r *fakeEvidenceRepo) FindByAward(awardUUID string) ([]model.Evidence, error) {
	var out []model.Evidence
	for _, e := range r.docs {
		if e.AwardUUID == awardUUID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *fakeEvidenceRepo) DeleteByAward(awardUUID string) error {
	kept := r.docs[:0]
	for _, e := range r.docs {
		if e.AwardUUID != awardUUID {
			kept = append(kept, e)
		}
	}
	r.docs = kept
	return nil
}

// seedAchievement inserts a catalog entry with the given points.
func seedAchievement(r *fakeAchievementRepo, points int, category model.Category) *model.Achievement {
	a := &model.Achievement{
		Title:       fmt.Sprintf("Achievement %d", r.nextID),
		Description: "seeded",
		StarPoints:  points,
		Category:    category,
		IsActive:    true,
	}
	if err := r.Create(a); err != nil {
		panic(err)
	}
	return a
}
