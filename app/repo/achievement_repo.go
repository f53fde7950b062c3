package repo

import (
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/Frezz12/AchStudentsBackend/app/apperr"
	"github.com/Frezz12/AchStudentsBackend/app/model"
)

type AchievementRepository interface {
	Create(a *model.Achievement) error
	FindByID(id int64) (*model.Achievement, error)
	FindByUUID(uid string) (*model.Achievement, error)
	FindByIDs(ids []int64) ([]model.Achievement, error)
	FindAllActive() ([]model.Achievement, error)
	FindByCategory(category model.Category) ([]model.Achievement, error)
	Search(term string) ([]model.Achievement, error)
	Update(a *model.Achievement) error
	Delete(id int64) error
}

type AchievementRepo struct {
	DB *sql.DB
}

func NewAchievementRepo(db *sql.DB) *AchievementRepo {
	return &AchievementRepo{DB: db}
}

const achievementColumns = `id, uuid, title, description, star_points, category, icon_url, is_active, created_by_id, created_at, updated_at`

func (r *AchievementRepo) Create(a *model.Achievement) error {
	if a.UUID == "" {
		a.UUID = uuid.NewString()
	}
	now := time.Now()
	a.CreatedAt = now
	a.UpdatedAt = now

	query := `
		INSERT INTO achievements (uuid, title, description, star_points, category, icon_url, is_active, created_by_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id`

	return r.DB.QueryRow(
		query,
		a.UUID, a.Title, a.Description, a.StarPoints, a.Category,
		a.IconURL, a.IsActive, a.CreatedByID, a.CreatedAt, a.UpdatedAt,
	).Scan(&a.ID)
}

func scanAchievement(scan func(dest ...interface{}) error) (*model.Achievement, error) {
	var a model.Achievement
	var iconURL sql.NullString
	var createdBy sql.NullInt64

	err := scan(
		&a.ID, &a.UUID, &a.Title, &a.Description, &a.StarPoints, &a.Category,
		&iconURL, &a.IsActive, &createdBy, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if iconURL.Valid {
		a.IconURL = iconURL.String
	}
	if createdBy.Valid {
		id := createdBy.Int64
		a.CreatedByID = &id
	}
	return &a, nil
}

func (r *AchievementRepo) findOne(query string, args ...interface{}) (*model.Achievement, error) {
	a, err := scanAchievement(r.DB.QueryRow(query, args...).Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.NotFoundf("achievement")
		}
		return nil, err
	}
	return a, nil
}

func (r *AchievementRepo) FindByID(id int64) (*model.Achievement, error) {
	query := `SELECT ` + achievementColumns + ` FROM achievements WHERE id = $1`
	return r.findOne(query, id)
}

func (r *AchievementRepo) FindByUUID(uid string) (*model.Achievement, error) {
	query := `SELECT ` + achievementColumns + ` FROM achievements WHERE uuid = $1`
	return r.findOne(query, uid)
}

func (r *AchievementRepo) findMany(query string, args ...interface{}) ([]model.Achievement, error) {
	rows, err := r.DB.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	achievements := []model.Achievement{}
	for rows.Next() {
		a, err := scanAchievement(rows.Scan)
		if err != nil {
			return nil, err
		}
		achievements = append(achievements, *a)
	}
	return achievements, rows.Err()
}

func (r *AchievementRepo) FindByIDs(ids []int64) ([]model.Achievement, error) {
	if len(ids) == 0 {
		return []model.Achievement{}, nil
	}
	query := `SELECT ` + achievementColumns + ` FROM achievements WHERE id = ANY($1)`
	return r.findMany(query, ids)
}

func (r *AchievementRepo) FindAllActive() ([]model.Achievement, error) {
	query := `SELECT ` + achievementColumns + ` FROM achievements WHERE is_active = true ORDER BY created_at DESC`
	return r.findMany(query)
}

func (r *AchievementRepo) FindByCategory(category model.Category) ([]model.Achievement, error) {
	query := `SELECT ` + achievementColumns + ` FROM achievements WHERE is_active = true AND category = $1 ORDER BY created_at DESC`
	return r.findMany(query, category)
}

func (r *AchievementRepo) Search(term string) ([]model.Achievement, error) {
	query := `
		SELECT ` + achievementColumns + `
		FROM achievements
		WHERE is_active = true AND (title ILIKE $1 OR description ILIKE $1)
		ORDER BY created_at DESC`
	return r.findMany(query, "%"+term+"%")
}

func (r *AchievementRepo) Update(a *model.Achievement) error {
	a.UpdatedAt = time.Now()

	query := `
		UPDATE achievements
		SET title = $1, description = $2, star_points = $3, category = $4, icon_url = $5, is_active = $6, updated_at = $7
		WHERE id = $8`

	res, err := r.DB.Exec(
		query,
		a.Title, a.Description, a.StarPoints, a.Category,
		a.IconURL, a.IsActive, a.UpdatedAt, a.ID,
	)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return apperr.NotFoundf("achievement %d", a.ID)
	}
	return nil
}

func (r *AchievementRepo) Delete(id int64) error {
	res, err := r.DB.Exec(`DELETE FROM achievements WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return apperr.NotFoundf("achievement %d", id)
	}
	return nil
}
