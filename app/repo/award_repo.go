package repo

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Frezz12/AchStudentsBackend/app/apperr"
	"github.com/Frezz12/AchStudentsBackend/app/model"
)

type AwardRepository interface {
	Create(sa *model.StudentAchievement) error
	FindByID(id int64) (*model.StudentAchievement, error)
	FindByUUID(uid string) (*model.StudentAchievement, error)
	FindByPair(studentID, achievementID int64) (*model.StudentAchievement, error)
	Find(filter model.AwardFilter) ([]model.StudentAchievement, error)
	Update(sa *model.StudentAchievement) error
	Delete(id int64) error
	ApprovedPointsByStudent() ([]model.StudentPoints, error)
}

type AwardRepo struct {
	DB *sql.DB
}

func NewAwardRepo(db *sql.DB) *AwardRepo {
	return &AwardRepo{DB: db}
}

const awardColumns = `id, uuid, student_id, achievement_id, status, notes, evidence_url, approved_by_id, created_at, updated_at`

func (r *AwardRepo) Create(sa *model.StudentAchievement) error {
	if sa.UUID == "" {
		sa.UUID = uuid.NewString()
	}
	if sa.Status == "" {
		sa.Status = model.StatusPending
	}
	now := time.Now()
	sa.CreatedAt = now
	sa.UpdatedAt = now

	query := `
		INSERT INTO student_achievements (uuid, student_id, achievement_id, status, notes, evidence_url, approved_by_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id`

	err := r.DB.QueryRow(
		query,
		sa.UUID, sa.StudentID, sa.AchievementID, sa.Status,
		sa.Notes, sa.EvidenceURL, sa.ApprovedByID, sa.CreatedAt, sa.UpdatedAt,
	).Scan(&sa.ID)
	if err != nil {
		// The (student_id, achievement_id) unique index is the real
		// duplicate-claim guard; the service pre-check only gets the
		// friendlier message in the uncontended case.
		if IsUniqueViolation(err) {
			return apperr.Conflictf("student %d already has achievement %d", sa.StudentID, sa.AchievementID)
		}
		return err
	}
	return nil
}

func scanAward(scan func(dest ...interface{}) error) (*model.StudentAchievement, error) {
	var sa model.StudentAchievement
	var notes, evidenceURL sql.NullString
	var approvedBy sql.NullInt64

	err := scan(
		&sa.ID, &sa.UUID, &sa.StudentID, &sa.AchievementID, &sa.Status,
		&notes, &evidenceURL, &approvedBy, &sa.CreatedAt, &sa.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if notes.Valid {
		sa.Notes = notes.String
	}
	if evidenceURL.Valid {
		sa.EvidenceURL = evidenceURL.String
	}
	if approvedBy.Valid {
		id := approvedBy.Int64
		sa.ApprovedByID = &id
	}
	return &sa, nil
}

func (r *AwardRepo) findOne(query string, args ...interface{}) (*model.StudentAchievement, error) {
	sa, err := scanAward(r.DB.QueryRow(query, args...).Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.NotFoundf("student achievement")
		}
		return nil, err
	}
	return sa, nil
}

func (r *AwardRepo) FindByID(id int64) (*model.StudentAchievement, error) {
	query := `SELECT ` + awardColumns + ` FROM student_achievements WHERE id = $1`
	return r.findOne(query, id)
}

func (r *AwardRepo) FindByUUID(uid string) (*model.StudentAchievement, error) {
	query := `SELECT ` + awardColumns + ` FROM student_achievements WHERE uuid = $1`
	return r.findOne(query, uid)
}

func (r *AwardRepo) FindByPair(studentID, achievementID int64) (*model.StudentAchievement, error) {
	query := `SELECT ` + awardColumns + ` FROM student_achievements WHERE student_id = $1 AND achievement_id = $2`
	return r.findOne(query, studentID, achievementID)
}

func (r *AwardRepo) Find(filter model.AwardFilter) ([]model.StudentAchievement, error) {
	query := `SELECT ` + awardColumns + ` FROM student_achievements WHERE 1=1`
	args := []interface{}{}
	argIndex := 1

	if filter.StudentID != 0 {
		query += fmt.Sprintf(" AND student_id = $%d", argIndex)
		args = append(args, filter.StudentID)
		argIndex++
	}
	if filter.AchievementID != 0 {
		query += fmt.Sprintf(" AND achievement_id = $%d", argIndex)
		args = append(args, filter.AchievementID)
		argIndex++
	}
	if filter.Status != "" {
		query += fmt.Sprintf(" AND status = $%d", argIndex)
		args = append(args, filter.Status)
		argIndex++
	}

	query += " ORDER BY created_at DESC"

	rows, err := r.DB.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	awards := []model.StudentAchievement{}
	for rows.Next() {
		sa, err := scanAward(rows.Scan)
		if err != nil {
			return nil, err
		}
		awards = append(awards, *sa)
	}
	return awards, rows.Err()
}

func (r *AwardRepo) Update(sa *model.StudentAchievement) error {
	sa.UpdatedAt = time.Now()

	query := `
		UPDATE student_achievements
		SET status = $1, notes = $2, evidence_url = $3, approved_by_id = $4, updated_at = $5
		WHERE id = $6`

	res, err := r.DB.Exec(
		query,
		sa.Status, sa.Notes, sa.EvidenceURL, sa.ApprovedByID, sa.UpdatedAt, sa.ID,
	)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return apperr.NotFoundf("student achievement %d", sa.ID)
	}
	return nil
}

func (r *AwardRepo) Delete(id int64) error {
	res, err := r.DB.Exec(`DELETE FROM student_achievements WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return apperr.NotFoundf("student achievement %d", id)
	}
	return nil
}

func (r *AwardRepo) ApprovedPointsByStudent() ([]model.StudentPoints, error) {
	query := `
		SELECT sa.student_id, COALESCE(SUM(a.star_points), 0)
		FROM student_achievements sa
		JOIN achievements a ON a.id = sa.achievement_id
		WHERE sa.status = 'approved'
		GROUP BY sa.student_id`

	rows, err := r.DB.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	points := []model.StudentPoints{}
	for rows.Next() {
		var p model.StudentPoints
		if err := rows.Scan(&p.StudentID, &p.Points); err != nil {
			return nil, err
		}
		points = append(points, p)
	}
	return points, rows.Err()
}
