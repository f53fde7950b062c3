package repo

import (
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/Frezz12/AchStudentsBackend/app/apperr"
	"github.com/Frezz12/AchStudentsBackend/app/model"
)

type UserRepository interface {
	Create(user *model.User) error
	FindByID(id int64) (*model.User, error)
	FindByUUID(uid string) (*model.User, error)
	FindByEmail(email string) (*model.User, error)
	FindAll() ([]model.User, error)
	FindByRole(role model.Role) ([]model.User, error)
	Update(user *model.User) error
	Delete(id int64) error
	CountByRole() (*model.UserStats, error)
}

type UserRepo struct {
	DB *sql.DB
}

func NewUserRepo(db *sql.DB) *UserRepo {
	return &UserRepo{DB: db}
}

const userColumns = `id, uuid, firstname, lastname, surname, email, password, role, college, created_at, updated_at`

func (r *UserRepo) Create(user *model.User) error {
	if user.UUID == "" {
		user.UUID = uuid.NewString()
	}
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now

	query := `
		INSERT INTO users (uuid, firstname, lastname, surname, email, password, role, college, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id`

	err := r.DB.QueryRow(
		query,
		user.UUID,
		user.Firstname,
		user.Lastname,
		user.Surname,
		user.Email,
		user.PasswordHash,
		user.Role,
		user.College,
		user.CreatedAt,
		user.UpdatedAt,
	).Scan(&user.ID)
	if err != nil {
		if IsUniqueViolation(err) {
			return apperr.Conflictf("user with email %s already exists", user.Email)
		}
		return err
	}
	return nil
}

func (r *UserRepo) scanUser(row *sql.Row) (*model.User, error) {
	var user model.User
	var college sql.NullString

	err := row.Scan(
		&user.ID, &user.UUID, &user.Firstname, &user.Lastname, &user.Surname,
		&user.Email, &user.PasswordHash, &user.Role, &college,
		&user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.NotFoundf("user")
		}
		return nil, err
	}
	if college.Valid {
		user.College = college.String
	}
	return &user, nil
}

func (r *UserRepo) FindByID(id int64) (*model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return r.scanUser(r.DB.QueryRow(query, id))
}

func (r *UserRepo) FindByUUID(uid string) (*model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE uuid = $1`
	return r.scanUser(r.DB.QueryRow(query, uid))
}

func (r *UserRepo) FindByEmail(email string) (*model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`
	return r.scanUser(r.DB.QueryRow(query, email))
}

func (r *UserRepo) findMany(query string, args ...interface{}) ([]model.User, error) {
	rows, err := r.DB.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := []model.User{}
	for rows.Next() {
		var user model.User
		var college sql.NullString
		if err := rows.Scan(
			&user.ID, &user.UUID, &user.Firstname, &user.Lastname, &user.Surname,
			&user.Email, &user.PasswordHash, &user.Role, &college,
			&user.CreatedAt, &user.UpdatedAt,
		); err != nil {
			return nil, err
		}
		if college.Valid {
			user.College = college.String
		}
		users = append(users, user)
	}
	return users, rows.Err()
}

func (r *UserRepo) FindAll() ([]model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users ORDER BY created_at DESC`
	return r.findMany(query)
}

func (r *UserRepo) FindByRole(role model.Role) ([]model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE role = $1 ORDER BY created_at DESC`
	return r.findMany(query, role)
}

func (r *UserRepo) Update(user *model.User) error {
	user.UpdatedAt = time.Now()

	query := `
		UPDATE users
		SET firstname = $1, lastname = $2, surname = $3, email = $4, password = $5, college = $6, updated_at = $7
		WHERE id = $8`

	res, err := r.DB.Exec(
		query,
		user.Firstname, user.Lastname, user.Surname, user.Email,
		user.PasswordHash, user.College, user.UpdatedAt, user.ID,
	)
	if err != nil {
		if IsUniqueViolation(err) {
			return apperr.Conflictf("user with email %s already exists", user.Email)
		}
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return apperr.NotFoundf("user %d", user.ID)
	}
	return nil
}

func (r *UserRepo) Delete(id int64) error {
	res, err := r.DB.Exec(`DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return apperr.NotFoundf("user %d", id)
	}
	return nil
}

func (r *UserRepo) CountByRole() (*model.UserStats, error) {
	query := `
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE role = 'student'),
			COUNT(*) FILTER (WHERE role = 'curator'),
			COUNT(*) FILTER (WHERE role = 'admin')
		FROM users`

	var stats model.UserStats
	err := r.DB.QueryRow(query).Scan(&stats.TotalUsers, &stats.Students, &stats.Curators, &stats.Admins)
	if err != nil {
		return nil, err
	}
	return &stats, nil
}
