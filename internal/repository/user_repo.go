package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"restaurant-inventory/internal/model"
)

const userColumns = `id_user, username, email, password, created_at, updated_at`

type UserRepository struct {
	db DBTX
}

func NewUserRepository(db DBTX) *UserRepository {
	return &UserRepository{db: db}
}

func scanUser(row rowScanner) (model.User, error) {
	var u model.User
	err := row.Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.CreatedAt, &u.UpdatedAt)
	return u, err
}

func (r *UserRepository) FindByID(ctx context.Context, id int64) (model.User, error) {
	u, err := scanUser(r.db.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE id_user = $1`, id))
	if err != nil {
		return model.User{}, translateError("find user by id", err)
	}
	return u, nil
}

func (r *UserRepository) FindByUsername(ctx context.Context, username string) (model.User, error) {
	u, err := scanUser(r.db.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE username = $1`, strings.TrimSpace(username)))
	if err != nil {
		return model.User{}, translateError("find user by username", err)
	}
	return u, nil
}

func (r *UserRepository) Create(ctx context.Context, u model.User) (model.User, error) {
	created, err := scanUser(r.db.QueryRow(ctx,
		`INSERT INTO users (username, email, password)
		 VALUES ($1, $2, $3)
		 RETURNING `+userColumns,
		u.Username, u.Email, u.PasswordHash))
	if err != nil {
		return model.User{}, translateError("create user", err)
	}
	return created, nil
}

// Update writes only the fields set in upd and stamps updated_at.
func (r *UserRepository) Update(ctx context.Context, id int64, upd model.UserUpdate, now time.Time) (model.User, error) {
	sets := make([]string, 0, 4)
	args := make([]any, 0, 5)
	add := func(column string, value any) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if upd.Username != nil {
		add("username", *upd.Username)
	}
	if upd.Email != nil {
		add("email", *upd.Email)
	}
	if upd.PasswordHash != nil {
		add("password", *upd.PasswordHash)
	}
	add("updated_at", now)
	args = append(args, id)

	updated, err := scanUser(r.db.QueryRow(ctx,
		fmt.Sprintf(`UPDATE users SET %s WHERE id_user = $%d RETURNING %s`,
			strings.Join(sets, ", "), len(args), userColumns),
		args...))
	if err != nil {
		return model.User{}, translateError("update user", err)
	}
	return updated, nil
}

func (r *UserRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM users WHERE id_user = $1`, id)
	if err != nil {
		return translateError("delete user", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("delete user: %w", model.ErrNotFound)
	}
	return nil
}

func (r *UserRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM users`).Scan(&n); err != nil {
		return 0, translateError("count users", err)
	}
	return n, nil
}
