package postgres

import (
	"context"

	"github.com/polkiloo/customersystem/internal/domain/model"
)

type userRepository struct {
	storage *Storage
}

const userColumns = `id, name, email, password_hash, created_at`

func (r *userRepository) List(ctx context.Context) ([]model.User, error) {
	const query = `SELECT ` + userColumns + ` FROM users ORDER BY id`
	return r.query(ctx, query)
}

func (r *userRepository) ListByName(ctx context.Context, name string) ([]model.User, error) {
	const query = `SELECT ` + userColumns + ` FROM users WHERE name=$1 ORDER BY id`
	return r.query(ctx, query, name)
}

func (r *userRepository) ListByEmail(ctx context.Context, email string) ([]model.User, error) {
	const query = `SELECT ` + userColumns + ` FROM users WHERE email=$1 ORDER BY id`
	return r.query(ctx, query, email)
}

func (r *userRepository) Create(ctx context.Context, name, email, passwordHash string) (model.MutationResult, error) {
	const query = `INSERT INTO users (name, email, password_hash) VALUES ($1, $2, $3) RETURNING id`
	var id int64
	if err := r.storage.pool.QueryRow(ctx, query, name, email, passwordHash).Scan(&id); err != nil {
		return model.MutationResult{}, err
	}
	return model.MutationResult{InsertID: id, RowsAffected: 1}, nil
}

func (r *userRepository) query(ctx context.Context, query string, args ...any) ([]model.User, error) {
	rows, err := r.storage.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make([]model.User, 0)
	for rows.Next() {
		var u model.User
		if err := rows.Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, u)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
