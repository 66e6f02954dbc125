package postgres

import (
	"context"

	"github.com/polkiloo/customersystem/internal/domain/model"
)

type customerRepository struct {
	storage *Storage
}

func (r *customerRepository) List(ctx context.Context) ([]model.Customer, error) {
	const query = `SELECT id, name, email, company_name, phone, profile_picture_url,
                          contract_start_date, contract_expire_date, created_at
                   FROM customers ORDER BY id`
	rows, err := r.storage.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make([]model.Customer, 0)
	for rows.Next() {
		var c model.Customer
		if err := rows.Scan(
			&c.ID, &c.Name, &c.Email, &c.CompanyName, &c.Phone, &c.ProfilePictureURL,
			&c.ContractStartDate, &c.ContractExpireDate, &c.CreatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *customerRepository) Create(ctx context.Context, c model.Customer) (model.MutationResult, error) {
	const query = `INSERT INTO customers (name, email, company_name, phone, profile_picture_url,
                                         contract_start_date, contract_expire_date)
                   VALUES ($1, $2, $3, $4, $5, $6, $7)
                   RETURNING id`
	var id int64
	err := r.storage.pool.QueryRow(ctx, query,
		c.Name, c.Email, c.CompanyName, c.Phone, c.ProfilePictureURL,
		c.ContractStartDate, c.ContractExpireDate,
	).Scan(&id)
	if err != nil {
		return model.MutationResult{}, err
	}
	return model.MutationResult{InsertID: id, RowsAffected: 1}, nil
}

func (r *customerRepository) Update(ctx context.Context, id int64, c model.Customer) (model.MutationResult, error) {
	const query = `UPDATE customers
                   SET name=$1, email=$2, company_name=$3, phone=$4, profile_picture_url=$5,
                       contract_start_date=$6, contract_expire_date=$7
                   WHERE id=$8`
	tag, err := r.storage.pool.Exec(ctx, query,
		c.Name, c.Email, c.CompanyName, c.Phone, c.ProfilePictureURL,
		c.ContractStartDate, c.ContractExpireDate, id,
	)
	if err != nil {
		return model.MutationResult{}, err
	}
	return model.MutationResult{RowsAffected: tag.RowsAffected()}, nil
}

func (r *customerRepository) Delete(ctx context.Context, id int64) (model.MutationResult, error) {
	const query = `DELETE FROM customers WHERE id=$1`
	tag, err := r.storage.pool.Exec(ctx, query, id)
	if err != nil {
		return model.MutationResult{}, err
	}
	return model.MutationResult{RowsAffected: tag.RowsAffected()}, nil
}
