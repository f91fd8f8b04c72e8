package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/autotech/taller-api/internal/domain"
	"github.com/autotech/taller-api/internal/domain/entity"
	"github.com/autotech/taller-api/internal/domain/repository"
)

var (
	_ repository.BankAccountRepository = (*BankAccountRepo)(nil)
	_ repository.BankRepository        = (*BankRepo)(nil)
)

const bankAccountSelect = `
	SELECT a.id, a.bank_id, a.account_number, a.account_type, a.holder_name,
		a.alias, a.active, a.created_at, a.updated_at,
		b.name, b.code
	FROM bank_accounts a
	JOIN banks b ON b.id = a.bank_id`

// BankAccountRepo implementación de BankAccountRepository.
type BankAccountRepo struct {
	q Querier
}

func NewBankAccountRepository(q Querier) *BankAccountRepo {
	return &BankAccountRepo{q: q}
}

func scanBankAccount(row pgx.Row) (*entity.BankAccount, error) {
	var a entity.BankAccount
	var bank entity.Bank
	err := row.Scan(
		&a.ID, &a.BankID, &a.AccountNumber, &a.AccountType, &a.HolderName,
		&a.Alias, &a.Active, &a.CreatedAt, &a.UpdatedAt,
		&bank.Name, &bank.Code,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("scan bank account: %w", err)
	}
	bank.ID = a.BankID
	a.Bank = &bank
	return &a, nil
}

func (r *BankAccountRepo) Create(account *entity.BankAccount) error {
	err := r.q.QueryRow(context.Background(), `
		INSERT INTO bank_accounts (bank_id, account_number, account_type, holder_name, alias, active)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at`,
		account.BankID, account.AccountNumber, account.AccountType,
		account.HolderName, account.Alias, account.Active,
	).Scan(&account.ID, &account.CreatedAt, &account.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert bank account: %w", err)
	}
	return nil
}

func (r *BankAccountRepo) GetByID(id int64) (*entity.BankAccount, error) {
	return scanBankAccount(r.q.QueryRow(context.Background(),
		bankAccountSelect+` WHERE a.id = $1`, id))
}

func (r *BankAccountRepo) List(onlyActive bool) ([]*entity.BankAccount, error) {
	rows, err := r.q.Query(context.Background(),
		bankAccountSelect+` WHERE NOT $1 OR a.active ORDER BY a.alias, a.id`, onlyActive)
	if err != nil {
		return nil, fmt.Errorf("list bank accounts: %w", err)
	}
	defer rows.Close()
	var list []*entity.BankAccount
	for rows.Next() {
		a, err := scanBankAccount(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, a)
	}
	return list, rows.Err()
}

func (r *BankAccountRepo) Update(account *entity.BankAccount) error {
	res, err := r.q.Exec(context.Background(), `
		UPDATE bank_accounts SET bank_id = $2, account_number = $3, account_type = $4,
			holder_name = $5, alias = $6, active = $7, updated_at = NOW()
		WHERE id = $1`,
		account.ID, account.BankID, account.AccountNumber, account.AccountType,
		account.HolderName, account.Alias, account.Active)
	if err != nil {
		return fmt.Errorf("update bank account: %w", err)
	}
	if res.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *BankAccountRepo) Delete(id int64) error {
	res, err := r.q.Exec(context.Background(), `DELETE FROM bank_accounts WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("delete bank account: %w", err)
	}
	if res.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// BankRepo catálogo de bancos, solo lectura.
type BankRepo struct {
	q Querier
}

func NewBankRepository(q Querier) *BankRepo {
	return &BankRepo{q: q}
}

func (r *BankRepo) List() ([]*entity.Bank, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT id, name, code FROM banks ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list banks: %w", err)
	}
	defer rows.Close()
	var list []*entity.Bank
	for rows.Next() {
		var b entity.Bank
		if err := rows.Scan(&b.ID, &b.Name, &b.Code); err != nil {
			return nil, fmt.Errorf("scan bank: %w", err)
		}
		list = append(list, &b)
	}
	return list, rows.Err()
}
