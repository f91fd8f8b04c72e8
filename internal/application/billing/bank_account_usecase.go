package billing

import (
	"github.com/autotech/taller-api/internal/application/dto"
	"github.com/autotech/taller-api/internal/domain/entity"
	"github.com/autotech/taller-api/internal/domain/repository"
)

// BankAccountUseCase casos de uso de cuentas bancarias del taller.
type BankAccountUseCase struct {
	repo  repository.BankAccountRepository
	banks repository.BankRepository
}

// NewBankAccountUseCase construye el caso de uso.
func NewBankAccountUseCase(repo repository.BankAccountRepository, banks repository.BankRepository) *BankAccountUseCase {
	return &BankAccountUseCase{repo: repo, banks: banks}
}

// Create registra una cuenta bancaria activa.
func (uc *BankAccountUseCase) Create(in dto.CreateBankAccountRequest) (*dto.BankAccountResponse, error) {
	account := &entity.BankAccount{
		BankID:        in.BankID,
		AccountNumber: in.AccountNumber,
		AccountType:   in.AccountType,
		HolderName:    in.HolderName,
		Alias:         in.Alias,
		Active:        true,
	}
	if err := uc.repo.Create(account); err != nil {
		return nil, err
	}
	created, err := uc.repo.GetByID(account.ID)
	if err != nil {
		return nil, err
	}
	resp := dto.NewBankAccountResponse(created)
	return &resp, nil
}

// List lista las cuentas bancarias, opcionalmente solo las activas.
func (uc *BankAccountUseCase) List(onlyActive bool) ([]dto.BankAccountResponse, error) {
	accounts, err := uc.repo.List(onlyActive)
	if err != nil {
		return nil, err
	}
	out := make([]dto.BankAccountResponse, 0, len(accounts))
	for _, a := range accounts {
		out = append(out, dto.NewBankAccountResponse(a))
	}
	return out, nil
}

// SetActive activa o desactiva una cuenta.
func (uc *BankAccountUseCase) SetActive(id int64, active bool) (*dto.BankAccountResponse, error) {
	account, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	account.Active = active
	if err := uc.repo.Update(account); err != nil {
		return nil, err
	}
	resp := dto.NewBankAccountResponse(account)
	return &resp, nil
}

// Delete elimina una cuenta bancaria.
func (uc *BankAccountUseCase) Delete(id int64) error {
	if _, err := uc.repo.GetByID(id); err != nil {
		return err
	}
	return uc.repo.Delete(id)
}

// ListBanks catálogo de bancos.
func (uc *BankAccountUseCase) ListBanks() ([]*entity.Bank, error) {
	return uc.banks.List()
}
