package dao

import (
	"errors"
	"fmt"

	"github.com/radhian/receipt-reconciliation/infra/db/model"

	"github.com/jinzhu/gorm"
)

var ErrNotFound = errors.New("record not found")

func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

func (d *dao) GetLoanApplicationsByLoanNo(loanNo string) ([]model.LoanApplication, error) {
	var loans []model.LoanApplication
	if err := d.db.Where("int_loanno = ?", loanNo).Find(&loans).Error; err != nil {
		return nil, fmt.Errorf("failed to query loan applications: %w", err)
	}
	return loans, nil
}

func (d *dao) GetLoanApplicationByLoanAppID(loanAppID int64) (model.LoanApplication, error) {
	var loan model.LoanApplication
	if err := d.db.Where("int_loanappid = ?", loanAppID).First(&loan).Error; err != nil {
		return loan, fmt.Errorf("loan application %d: %w", loanAppID, notFound(err))
	}
	return loan, nil
}

func (d *dao) GetLoanApplicationByRegNo(regNo string) (model.LoanApplication, error) {
	var loan model.LoanApplication
	if err := d.db.Where("vchr_appreceivregno = ?", regNo).First(&loan).Error; err != nil {
		return loan, fmt.Errorf("loan application %s: %w", regNo, notFound(err))
	}
	return loan, nil
}
