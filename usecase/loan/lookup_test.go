package loan

import (
	"errors"
	"fmt"
	"testing"

	"github.com/radhian/receipt-reconciliation/infra/db/dao"
	"github.com/radhian/receipt-reconciliation/infra/db/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubStore struct {
	loans   []model.LoanApplication
	acc     []model.AccountTransaction
	banks   []model.BankDetail
	err     error
	lastArg string
}

func (s *stubStore) GetLoanApplicationsByLoanNo(loanNo string) ([]model.LoanApplication, error) {
	s.lastArg = "loanno:" + loanNo
	var out []model.LoanApplication
	for _, l := range s.loans {
		if l.LoanNo == loanNo {
			out = append(out, l)
		}
	}
	return out, s.err
}

func (s *stubStore) GetLoanApplicationByLoanAppID(id int64) (model.LoanApplication, error) {
	s.lastArg = fmt.Sprintf("appid:%d", id)
	for _, l := range s.loans {
		if l.LoanAppID == id {
			return l, nil
		}
	}
	return model.LoanApplication{}, fmt.Errorf("loan application %d: %w", id, dao.ErrNotFound)
}

func (s *stubStore) GetLoanApplicationByRegNo(regNo string) (model.LoanApplication, error) {
	s.lastArg = "regno:" + regNo
	for _, l := range s.loans {
		if l.AppReceiveRegNo == regNo {
			return l, nil
		}
	}
	return model.LoanApplication{}, fmt.Errorf("loan application %s: %w", regNo, dao.ErrNotFound)
}

func (s *stubStore) GetAccountTransactions(loanNo, transNo string) ([]model.AccountTransaction, error) {
	var out []model.AccountTransaction
	for _, r := range s.acc {
		if r.LoanNo == loanNo && r.TransNo == transNo {
			out = append(out, r)
		}
	}
	return out, s.err
}

func (s *stubStore) GetBankDetailsByLoanAppID(id int64) ([]model.BankDetail, error) {
	return s.banks, s.err
}

func newStub() *stubStore {
	return &stubStore{
		loans: []model.LoanApplication{
			{LoanAppID: 123456, AppReceiveRegNo: "KL/TVM/001", ApplicantName: "Anil", LoanNo: "140102037"},
		},
		acc: []model.AccountTransaction{
			{TransNo: "T1", LoanNo: "140102037", AccountName: "PROCESSING FEE", Received: decimal.NewFromInt(118)},
		},
	}
}

func TestSearchLoan(t *testing.T) {
	uc := NewLoanUsecase()

	tests := []struct {
		term    string
		lookup  string
		wantErr error
	}{
		{"140102037", "loanno:140102037", nil},
		{"123456", "appid:123456", nil},
		{"KL/TVM/001", "regno:KL/TVM/001", nil},
		{"999999999", "loanno:999999999", ErrLoanNotFound},
		{"654321", "appid:654321", ErrLoanNotFound},
		{"12345", "", ErrInvalidSearchTerm},
		{"12-34", "", ErrInvalidSearchTerm},
	}
	for _, tt := range tests {
		t.Run(tt.term, func(t *testing.T) {
			store := newStub()
			loan, err := uc.SearchLoan(store, tt.term)
			assert.Equal(t, tt.lookup, store.lastArg)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, int64(123456), loan.LoanAppID)
		})
	}
}

func TestSearchLoan_StoreError(t *testing.T) {
	store := newStub()
	store.err = errors.New("connection reset")

	_, err := NewLoanUsecase().SearchLoan(store, "140102037")
	assert.EqualError(t, err, "connection reset")
}

func TestGetTransaction(t *testing.T) {
	uc := NewLoanUsecase()

	rows, err := uc.GetTransaction(newStub(), "140102037", "T1")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "PROCESSING FEE", rows[0].AccountName)

	_, err = uc.GetTransaction(newStub(), "140102037", "T2")
	assert.ErrorIs(t, err, ErrTransactionNotFound)
}

func TestGetBankDetails(t *testing.T) {
	uc := NewLoanUsecase()

	details, err := uc.GetBankDetails(newStub(), 123456)
	require.NoError(t, err)
	assert.NotNil(t, details)
	assert.Empty(t, details)

	store := newStub()
	store.banks = []model.BankDetail{{LoanAppID: 123456, Bank: "SBI"}}
	details, err = uc.GetBankDetails(store, 123456)
	require.NoError(t, err)
	assert.Len(t, details, 1)
}
