package model

// BankDetail is a disbursement bank account of a loan application (tbl_BankDetails).
type BankDetail struct {
	LoanAppID     int64  `gorm:"column:int_loanappid;index" json:"int_loanappid"`
	Bank          string `gorm:"column:vchr_Bank;size:100" json:"vchr_Bank"`
	Branch        string `gorm:"column:vchr_Branch;size:100" json:"vchr_Branch"`
	IFSC          string `gorm:"column:vchr_IFSC;size:20" json:"vchr_IFSC"`
	BankAccountNo string `gorm:"column:int_BankAccNo;size:30" json:"int_BankAccNo"`
	User          string `gorm:"column:vchr_user;size:50" json:"vchr_user"`
	Modify        int    `gorm:"column:int_modify" json:"int_modify"`
}

func (BankDetail) TableName() string {
	return "tbl_BankDetails"
}
