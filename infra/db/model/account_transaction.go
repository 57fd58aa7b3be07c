package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// AccountTransaction is a ledger row of tbl_Acctrans.
type AccountTransaction struct {
	TransNo      string          `gorm:"column:vchr_TransNo;size:50" json:"vchr_TransNo"`
	TransType    string          `gorm:"column:chr_Trans_Type;size:20" json:"chr_Trans_Type"`
	Code         int64           `gorm:"column:int_Code" json:"int_Code"`
	AccountName  string          `gorm:"column:chr_Acc_Name;size:100" json:"chr_Acc_Name"`
	Type         string          `gorm:"column:chr_Type;size:20" json:"chr_Type"`
	Received     decimal.Decimal `gorm:"column:int_Rec;type:decimal(18,2)" json:"int_Rec"`
	Paid         decimal.Decimal `gorm:"column:int_Pay;type:decimal(18,2)" json:"int_Pay"`
	TransDate    time.Time       `gorm:"column:dt_TDate" json:"dt_TDate"`
	LoanNo       string          `gorm:"column:int_loanno;size:20;index" json:"int_loanno"`
	Name         string          `gorm:"column:chr_Name;size:200" json:"chr_Name"`
	Remarks      string          `gorm:"column:vchr_remarks;size:200" json:"vchr_remarks"`
	OfficeID     string          `gorm:"column:vchr_offid;size:10" json:"vchr_offid"`
	UserName     string          `gorm:"column:vchr_uname;size:50" json:"vchr_uname"`
	EntryTime    time.Time       `gorm:"column:dte_time" json:"dte_time"`
	OfficeIDC    string          `gorm:"column:vchr_offidC;size:10" json:"vchr_offidC"`
	ExtraRemarks string          `gorm:"column:Remarks;size:200" json:"Remarks"`
	GSTPercent   decimal.Decimal `gorm:"column:GST_percent;type:decimal(5,2)" json:"GST_percent"`
	GSTAmount    decimal.Decimal `gorm:"column:GST_Amount;type:decimal(18,2)" json:"GST_Amount"`
}

func (AccountTransaction) TableName() string {
	return "tbl_Acctrans"
}
