package model

// LoanApplication is a row of tbl_loanapp.
type LoanApplication struct {
	LoanAppID       int64  `gorm:"column:int_loanappid;primary_key" json:"int_loanappid"`
	AppReceiveRegNo string `gorm:"column:vchr_appreceivregno;size:50" json:"vchr_appreceivregno"`
	ApplicantName   string `gorm:"column:vchr_applname;size:200" json:"vchr_applname"`
	LoanNo          string `gorm:"column:int_loanno;size:20;index" json:"int_loanno"`
	SchemeID        int64  `gorm:"column:int_schemeid" json:"int_schemeid"`
}

func (LoanApplication) TableName() string {
	return "tbl_loanapp"
}
