package domain

import "time"

type Account struct {
	ID        string    `db:"id"`
	Name      string    `db:"name"`
	Balance   int64     `db:"balance"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// MovementMeta describes why money moved. It is copied verbatim onto the
// MoneyMovement written together with the balance change.
type MovementMeta struct {
	Source      string
	Note        string
	DisplayNote string
	Origin      string
}

type MoneyMovement struct {
	ID          int64     `db:"id"`
	AccountID   string    `db:"account_id"`
	Delta       int64     `db:"delta"`
	Deposit     bool      `db:"deposit"`
	Source      string    `db:"source"`
	Note        string    `db:"note"`
	DisplayNote string    `db:"display_note"`
	Origin      string    `db:"origin"`
	CreatedAt   time.Time `db:"created_at"`
}

type Cheque struct {
	ID         string     `db:"id"`
	IssuerID   string     `db:"issuer_id"`
	Amount     int64      `db:"amount"`
	Note       string     `db:"note"`
	Used       bool       `db:"used"`
	RedeemerID *string    `db:"redeemer_id"`
	RedeemedAt *time.Time `db:"redeemed_at"`
	CreatedAt  time.Time  `db:"created_at"`
}

type LoanStatus string

const (
	LoanActive             LoanStatus = "ACTIVE"
	LoanRepaid             LoanStatus = "REPAID"
	LoanCollateralReleased LoanStatus = "COLLATERAL_RELEASED"
	LoanCollateralSeized   LoanStatus = "COLLATERAL_SEIZED"
)

type PeerLoan struct {
	ID                 string    `db:"id"`
	LenderID           string    `db:"lender_id"`
	BorrowerID         string    `db:"borrower_id"`
	Principal          int64     `db:"principal"`
	RepayAmount        int64     `db:"repay_amount"`
	Outstanding        int64     `db:"outstanding"`
	DueDate            time.Time `db:"due_date"`
	Collateral         *string   `db:"collateral"`
	CollateralReleased bool      `db:"collateral_released"`
	CollateralSeized   bool      `db:"collateral_seized"`
	CreatedAt          time.Time `db:"created_at"`
	UpdatedAt          time.Time `db:"updated_at"`
}

func (l *PeerLoan) HasCollateral() bool {
	return l.Collateral != nil && *l.Collateral != ""
}

// Settled reports whether the loan reached a terminal collateral state.
func (l *PeerLoan) Settled() bool {
	return l.CollateralSeized || l.CollateralReleased
}

func (l *PeerLoan) Status() LoanStatus {
	switch {
	case l.CollateralSeized:
		return LoanCollateralSeized
	case l.CollateralReleased:
		return LoanCollateralReleased
	case l.Outstanding > 0:
		return LoanActive
	default:
		return LoanRepaid
	}
}

type ServerLoan struct {
	AccountID       string     `db:"account_id"`
	Outstanding     int64      `db:"outstanding"`
	PaymentAmount   int64      `db:"payment_amount"`
	LastPaidAt      *time.Time `db:"last_paid_at"`
	FailedPayments  int        `db:"failed_payments"`
	InterestStopped bool       `db:"interest_stopped"`
	CreatedAt       time.Time  `db:"created_at"`
	UpdatedAt       time.Time  `db:"updated_at"`
}

type ServerLoanAction string

const (
	ActionBorrow       ServerLoanAction = "BORROW"
	ActionRepaySuccess ServerLoanAction = "REPAY_SUCCESS"
	ActionRepayFailure ServerLoanAction = "REPAY_FAILURE"
	ActionInterest     ServerLoanAction = "INTEREST"
)

// ServerLoanEvent amounts are signed: positive raises the debt, negative
// lowers it (or, for RepayFailure, is what an attempt tried to lower it by).
type ServerLoanEvent struct {
	ID        int64            `db:"id"`
	AccountID string           `db:"account_id"`
	Action    ServerLoanAction `db:"action"`
	Amount    int64            `db:"amount"`
	CreatedAt time.Time        `db:"created_at"`
}
