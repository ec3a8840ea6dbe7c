package types

type TransactionType = string

var (
	TypeIncome  TransactionType = "IN"
	TypeExpense TransactionType = "OUT"
)

type PaymentMethod = string

var (
	PaymentCash       PaymentMethod = "cash"
	PaymentCreditCard PaymentMethod = "credit_card"
	PaymentDebitCard  PaymentMethod = "debit_card"
)

type UserType = string

var (
	UserTypePersonal UserType = "PF"
	UserTypeCompany  UserType = "PJ"
)

type OrderBy = string

var (
	OrderByAsc  OrderBy = "asc"
	OrderByDesc OrderBy = "desc"
)
