package domain

type Role string

const (
	RoleSuperAdmin Role = "superadmin"
	RoleRM         Role = "rm"
	RoleCustomer   Role = "customer"
)

func (r Role) Valid() bool {
	switch r {
	case RoleSuperAdmin, RoleRM, RoleCustomer:
		return true
	default:
		return false
	}
}

func (r Role) Display() string {
	switch r {
	case RoleSuperAdmin:
		return "Super Admin"
	case RoleRM:
		return "Relationship Manager"
	case RoleCustomer:
		return "Customer"
	default:
		return string(r)
	}
}

type AccountType string

const (
	AccountTypeSavings AccountType = "savings"
	AccountTypeCurrent AccountType = "current"
	AccountTypeSalary  AccountType = "salary"
)

func (a AccountType) Valid() bool {
	switch a {
	case AccountTypeSavings, AccountTypeCurrent, AccountTypeSalary:
		return true
	default:
		return false
	}
}

func (a AccountType) Display() string {
	switch a {
	case AccountTypeSavings:
		return "Savings Account"
	case AccountTypeCurrent:
		return "Current Account"
	case AccountTypeSalary:
		return "Salary Account"
	default:
		return string(a)
	}
}

// DirectionType направление операции по счету: credit зачисление, debit списание.
type DirectionType string

const (
	DirectionDebit  DirectionType = "debit"
	DirectionCredit DirectionType = "credit"
)

func (d DirectionType) Valid() bool {
	return d == DirectionDebit || d == DirectionCredit
}

type ServiceType string

const (
	ServiceChequeBook       ServiceType = "cheque_book"
	ServiceAddressChange    ServiceType = "address_change"
	ServiceLoanEnquiry      ServiceType = "loan_enquiry"
	ServiceCardBlock        ServiceType = "card_block"
	ServiceFDOpening        ServiceType = "fd_opening"
	ServiceStatementRequest ServiceType = "statement_request"
)

func (s ServiceType) Valid() bool {
	switch s {
	case ServiceChequeBook, ServiceAddressChange, ServiceLoanEnquiry,
		ServiceCardBlock, ServiceFDOpening, ServiceStatementRequest:
		return true
	default:
		return false
	}
}

func (s ServiceType) Display() string {
	switch s {
	case ServiceChequeBook:
		return "New Cheque Book"
	case ServiceAddressChange:
		return "Address Change"
	case ServiceLoanEnquiry:
		return "Loan Enquiry"
	case ServiceCardBlock:
		return "Block Debit Card"
	case ServiceFDOpening:
		return "Fixed Deposit Opening"
	case ServiceStatementRequest:
		return "Physical Statement Request"
	default:
		return string(s)
	}
}

type ServiceStatusType string

const (
	ServiceStatusPending    ServiceStatusType = "pending"
	ServiceStatusInProgress ServiceStatusType = "in_progress"
	ServiceStatusCompleted  ServiceStatusType = "completed"
	ServiceStatusRejected   ServiceStatusType = "rejected"
)

func (s ServiceStatusType) Valid() bool {
	switch s {
	case ServiceStatusPending, ServiceStatusInProgress, ServiceStatusCompleted, ServiceStatusRejected:
		return true
	default:
		return false
	}
}

func (s ServiceStatusType) Display() string {
	switch s {
	case ServiceStatusPending:
		return "Pending"
	case ServiceStatusInProgress:
		return "In Progress"
	case ServiceStatusCompleted:
		return "Completed"
	case ServiceStatusRejected:
		return "Rejected"
	default:
		return string(s)
	}
}

// CanTransitionTo сообщает, допустим ли переход заявки из текущего статуса в next.
// Завершенные и отклоненные заявки больше не меняются.
func (s ServiceStatusType) CanTransitionTo(next ServiceStatusType) bool {
	switch s {
	case ServiceStatusPending:
		return next == ServiceStatusInProgress || next == ServiceStatusRejected
	case ServiceStatusInProgress:
		return next == ServiceStatusCompleted || next == ServiceStatusRejected
	default:
		return false
	}
}
