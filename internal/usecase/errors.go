package usecase

// DomainError is a business-rule failure that should surface to the caller
// with its code, as opposed to an infrastructure error.
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

func IsDomainError(err error) bool {
	_, ok := err.(*DomainError)
	return ok
}

var (
	ErrLeadNotFound = &DomainError{Code: "LEAD_NOT_FOUND", Message: "lead not found"}

	ErrTemplateNotFound = &DomainError{Code: "TEMPLATE_NOT_FOUND", Message: "template not found"}

	ErrJobNotFound = &DomainError{Code: "JOB_NOT_FOUND", Message: "generation job not found"}

	ErrNotAuthenticated = &DomainError{Code: "NOT_AUTHENTICATED", Message: "no active session"}

	ErrInvalidCredentials = &DomainError{Code: "INVALID_CREDENTIALS", Message: "invalid credentials"}

	ErrPasswordTooShort = &DomainError{Code: "PASSWORD_TOO_SHORT", Message: "password must be at least 6 characters"}

	ErrNoLeadsSelected = &DomainError{Code: "NO_LEADS_SELECTED", Message: "select at least one lead"}

	ErrNoDraft = &DomainError{Code: "NO_DRAFT", Message: "lead has no generated draft"}
)
