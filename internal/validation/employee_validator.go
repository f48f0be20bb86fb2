package validation

// EmployeeValidator provides validation for employee-related operations
type EmployeeValidator struct {
	validator *Validator
}

// NewEmployeeValidator creates a new employee validator
func NewEmployeeValidator() *EmployeeValidator {
	return &EmployeeValidator{
		validator: NewValidator(),
	}
}

// ValidateEmployeeName validates an employee name and returns the cleaned name
func (ev *EmployeeValidator) ValidateEmployeeName(name string) (string, error) {
	validationErr := NewValidationError()

	if !ev.validator.IsNonEmptyString(name) {
		validationErr.AddRequiredError("employee name")
		return "", validationErr
	}

	cleaned := ev.validator.TrimAndValidateString(name)

	if !ev.validator.IsValidStringLength(cleaned, 1, 255) {
		validationErr.AddInvalidLengthError("employee name", cleaned, 1, 255)
	}

	if !ev.validator.IsValidName(cleaned) {
		validationErr.AddInvalidCharacterError("employee name", cleaned)
	}

	if validationErr.HasErrors() {
		return "", validationErr
	}

	return cleaned, nil
}

// ValidatePassword validates an employee password
func (ev *EmployeeValidator) ValidatePassword(password string) error {
	validationErr := NewValidationError()

	if password == "" {
		validationErr.AddRequiredError("password")
		return validationErr
	}

	if len(password) < 4 || len(password) > 255 {
		validationErr.AddInvalidLengthError("password", nil, 4, 255)
		return validationErr
	}

	return nil
}

// ValidateEmployeeForCreation validates all fields required to create an
// employee and returns the cleaned name
func (ev *EmployeeValidator) ValidateEmployeeForCreation(name, password string) (string, error) {
	cleaned, err := ev.ValidateEmployeeName(name)
	if err != nil {
		return "", err
	}

	if err := ev.ValidatePassword(password); err != nil {
		return "", err
	}

	return cleaned, nil
}
