package validation

// ProjectValidator provides validation for project-related operations
type ProjectValidator struct {
	validator *Validator
}

// NewProjectValidator creates a new project validator
func NewProjectValidator() *ProjectValidator {
	return &ProjectValidator{
		validator: NewValidator(),
	}
}

// ValidateProjectName validates a project name and returns the cleaned name
func (pv *ProjectValidator) ValidateProjectName(name string) (string, error) {
	validationErr := NewValidationError()

	if !pv.validator.IsNonEmptyString(name) {
		validationErr.AddRequiredError("project name")
		return "", validationErr
	}

	cleaned := pv.validator.TrimAndValidateString(name)

	if !pv.validator.IsValidStringLength(cleaned, 1, 255) {
		validationErr.AddInvalidLengthError("project name", cleaned, 1, 255)
	}

	if !pv.validator.IsValidName(cleaned) {
		validationErr.AddInvalidCharacterError("project name", cleaned)
	}

	if validationErr.HasErrors() {
		return "", validationErr
	}

	return cleaned, nil
}

// ValidateProjectNote validates an optional project note and returns the
// cleaned note. An empty note is allowed and clears the existing one.
func (pv *ProjectValidator) ValidateProjectNote(note string) (string, error) {
	cleaned := pv.validator.TrimAndValidateString(note)
	if cleaned == "" {
		return "", nil
	}

	validationErr := NewValidationError()
	if !pv.validator.IsValidStringLength(cleaned, 1, 1000) {
		validationErr.AddInvalidLengthError("project note", cleaned, 1, 1000)
		return "", validationErr
	}

	return cleaned, nil
}

// ValidateProjectForCreation validates all fields required to create a
// project and returns the cleaned name
func (pv *ProjectValidator) ValidateProjectForCreation(name string) (string, error) {
	return pv.ValidateProjectName(name)
}
