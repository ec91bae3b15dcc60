package auth

import "github.com/sima-app/sima-backend/internal/domain"

// LoginInput holds the credentials for the login operation.
type LoginInput struct {
	Usuario  string `json:"usuario"`
	Password string `json:"password"`
}

// Validate checks credential shape only. Shape failures are reported as
// validation errors; they never reveal whether the account exists.
func (i LoginInput) Validate() error {
	var errs []domain.FieldError

	if n := len(i.Usuario); n < 3 || n > 50 {
		errs = append(errs, domain.FieldError{Field: "usuario", Message: "debe tener entre 3 y 50 caracteres"})
	}
	if n := len(i.Password); n < 6 || n > 100 {
		errs = append(errs, domain.FieldError{Field: "password", Message: "debe tener entre 6 y 100 caracteres"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// RefreshInput holds parameters for the token refresh operation. The wire
// field is camelCase; existing clients send {"refreshToken": "..."}.
type RefreshInput struct {
	RefreshToken string `json:"refreshToken"`
}

// Validate validates the refresh input.
func (i RefreshInput) Validate() error {
	if i.RefreshToken == "" {
		return domain.NewValidationError("refreshToken", "es obligatorio")
	}
	if len(i.RefreshToken) > 2048 {
		return domain.NewValidationError("refreshToken", "es demasiado largo")
	}
	return nil
}

// ChangePasswordInput holds parameters for the own-password change operation.
type ChangePasswordInput struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

// Validate validates the password change input.
func (i ChangePasswordInput) Validate() error {
	var errs []domain.FieldError

	if i.CurrentPassword == "" {
		errs = append(errs, domain.FieldError{Field: "current_password", Message: "es obligatorio"})
	}
	if n := len(i.NewPassword); n < 6 || n > 100 {
		errs = append(errs, domain.FieldError{Field: "new_password", Message: "debe tener entre 6 y 100 caracteres"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
