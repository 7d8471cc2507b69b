package forms

import "newsroom/pkg/domain"

type Login struct {
	Email    string `form:"email" validate:"required,email"`
	Password string `form:"password,raw" validate:"required"`
}

func (f Login) Credentials() domain.Credentials {
	return domain.Credentials{Email: f.Email, Password: f.Password}
}

type SignUp struct {
	FirstName       string `form:"firstName" validate:"required"`
	LastName        string `form:"lastName" validate:"required"`
	Email           string `form:"email" validate:"required,email"`
	Password        string `form:"password,raw" validate:"required,min=6"`
	ConfirmPassword string `form:"confirmPassword,raw" validate:"eqfield=Password"`
}

func (f SignUp) Registration() domain.Registration {
	return domain.Registration{FirstName: f.FirstName, LastName: f.LastName, Email: f.Email, Password: f.Password}
}

type ForgotPassword struct {
	Email string `form:"email" validate:"required,email"`
}

type ResetPassword struct {
	Token           string `form:"token" validate:"required"`
	NewPassword     string `form:"newPassword,raw" validate:"required,min=6"`
	ConfirmPassword string `form:"confirmPassword,raw" validate:"eqfield=NewPassword"`
}

func (f ResetPassword) Reset() domain.PasswordReset {
	return domain.PasswordReset{Token: f.Token, NewPassword: f.NewPassword}
}

type ChangePassword struct {
	CurrentPassword string `form:"currentPassword,raw" validate:"required"`
	NewPassword     string `form:"newPassword,raw" validate:"required,min=6"`
	ConfirmPassword string `form:"confirmPassword,raw" validate:"eqfield=NewPassword"`
}

func (f ChangePassword) Change() domain.PasswordChange {
	return domain.PasswordChange{OldPassword: f.CurrentPassword, NewPassword: f.NewPassword}
}

type RegisterJournalist struct {
	FirstName string `form:"firstName" validate:"required"`
	LastName  string `form:"lastName" validate:"required"`
	Email     string `form:"email" validate:"required,email"`
}

func (f RegisterJournalist) Registration() domain.Registration {
	return domain.Registration{FirstName: f.FirstName, LastName: f.LastName, Email: f.Email}
}

type ActivateJournalist struct {
	Token             string `form:"token" validate:"required"`
	TemporaryPassword string `form:"temporaryPassword,raw" validate:"required"`
	NewPassword       string `form:"newPassword,raw" validate:"required,min=6"`
	ConfirmPassword   string `form:"confirmPassword,raw" validate:"eqfield=NewPassword"`
}

func (f ActivateJournalist) Activation() domain.JournalistActivation {
	return domain.JournalistActivation{
		Token:             f.Token,
		TemporaryPassword: f.TemporaryPassword,
		NewPassword:       f.NewPassword,
	}
}

type ResendActivation struct {
	Email string `form:"email" validate:"required,email"`
}
