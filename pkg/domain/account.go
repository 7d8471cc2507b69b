package domain

// Account payloads sent to the auth endpoints.
type (
	Credentials struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	Registration struct {
		FirstName string `json:"firstName"`
		LastName  string `json:"lastName"`
		Email     string `json:"email"`
		Password  string `json:"password,omitempty"`
	}

	PasswordChange struct {
		OldPassword string `json:"oldPassword"`
		NewPassword string `json:"newPassword"`
	}

	PasswordReset struct {
		Token       string `json:"token"`
		NewPassword string `json:"newPassword"`
	}

	JournalistActivation struct {
		Token             string `json:"token"`
		TemporaryPassword string `json:"temporaryPassword"`
		NewPassword       string `json:"newPassword"`
	}
)
