package pagehandler_test

import (
	"net/http"
	"net/url"
	"testing"

	"newsroom/pkg/domain"
	"newsroom/pkg/serrors"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestChangePassword_RevokesOtherSessions(t *testing.T) {
	s := visitor(domain.RoleReader)
	f := newFixture(t, s)
	f.news.EXPECT().ChangePassword(gomock.Any(), domain.PasswordChange{OldPassword: "old-pass", NewPassword: "new-pass"}).
		Return(nil)
	f.store.EXPECT().DeleteUserSessions(gomock.Any(), s.UserID, s.ID).Return(int64(2), nil)

	rec := f.post("/profile", url.Values{
		"currentPassword": {"old-pass"},
		"newPassword":     {"new-pass"},
		"confirmPassword": {"new-pass"},
	})
	requireRedirect(t, rec, "/profile")
}

func TestChangePassword_WrongCurrentPassword(t *testing.T) {
	f := newFixture(t, visitor(domain.RoleReader))
	f.news.EXPECT().ChangePassword(gomock.Any(), gomock.Any()).
		Return(serrors.With(serrors.ErrBadRequest, "Current password is incorrect."))

	rec := f.post("/profile", url.Values{
		"currentPassword": {"Wq7-current"},
		"newPassword":     {"Zq9-unique"},
		"confirmPassword": {"Zq9-unique"},
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Contains(t, rec.Body.String(), "Current password is incorrect.")
	require.NotContains(t, rec.Body.String(), "Zq9-unique")
	require.NotContains(t, rec.Body.String(), "Wq7-current")
}

func TestRegisterJournalist(t *testing.T) {
	f := newFixture(t, visitor(domain.RoleAdmin))
	f.news.EXPECT().RegisterJournalist(gomock.Any(), domain.Registration{
		FirstName: "Grace", LastName: "Hopper", Email: "grace@example.com",
	}).Return(nil)

	rec := f.post("/admin", url.Values{
		"firstName": {"Grace"},
		"lastName":  {"Hopper"},
		"email":     {"grace@example.com"},
	})
	requireRedirect(t, rec, "/admin")
}

func TestRegisterJournalist_Invalid(t *testing.T) {
	f := newFixture(t, visitor(domain.RoleAdmin))

	rec := f.post("/admin", url.Values{"firstName": {"Grace"}})
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	require.Contains(t, rec.Body.String(), "Last name is required")
}
