package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"holidaze/models"
	"holidaze/models/profile"
)

func validRegisterForm() models.RegisterForm {
	return models.RegisterForm{
		Name:            "ola_guest",
		Email:           "ola_guest@stud.noroff.no",
		Password:        "secret1",
		ConfirmPassword: "secret1",
	}
}

func TestRegister(t *testing.T) {
	as, _ := newTestAuthService(newFakeAPI())

	p, err := as.Register(context.Background(), validRegisterForm())

	require.NoError(t, err)
	assert.Equal(t, "ola_guest", p.Name)
}

func TestRegister_Validation(t *testing.T) {
	as, _ := newTestAuthService(newFakeAPI())

	tests := []struct {
		name    string
		mutate  func(f *models.RegisterForm)
		message string
	}{
		{"wrong domain", func(f *models.RegisterForm) { f.Email = "ola@gmail.com" }, "Email must end with @stud.noroff.no"},
		{"short password", func(f *models.RegisterForm) { f.Password, f.ConfirmPassword = "abc", "abc" }, "Password too short"},
		{"mismatch", func(f *models.RegisterForm) { f.ConfirmPassword = "secret2" }, "Passwords must match"},
		{"no name", func(f *models.RegisterForm) { f.Name = "" }, "Name is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := validRegisterForm()
			tt.mutate(&form)

			_, err := as.Register(context.Background(), form)

			var ve *models.ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, tt.message, ve.Message)
		})
	}
}

func TestLogin_CreatesSession(t *testing.T) {
	as, dao := newTestAuthService(newFakeAPI())
	ctx := context.Background()

	sess, err := as.Login(ctx, models.LoginForm{Email: "ola_guest@stud.noroff.no", Password: "secret1"})

	require.NoError(t, err)
	assert.Equal(t, "ola_guest", sess.UserName)
	assert.Equal(t, "mock-access-token", sess.Token)

	stored, err := dao.Get(ctx, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, sess.Token, stored.Token)

	resolved, err := as.Resolve(ctx, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, "ola_guest", resolved.UserName)

	n, err := as.ActiveSessions(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestLogin_IncompleteResponse(t *testing.T) {
	fake := newFakeAPI()
	as, _ := newTestAuthService(fake)
	form := models.LoginForm{Email: "ola_guest@stud.noroff.no", Password: "secret1"}

	fake.creds = &profile.Credentials{Name: "ola_guest"}
	_, err := as.Login(context.Background(), form)
	assert.ErrorIs(t, err, models.ErrMissingToken)

	fake.creds = &profile.Credentials{AccessToken: "tok"}
	_, err = as.Login(context.Background(), form)
	assert.ErrorIs(t, err, models.ErrMissingUserName)
}

func TestLogin_RemoteFailure(t *testing.T) {
	fake := newFakeAPI()
	fake.loginErr = models.ErrUnauthenticated
	as, _ := newTestAuthService(fake)

	_, err := as.Login(context.Background(), models.LoginForm{Email: "ola_guest@stud.noroff.no", Password: "wrong"})

	assert.True(t, IsAuthError(err))
}

func TestLogout(t *testing.T) {
	as, _ := newTestAuthService(newFakeAPI())
	ctx := context.Background()
	sess, err := as.Login(ctx, models.LoginForm{Email: "ola_guest@stud.noroff.no", Password: "secret1"})
	require.NoError(t, err)

	require.NoError(t, as.Logout(ctx, sess.ID))

	_, err = as.Resolve(ctx, sess.ID)
	assert.ErrorIs(t, err, models.ErrSessionNotFound)
	assert.NoError(t, as.Logout(ctx, ""))
}

func TestResolve_Expired(t *testing.T) {
	as, _ := newTestAuthService(newFakeAPI())
	ctx := context.Background()
	now := time.Now()
	as.now = func() time.Time { return now }

	sess, err := as.Login(ctx, models.LoginForm{Email: "ola_guest@stud.noroff.no", Password: "secret1"})
	require.NoError(t, err)

	now = now.Add(2 * time.Hour)

	_, err = as.Resolve(ctx, sess.ID)
	assert.ErrorIs(t, err, models.ErrSessionNotFound)
	assert.ErrorIs(t, as.Refresh(ctx, sess), models.ErrSessionNotFound)
}
