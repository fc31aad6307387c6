package validation

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/hikekeeper/internal/common"
)

func problems(t *testing.T, err error) []string {
	t.Helper()
	var ve *Error
	require.True(t, errors.As(err, &ve), "expected *validation.Error, got %v", err)
	return ve.Problems
}

func ptr[T any](v T) *T { return &v }

func TestRegistration(t *testing.T) {
	tests := []struct {
		name     string
		userName string
		password string
		want     []string
	}{
		{name: "ok", userName: "hiker", password: "secret1"},
		{name: "both missing", want: []string{
			"userName and password required.",
			"userName needs to be at least 3 characters.",
			"Password needs to be at least 6 characters.",
		}},
		{name: "short name", userName: " ab ", password: "secret1", want: []string{
			"userName needs to be at least 3 characters.",
		}},
		{name: "blank padded password", userName: "hiker", password: "  abc   ", want: []string{
			"Password needs to be at least 6 characters.",
		}},
		{name: "password at bcrypt limit", userName: "hiker", password: strings.Repeat("p", MaxPasswordBytes)},
		{name: "password over bcrypt limit", userName: "hiker", password: strings.Repeat("p", 80), want: []string{
			"Password must be at most 72 bytes.",
		}},
		{name: "multibyte password counted in bytes", userName: "hiker", password: strings.Repeat("密", 25), want: []string{
			"Password must be at most 72 bytes.",
		}},
		{name: "multibyte name counted in runes", userName: "ÅÄÖ", password: "secret1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Registration(tt.userName, tt.password)
			if tt.want == nil {
				require.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, common.ErrValidation)
			assert.Equal(t, tt.want, problems(t, err))
		})
	}
}

func TestLogin(t *testing.T) {
	require.NoError(t, Login("hiker", "x"))

	assert.Equal(t, []string{"userName is required.", "Password is required."}, problems(t, Login("", "")))
	assert.Equal(t, []string{"userName must be at least 3 characters."}, problems(t, Login("ab", "pw")))
	assert.Equal(t, []string{"Password cannot be empty."}, problems(t, Login("hiker", "   ")))
}

func TestProfile(t *testing.T) {
	require.NoError(t, Profile(ProfileUpdate{Password: ptr("")}))
	require.NoError(t, Profile(ProfileUpdate{HeightFeet: ptr(5.0), HeightInches: ptr(11.0), Weight: ptr(70.5)}))

	assert.Equal(t, []string{"At least one field must be provided to update."}, problems(t, Profile(ProfileUpdate{})))
	assert.Equal(t, []string{"Password must be at least 6 characters."}, problems(t, Profile(ProfileUpdate{Password: ptr("abc")})))
	assert.Equal(t, []string{"Password must be at most 72 bytes."}, problems(t, Profile(ProfileUpdate{Password: ptr(strings.Repeat("p", 80))})))
	assert.Equal(t, []string{"Height must be a valid number.", "Weight must be a valid number."},
		problems(t, Profile(ProfileUpdate{HeightFeet: ptr(-1.0), HeightInches: ptr(-2.0), Weight: ptr(-3.0)})))
}

func TestLogin_LongPasswordAccepted(t *testing.T) {
	require.NoError(t, Login("hiker", strings.Repeat("p", 80)))
}

func TestValidatorRejectsNonStruct(t *testing.T) {
	err := check("not a form", messages{})
	require.Error(t, err)
	assert.NotErrorIs(t, err, common.ErrValidation)
}

func TestError_Message(t *testing.T) {
	err := &Error{Problems: []string{"a", "b"}}
	assert.Equal(t, "validation error: a; b", err.Error())
}
