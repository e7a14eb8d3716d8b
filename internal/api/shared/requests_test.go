package shared

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type decodeTarget struct {
	Name string `json:"name"`
	Age  int    `json:"age"`
}

func TestDecodeJSON(t *testing.T) {
	tests := []struct {
		name        string
		requestBody string
		wantErr     error
		errContains string
	}{
		{name: "valid json", requestBody: `{"name": "test", "age": 30}`},
		{name: "unknown fields ignored", requestBody: `{"name": "test", "extra": true}`},
		{
			name:        "invalid json",
			requestBody: `{"name": "test", "age": 30,}`, // trailing comma
			wantErr:     ErrInvalidJSON,
			errContains: "invalid character",
		},
		{
			name:        "wrong type",
			requestBody: `{"age": "thirty"}`,
			wantErr:     ErrInvalidJSON,
		},
		{name: "empty body", requestBody: "", wantErr: ErrEmptyBody},
		{
			name:        "trailing data",
			requestBody: `{"name": "a"}{"name": "b"}`,
			wantErr:     ErrInvalidJSON,
			errContains: "unexpected data",
		},
		{
			name:        "too large",
			requestBody: `{"name": "` + strings.Repeat("x", int(MaxBodyBytes)) + `"}`,
			wantErr:     ErrInvalidJSON,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/test", strings.NewReader(tc.requestBody))
			w := httptest.NewRecorder()

			var target decodeTarget
			err := DecodeJSON(w, req, &target)

			if tc.wantErr == nil {
				require.NoError(t, err)
				assert.Equal(t, "test", target.Name)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, tc.wantErr)
			if tc.errContains != "" {
				assert.Contains(t, err.Error(), tc.errContains)
			}
		})
	}
}

func TestDecodeJSON_NoBody(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/test", http.NoBody)
	err := DecodeJSON(httptest.NewRecorder(), req, &decodeTarget{})
	assert.ErrorIs(t, err, ErrEmptyBody)
	assert.ErrorIs(t, err, ErrInvalidJSON)
}

type signupRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

type selfChecking struct {
	Value string `json:"value" validate:"required"`
}

var errSelfCheck = errors.New("value must not be reserved")

func (s selfChecking) Validate() error {
	if s.Value == "reserved" {
		return errSelfCheck
	}
	return nil
}

func TestValidateRequest(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		assert.NoError(t, ValidateRequest(&signupRequest{Email: "a@b.co", Password: "password1"}))
	})

	t.Run("reports json field names", func(t *testing.T) {
		err := ValidateRequest(&signupRequest{Email: "nope", Password: "short"})
		require.Error(t, err)

		var fieldErrs validator.ValidationErrors
		require.True(t, errors.As(err, &fieldErrs))
		fields := make([]string, 0, len(fieldErrs))
		for _, fe := range fieldErrs {
			fields = append(fields, fe.Field())
		}
		assert.ElementsMatch(t, []string{"email", "password"}, fields)
	})

	t.Run("struct tags run before Validate method", func(t *testing.T) {
		var fieldErrs validator.ValidationErrors
		assert.True(t, errors.As(ValidateRequest(&selfChecking{}), &fieldErrs))
		assert.ErrorIs(t, ValidateRequest(&selfChecking{Value: "reserved"}), errSelfCheck)
		assert.NoError(t, ValidateRequest(&selfChecking{Value: "fine"}))
	})
}

func TestDecodeAndValidate(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/signup", strings.NewReader(`{"email":"x@y.io","password":"p"}`))
	err := DecodeAndValidate(httptest.NewRecorder(), req, &signupRequest{})

	var fieldErrs validator.ValidationErrors
	require.True(t, errors.As(err, &fieldErrs))
	assert.Equal(t, "password", fieldErrs[0].Field())
}

func TestBearerToken(t *testing.T) {
	tests := []struct {
		header string
		token  string
		ok     bool
	}{
		{"Bearer abc.def.ghi", "abc.def.ghi", true},
		{"bearer abc", "abc", true},
		{"Bearer ", "", false},
		{"Basic dXNlcjpwYXNz", "", false},
		{"abc", "", false},
		{"", "", false},
	}

	for _, tc := range tests {
		t.Run(tc.header, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			token, ok := BearerToken(req)
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.token, token)
		})
	}
}
