package errors_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/echosheet/internal/errors"
)

type ValidationTestSuite struct {
	suite.Suite
}

func TestValidationSuite(t *testing.T) {
	suite.Run(t, new(ValidationTestSuite))
}

func (s *ValidationTestSuite) TestValidationError() {
	ve := &errors.ValidationError{Fields: map[string][]string{}}
	ve.AddFieldError("skills", "choose 2 more")
	ve.AddFieldError("attributes", "spend all points")

	s.Assert().True(ve.HasErrors())
	s.Assert().Equal("validation failed: attributes: spend all points; skills: choose 2 more", ve.Error())

	err := ve.ToError()
	s.Assert().Equal(errors.CodeInvalidArgument, err.Code)
	s.Assert().Equal(ve.Fields, errors.FieldErrors(err))
}

func (s *ValidationTestSuite) TestValidationBuilder() {
	vb := errors.NewValidationBuilder()
	vb.Field("name", "is required").
		Fieldf("level", "must be between %d and %d", 1, 20).
		RequiredField("class")

	err := vb.Build()
	s.Require().Error(err)
	s.Assert().True(errors.IsInvalidArgument(err))
	s.Assert().Len(errors.FieldErrors(err), 3)
}

func (s *ValidationTestSuite) TestValidationBuilderNoErrors() {
	s.Assert().NoError(errors.NewValidationBuilder().Build())
	s.Assert().Nil(errors.FieldErrors(nil))
}

func (s *ValidationTestSuite) TestHelpers() {
	testCases := []struct {
		name    string
		apply   func(vb *errors.ValidationBuilder)
		wantErr bool
	}{
		{
			name:    "blank required",
			apply:   func(vb *errors.ValidationBuilder) { errors.ValidateRequired("name", "   ", vb) },
			wantErr: true,
		},
		{
			name:    "present required",
			apply:   func(vb *errors.ValidationBuilder) { errors.ValidateRequired("name", "Mira", vb) },
			wantErr: false,
		},
		{
			name:    "max length counts runes",
			apply:   func(vb *errors.ValidationBuilder) { errors.ValidateMaxLength("name", "ÁÉÍ", 3, vb) },
			wantErr: false,
		},
		{
			name:    "too long",
			apply:   func(vb *errors.ValidationBuilder) { errors.ValidateMaxLength("name", "abcd", 3, vb) },
			wantErr: true,
		},
		{
			name:    "range low",
			apply:   func(vb *errors.ValidationBuilder) { errors.ValidateRange("level", 0, 1, 20, vb) },
			wantErr: true,
		},
		{
			name:    "range inside",
			apply:   func(vb *errors.ValidationBuilder) { errors.ValidateRange("level", 20, 1, 20, vb) },
			wantErr: false,
		},
		{
			name:    "enum miss",
			apply:   func(vb *errors.ValidationBuilder) { errors.ValidateEnum("race", "Orc", []string{"Elf"}, vb) },
			wantErr: true,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			vb := errors.NewValidationBuilder()
			tc.apply(vb)
			if tc.wantErr {
				s.Assert().Error(vb.Build())
			} else {
				s.Assert().NoError(vb.Build())
			}
		})
	}
}
