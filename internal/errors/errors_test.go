package errors_test

import (
	"context"
	stderrors "errors"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/suite"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/KirkDiggler/brainmon-api/internal/errors"
)

type ErrorsTestSuite struct {
	suite.Suite
}

func TestErrorsSuite(t *testing.T) {
	suite.Run(t, new(ErrorsTestSuite))
}

func (s *ErrorsTestSuite) TestNewError() {
	testCases := []struct {
		name     string
		code     errors.Code
		message  string
		expected string
	}{
		{
			name:     "not found error",
			code:     errors.CodeNotFound,
			message:  "monster not found",
			expected: "NOT_FOUND: monster not found",
		},
		{
			name:     "invalid argument error",
			code:     errors.CodeInvalidArgument,
			message:  "name is blank",
			expected: "INVALID_ARGUMENT: name is blank",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			err := errors.New(tc.code, tc.message)
			s.Equal(tc.expected, err.Error())
			s.Equal(tc.code, err.Code)
			s.Equal(tc.message, err.Message)
		})
	}
}

func (s *ErrorsTestSuite) TestWrapPreservesCode() {
	base := errors.NotFoundf("monster %d not found", 7).WithMeta("monster_id", 7)
	wrapped := errors.Wrap(base, "failed to rename monster")

	s.True(errors.IsNotFound(wrapped))
	s.Equal("failed to rename monster", errors.GetMessage(wrapped))
	s.Equal(7, errors.GetMeta(wrapped)["monster_id"])
	s.True(errors.Is(wrapped, errors.NotFound("")))
}

func (s *ErrorsTestSuite) TestWrapPlainError() {
	wrapped := errors.Wrap(stderrors.New("connection refused"), "failed to list monsters")

	s.True(errors.IsInternal(wrapped))
	s.Contains(wrapped.Error(), "connection refused")
	s.Nil(errors.Wrap(nil, "nothing"))
}

func (s *ErrorsTestSuite) TestWrapWithCode() {
	wrapped := errors.WrapWithCode(stderrors.New("timeout"), errors.CodeUnavailable, "pokeapi unreachable")

	s.True(errors.IsUnavailable(wrapped))
	s.Equal(errors.CodeOK, errors.GetCode(nil))
}

func (s *ErrorsTestSuite) TestGRPCRoundTrip() {
	err := errors.FailedPrecondition("no active question").WithMeta("encounter_id", "enc_1")

	grpcErr := errors.ToGRPCError(err)
	st, ok := status.FromError(grpcErr)
	s.Require().True(ok)
	s.Equal(codes.FailedPrecondition, st.Code())
	s.Equal("no active question", st.Message())

	back := errors.FromGRPCError(grpcErr)
	s.True(errors.IsFailedPrecondition(back))
	s.Equal("enc_1", errors.GetMeta(back)["encounter_id"])
}

func (s *ErrorsTestSuite) TestToGRPCErrorPlain() {
	st, ok := status.FromError(errors.ToGRPCError(stderrors.New("boom")))
	s.Require().True(ok)
	s.Equal(codes.Internal, st.Code())
	s.NoError(errors.ToGRPCError(nil))
}

func (s *ErrorsTestSuite) TestToGRPCErrorContext() {
	st, ok := status.FromError(errors.ToGRPCError(errors.Wrap(context.Canceled, "wait interrupted")))
	s.Require().True(ok)
	s.Equal(codes.Canceled, st.Code())

	st, ok = status.FromError(errors.ToGRPCError(context.DeadlineExceeded))
	s.Require().True(ok)
	s.Equal(codes.DeadlineExceeded, st.Code())
}

func (s *ErrorsTestSuite) TestValidationBuilder() {
	vb := errors.NewValidationBuilder()
	vb.RequiredField("Repository").
		Fieldf("DeleteDelay", "must be at least %d", 0)

	err := vb.Build()
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
	s.Contains(err.Error(), "DeleteDelay: must be at least 0")
	s.Contains(err.Error(), "Repository: is required")

	s.NoError(errors.NewValidationBuilder().Build())
}

func (s *ErrorsTestSuite) TestValidationBuilderStruct() {
	type nickname struct {
		Name string `validate:"required,max=5"`
	}
	v := validator.New()

	err := errors.NewValidationBuilder().Struct(v, nickname{Name: "Sparkyboi"}).Build()
	s.Require().Error(err)
	s.Contains(err.Error(), "nickname.Name: failed max=5")

	s.NoError(errors.NewValidationBuilder().Struct(v, nickname{Name: "Zap"}).Build())
}
