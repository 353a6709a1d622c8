package errors

import (
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
)

// ToGRPCError converts an error to a gRPC status error. Context cancellation
// and deadlines keep their own codes. Metadata that can be
// represented as a protobuf Struct is attached as a status detail.
func ToGRPCError(err error) error {
	if err == nil {
		return nil
	}

	if _, ok := status.FromError(err); ok {
		return err
	}

	if st := status.FromContextError(err); st.Code() != codes.Unknown {
		return st.Err()
	}

	var customErr *Error
	if !As(err, &customErr) {
		return status.Error(codes.Internal, err.Error())
	}

	st := status.New(customErr.Code.GRPCCode(), customErr.Message)
	if len(customErr.Meta) > 0 {
		if details, detailErr := structpb.NewStruct(flattenMeta(customErr.Meta)); detailErr == nil {
			if withDetails, wdErr := st.WithDetails(details); wdErr == nil {
				st = withDetails
			}
		}
	}

	return st.Err()
}

// FromGRPCError converts a gRPC status error back into an *Error
func FromGRPCError(err error) error {
	if err == nil {
		return nil
	}

	st, ok := status.FromError(err)
	if !ok {
		return err
	}

	customErr := &Error{
		Code:    codeFromGRPC(st.Code()),
		Message: st.Message(),
	}

	for _, detail := range st.Details() {
		if s, ok := detail.(*structpb.Struct); ok {
			customErr.Meta = s.AsMap()
			break
		}
	}

	return customErr
}

// flattenMeta converts metadata values that structpb cannot encode
func flattenMeta(meta map[string]any) map[string]any {
	out := make(map[string]any, len(meta))
	for k, v := range meta {
		switch val := v.(type) {
		case map[string][]string:
			fields := make(map[string]any, len(val))
			for field, msgs := range val {
				list := make([]any, len(msgs))
				for i, m := range msgs {
					list[i] = m
				}
				fields[field] = list
			}
			out[k] = fields
		case int:
			out[k] = float64(val)
		case int64:
			out[k] = float64(val)
		default:
			out[k] = val
		}
	}
	return out
}
