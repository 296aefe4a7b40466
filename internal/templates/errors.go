package templates

import (
	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// internalError logs a failed data-access call and converts it to the single
// status every operation reports: codes.Internal with the error text as detail.
func (s *Service) internalError(operation string, err error) error {
	s.logger.Error("Error in "+operation,
		zap.String("operation", operation),
		zap.Error(err))
	return status.Error(codes.Internal, err.Error())
}
