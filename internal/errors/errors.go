package gerr

import (
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

var (
	StoreNotFound   = status.Error(codes.NotFound, "store not found")
	ProductNotFound = status.Error(codes.NotFound, "product not found")
	OrderNotFound   = status.Error(codes.NotFound, "order not found")
	VisitNotFound   = status.Error(codes.NotFound, "visit not found")
	RepNotFound     = status.Error(codes.NotFound, "rep not found")

	ProductUnavailable = status.Error(codes.FailedPrecondition, "product is not available")
	NothingToClaim     = status.Error(codes.FailedPrecondition, "no pending reward to claim")
	NothingToUndo      = status.Error(codes.FailedPrecondition, "no reward claim to undo")
	VisitOtherStore    = status.Error(codes.FailedPrecondition, "visit belongs to another store")

	RepAlreadyExists    = status.Error(codes.AlreadyExists, "rep already exists")
	NotAuthenticated    = status.Error(codes.Unauthenticated, "not authenticated")
	TooManyRequests     = status.Error(codes.ResourceExhausted, "too many requests")
	BadMailRequest      = status.Error(codes.DataLoss, "bad mail request")
	MailApiLimitReached = status.Error(codes.ResourceExhausted, "mail api limit reached")
	UploadsDisabled     = status.Error(codes.Unimplemented, "image uploads are not configured")
)

// InvalidArgument returns an InvalidArgument status error with the given message.
func InvalidArgument(format string, args ...any) error {
	return status.Errorf(codes.InvalidArgument, format, args...)
}

// Internal returns an Internal status error with the given message.
func Internal(format string, args ...any) error {
	return status.Errorf(codes.Internal, format, args...)
}
