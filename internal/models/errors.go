// -----------------------------------------------------------------------------
// Domain Errors
// -----------------------------------------------------------------------------
// Every failure the engine surfaces is one of these sentinels, possibly
// wrapped with detail via fmt.Errorf("%w: ..."). Callers branch with
// errors.Is; the HTTP layer maps kinds to status codes.
// -----------------------------------------------------------------------------

package models

// ErrorKind groups domain errors into the classes the transport layer
// cares about.
type ErrorKind string

const (
	KindNotFound     ErrorKind = "not_found"
	KindConflict     ErrorKind = "conflict"
	KindValidation   ErrorKind = "validation"
	KindCapacity     ErrorKind = "capacity"
	KindUnauthorized ErrorKind = "unauthorized"
)

// AppError is a typed, recoverable domain error.
type AppError struct {
	Kind    ErrorKind
	Code    string
	Message string
}

func (e *AppError) Error() string {
	return e.Message
}

var (
	ErrTrainNotFound = &AppError{Kind: KindNotFound, Code: "TRAIN_NOT_FOUND", Message: "train not found"}
	ErrSeatNotFound  = &AppError{Kind: KindNotFound, Code: "SEAT_NOT_FOUND", Message: "seat not found"}
	ErrUserNotFound  = &AppError{Kind: KindNotFound, Code: "USER_NOT_FOUND", Message: "user not found"}

	ErrDuplicateTrain = &AppError{Kind: KindConflict, Code: "DUPLICATE_TRAIN", Message: "train already exists"}
	ErrDuplicateUser  = &AppError{Kind: KindConflict, Code: "DUPLICATE_USER", Message: "username already taken"}
	ErrAlreadyBooked  = &AppError{Kind: KindConflict, Code: "ALREADY_BOOKED", Message: "seat is already booked"}

	ErrInvalidPassenger = &AppError{Kind: KindValidation, Code: "INVALID_PASSENGER", Message: "invalid passenger details"}
	ErrInvalidTrain     = &AppError{Kind: KindValidation, Code: "INVALID_TRAIN", Message: "invalid train details"}
	ErrInvalidCategory  = &AppError{Kind: KindValidation, Code: "INVALID_CATEGORY", Message: "unknown seat category"}
	ErrInvalidUser      = &AppError{Kind: KindValidation, Code: "INVALID_USER", Message: "invalid user details"}

	ErrNoAvailableSeat = &AppError{Kind: KindCapacity, Code: "NO_AVAILABLE_SEAT", Message: "no available seat of requested category"}

	ErrInvalidCredentials = &AppError{Kind: KindUnauthorized, Code: "INVALID_CREDENTIALS", Message: "invalid username or password"}
)
