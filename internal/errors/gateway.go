package errors

var (
	ErrNotOwner = &DomainError{
		Code:    "NOT_OWNER",
		Message: "caller is not the operator",
	}
	ErrInsufficientBalance = &DomainError{
		Code:    "INSUFFICIENT_BALANCE",
		Message: "insufficient balance",
	}
	ErrPaymentNotFound = &DomainError{
		Code:    "PAYMENT_NOT_FOUND",
		Message: "payment not found",
	}
	ErrAlreadyProcessed = &DomainError{
		Code:    "ALREADY_PROCESSED",
		Message: "payment is no longer pending",
	}
	ErrInvalidAmount = &DomainError{
		Code:    "INVALID_AMOUNT",
		Message: "invalid amount",
	}
	ErrInvalidName = &DomainError{
		Code:    "INVALID_NAME",
		Message: "merchant name exceeds the allowed length",
	}
	ErrInvalidProductID = &DomainError{
		Code:    "INVALID_PRODUCT_ID",
		Message: "product id exceeds the allowed length",
	}
	ErrMerchantNotRegistered = &DomainError{
		Code:    "MERCHANT_NOT_REGISTERED",
		Message: "merchant is not registered or inactive",
	}
	ErrMerchantNotFound = &DomainError{
		Code:    "MERCHANT_NOT_FOUND",
		Message: "merchant not found",
	}
	ErrUnauthorized = &DomainError{
		Code:    "UNAUTHORIZED",
		Message: "caller is not authorized for this payment",
	}
	ErrInvalidStatus = &DomainError{
		Code:    "INVALID_STATUS",
		Message: "payment status does not allow this operation",
	}
	ErrInvalidRate = &DomainError{
		Code:    "INVALID_RATE",
		Message: "fee rate exceeds the allowed maximum",
	}
	ErrIndexOverflow = &DomainError{
		Code:    "INDEX_OVERFLOW",
		Message: "customer payment index is full",
	}
	// ErrVolumeUnderflow signals a broken bookkeeping invariant: a refund
	// tried to subtract more volume than the merchant ever settled. Not
	// reachable through the public operations.
	ErrVolumeUnderflow = &DomainError{
		Code:    "VOLUME_UNDERFLOW",
		Message: "merchant volume would go negative",
	}
)
