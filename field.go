package arn

// Maximum lengths, in bytes, for the bounded ARN fields.
const (
	MaxServiceLen    = 32
	MaxAccountLen    = 12
	MaxResourceIDLen = 64
)

// ServiceName is an AWS service namespace such as "s3" or "lambda",
// at most MaxServiceLen bytes.
type ServiceName string

// ParseServiceName validates and converts a string to a ServiceName.
// Any content is accepted; only the length is checked.
func ParseServiceName(s string) (ServiceName, error) {
	if len(s) > MaxServiceLen {
		return "", ErrServiceTooLong
	}
	return ServiceName(s), nil
}

func (s ServiceName) String() string { return string(s) }

// AccountID is a 12-digit AWS account number, at most MaxAccountLen
// bytes. Content beyond the length cap is not validated: account
// segments like "aws" (service-linked principals) are legal.
type AccountID string

// ParseAccountID validates and converts a string to an AccountID.
func ParseAccountID(s string) (AccountID, error) {
	if len(s) > MaxAccountLen {
		return "", ErrAccountTooLong
	}
	return AccountID(s), nil
}

func (a AccountID) String() string { return string(a) }

// ResourceID is the trailing resource portion of an ARN, at most
// MaxResourceIDLen bytes. It may contain separators of its own, e.g.
// "function:my-function:$LATEST" or "role/my-role".
type ResourceID string

// ParseResourceID validates and converts a string to a ResourceID.
func ParseResourceID(s string) (ResourceID, error) {
	if len(s) > MaxResourceIDLen {
		return "", ErrResourceIDTooLong
	}
	return ResourceID(s), nil
}

func (r ResourceID) String() string { return string(r) }
