package remote

import (
	"fmt"

	"github.com/pkg/errors"
)

type Kind int

const (
	// KindNetwork: unreachable endpoint, non-2xx status or a body that is not the JSON envelope.
	KindNetwork Kind = iota + 1
	// KindDomain: the endpoint answered with success != true.
	KindDomain
)

func (k Kind) String() string {
	switch k {
	case KindNetwork:
		return "network"
	case KindDomain:
		return "domain"
	}
	return "unknown"
}

// Error is returned by every Client call that fails. Payload keeps the raw
// response body for diagnostics.
type Error struct {
	Kind    Kind
	Action  string
	Status  int
	Message string
	Payload []byte
	Err     error
}

func (e *Error) Error() string {
	switch {
	case e.Message != "" && e.Err != nil:
		return fmt.Sprintf("%s %s: %s: %v", e.Action, e.Kind, e.Message, e.Err)
	case e.Message != "":
		return fmt.Sprintf("%s %s: %s", e.Action, e.Kind, e.Message)
	case e.Err != nil:
		return fmt.Sprintf("%s %s: %v", e.Action, e.Kind, e.Err)
	}
	return fmt.Sprintf("%s %s error", e.Action, e.Kind)
}

func (e *Error) Unwrap() error { return e.Err }

func IsNetwork(err error) bool {
	var re *Error
	return errors.As(err, &re) && re.Kind == KindNetwork
}

func IsDomain(err error) bool {
	var re *Error
	return errors.As(err, &re) && re.Kind == KindDomain
}

// UserMessage picks what to show for a failed call: the endpoint's own message
// for domain failures, fallback otherwise.
func UserMessage(err error, fallback string) string {
	var re *Error
	if errors.As(err, &re) && re.Kind == KindDomain && re.Message != "" {
		return re.Message
	}
	return fallback
}
