package orders

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Publisher menerima event aktivitas. Publish tidak boleh blocking karena
// dipanggil dari goroutine UI.
type Publisher interface {
	Publish(env Envelope)
}

type NopPublisher struct{}

func (NopPublisher) Publish(Envelope) {}

func NewEnvelope(eventType, producer, actor, correlationID string, payload any) (Envelope, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return Envelope{}, errors.Wrapf(err, "marshal %s payload", eventType)
	}
	return Envelope{
		EventID:       uuid.NewString(),
		EventType:     eventType,
		EventVersion:  1,
		OccurredAt:    time.Now().UTC(),
		Producer:      producer,
		Actor:         actor,
		CorrelationID: correlationID,
		Payload:       b,
	}, nil
}

// Emit membangun envelope lalu publish. Payload yang gagal di-marshal tidak
// dipublish; error-nya dikembalikan supaya pemanggil bisa log.
func Emit(p Publisher, eventType, producer, actor, correlationID string, payload any) error {
	if p == nil {
		return nil
	}
	env, err := NewEnvelope(eventType, producer, actor, correlationID, payload)
	if err != nil {
		return err
	}
	p.Publish(env)
	return nil
}
