package kafka

import (
	"context"
	"encoding/json"

	"github.com/ariefcatur/stockfront/internal/orders"
	"github.com/pkg/errors"
	"github.com/segmentio/kafka-go"
	"github.com/sirupsen/logrus"
)

func MustMarshal(v any) []byte {
	b, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return b
}

func UnmarshalEnvelope(b []byte) (orders.Envelope, error) {
	var env orders.Envelope
	if err := json.Unmarshal(b, &env); err != nil {
		return env, errors.Wrap(err, "decode envelope")
	}
	return env, nil
}

// Unwrap memudahkan decode payload spesifik
func UnwrapPayload[T any](payload json.RawMessage) (T, error) {
	var t T
	if err := json.Unmarshal(payload, &t); err != nil {
		return t, errors.Wrap(err, "decode payload")
	}
	return t, nil
}

// LogHandler menulis setiap envelope aktivitas ke log. Pesan rusak di-skip
// (return nil) supaya offset tetap maju.
func LogHandler(log *logrus.Entry) Handler {
	return func(_ context.Context, m kafka.Message) error {
		env, err := UnmarshalEnvelope(m.Value)
		if err != nil {
			log.WithError(err).WithField("offset", m.Offset).Warn("skip malformed event")
			return nil
		}
		log.WithFields(Fields(env)).Info(env.EventType)
		return nil
	}
}

// Fields meratakan envelope plus payload-nya untuk logging.
func Fields(env orders.Envelope) logrus.Fields {
	f := logrus.Fields{
		"event_id":    env.EventID,
		"event_type":  env.EventType,
		"occurred_at": env.OccurredAt,
		"producer":    env.Producer,
	}
	if env.Actor != "" {
		f["actor"] = env.Actor
	}
	if env.CorrelationID != "" {
		f["correlation_id"] = env.CorrelationID
	}
	if payload, err := UnwrapPayload[map[string]any](env.Payload); err == nil {
		for k, v := range payload {
			f["payload."+k] = v
		}
	}
	return f
}
