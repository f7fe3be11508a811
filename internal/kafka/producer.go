package kafka

import (
	"context"
	"time"

	"github.com/ariefcatur/stockfront/internal/orders"
	"github.com/segmentio/kafka-go"
	"github.com/sirupsen/logrus"
)

// Producer menulis envelope aktivitas lewat satu goroutine. Publish hanya
// enqueue ke inbox; kalau inbox penuh event dibuang supaya UI tidak pernah nunggu broker.
type Producer struct {
	w       *kafka.Writer
	log     *logrus.Entry
	inbox   chan kafka.Message
	closeCh chan struct{}
}

var _ orders.Publisher = (*Producer)(nil)

func NewProducer(brokers []string, topic string, buf int, log *logrus.Entry) *Producer {
	if buf <= 0 {
		buf = 256
	}
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}
	return newProducer(&kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireAll,
		BatchTimeout: 50 * time.Millisecond,
	}, buf, log)
}

func newProducer(w *kafka.Writer, buf int, log *logrus.Entry) *Producer {
	return &Producer{
		w:       w,
		log:     log.WithField("component", "kafka"),
		inbox:   make(chan kafka.Message, buf),
		closeCh: make(chan struct{}),
	}
}

func (p *Producer) Start(ctx context.Context) {
	go func() {
		defer close(p.closeCh)
		for {
			select {
			case <-ctx.Done():
				p.drain()
				return
			case m, ok := <-p.inbox:
				if !ok {
					p.finish()
					return
				}
				p.write(m)
			}
		}
	}()
}

// drain flush sisa pesan yang sudah di-enqueue lalu tutup writer.
func (p *Producer) drain() {
	for {
		select {
		case m, ok := <-p.inbox:
			if !ok {
				p.finish()
				return
			}
			p.write(m)
		default:
			p.finish()
			return
		}
	}
}

func (p *Producer) finish() {
	if err := p.w.Close(); err != nil {
		p.log.WithError(err).Warn("kafka writer close")
	}
}

func (p *Producer) write(m kafka.Message) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := p.w.WriteMessages(ctx, m); err != nil {
		p.log.WithError(err).WithField("key", string(m.Key)).Warn("kafka publish failed")
	}
}

func (p *Producer) Publish(env orders.Envelope) {
	m := kafka.Message{
		Key:   orders.PartitionKey(env.CorrelationID),
		Value: MustMarshal(env),
		Time:  env.OccurredAt,
		Headers: []kafka.Header{
			{Key: "x-event-type", Value: []byte(env.EventType)},
			{Key: "x-event-version", Value: []byte("1")},
		},
	}
	select {
	case p.inbox <- m:
	default:
		p.log.WithField("event_type", env.EventType).Warn("kafka inbox full, event dropped")
	}
}

// Tutup channel supaya goroutine nge-flush sisa pesan lalu exit rapi.
func (p *Producer) Close() { close(p.inbox) }

// Tunggu sampai goroutine selesai.
func (p *Producer) WaitClosed() { <-p.closeCh }
