// Package events publishes graph mutations on a nanomsg PUB socket so other
// processes can follow changes to a served network.
package events

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/dd0wney/cluso-social/pkg/logging"
	"go.nanomsg.org/mangos/v3"
	"go.nanomsg.org/mangos/v3/protocol/pub"

	// Register transports
	_ "go.nanomsg.org/mangos/v3/transport/all"
)

// Topic prefixes every published message. NNG has no native topics, so
// subscribers filter on this prefix.
const Topic = "GRAPH:"

// DefaultBufferSize is the number of events queued before new ones are dropped.
const DefaultBufferSize = 256

// Event kinds
const (
	KindAddPerson        = "add_person"
	KindAddFriendship    = "add_friendship"
	KindRemoveFriendship = "remove_friendship"
)

// ErrClosed is returned when publishing after Close.
var ErrClosed = errors.New("publisher closed")

// Event is one graph mutation.
type Event struct {
	Seq      uint64    `json:"seq"`
	Kind     string    `json:"kind"`
	PersonID int       `json:"person_id,omitempty"`
	Friends  [2]int    `json:"friends,omitempty"`
	People   int       `json:"people"`
	Time     time.Time `json:"time"`
}

// Publisher streams events to every connected subscriber.
type Publisher struct {
	sock    mangos.Socket
	stream  chan Event
	stopCh  chan struct{}
	wg      sync.WaitGroup
	logger  logging.Logger
	seq     atomic.Uint64
	dropped atomic.Uint64

	closeOnce sync.Once
	closed    atomic.Bool
}

// NewPublisher binds a PUB socket to addr, e.g. "tcp://*:7070".
func NewPublisher(addr string, bufferSize int, logger logging.Logger) (*Publisher, error) {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	if bufferSize <= 0 {
		bufferSize = DefaultBufferSize
	}

	sock, err := pub.NewSocket()
	if err != nil {
		return nil, fmt.Errorf("failed to create PUB socket: %w", err)
	}
	if err := sock.Listen(addr); err != nil {
		sock.Close()
		return nil, fmt.Errorf("failed to bind PUB socket to %s: %w", addr, err)
	}

	p := &Publisher{
		sock:   sock,
		stream: make(chan Event, bufferSize),
		stopCh: make(chan struct{}),
		logger: logger.With(logging.Component("events")),
	}

	p.wg.Add(1)
	go p.run()

	p.logger.Info("event publisher bound", logging.String("addr", addr))
	return p, nil
}

// Publish queues e, stamping its sequence number and time. It never blocks:
// when the queue is full the event is dropped and counted.
func (p *Publisher) Publish(e Event) error {
	if p.closed.Load() {
		return ErrClosed
	}

	e.Seq = p.seq.Add(1)
	if e.Time.IsZero() {
		e.Time = time.Now().UTC()
	}

	select {
	case p.stream <- e:
		return nil
	default:
		p.dropped.Add(1)
		p.logger.Warn("event queue full, dropping event", logging.String("kind", e.Kind), logging.Int("seq", int(e.Seq)))
		return nil
	}
}

// Dropped returns how many events were discarded because the queue was full.
func (p *Publisher) Dropped() uint64 {
	return p.dropped.Load()
}

func (p *Publisher) run() {
	defer p.wg.Done()
	for {
		select {
		case <-p.stopCh:
			return
		case e := <-p.stream:
			msg, err := Encode(e)
			if err != nil {
				p.logger.Error("failed to marshal event", logging.Error(err))
				continue
			}
			if err := p.sock.Send(msg); err != nil {
				p.logger.Warn("failed to publish event", logging.Error(err))
			}
		}
	}
}

// Close stops the publisher and closes the socket. Queued events that were
// not yet sent are discarded.
func (p *Publisher) Close() error {
	var err error
	p.closeOnce.Do(func() {
		p.closed.Store(true)
		close(p.stopCh)
		p.wg.Wait()
		err = p.sock.Close()
	})
	return err
}

// Encode renders e as a topic-prefixed JSON message.
func Encode(e Event) ([]byte, error) {
	data, err := json.Marshal(e)
	if err != nil {
		return nil, err
	}
	return append([]byte(Topic), data...), nil
}

// Decode parses a message produced by Encode.
func Decode(msg []byte) (Event, error) {
	var e Event
	data, ok := bytes.CutPrefix(msg, []byte(Topic))
	if !ok {
		return e, fmt.Errorf("message missing %q topic", Topic)
	}
	if err := json.Unmarshal(data, &e); err != nil {
		return e, fmt.Errorf("decode event: %w", err)
	}
	return e, nil
}
