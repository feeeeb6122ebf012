package transport

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	"github.com/creastat/streams/core"
)

// Send subscribes to source and forwards every notification to conn as a
// JSON envelope: one value frame per element, then a single complete or
// error frame. Write failures are logged and the remaining notifications
// dropped; they do not feed back into the stream. The returned
// subscription stops forwarding but does not close the conn.
func Send[T any](source core.Observable[T], conn *websocket.Conn, logger zerolog.Logger) core.Subscription {
	s := &sender{conn: conn, logger: logger}

	return source.Subscribe(core.NewObserver(
		func(v T) {
			payload, err := json.Marshal(v)
			if err != nil {
				s.logger.Error().Err(err).Msg("encode payload")
				return
			}
			s.write(Message{Type: MessageValue, Payload: payload})
		},
		func(err error) {
			s.write(Message{Type: MessageError, Error: err.Error()})
			s.logger.Debug().Err(err).Msg("stream failed, error frame sent")
		},
		func() {
			s.write(Message{Type: MessageComplete})
			s.logger.Debug().Msg("stream completed, complete frame sent")
		},
	))
}

// sender serializes envelopes onto one connection. Notifications of a
// single subscription arrive sequentially, so no locking is needed.
type sender struct {
	conn   *websocket.Conn
	logger zerolog.Logger
	seq    uint64
	broken bool
}

func (s *sender) write(msg Message) {
	if s.broken {
		return
	}
	s.seq++
	msg.Seq = s.seq
	msg.Timestamp = time.Now().UnixMilli()

	data, err := json.Marshal(msg)
	if err != nil {
		s.logger.Error().Err(err).Msg("encode envelope")
		return
	}
	if err := s.conn.WriteMessage(websocket.TextMessage, data); err != nil {
		s.logger.Error().Err(err).Uint64("seq", msg.Seq).Msg("write envelope")
		s.broken = true
		return
	}
	s.logger.Debug().Uint64("seq", msg.Seq).Str("type", string(msg.Type)).Msg("sent envelope")
}

// Receive adapts conn into a cold observable of decoded payloads. Each
// subscription reads frames until a terminal envelope or a read failure,
// decoding value payloads into T. The subscription owns the conn:
// disposing it closes the conn, which also interrupts a blocked read.
func Receive[T any](conn *websocket.Conn, logger zerolog.Logger) core.Observable[T] {
	return core.Create(func(downstream core.Observer[T]) core.Subscription {
		go func() {
			for {
				_, data, err := conn.ReadMessage()
				if err != nil {
					downstream.OnError(fmt.Errorf("read envelope: %w", err))
					return
				}

				var msg Message
				if err := json.Unmarshal(data, &msg); err != nil {
					downstream.OnError(fmt.Errorf("decode envelope: %w", err))
					return
				}

				switch msg.Type {
				case MessageValue:
					var v T
					if err := json.Unmarshal(msg.Payload, &v); err != nil {
						downstream.OnError(fmt.Errorf("decode payload: %w", err))
						return
					}
					downstream.OnNext(v)
				case MessageComplete:
					downstream.OnCompleted()
					return
				case MessageError:
					downstream.OnError(errors.New(msg.Error))
					return
				default:
					logger.Warn().Str("type", string(msg.Type)).Msg("dropping unknown envelope")
				}
			}
		}()

		return core.NewSubscription(func() {
			conn.Close()
		})
	})
}
