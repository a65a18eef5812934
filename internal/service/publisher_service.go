package service

import (
	"context"
	"encoding/json"

	"notes-be/pkg/events"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type IPublisherService interface {
	Publish(ctx context.Context, evt events.Event) error
}

type publisherService struct {
	topicName string
	pubSub    *gochannel.GoChannel
}

func NewPublisherService(topicName string, pubSub *gochannel.GoChannel) IPublisherService {
	return &publisherService{
		topicName: topicName,
		pubSub:    pubSub,
	}
}

func (s *publisherService) Publish(ctx context.Context, evt events.Event) error {
	payload, err := encodeEvent(evt)
	if err != nil {
		return err
	}
	msg := message.NewMessage(watermill.NewUUID(), payload)
	msg.SetContext(ctx)
	return s.pubSub.Publish(s.topicName, msg)
}

// encodeEvent flattens an event into the wire envelope consumed from the
// topic: the payload fields plus "type" and "occurredAt".
func encodeEvent(evt events.Event) ([]byte, error) {
	body := map[string]interface{}{
		"type":       evt.EventType(),
		"occurredAt": evt.Timestamp(),
	}
	for k, v := range evt.Payload() {
		body[k] = v
	}
	return json.Marshal(body)
}
