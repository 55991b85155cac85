package service

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"onboarding-survey-be/internal/dto"
	"onboarding-survey-be/internal/repository/specification"
	"onboarding-survey-be/internal/repository/unitofwork"
	"onboarding-survey-be/pkg/events"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// EventPublisher fans completion events out to the external bus. Optional:
// a nil publisher disables fan-out without touching survey processing.
type EventPublisher interface {
	Publish(ctx context.Context, event events.Event) error
}

type consumerService struct {
	pubSub         *gochannel.GoChannel
	topicName      string
	uowFactory     unitofwork.RepositoryFactory
	eventPublisher EventPublisher
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	uowFactory unitofwork.RepositoryFactory,
	eventPublisher EventPublisher,
) IConsumerService {
	return &consumerService{
		pubSub:         pubSub,
		topicName:      topicName,
		uowFactory:     uowFactory,
		eventPublisher: eventPublisher,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	var payload dto.SurveyCompletedMessage
	err := json.Unmarshal(msg.Payload, &payload)
	if err != nil {
		log.Printf("[ERROR] Failed to unmarshal message: %v", err)
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	log.Printf("[INFO] Processing survey completion for ResponseId: %s", payload.ResponseId)

	uow := cs.uowFactory.NewUnitOfWork(ctx)

	response, err := uow.ResponseRepository().FindOne(ctx, specification.ByID{ID: payload.ResponseId})
	if err != nil {
		log.Printf("[ERROR] Failed to get response %s: %v", payload.ResponseId, err)
		msg.Nack() // Nack for retriable errors
		return
	}
	if response == nil {
		log.Printf("[ERROR] Response not found: %s", payload.ResponseId)
		msg.Ack() // Response deleted? Ack.
		return
	}

	surveyTitle := "Unknown"
	survey, err := uow.SurveyRepository().FindOne(ctx, specification.ByID{ID: response.SurveyId})
	if err != nil {
		log.Printf("[WARN] Failed to get survey %s: %v", response.SurveyId, err)
	} else if survey != nil {
		surveyTitle = survey.Title
	}

	log.Printf("[INFO] Survey %q completed by %s with %d answers", surveyTitle, response.UserId, len(response.Answers))

	if cs.eventPublisher != nil {
		evt := events.BaseEvent{
			Type: "SURVEY_COMPLETED",
			Data: map[string]interface{}{
				"survey_id":   response.SurveyId,
				"response_id": response.Id,
				"user_id":     response.UserId,
			},
			OccurredAt: time.Now(),
		}
		if err := cs.eventPublisher.Publish(ctx, evt); err != nil {
			// Response is already durable, the event can be replayed later.
			log.Printf("[WARN] Failed to publish completion event: %v", err)
		}
	}

	msg.Ack()
}
