package service

import (
	"context"
	"encoding/json"

	"ai-siteplanner-be/internal/entity"
	"ai-siteplanner-be/internal/pkg/logger"
	"ai-siteplanner-be/internal/repository/contract"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// consumerService is the autosave worker: every plan snapshot the
// planner publishes gets written through to the configured store, so a
// crash mid-session loses at most the step in flight.
type consumerService struct {
	pubSub    *gochannel.GoChannel
	topicName string
	planRepo  contract.IPlanRepository
	logger    logger.ILogger
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	planRepo contract.IPlanRepository,
	log logger.ILogger,
) IConsumerService {
	return &consumerService{
		pubSub:    pubSub,
		topicName: topicName,
		planRepo:  planRepo,
		logger:    log,
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
	var plan entity.SitePlan
	if err := json.Unmarshal(msg.Payload, &plan); err != nil {
		cs.logger.Error("ConsumerService", "Failed to unmarshal plan snapshot", map[string]interface{}{"error": err.Error()})
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	if err := cs.planRepo.Save(ctx, &plan); err != nil {
		cs.logger.Error("ConsumerService", "Failed to autosave plan snapshot", map[string]interface{}{"error": err.Error()})
		msg.Nack()
		return
	}

	cs.logger.Debug("ConsumerService", "Plan snapshot autosaved", map[string]interface{}{"pages": len(plan.Sitemap)})
	msg.Ack()
}
