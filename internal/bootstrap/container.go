package bootstrap

import (
	"context"
	"log"
	"time"

	"onboarding-survey-be/internal/config"
	"onboarding-survey-be/internal/controller"
	"onboarding-survey-be/internal/pkg/logger"
	"onboarding-survey-be/internal/repository/contract"
	"onboarding-survey-be/internal/repository/memory"
	"onboarding-survey-be/internal/repository/redisstore"
	"onboarding-survey-be/internal/repository/unitofwork"
	"onboarding-survey-be/internal/service"

	"onboarding-survey-be/pkg/events"
	pktNats "onboarding-survey-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	SurveyController controller.ISurveyController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService

	Logger logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 3. Session Storage
	// Memory serves a single instance; redis survives restarts and lets the
	// API run replicated behind a load balancer.
	sessionTTL := time.Duration(cfg.Session.TTLMinutes) * time.Minute
	var sessionRepo contract.SessionRepository
	if cfg.Session.Backend == "redis" {
		opt, err := redis.ParseURL(cfg.Session.RedisURL)
		if err != nil {
			log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
			opt = &redis.Options{
				Addr: cfg.Session.RedisURL,
			}
		}
		rdb := redis.NewClient(opt)
		if _, err := rdb.Ping(context.Background()).Result(); err != nil {
			log.Printf("[WARN] Failed to connect to Redis: %v", err)
		}
		sessionRepo = redisstore.NewSessionRepository(rdb, sessionTTL)
		log.Printf("[INFO] Using Session Backend: REDIS")
	} else {
		sessionRepo = memory.NewSessionRepository(sessionTTL)
		log.Printf("[INFO] Using Session Backend: MEMORY")
	}

	// 4. NATS (optional fan-out bus)
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
		natsPub = nil
	}

	if natsSub, err := pktNats.NewSubscriber(cfg.App.NatsURL); err != nil {
		log.Printf("[WARN] Failed to connect to NATS Subscriber: %v", err)
	} else {
		err := natsSub.Subscribe("survey.events.SURVEY_COMPLETED", "survey-audit", func(_ context.Context, event events.Event) error {
			sysLogger.Info("audit", "survey completed", event.Payload())
			return nil
		})
		if err != nil {
			log.Printf("[WARN] Failed to subscribe to completion events: %v", err)
		}
	}

	// 5. Services
	publisherService := service.NewPublisherService(cfg.Session.CompletedTopic, pubSub)

	var eventPublisher service.EventPublisher
	if natsPub != nil {
		eventPublisher = natsPub
	}
	consumerService := service.NewConsumerService(
		pubSub,
		cfg.Session.CompletedTopic,
		uowFactory,
		eventPublisher,
	)

	surveyService := service.NewSurveyService(
		uowFactory,
		sessionRepo,
		publisherService,
		sysLogger,
	)

	// 6. Controllers
	surveyController := controller.NewSurveyController(surveyService)

	return &Container{
		SurveyController: surveyController,
		ConsumerService:  consumerService,
		Logger:           sysLogger,
	}
}
