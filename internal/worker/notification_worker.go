package worker

import (
	"go.uber.org/zap"

	"github.com/spec-kit/helpdesk/internal/events"
	"github.com/spec-kit/helpdesk/internal/service"
)

// StartNotificationWorker registers notification handlers and, when a
// forwarder is given, the MQTT fan-out for every event.
func StartNotificationWorker(dispatcher events.Dispatcher, notifications *service.NotificationService, forwarder *events.MQTTForwarder, logger *zap.Logger) {
	if notifications != nil {
		notifications.RegisterHandlers()
	}
	if forwarder == nil || dispatcher == nil {
		logger.Info("mqtt fan-out disabled")
		return
	}
	forwarder.Register(dispatcher)
	for _, eventType := range events.AllEventTypes {
		logger.Info("forwarding events", zap.String("topic", forwarder.Topic(eventType)))
	}
}
