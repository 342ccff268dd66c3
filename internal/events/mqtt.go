package events

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"go.uber.org/zap"

	"github.com/spec-kit/helpdesk/internal/config"
)

const publishTimeout = 3 * time.Second

// ErrBrokerUnavailable is returned when the MQTT client is not connected.
var ErrBrokerUnavailable = errors.New("mqtt broker not connected")

// ConnectMQTT dials the broker. The client keeps retrying in the background
// when the first attempt does not complete in time.
func ConnectMQTT(cfg config.MQTTConfig, logger *zap.Logger) (mqtt.Client, error) {
	if cfg.BrokerURL == "" {
		return nil, errors.New("mqtt broker url is empty")
	}
	clientID := cfg.ClientID
	if clientID == "" {
		clientID = "helpdesk-api"
	}

	opts := mqtt.NewClientOptions().
		AddBroker(cfg.BrokerURL).
		SetClientID(clientID).
		SetConnectTimeout(5 * time.Second).
		SetKeepAlive(30 * time.Second).
		SetAutoReconnect(true).
		SetConnectRetry(true).
		SetConnectRetryInterval(2 * time.Second)
	opts.OnConnectionLost = func(_ mqtt.Client, err error) {
		logger.Warn("mqtt connection lost", zap.Error(err))
	}
	opts.OnConnect = func(_ mqtt.Client) {
		logger.Info("mqtt connected", zap.String("broker", cfg.BrokerURL), zap.String("client_id", clientID))
	}

	client := mqtt.NewClient(opts)
	tok := client.Connect()
	if !tok.WaitTimeout(5 * time.Second) {
		logger.Warn("mqtt broker not reachable yet; retrying in background", zap.String("broker", cfg.BrokerURL))
		return client, nil
	}
	if err := tok.Error(); err != nil {
		return nil, err
	}
	return client, nil
}

// publisher is the subset of mqtt.Client used for fan-out.
type publisher interface {
	IsConnected() bool
	Publish(topic string, qos byte, retained bool, payload interface{}) mqtt.Token
}

// MQTTForwarder republishes domain events on "<prefix>/<event type>".
type MQTTForwarder struct {
	client publisher
	prefix string
	logger *zap.Logger
}

// NewMQTTForwarder builds a forwarder over a connected client.
func NewMQTTForwarder(client publisher, prefix string, logger *zap.Logger) *MQTTForwarder {
	return &MQTTForwarder{client: client, prefix: strings.TrimSuffix(prefix, "/"), logger: logger}
}

// Register subscribes the forwarder to every event on the dispatcher.
func (f *MQTTForwarder) Register(dispatcher Dispatcher) {
	dispatcher.SubscribeAll(f.Handle)
}

// Topic returns the topic an event type is published on.
func (f *MQTTForwarder) Topic(eventType EventType) string {
	return f.prefix + "/" + string(eventType)
}

// Handle publishes one event with QoS 1.
func (f *MQTTForwarder) Handle(_ context.Context, event Event) error {
	if f.client == nil || !f.client.IsConnected() {
		return ErrBrokerUnavailable
	}
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}
	topic := f.Topic(event.Type)
	tok := f.client.Publish(topic, 1, false, body)
	if !tok.WaitTimeout(publishTimeout) {
		return fmt.Errorf("publish %s: timed out", topic)
	}
	if err := tok.Error(); err != nil {
		return fmt.Errorf("publish %s: %w", topic, err)
	}
	f.logger.Debug("event published", zap.String("topic", topic), zap.String("ticket_id", event.TicketID))
	return nil
}
