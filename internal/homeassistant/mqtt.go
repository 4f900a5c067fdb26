package homeassistant

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
)

const (
	connectTimeout    = 10 * time.Second
	publishTimeout    = 5 * time.Second
	keepAlive         = 60 * time.Second
	disconnectQuiesce = 1000
	qos               = 1
)

var ErrNotConnected = errors.New("not connected to broker")

// MessageHandler processes a message received on a subscribed topic.
type MessageHandler func(topic string, payload []byte)

type Publisher interface {
	Publish(topic string, retained bool, payload []byte) error
	Subscribe(topic string, handler MessageHandler) error
}

// MQTTConfiguration holds the broker connection settings.
type MQTTConfiguration struct {
	Broker   string `mapstructure:"broker"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
	ClientID string `mapstructure:"clientID"`
}

var _ Publisher = &MQTTClient{}

// MQTTClient connects to the MQTT broker. It announces itself on the availability topic, with a last will
// that marks it offline, and restores its subscriptions when it reconnects.
type MQTTClient struct {
	client        mqtt.Client
	availability  string
	logger        *slog.Logger
	lock          sync.RWMutex
	subscriptions map[string]MessageHandler
}

// NewMQTTClient creates a client for the configured broker. It does not connect: call Connect to do so.
func NewMQTTClient(cfg MQTTConfiguration, availabilityTopic string, logger *slog.Logger) *MQTTClient {
	c := &MQTTClient{
		availability:  availabilityTopic,
		logger:        logger,
		subscriptions: make(map[string]MessageHandler),
	}
	c.client = mqtt.NewClient(c.options(cfg))
	return c
}

func (c *MQTTClient) options(cfg MQTTConfiguration) *mqtt.ClientOptions {
	opts := mqtt.NewClientOptions()
	opts.AddBroker(cfg.Broker)
	opts.SetClientID(cfg.ClientID)
	if cfg.Username != "" {
		opts.SetUsername(cfg.Username)
		opts.SetPassword(cfg.Password)
	}
	opts.SetCleanSession(true)
	opts.SetAutoReconnect(true)
	opts.SetConnectRetry(true)
	opts.SetConnectTimeout(connectTimeout)
	opts.SetKeepAlive(keepAlive)
	// commands call the Fröling API: don't hold up other messages while they run
	opts.SetOrderMatters(false)
	opts.SetWill(c.availability, payloadOffline, qos, true)
	opts.SetOnConnectHandler(func(_ mqtt.Client) { c.onConnect() })
	opts.SetConnectionLostHandler(func(_ mqtt.Client, err error) {
		c.logger.Warn("connection to broker lost", slog.Any("err", err))
	})
	return opts
}

// Connect connects to the broker, waiting at most until ctx is done.
func (c *MQTTClient) Connect(ctx context.Context) error {
	token := c.client.Connect()
	select {
	case <-token.Done():
	case <-ctx.Done():
		return fmt.Errorf("connect: %w", ctx.Err())
	}
	if err := token.Error(); err != nil {
		return fmt.Errorf("connect: %w", err)
	}
	return nil
}

func (c *MQTTClient) onConnect() {
	c.logger.Info("connected to broker")
	if err := c.Publish(c.availability, true, []byte(payloadOnline)); err != nil {
		c.logger.Warn("failed to publish availability", slog.Any("err", err))
	}
	c.lock.RLock()
	defer c.lock.RUnlock()
	for topic, handler := range c.subscriptions {
		if err := c.subscribe(topic, handler); err != nil {
			c.logger.Warn("failed to restore subscription", slog.String("topic", topic), slog.Any("err", err))
		}
	}
}

// Close marks the client offline and disconnects from the broker.
func (c *MQTTClient) Close() {
	if c.client.IsConnectionOpen() {
		if err := c.Publish(c.availability, true, []byte(payloadOffline)); err != nil {
			c.logger.Warn("failed to publish availability", slog.Any("err", err))
		}
	}
	c.client.Disconnect(disconnectQuiesce)
}

func (c *MQTTClient) Publish(topic string, retained bool, payload []byte) error {
	if !c.client.IsConnectionOpen() {
		return ErrNotConnected
	}
	return wait(c.client.Publish(topic, qos, retained, payload), "publish "+topic)
}

// Subscribe registers a handler for a topic. The subscription is restored whenever the client reconnects.
func (c *MQTTClient) Subscribe(topic string, handler MessageHandler) error {
	c.lock.Lock()
	c.subscriptions[topic] = handler
	c.lock.Unlock()
	if !c.client.IsConnectionOpen() {
		return nil
	}
	return c.subscribe(topic, handler)
}

func (c *MQTTClient) subscribe(topic string, handler MessageHandler) error {
	return wait(c.client.Subscribe(topic, qos, func(_ mqtt.Client, msg mqtt.Message) {
		handler(msg.Topic(), msg.Payload())
	}), "subscribe "+topic)
}

func wait(token mqtt.Token, op string) error {
	if !token.WaitTimeout(publishTimeout) {
		return fmt.Errorf("%s: timeout after %v", op, publishTimeout)
	}
	if err := token.Error(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
