// Package broker publishes switch state changes to an MQTT broker.
package broker

import (
	"fmt"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"

	"github.com/alexisbeaulieu97/switchctl/internal/config"
	"github.com/alexisbeaulieu97/switchctl/internal/logger"
	switchctlerrors "github.com/alexisbeaulieu97/switchctl/pkg/errors"
)

const (
	defaultClientID    = "switchctl"
	defaultTopicPrefix = "switchctl"
	connectTimeout     = 10 * time.Second
	disconnectQuiesce  = 250 // milliseconds, as paho expects
)

// newClient builds the underlying MQTT client; overridable in tests.
var newClient = mqtt.NewClient

// Publisher mirrors every switch state change onto the broker as a retained
// ON/OFF message under <topic_prefix>/<device-id>/state. It satisfies
// device.Notifier.
type Publisher struct {
	client mqtt.Client
	prefix string
	qos    byte
	retain bool
	log    *logger.Logger
}

// Connect dials the configured broker and returns a ready Publisher.
func Connect(cfg *config.MQTT, log *logger.Logger) (*Publisher, error) {
	clientID := cfg.ClientID
	if clientID == "" {
		clientID = defaultClientID
	}

	opts := mqtt.NewClientOptions()
	opts.AddBroker(cfg.Broker)
	opts.SetClientID(clientID)
	opts.SetUsername(cfg.Username)
	opts.SetPassword(cfg.Password)
	opts.SetAutoReconnect(true)
	opts.SetConnectTimeout(connectTimeout)
	opts.SetOnConnectHandler(func(mqtt.Client) {
		log.WithFields(map[string]any{"broker": cfg.Broker}).Info("connected to broker")
	})
	opts.SetConnectionLostHandler(func(_ mqtt.Client, err error) {
		log.Error(err, "broker connection lost")
	})

	client := newClient(opts)
	token := client.Connect()
	if !token.WaitTimeout(connectTimeout) {
		return nil, switchctlerrors.NewBrokerError(cfg.Broker, fmt.Errorf("connect timed out after %s", connectTimeout))
	}
	if err := token.Error(); err != nil {
		return nil, switchctlerrors.NewBrokerError(cfg.Broker, err)
	}

	prefix := cfg.TopicPrefix
	if prefix == "" {
		prefix = defaultTopicPrefix
	}

	return &Publisher{
		client: client,
		prefix: prefix,
		qos:    byte(cfg.QoS),
		retain: cfg.Retain,
		log:    log,
	}, nil
}

// StateChanged implements device.Notifier.
func (p *Publisher) StateChanged(id string, on bool) {
	if p == nil {
		return
	}

	payload := "OFF"
	if on {
		payload = "ON"
	}

	topic := p.topic(id)
	token := p.client.Publish(topic, p.qos, p.retain, payload)
	go func() {
		token.Wait()
		if err := token.Error(); err != nil {
			p.log.Error(err, fmt.Sprintf("publish to %s failed", topic))
		}
	}()
}

// Close disconnects from the broker, allowing in-flight messages to drain.
func (p *Publisher) Close() {
	if p == nil {
		return
	}
	p.client.Disconnect(disconnectQuiesce)
}

func (p *Publisher) topic(id string) string {
	return fmt.Sprintf("%s/%s/state", p.prefix, id)
}
