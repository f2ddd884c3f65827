package config

// Config represents the full switchctl configuration document.
type Config struct {
	Version  string   `yaml:"version" validate:"required"`
	Name     string   `yaml:"name" validate:"required,min=1,max=100"`
	Devices  []Device `yaml:"devices" validate:"required,min=1,dive"`
	Settings Settings `yaml:"settings,omitempty"`
	MQTT     *MQTT    `yaml:"mqtt,omitempty"`
}

// Device declares one controllable switch.
type Device struct {
	ID      string `yaml:"id" validate:"required,device_id"`
	Name    string `yaml:"name,omitempty" validate:"omitempty,max=100"`
	Initial string `yaml:"initial,omitempty" validate:"omitempty,oneof=on off"`
}

// InitialOn reports whether the device starts in the on state.
func (d Device) InitialOn() bool {
	return d.Initial == "on"
}

// Settings holds global runtime parameters.
type Settings struct {
	HistorySize int    `yaml:"history_size,omitempty" validate:"omitempty,min=1,max=100"`
	LogLevel    string `yaml:"log_level,omitempty" validate:"omitempty,oneof=trace debug info warn error"`
	Verbose     bool   `yaml:"verbose,omitempty"`
}

// MQTT configures the optional state-change publisher.
type MQTT struct {
	Broker      string `yaml:"broker" validate:"required,uri"`
	ClientID    string `yaml:"client_id,omitempty"`
	Username    string `yaml:"username,omitempty"`
	Password    string `yaml:"password,omitempty"`
	TopicPrefix string `yaml:"topic_prefix,omitempty"`
	QoS         int    `yaml:"qos,omitempty" validate:"omitempty,min=0,max=2"`
	Retain      bool   `yaml:"retain,omitempty"`
}
