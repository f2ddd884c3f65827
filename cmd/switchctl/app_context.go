package main

import (
	"os"

	"golang.org/x/term"

	"github.com/alexisbeaulieu97/switchctl/internal/broker"
	"github.com/alexisbeaulieu97/switchctl/internal/config"
	"github.com/alexisbeaulieu97/switchctl/internal/controller"
	"github.com/alexisbeaulieu97/switchctl/internal/device"
	"github.com/alexisbeaulieu97/switchctl/internal/logger"
)

// appContext bundles the pieces every command needs after startup.
type appContext struct {
	cfg        *config.Config
	log        *logger.Logger
	controller *controller.Controller
	publisher  *broker.Publisher
}

// newAppContext parses the configuration and wires the controller with its
// notifiers. Callers must invoke close when done so broker messages drain.
func newAppContext(flags *rootFlags) (*appContext, error) {
	cfg, err := config.ParseConfig(flags.configPath)
	if err != nil {
		return nil, err
	}

	level := cfg.Settings.LogLevel
	if level == "" {
		level = "info"
	}
	if flags.verbose || cfg.Settings.Verbose {
		level = "debug"
	}

	log, err := logger.New(logger.Options{
		Level:         level,
		HumanReadable: term.IsTerminal(int(os.Stderr.Fd())),
	})
	if err != nil {
		return nil, err
	}

	notifiers := device.MultiNotifier{device.NewLogNotifier(log)}

	var pub *broker.Publisher
	if cfg.MQTT != nil {
		pub, err = broker.Connect(cfg.MQTT, log)
		if err != nil {
			return nil, err
		}
		notifiers = append(notifiers, pub)
	}

	return &appContext{
		cfg:        cfg,
		log:        log,
		controller: controller.New(cfg, notifiers),
		publisher:  pub,
	}, nil
}

func (a *appContext) close() {
	if a == nil {
		return
	}
	a.publisher.Close()
}
