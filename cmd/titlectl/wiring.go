package main

import (
	"titlectl/internal/domain-adapters/gateways"
	orchestrators "titlectl/internal/domain-orchestrators"
	"titlectl/internal/domain/interfaces"
	igateways "titlectl/internal/domain/interfaces/gateways"
	"titlectl/internal/domain/services"
	"titlectl/internal/external-adapters/logging"
	"titlectl/internal/external-adapters/yaml"
)

// env holds the adapters every subcommand composes from the settings file.
type env struct {
	settings *yaml.Settings
	titles   *yaml.TitleRepository
	logger   interfaces.Logger
}

func buildEnv(settingsPath string, debug bool) (*env, error) {
	settings, err := yaml.LoadSettings(settingsPath)
	if err != nil {
		return nil, err
	}
	return &env{
		settings: settings,
		titles:   yaml.NewTitleRepository(settings.ManagedTitlesRoot()),
		logger:   logging.NewLogrusLogger(debug),
	}, nil
}

func (e *env) inventoryGateway() *gateways.HTTPInventoryGateway {
	return gateways.NewHTTPInventoryGateway(gateways.InventoryConfig{
		AuthEndpoint:      e.settings.AuthEndpoint(),
		InventoryEndpoint: e.settings.InventoryEndpoint(),
		TenantID:          e.settings.TenantID(),
		ClientID:          e.settings.ClientID(),
		ClientSecret:      e.settings.ClientSecret(),
	})
}

func (e *env) notifier() igateways.Notifier {
	return gateways.NewWebhookNotifier(e.settings.WebhookURL())
}

func (e *env) removalOrchestrator(scriptsDir string) *orchestrators.RemovalOrchestrator {
	return orchestrators.NewRemovalOrchestrator(
		e.titles,
		e.inventoryGateway(),
		gateways.NewScriptRunner(scriptsDir),
		services.NewLabelLocks(),
		e.logger,
	)
}
