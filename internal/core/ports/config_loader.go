package ports

import "go.trai.ch/sassy/internal/core/domain"

// ConfigLoader defines the interface for loading the configuration snapshot.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the configuration governing cwd.
	// When no configuration file exists the default options are returned with cwd as root.
	Load(cwd string) (*domain.Workspace, error)

	// DiscoverRoot walks up from cwd to find the directory containing sassy.yaml.
	DiscoverRoot(cwd string) (string, error)
}
