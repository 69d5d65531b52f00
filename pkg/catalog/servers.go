package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/jingkaihe/claudelist/pkg/logger"
	"github.com/jingkaihe/claudelist/pkg/resolve"
)

// settingsFile is the subset of a Claude settings file that declares MCP
// servers. Other top-level keys are ignored.
type settingsFile struct {
	MCPServers map[string]serverConfigJSON `json:"mcpServers"`
}

type serverConfigJSON struct {
	Command *string           `json:"command"`
	Args    []string          `json:"args"`
	Env     map[string]string `json:"env"`
}

// sourcedServers is a merged server listing plus, per name, the settings
// file that supplied the effective entry.
type sourcedServers struct {
	servers []Server
	origins map[string]string
}

// readSettings loads the servers declared in path. A missing file yields
// (nil, false, nil); malformed JSON is an InvalidConfigError.
func readSettings(path string) (map[string]serverConfigJSON, bool, error) {
	data, err := readFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, wrapFSError(err, path, "read settings file")
	}

	var settings settingsFile
	if err := json.Unmarshal(data, &settings); err != nil {
		return nil, true, &InvalidConfigError{
			Description: fmt.Sprintf("%s: %v", filepath.Base(path), err),
		}
	}

	return settings.MCPServers, true, nil
}

func (l *Local) loadServers() (*sourcedServers, error) {
	primary, secondary := l.SettingsFiles()
	result := &sourcedServers{
		servers: []Server{},
		origins: make(map[string]string),
	}

	for _, path := range []string{primary, secondary} {
		declared, present, err := readSettings(path)
		if err != nil {
			return nil, err
		}
		if !present {
			logger.L.WithField("path", path).Debug("settings file not present")
			continue
		}

		for name, cfg := range declared {
			// Entries from an earlier file take precedence as a whole.
			if _, exists := result.origins[name]; exists {
				continue
			}
			result.origins[name] = path
			result.servers = append(result.servers, Server{
				Name:   name,
				Status: StatusUnknown,
				Config: &ServerConfig{
					Command: cfg.Command,
					Args:    cfg.Args,
					Env:     cfg.Env,
				},
				Source: SourceLocal,
			})
		}
	}

	sort.Slice(result.servers, func(i, j int) bool {
		return result.servers[i].Name < result.servers[j].Name
	})

	return result, nil
}

// ListServers merges the servers declared in the primary and secondary
// settings files, sorted by name. When both declare a name, the primary
// entry wins. Missing files are skipped; malformed ones are an error.
func (l *Local) ListServers() ([]Server, error) {
	loaded, err := l.loadServers()
	if err != nil {
		return nil, err
	}
	return loaded.servers, nil
}

// ServerDetail resolves name against the listed servers and reports the
// settings file that supplied the effective entry.
func (l *Local) ServerDetail(name string) (*ServerDetail, error) {
	loaded, err := l.loadServers()
	if err != nil {
		return nil, err
	}

	outcome := resolve.Resolve(loaded.servers, name)
	if !outcome.Found() {
		return nil, outcomeError(outcome, name)
	}

	server := outcome.Match
	origin := loaded.origins[server.Name]
	return &ServerDetail{
		Name:       server.Name,
		Config:     *server.Config,
		SourcePath: origin,
		SourceType: filepath.Base(origin),
	}, nil
}
