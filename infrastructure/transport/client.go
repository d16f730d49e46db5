package transport

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"sync"

	"github.com/juju/loggo"

	"github.com/carlosrabelo/vlanaudit/domain/entities"
	"github.com/carlosrabelo/vlanaudit/domain/ports"
)

var logger = loggo.GetLogger("vlanaudit.transport")

// Source is a line source holding resources until closed
type Source interface {
	ports.LineSource
	Close() error
}

var (
	sourceCache   = make(map[string]Source)
	sourceCacheMu sync.Mutex
)

func cacheKey(cfg entities.SourceConfig) string {
	keyData := struct {
		Type       string
		Path       string
		Host       string
		Port       int
		Username   string
		Password   string
		PrivateKey string
	}{
		Type:       cfg.Type,
		Path:       cfg.Path,
		Host:       cfg.Host,
		Port:       cfg.Port,
		Username:   cfg.Username,
		Password:   cfg.Password,
		PrivateKey: cfg.PrivateKey,
	}
	bytes, _ := json.Marshal(keyData)
	hash := sha256.Sum256(bytes)
	return hex.EncodeToString(hash[:])
}

// Get returns a cached source for the provided configuration or creates a new one
func Get(cfg entities.SourceConfig) Source {
	sourceCacheMu.Lock()
	defer sourceCacheMu.Unlock()
	key := cacheKey(cfg)
	if source, exists := sourceCache[key]; exists {
		return source
	}
	source := newSource(cfg)
	sourceCache[key] = source
	return source
}

// CloseAll releases every cached source
func CloseAll() {
	sourceCacheMu.Lock()
	defer sourceCacheMu.Unlock()
	for key, source := range sourceCache {
		if err := source.Close(); err != nil {
			logger.Warningf("closing %s: %v", source.Describe(), err)
		}
		delete(sourceCache, key)
	}
}

func newSource(cfg entities.SourceConfig) Source {
	if cfg.Type == "ssh" {
		return NewSSHSource(cfg)
	}
	return NewFileSource(cfg.Path)
}
