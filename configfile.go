package oauth2gateway

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// fileConfig mirrors the recognized client-config keys in YAML form.
// customHeaders is a list of name/value pairs so file order is preserved.
type fileConfig struct {
	CustomPayload string            `yaml:"customPayload"`
	CustomHeaders []fileHeader      `yaml:"customHeaders"`
	HTTPVersion   string            `yaml:"httpVersion"`
	SecureSocket  *fileSecureSocket `yaml:"secureSocket"`
}

type fileHeader struct {
	Name  string `yaml:"name"`
	Value string `yaml:"value"`
}

type fileSecureSocket struct {
	Disable    bool            `yaml:"disable"`
	TrustStore *fileTrustStore `yaml:"truststore"`
}

type fileTrustStore struct {
	Path     string `yaml:"path"`
	Password string `yaml:"password"`
}

// LoadConfigFile reads a YAML client configuration and returns it as a
// MapConfig ready to pass to Gateway.Send:
//
//	customPayload: a=b
//	customHeaders:
//	  - name: X-Custom
//	    value: "1"
//	httpVersion: HTTP/2
//	secureSocket:
//	  truststore:
//	    path: /etc/pki/trust.p12
//	    password: changeit
func LoadConfigFile(path string) (MapConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}
	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return nil, fmt.Errorf("parse config file %q: %w", path, err)
	}
	return fc.toMapConfig(), nil
}

func (fc fileConfig) toMapConfig() MapConfig {
	cfg := MapConfig{}
	if fc.CustomPayload != "" {
		cfg[KeyCustomPayload] = fc.CustomPayload
	}
	if len(fc.CustomHeaders) > 0 {
		headers := make([]Header, 0, len(fc.CustomHeaders))
		for _, h := range fc.CustomHeaders {
			headers = append(headers, Header{Name: h.Name, Value: h.Value})
		}
		cfg[KeyCustomHeaders] = headers
	}
	if fc.HTTPVersion != "" {
		cfg[KeyHTTPVersion] = fc.HTTPVersion
	}
	if fc.SecureSocket != nil {
		secureSocket := MapConfig{}
		if fc.SecureSocket.Disable {
			secureSocket[KeyDisable] = true
		}
		if fc.SecureSocket.TrustStore != nil {
			secureSocket[KeyTrustStore] = MapConfig{
				KeyPath:     fc.SecureSocket.TrustStore.Path,
				KeyPassword: fc.SecureSocket.TrustStore.Password,
			}
		}
		cfg[KeySecureSocket] = secureSocket
	}
	return cfg
}
