package oauth2gateway

import (
	"crypto/tls"
	"fmt"

	"github.com/oauthkit/go-oauth2-gateway/internal/truststore"
)

// TrustConfig selects the TLS trust posture for a single call. Exactly one
// variant is active per call: SystemTrust, TrustAll, or TrustStore.
type TrustConfig interface {
	// clientTLS builds the tls.Config for the call's transport.
	clientTLS() (*tls.Config, error)
}

// SystemTrust validates server certificates against the system trust store.
// This is the posture when no secureSocket configuration is present.
type SystemTrust struct{}

func (SystemTrust) clientTLS() (*tls.Config, error) {
	return &tls.Config{MinVersion: tls.VersionTLS12}, nil
}

// TrustAll accepts any server certificate without chain or hostname checks.
// Insecure; intended for development and testing only.
type TrustAll struct{}

func (TrustAll) clientTLS() (*tls.Config, error) {
	return &tls.Config{
		MinVersion:         tls.VersionTLS12,
		InsecureSkipVerify: true, // #nosec G402 -- explicit trust-all mode
	}, nil
}

// TrustStore restricts trust to the certificates found in a PKCS12 file.
// The file is read fully into memory when the call is made.
type TrustStore struct {
	Path     string
	Password string
}

func (t TrustStore) clientTLS() (*tls.Config, error) {
	pool, err := truststore.Load(t.Path, t.Password)
	if err != nil {
		return nil, fmt.Errorf("trust store %q: %w", t.Path, err)
	}
	return &tls.Config{
		MinVersion: tls.VersionTLS12,
		RootCAs:    pool,
	}, nil
}

// resolveTrust maps the secureSocket config block onto a TrustConfig.
// disable takes precedence over truststore when both are present.
func resolveTrust(cfg ConfigSource) TrustConfig {
	if cfg == nil {
		return SystemTrust{}
	}
	secureSocket, ok := cfg.GetMap(KeySecureSocket)
	if !ok {
		return SystemTrust{}
	}
	if disable, ok := secureSocket.GetBool(KeyDisable); ok && disable {
		return TrustAll{}
	}
	if store, ok := secureSocket.GetMap(KeyTrustStore); ok {
		path, _ := store.GetString(KeyPath)
		password, _ := store.GetString(KeyPassword)
		return TrustStore{Path: path, Password: password}
	}
	return SystemTrust{}
}
