// Package truststore loads PKCS12 trust-store files into x509 cert pools.
package truststore

import (
	"crypto/x509"
	"errors"
	"fmt"
	"os"

	"software.sslmate.com/src/go-pkcs12"
)

// ErrEmptyStore is returned when the store decodes but holds no certificates.
var ErrEmptyStore = errors.New("trust store contains no certificates")

// Load reads the PKCS12 file at path, decodes it with the given password,
// and returns a pool holding every certificate in the store. The file is
// read fully into memory.
func Load(path, password string) (*x509.CertPool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read trust store: %w", err)
	}
	certs, err := pkcs12.DecodeTrustStore(data, password)
	if err != nil {
		return nil, fmt.Errorf("decode trust store: %w", err)
	}
	if len(certs) == 0 {
		return nil, ErrEmptyStore
	}
	pool := x509.NewCertPool()
	for _, cert := range certs {
		pool.AddCert(cert)
	}
	return pool, nil
}
