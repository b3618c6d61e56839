// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// validate checks the merged [StructuredConfig]. Source-independent rules live
// in [ClientConfig.validate]; this hook only rejects values no source may set.
func (cfg *StructuredConfig) validate() error {
	if cfg.Session.MinPasswordLength < 0 {
		return ErrInvalidSessionConfigs
	}
	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Session.InactivityTimeout <= 0 ||
		cfg.Session.MinPasswordLength < 1 ||
		cfg.Session.RegisterRedirectDelay < 0 ||
		cfg.Session.NotificationTTL <= 0 {
		return ErrInvalidSessionConfigs
	}

	return nil
}
