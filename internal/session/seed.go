// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package session

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/MKhiriev/go-pay-trial/models"
)

// LoadSeedAccounts reads a JSON array of accounts from path. An empty path
// yields no accounts. Entries without an id get one from ids and entries
// without a creation time are stamped with now.
func LoadSeedAccounts(path string, ids IDGenerator, now time.Time) ([]models.Account, error) {
	if path == "" {
		return nil, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}

	var accounts []models.Account
	if err = json.Unmarshal(data, &accounts); err != nil {
		return nil, fmt.Errorf("decode seed file %s: %w", path, err)
	}

	seen := make(map[string]struct{}, len(accounts))
	for i := range accounts {
		if accounts[i].Email == "" {
			return nil, fmt.Errorf("seed account #%d has no email", i)
		}
		if _, dup := seen[accounts[i].Email]; dup {
			return nil, fmt.Errorf("seed email %q is listed twice", accounts[i].Email)
		}
		seen[accounts[i].Email] = struct{}{}

		if accounts[i].ID == "" {
			accounts[i].ID = ids.Generate()
		}
		if accounts[i].CreatedAt.IsZero() {
			accounts[i].CreatedAt = now
		}
	}

	return accounts, nil
}
