// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

// NewTestAdapter exposes newTestAdapter to the external adapter_test package.
var NewTestAdapter = newTestAdapter
