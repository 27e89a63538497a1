// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the expense-vault client runtime.
//
// It wires configuration, storages, the remote adapters and the services
// around one readiness gate, and runs the reporting surface together with
// the signals watcher.
package client
