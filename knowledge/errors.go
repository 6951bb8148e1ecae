/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package knowledge

import "errors"

// ErrUnknownNamespace is returned when an item names a namespace the
// retriever does not serve.
var ErrUnknownNamespace = errors.New("unknown knowledge namespace")
