/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package assistant

import "github.com/humaidq/vitalsense/logging"

var logger = logging.Logger(logging.SourceAssistant)
