/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package cmd

import "github.com/humaidq/vitalsense/logging"

var appLogger = logging.Logger(logging.SourceApp)
var knowledgeLogger = logging.Logger(logging.SourceKnowledge)
var requestStdLogger = logging.StdLogger(logging.SourceWebRequest)
