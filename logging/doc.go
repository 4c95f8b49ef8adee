// SPDX-License-Identifier: MIT

// Package logging adapts github.com/sirupsen/logrus to the key/value Logger
// interface used by the susceptibility engine.
//
// Arguments after the message are read as alternating key/value pairs and
// become logrus fields. A trailing key without a value is logged under
// "!BADKEY", and non-string keys are formatted with %v.
package logging
