// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package log

import (
	"fmt"

	"github.com/apex/log"
)

// Leveled adapts apex to the key/value leveled logger shape expected by
// go-retryablehttp. Request chatter is demoted one level so a default
// (error) log level stays quiet unless retries are exhausted.
type Leveled struct{}

func (Leveled) Error(msg string, kv ...interface{}) { entry(kv).Warn(msg) }
func (Leveled) Warn(msg string, kv ...interface{})  { entry(kv).Info(msg) }
func (Leveled) Info(msg string, kv ...interface{})  { entry(kv).Debug(msg) }
func (Leveled) Debug(msg string, kv ...interface{}) { Tracef("%s %v", msg, kv) }

func entry(kv []interface{}) *log.Entry {
	fields := log.Fields{}
	for i := 0; i+1 < len(kv); i += 2 {
		fields[fmt.Sprint(kv[i])] = kv[i+1]
	}
	return log.WithFields(fields)
}
