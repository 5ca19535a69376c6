// Copyright 2025 the Web-Test authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"
	"gitlab.com/tozd/go/errors"
)

func main() {
	ctx, stop := signal.NotifyContext(
		log.Logger.WithContext(context.Background()),
		os.Interrupt, syscall.SIGTERM,
	)
	defer stop()

	cmd := NewCommand()
	if err := cmd.ExecuteContext(ctx); err != nil {
		// Dirty checks already reported themselves, only the exit code matters
		if !errors.Is(err, errFixesNeeded) {
			log.Error().Err(err).Msg("command failed")
		}
		stop()
		os.Exit(1)
	}
}
