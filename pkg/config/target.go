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

package config

import (
	"context"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// EnvTargetFile is the environment variable consulted when no target is
// passed on the command line.
const EnvTargetFile = "TARGET_FILE"

// 📚 Options captures the run settings for a single invocation
type Options struct {
	Targets    []string // Files to remediate
	RulesFile  string   // Rules file path, built-in table when empty
	EnvFile    string   // Explicit .env path for target discovery
	Backup     bool     // Write a .bak sibling before rewriting
	ShowMissed bool     // Log table entries that matched nothing
	Async      bool     // Process targets concurrently
}

// 🔍 Validate checks if the options are valid
func (o *Options) Validate() error {
	if len(o.Targets) == 0 {
		return errors.Errorf("at least one target file is required")
	}
	for _, target := range o.Targets {
		if target == "" {
			return errors.Errorf("target file must not be empty")
		}
	}
	return nil
}

// 🎯 ResolveTarget decides which file a run operates on. A command line
// argument wins, then the TARGET_FILE environment variable, then a
// TARGET_FILE entry in a .env file. Values already present in the
// environment are never overridden by .env content.
func ResolveTarget(ctx context.Context, arg string, envFile string) (string, error) {
	logger := zerolog.Ctx(ctx)

	if arg != "" {
		logger.Debug().Str("target", arg).Msg("target taken from argument")
		return arg, nil
	}

	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			return "", errors.Errorf("loading env file: %w", err)
		}
	} else {
		// A missing .env in the working directory is fine
		_ = godotenv.Load()
	}

	if target := os.Getenv(EnvTargetFile); target != "" {
		logger.Debug().Str("target", target).Msg("target taken from TARGET_FILE")
		return target, nil
	}

	return "", errors.Errorf("no target file: pass one as an argument or set TARGET_FILE")
}
