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
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveTarget(t *testing.T) {
	ctx := context.Background()

	t.Run("argument_wins", func(t *testing.T) {
		t.Setenv(EnvTargetFile, "env.tsx")

		got, err := ResolveTarget(ctx, "arg.tsx", "")
		require.NoError(t, err, "ResolveTarget should succeed")
		assert.Equal(t, "arg.tsx", got, "argument should win over environment")
	})

	t.Run("environment_variable", func(t *testing.T) {
		t.Setenv(EnvTargetFile, "env.tsx")

		got, err := ResolveTarget(ctx, "", "")
		require.NoError(t, err, "ResolveTarget should succeed")
		assert.Equal(t, "env.tsx", got, "TARGET_FILE should be used")
	})

	t.Run("explicit_env_file", func(t *testing.T) {
		envPath := filepath.Join(t.TempDir(), "custom.env")
		require.NoError(t, os.WriteFile(envPath, []byte("TARGET_FILE=frontend/page.tsx\n"), 0o644), "writing env file should succeed")

		os.Unsetenv(EnvTargetFile)
		t.Cleanup(func() { os.Unsetenv(EnvTargetFile) })

		got, err := ResolveTarget(ctx, "", envPath)
		require.NoError(t, err, "ResolveTarget should succeed")
		assert.Equal(t, "frontend/page.tsx", got, "TARGET_FILE from the env file should be used")
	})

	t.Run("environment_beats_env_file", func(t *testing.T) {
		envPath := filepath.Join(t.TempDir(), "custom.env")
		require.NoError(t, os.WriteFile(envPath, []byte("TARGET_FILE=from-file.tsx\n"), 0o644), "writing env file should succeed")

		t.Setenv(EnvTargetFile, "from-env.tsx")

		got, err := ResolveTarget(ctx, "", envPath)
		require.NoError(t, err, "ResolveTarget should succeed")
		assert.Equal(t, "from-env.tsx", got, "an exported variable should not be overridden")
	})

	t.Run("missing_explicit_env_file", func(t *testing.T) {
		_, err := ResolveTarget(ctx, "", filepath.Join(t.TempDir(), "absent.env"))
		require.Error(t, err, "ResolveTarget should fail")
		assert.Contains(t, err.Error(), "loading env file", "error should mention the env file")
	})

	t.Run("nothing_resolves", func(t *testing.T) {
		os.Unsetenv(EnvTargetFile)
		t.Cleanup(func() { os.Unsetenv(EnvTargetFile) })

		_, err := ResolveTarget(ctx, "", "")
		require.Error(t, err, "ResolveTarget should fail")
		assert.Contains(t, err.Error(), "no target file", "error should explain how to pass a target")
	})
}
