package usecase_test

import (
	"context"
	"testing"

	"github.com/runoshun/freewipe/internal/domain"
	"github.com/runoshun/freewipe/internal/testutil"
	"github.com/runoshun/freewipe/internal/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShowConfig_Execute(t *testing.T) {
	t.Run("returns file info and effective config", func(t *testing.T) {
		manager := testutil.NewMockConfigManager()
		manager.Info = domain.ConfigInfo{
			Path:    "/home/test/.config/freewipe/config.toml",
			Content: "[wipe]\npasses = 3",
			Exists:  true,
		}
		loader := testutil.NewMockConfigLoader()
		loader.Config.Wipe.Passes = 3

		out, err := usecase.NewShowConfig(manager, loader).Execute(context.Background(), usecase.ShowConfigInput{})

		require.NoError(t, err)
		assert.True(t, out.File.Exists)
		assert.Equal(t, "[wipe]\npasses = 3", out.File.Content)
		assert.Equal(t, 3, out.EffectiveConfig.Wipe.Passes)
	})

	t.Run("propagates load errors", func(t *testing.T) {
		loader := testutil.NewMockConfigLoader()
		loader.LoadErr = domain.ErrInvalidPasses

		_, err := usecase.NewShowConfig(testutil.NewMockConfigManager(), loader).Execute(context.Background(), usecase.ShowConfigInput{})

		assert.ErrorIs(t, err, domain.ErrInvalidPasses)
	})
}

func TestInitConfig_Execute(t *testing.T) {
	t.Run("defaults config and returns path", func(t *testing.T) {
		manager := testutil.NewMockConfigManager()

		out, err := usecase.NewInitConfig(manager).Execute(context.Background(), usecase.InitConfigInput{})

		require.NoError(t, err)
		assert.Equal(t, manager.Info.Path, out.Path)
		assert.True(t, manager.InitCalled)
		require.NotNil(t, manager.InitConfig)
		assert.Equal(t, domain.DefaultPasses, manager.InitConfig.Wipe.Passes)
		assert.False(t, manager.InitOverride)
	})

	t.Run("force overwrites", func(t *testing.T) {
		manager := testutil.NewMockConfigManager()

		_, err := usecase.NewInitConfig(manager).Execute(context.Background(), usecase.InitConfigInput{Force: true})

		require.NoError(t, err)
		assert.True(t, manager.InitOverride)
	})

	t.Run("existing file", func(t *testing.T) {
		manager := testutil.NewMockConfigManager()
		manager.InitErr = domain.ErrConfigExists

		_, err := usecase.NewInitConfig(manager).Execute(context.Background(), usecase.InitConfigInput{})

		assert.ErrorIs(t, err, domain.ErrConfigExists)
	})
}
