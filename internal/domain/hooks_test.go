package domain

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHooks_RunPost_RegistrationOrder(t *testing.T) {
	hooks := NewHooks()

	var calls []string

	hooks.AddPostAction("build", func(context.Context) error {
		calls = append(calls, "first")
		return nil
	})
	hooks.AddPostAction("build", func(context.Context) error {
		calls = append(calls, "second")
		return nil
	})

	err := hooks.RunPost(context.Background(), "build")
	require.NoError(t, err)
	assert.Equal(t, []string{"first", "second"}, calls)
}

func TestHooks_RunPost_UnknownActionIsNoOp(t *testing.T) {
	hooks := NewHooks()

	hooks.AddPostAction("build", func(context.Context) error {
		t.Fatal("hook for a different action must not run")
		return nil
	})

	require.NoError(t, hooks.RunPost(context.Background(), "upload"))
	require.NoError(t, hooks.RunPre(context.Background(), "build"))
}

func TestHooks_AllHooksRunDespiteFailure(t *testing.T) {
	hooks := NewHooks()

	firstErr := fmt.Errorf("first hook failed")
	ran := false

	hooks.AddPostAction("upload", func(context.Context) error { return firstErr })
	hooks.AddPostAction("upload", func(context.Context) error {
		ran = true
		return nil
	})

	err := hooks.RunPost(context.Background(), "upload")
	require.ErrorIs(t, err, firstErr)
	assert.True(t, ran, "later hooks must still run after a failure")
}

func TestHooks_PreAndPostAreSeparate(t *testing.T) {
	hooks := NewHooks()

	var calls []string

	hooks.AddPreAction("clean", func(context.Context) error {
		calls = append(calls, "pre")
		return nil
	})
	hooks.AddPostAction("clean", func(context.Context) error {
		calls = append(calls, "post")
		return nil
	})

	require.NoError(t, hooks.RunPre(context.Background(), "clean"))
	assert.Equal(t, []string{"pre"}, calls)

	require.NoError(t, hooks.RunPost(context.Background(), "clean"))
	assert.Equal(t, []string{"pre", "post"}, calls)
}
