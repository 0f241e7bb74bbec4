package extensions

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	fixture "github.com/pumped-fn/fixture-go"
)

func newTestLogger(buf *bytes.Buffer) *log.Logger {
	return log.NewWithOptions(buf, log.Options{Level: log.DebugLevel})
}

func TestLoggingExtension_LogsCreates(t *testing.T) {
	var buf bytes.Buffer

	addressRecipe := fixture.DefineRecipe[fixture.Tree](func(ctx *fixture.Context) (fixture.Tree, error) {
		return fixture.Tree{"id": ctx.AutoIncrement()}, nil
	}, fixture.WithName("address"))
	userRecipe := fixture.DefineRecipe[fixture.Tree](func(ctx *fixture.Context) (fixture.Tree, error) {
		address, err := fixture.FromRecipe(ctx, addressRecipe).CreateTree()
		if err != nil {
			return nil, err
		}
		return fixture.Tree{"address": address}, nil
	}, fixture.WithName("user"))

	users := userRecipe.CreateFactory(fixture.WithExtension(NewLoggingExtension(newTestLogger(&buf))))
	_, err := users.CreateN(2)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "createMany")
	assert.Contains(t, out, "count=2")
	assert.Contains(t, out, "recipe=user")
	assert.Contains(t, out, "recipe=address")
	assert.Contains(t, out, "nested=true")
	assert.Contains(t, out, "nested=false")
}

func TestLoggingExtension_LogsFailures(t *testing.T) {
	var buf bytes.Buffer

	r := fixture.DefineRecipe[fixture.Tree](func(ctx *fixture.Context) (fixture.Tree, error) {
		return nil, errors.New("boom")
	}, fixture.WithName("user"))

	_, err := r.CreateFactory(fixture.WithExtension(NewLoggingExtension(newTestLogger(&buf)))).CreateTree()
	require.Error(t, err)

	out := buf.String()
	assert.Contains(t, out, "create failed")
	assert.Contains(t, out, "err=boom")
	assert.NotContains(t, out, "duration=")
}

func TestLoggingExtension_DefaultsToPackageLogger(t *testing.T) {
	ext := NewLoggingExtension(nil)
	assert.Same(t, fixture.Logger(), ext.logger)
	assert.Equal(t, "logging", ext.Name())
}

func TestLoggingExtension_LogsNestedFailureOnce(t *testing.T) {
	var buf bytes.Buffer

	addressRecipe := fixture.DefineRecipe[fixture.Tree](func(ctx *fixture.Context) (fixture.Tree, error) {
		return nil, errors.New("boom")
	}, fixture.WithName("address"))
	userRecipe := fixture.DefineRecipe[fixture.Tree](func(ctx *fixture.Context) (fixture.Tree, error) {
		address, err := fixture.FromRecipe(ctx, addressRecipe).CreateTree()
		if err != nil {
			return nil, err
		}
		return fixture.Tree{"address": address}, nil
	}, fixture.WithName("user"))

	_, err := userRecipe.CreateFactory(fixture.WithExtension(NewLoggingExtension(newTestLogger(&buf)))).CreateN(2)
	require.Error(t, err)

	out := buf.String()
	assert.Equal(t, 1, strings.Count(out, "failed"))
	assert.Contains(t, out, "createMany failed")
}
