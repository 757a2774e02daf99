package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	err := New(ErrSymlinkCreate, "could not create symlink")
	assert.Equal(t, ErrSymlinkCreate, err.Code)
	assert.Equal(t, "[SYMLINK_CREATE] could not create symlink", err.Error())
	assert.Nil(t, err.Wrapped)
}

func TestNewf(t *testing.T) {
	err := Newf(ErrAgentParse, "bad front matter in %s", "reviewer.md")
	assert.Equal(t, "[AGENT_PARSE] bad front matter in reviewer.md", err.Error())
}

func TestWrap(t *testing.T) {
	underlying := fmt.Errorf("permission denied")
	err := Wrap(underlying, ErrDirCreate, "could not create target directory")

	require.NotNil(t, err)
	assert.Equal(t, ErrDirCreate, err.Code)
	assert.Contains(t, err.Error(), "permission denied")
	assert.Equal(t, underlying, errors.Unwrap(err))
}

func TestWrapNil(t *testing.T) {
	assert.Nil(t, Wrap(nil, ErrDirCreate, "should be nil"))
	assert.Nil(t, Wrapf(nil, ErrDirCreate, "should be %s", "nil"))
}

func TestIs(t *testing.T) {
	err := New(ErrFileRename, "rename failed")
	assert.True(t, errors.Is(err, New(ErrFileRename, "other message")))
	assert.False(t, errors.Is(err, New(ErrSymlinkCreate, "rename failed")))
}

func TestIsErrorCode(t *testing.T) {
	err := Wrap(fmt.Errorf("boom"), ErrInstallFailed, "install failed")
	assert.True(t, IsErrorCode(err, ErrInstallFailed))
	assert.False(t, IsErrorCode(err, ErrConfigLoad))
	assert.False(t, IsErrorCode(fmt.Errorf("plain"), ErrInstallFailed))
}

func TestIsErrorCodeThroughWrapping(t *testing.T) {
	inner := New(ErrAgentNotFound, "no such agent")
	outer := fmt.Errorf("loading definitions: %w", inner)
	assert.True(t, IsErrorCode(outer, ErrAgentNotFound))
}

func TestGetErrorCode(t *testing.T) {
	assert.Equal(t, ErrConfigParse, GetErrorCode(New(ErrConfigParse, "bad toml")))
	assert.Equal(t, ErrUnknown, GetErrorCode(fmt.Errorf("plain")))
}

func TestWithDetail(t *testing.T) {
	err := New(ErrSymlinkCreate, "failed").
		WithDetail("target", "/home/user/.claude/agents")
	assert.Equal(t, "/home/user/.claude/agents", err.Details["target"])
}
