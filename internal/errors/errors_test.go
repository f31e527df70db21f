package errors

import (
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPathErrorMessageAndKind(t *testing.T) {
	err := NotFound("/tmp/missing")
	assert.Equal(t, "path does not exist: /tmp/missing", err.Error())
	assert.Equal(t, PathNotFound, KindOf(err))
}

func TestIoErrorWrapsCause(t *testing.T) {
	cause := fs.ErrPermission
	err := IoError("cannot read file", "/tmp/x.log", cause)

	assert.Contains(t, err.Error(), "/tmp/x.log")
	assert.True(t, Is(err, fs.ErrPermission))
	assert.Equal(t, IoFailure, KindOf(err))
}

func TestConfigErrorKind(t *testing.T) {
	err := NewConfigError("cannot parse config file", "/tmp/config.json", ConfigInvalid, nil)
	assert.Equal(t, ConfigInvalid, KindOf(err))
	assert.Contains(t, err.Error(), "/tmp/config.json")
}

func TestKindOfForeignError(t *testing.T) {
	assert.Equal(t, Unknown, KindOf(fs.ErrClosed))
}

func TestNotDirectory(t *testing.T) {
	err := NotDirectory("/tmp/file.txt")
	assert.Equal(t, NotADirectory, KindOf(err))
}
