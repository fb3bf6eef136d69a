package resumefmt

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateInputRejectsInvalidUTF8(t *testing.T) {
	assert.Equal(t, ErrInvalidUTF8, ValidateInput([]byte{0xff, 0xfe, 0xfd}))
}

func TestValidateInputRejectsBinary(t *testing.T) {
	assert.Equal(t, ErrBinaryInput, ValidateInput(append([]byte("hello"), 0x00)))

	noisy := bytes.Repeat([]byte("abcdefghi\x01"), 10)
	assert.Equal(t, ErrBinaryInput, ValidateInput(noisy))
}

func TestValidateInputRejectsEmpty(t *testing.T) {
	assert.Equal(t, ErrEmptyInput, ValidateInput(nil))
	assert.Equal(t, ErrEmptyInput, ValidateInput([]byte(" \n\t\r\n")))
}

func TestValidateInputAcceptsResume(t *testing.T) {
	assert.NoError(t, ValidateInput([]byte(scenarioResume)))
	assert.NoError(t, ValidateInput([]byte("José García\r\n")))
}
