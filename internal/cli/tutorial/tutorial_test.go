package tutorial

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTutorialCmd(t *testing.T) {
	cmd := TutorialCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{})

	assert.NoError(t, cmd.Execute())
	assert.Equal(t, tutorialContent, out.String())
	assert.Contains(t, out.String(), "flowforge use board")
}
