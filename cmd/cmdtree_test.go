package cmd_test

import (
	"bytes"
	"testing"

	"github.com/named-data/pngmsg/cmd"
	"github.com/stretchr/testify/assert"
)

func testTree(calls *[][]string) *cmd.CmdTree {
	record := func(args []string) {
		*calls = append(*calls, args)
	}
	return &cmd.CmdTree{
		Name: "pngmsg",
		Help: "Hide messages inside PNG chunks",
		Sub: []*cmd.CmdTree{{
			Name: "encode",
			Help: "Encode a message",
			Fun:  record,
		}, {
			// separator
		}, {
			Name: "version",
			Help: "Print version",
			Fun:  record,
		}},
	}
}

func captureUsage(t *testing.T) (*bytes.Buffer, *int) {
	var out bytes.Buffer
	code := -1
	output, exit := cmd.Output, cmd.Exit
	t.Cleanup(func() {
		cmd.Output, cmd.Exit = output, exit
	})
	cmd.Output = &out
	cmd.Exit = func(c int) { code = c }
	return &out, &code
}

func TestExecuteDispatch(t *testing.T) {
	_, code := captureUsage(t)
	var calls [][]string
	tree := testTree(&calls)

	tree.Execute([]string{"pngmsg", "encode", "a.png", "ruSt", "hello"})
	assert.Equal(t, [][]string{{"pngmsg encode", "a.png", "ruSt", "hello"}}, calls)
	assert.Equal(t, -1, *code)
}

func TestExecuteUsage(t *testing.T) {
	out, code := captureUsage(t)
	var calls [][]string
	tree := testTree(&calls)

	tree.Execute([]string{"pngmsg"})
	assert.Equal(t, 2, *code)
	assert.Contains(t, out.String(), "Usage: pngmsg [command]")
	assert.Contains(t, out.String(), "  encode      Encode a message")
	assert.Empty(t, calls)

	out.Reset()
	*code = -1
	tree.Execute([]string{"pngmsg", "bogus"})
	assert.Equal(t, 2, *code)
	assert.Contains(t, out.String(), "  version     Print version")
	assert.Empty(t, calls)
}
