package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runScript(t *testing.T, lines ...string) string {
	t.Helper()
	var out bytes.Buffer
	s := newSession(&out)
	defer s.close()
	require.NoError(t, script(s, strings.NewReader(strings.Join(lines, "\n"))))
	return out.String()
}

func TestSessionDerive(t *testing.T) {
	out := runScript(t,
		"set a 1",
		"set b 2",
		"sum s a b",
		"watch s",
		"set b 6",
		"inc a",
		"unwatch s",
		"inc a",
		"get s",
		"mul p a s",
		"dispose s",
		"inc a",
		"get p",
		"get s",
		"list",
	)

	assert.Equal(t, strings.Join([]string{
		"a = 1",
		"b = 2",
		"s = 3",
		"s -> 3",
		"s -> 7",
		"b = 6",
		"s -> 8",
		"a = 2",
		"a = 3",
		"s = 9",
		"p = 27",
		"disposed s",
		"a = 4",
		"p = 36",
		`error: tr: unknown key: "s"`,
		"a = 4",
		"b = 6",
		"p = 36",
	}, "\n")+"\n", out)
}

func TestSessionBind(t *testing.T) {
	out := runScript(t,
		"set a 1",
		"set b 2",
		"bind a b",
		"set a 5",
		"get b",
		"unbind a b",
		"set a 7",
		"get b",
	)

	assert.Equal(t, strings.Join([]string{
		"a = 1",
		"b = 2",
		"b = 1",
		"a = 5",
		"b = 5",
		"a = 7",
		"b = 5",
	}, "\n")+"\n", out)
}

func TestSessionErrors(t *testing.T) {
	out := runScript(t,
		"frobnicate",
		"set a x",
		"set a",
		"sum a missing",
		"set a 1",
		"sum a a",
		"# comment",
		"",
		"quit",
		"set z 1",
	)

	assert.Equal(t, strings.Join([]string{
		`unknown command "frobnicate", try help`,
		`error: invalid value "x"`,
		"usage: " + commands["set"].usage,
		`error: tr: unknown key: "missing"`,
		"a = 1",
		`error: tr: duplicate key: "a"`,
	}, "\n")+"\n", out)
}

func TestSessionHelp(t *testing.T) {
	out := runScript(t, "help")
	for _, cmd := range commands {
		assert.Contains(t, out, cmd.usage)
	}
}

func TestComplete(t *testing.T) {
	s := newSession(&bytes.Buffer{})
	assert.Equal(t, []string{"watch"}, s.complete("w"))
	assert.Equal(t, []string{"unbind", "unwatch"}, s.complete("un"))
	assert.Empty(t, s.complete("zz"))
}
