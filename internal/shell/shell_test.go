package shell

import (
	"bytes"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"github.com/bradenaw/sortedlist"
)

func run(t *testing.T, input string, opts Options) (*sortedlist.List, string) {
	t.Helper()
	list := sortedlist.New()
	var out bytes.Buffer
	require.NoError(t, New(list, strings.NewReader(input), &out, opts).Run())
	return list, out.String()
}

func TestSession(t *testing.T) {
	_, out := run(t, `
		i banana i apple i cherry p
		d banana p
		d banana
		i apple
		m cherry m banana
		q
	`, Options{})

	require.Equal(t, strings.Join([]string{
		"list = apple banana cherry ",
		"list = apple cherry ",
		"The string banana is not in the list.",
		"The string apple is already in the list.",
		"cherry is in the list",
		"banana is not in the list",
		"",
	}, "\n"), out)
}

func TestUppercaseAndUnknown(t *testing.T) {
	_, out := run(t, "I b I a P x F p Q p", Options{})
	require.Equal(t, strings.Join([]string{
		"list = a b ",
		"There is no x command",
		"Please try again",
		"list = ",
		"",
	}, "\n"), out)
}

func TestCommandFollowedDirectlyByString(t *testing.T) {
	list, out := run(t, "iapple ibanana mapple p q", Options{})
	require.Equal(t, "apple is in the list\nlist = apple banana \n", out)
	require.Equal(t, 0, list.Len())
}

func TestEachUnknownByteReported(t *testing.T) {
	_, out := run(t, "xyz q", Options{})
	require.Equal(t, strings.Join([]string{
		"There is no x command",
		"Please try again",
		"There is no y command",
		"Please try again",
		"There is no z command",
		"Please try again",
		"",
	}, "\n"), out)
}

func TestLongString(t *testing.T) {
	long := strings.Repeat("a", 70000)
	_, out := run(t, "i "+long+" m "+long+" p q", Options{})
	require.Equal(t, long+" is in the list\nlist = "+long+" \n", out)
}

func TestTruncate(t *testing.T) {
	require.Equal(t, "abcdef", Options{}.Truncate("abcdef"))
	require.Equal(t, "ab", Options{MaxTokenLen: 2}.Truncate("abcdef"))
	require.Equal(t, "a", Options{MaxTokenLen: 2}.Truncate("a"))
}

func TestPrompts(t *testing.T) {
	_, out := run(t, "i a m a q", Options{Prompt: true})
	require.Equal(t,
		commandPrompt+stringPrompt+
			commandPrompt+stringPrompt+"a is in the list\n"+
			commandPrompt,
		out,
	)
}

func TestMaxTokenLen(t *testing.T) {
	_, out := run(t, "i abcdef m abc m abcdef p", Options{MaxTokenLen: 3})
	require.Equal(t, "abc is in the list\nabc is in the list\nlist = abc \n", out)
}

func TestEndOfInputClears(t *testing.T) {
	list, out := run(t, "i a i b i", Options{})
	require.Empty(t, out)
	require.Equal(t, 0, list.Len())
	require.NoError(t, list.Check())
}

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) { return 0, errors.New("closed") }

func TestWriteError(t *testing.T) {
	list := sortedlist.New()
	err := New(list, strings.NewReader("p"), failWriter{}, Options{}).Run()
	require.Error(t, err)
	require.Contains(t, err.Error(), "writing output")
}
