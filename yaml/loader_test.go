package yaml_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/jobrag/yaml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCLI struct {
	Verbose      bool `short:"v"`
	StrictMarker bool

	Parse struct {
		Format      string `default:"text"`
		Concurrency int    `default:"4"`
	} `cmd:""`
}

func parse(t *testing.T, config string, args ...string) (*testCLI, error) {
	t.Helper()

	resolver, err := yaml.Loader(strings.NewReader(config))
	require.NoError(t, err)

	cli := &testCLI{}
	parser, err := kong.New(cli,
		kong.Writers(&bytes.Buffer{}, &bytes.Buffer{}),
		kong.Exit(func(int) {}),
		kong.Resolvers(resolver),
	)
	require.NoError(t, err)

	_, err = parser.Parse(args)
	return cli, err
}

func TestLoader(t *testing.T) {
	t.Parallel()

	t.Run("resolves top-level keys", func(t *testing.T) {
		t.Parallel()

		cli, err := parse(t, "verbose: true\nformat: json\n", "parse")

		require.NoError(t, err)
		assert.True(t, cli.Verbose)
		assert.Equal(t, "json", cli.Parse.Format)
	})

	t.Run("resolves keys in the command section", func(t *testing.T) {
		t.Parallel()

		cli, err := parse(t, "parse:\n  concurrency: 8\n", "parse")

		require.NoError(t, err)
		assert.Equal(t, 8, cli.Parse.Concurrency)
	})

	t.Run("command section wins over top-level keys", func(t *testing.T) {
		t.Parallel()

		cli, err := parse(t, "format: yaml\nparse:\n  format: json\n", "parse")

		require.NoError(t, err)
		assert.Equal(t, "json", cli.Parse.Format)
	})

	t.Run("accepts underscores for dashed flag names", func(t *testing.T) {
		t.Parallel()

		cli, err := parse(t, "strict_marker: true\n", "parse")

		require.NoError(t, err)
		assert.True(t, cli.StrictMarker)
	})

	t.Run("command line wins over config", func(t *testing.T) {
		t.Parallel()

		cli, err := parse(t, "format: json\n", "parse", "--format", "yaml")

		require.NoError(t, err)
		assert.Equal(t, "yaml", cli.Parse.Format)
	})

	t.Run("keeps defaults for an empty file", func(t *testing.T) {
		t.Parallel()

		cli, err := parse(t, "", "parse")

		require.NoError(t, err)
		assert.False(t, cli.Verbose)
		assert.Equal(t, "text", cli.Parse.Format)
		assert.Equal(t, 4, cli.Parse.Concurrency)
	})
}

func TestLoader_MalformedYAML(t *testing.T) {
	t.Parallel()

	_, err := yaml.Loader(strings.NewReader("format: [json\n"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse yaml config")
}
