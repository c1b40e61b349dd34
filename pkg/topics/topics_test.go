// pkg/topics/topics_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: cobra
// PURPOSE: Test topic loading and the topic aware help command

package topics

import (
	"bytes"
	"testing"
	"testing/fstest"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"dry-run.txt":     {Data: []byte("Information about dry-run mode")},
		"architecture.md": {Data: []byte("# Architecture\n\nDetails")},
		"config.txxt":     {Data: []byte("Configuration Guide")},
		"ignore.json":     {Data: []byte("{}")},
	}
}

func TestTopicManager_Load(t *testing.T) {
	t.Run("default_extensions", func(t *testing.T) {
		tm := New(testFS(), Options{})
		require.NoError(t, tm.Load())

		assert.Equal(t, []string{"architecture", "dry-run"}, tm.ListTopics())
		topic, ok := tm.GetTopic("dry-run")
		require.True(t, ok)
		assert.Equal(t, "Information about dry-run mode", topic.Content)
	})

	t.Run("custom_extensions", func(t *testing.T) {
		tm := New(testFS(), Options{Extensions: []string{".txxt"}})
		require.NoError(t, tm.Load())

		assert.Equal(t, []string{"config"}, tm.ListTopics())
	})
}

func TestEmbedded(t *testing.T) {
	tm := New(Embedded(), Options{})
	require.NoError(t, tm.Load())

	assert.Equal(t, []string{"config", "markers", "templates"}, tm.ListTopics())
	topic, ok := tm.GetTopic("Markers")
	require.True(t, ok)
	assert.Contains(t, topic.Content, "THEMER_END")
}

func TestInitialize(t *testing.T) {
	newRoot := func() (*cobra.Command, *bytes.Buffer) {
		root := &cobra.Command{Use: "themer", Run: func(*cobra.Command, []string) {}}
		root.AddCommand(&cobra.Command{Use: "themes", Short: "List themes", Run: func(*cobra.Command, []string) {}})
		var buf bytes.Buffer
		root.SetOut(&buf)
		root.SetErr(&buf)
		return root, &buf
	}

	t.Run("topics_list", func(t *testing.T) {
		root, buf := newRoot()
		_, err := Initialize(root, testFS(), Options{})
		require.NoError(t, err)

		root.SetArgs([]string{"help", "topics"})
		require.NoError(t, root.Execute())

		assert.Equal(t, "Available help topics:\n  architecture\n  dry-run\n\n"+
			"Use 'themer help <topic>' to read about a specific topic.\n", buf.String())
	})

	t.Run("topic", func(t *testing.T) {
		root, buf := newRoot()
		_, err := Initialize(root, testFS(), Options{})
		require.NoError(t, err)

		root.SetArgs([]string{"help", "dry-run"})
		require.NoError(t, root.Execute())

		assert.Equal(t, "Information about dry-run mode", buf.String())
	})

	t.Run("command_help", func(t *testing.T) {
		root, buf := newRoot()
		_, err := Initialize(root, testFS(), Options{})
		require.NoError(t, err)

		root.SetArgs([]string{"help", "themes"})
		require.NoError(t, root.Execute())

		assert.Contains(t, buf.String(), "List themes")
	})
}

func TestGlamourRenderer_NonMarkdownUnchanged(t *testing.T) {
	r := NewGlamourRenderer()
	assert.Equal(t, "plain text", r.Render("plain text", ".txt"))
}
