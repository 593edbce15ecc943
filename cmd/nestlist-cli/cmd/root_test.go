package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const groceriesYAML = `name: groceries
items:
  - key: fruit
    title: Fruit
    children:
      - key: apple
        title: Apple
      - key: pear
        title: Pear
  - key: milk
    title: Milk
  - key: bread
    title: Bread
`

type cli struct {
	t    *testing.T
	db   string
	list string
}

func newCLI(t *testing.T) *cli {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("NESTLIST_DB", "")
	return &cli{t: t, db: filepath.Join(dir, "test.db"), list: "groceries"}
}

// run executes one command line against the test database
func (c *cli) run(args ...string) (string, error) {
	c.t.Helper()
	moveBefore, moveAfter, moveInto = false, false, false
	createParent, createNote, importAs = "", "", ""
	searchThisList, showNotes, checkMode = false, false, "before"

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(append(args, "--db", c.db, "-l", c.list))
	err := rootCmd.Execute()
	if r := GetRepo(); r != nil {
		r.Close()
		repo = nil
	}
	return out.String(), err
}

func (c *cli) seed() {
	c.t.Helper()
	path := filepath.Join(c.t.TempDir(), "groceries.yaml")
	require.NoError(c.t, os.WriteFile(path, []byte(groceriesYAML), 0o644))
	out, err := c.run("import", path)
	require.NoError(c.t, err)
	assert.Contains(c.t, out, "Imported 5 items into groceries")
}

func TestTree(t *testing.T) {
	c := newCLI(t)
	c.seed()

	out, err := c.run("tree")
	require.NoError(t, err)
	assert.Equal(t, "fruit Fruit\n  apple Apple\n  pear Pear\nmilk Milk\nbread Bread\n", out)
}

func TestMove(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{
			name: "after sibling",
			args: []string{"move", "milk", "--after", "bread"},
			want: "fruit Fruit\n  apple Apple\n  pear Pear\nbread Bread\nmilk Milk\n",
		},
		{
			name: "into leaf",
			args: []string{"move", "bread", "--into", "milk"},
			want: "fruit Fruit\n  apple Apple\n  pear Pear\nmilk Milk\n  bread Bread\n",
		},
		{
			name: "child out to top level",
			args: []string{"move", "pear", "--before", "fruit"},
			want: "pear Pear\nfruit Fruit\n  apple Apple\nmilk Milk\nbread Bread\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newCLI(t)
			c.seed()

			_, err := c.run(tt.args...)
			require.NoError(t, err)

			out, err := c.run("tree")
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestMove_Errors(t *testing.T) {
	c := newCLI(t)
	c.seed()

	_, err := c.run("move", "fruit", "--into", "milk")
	assert.Error(t, err)

	_, err = c.run("move", "milk", "bread")
	assert.Error(t, err, "a mode flag is required")

	out, err := c.run("tree")
	require.NoError(t, err)
	assert.Contains(t, out, "fruit Fruit\n  apple Apple")
}

func TestCheck(t *testing.T) {
	c := newCLI(t)
	c.seed()

	out, err := c.run("check", "milk", "bread", "--mode", "child")
	require.NoError(t, err)
	assert.Equal(t, "yes\n", out)

	out, err = c.run("check", "fruit", "apple", "--mode", "after")
	require.NoError(t, err)
	assert.Contains(t, out, "no: ")
}

func TestCreateRenameDelete(t *testing.T) {
	c := newCLI(t)
	c.seed()

	out, err := c.run("create", "Banana", "--parent", "fruit")
	require.NoError(t, err)
	assert.Contains(t, out, "Created ")

	_, err = c.run("rename", "milk", "Oat milk")
	require.NoError(t, err)

	out, err = c.run("delete", "fruit")
	require.NoError(t, err)
	assert.Contains(t, out, "3 children")

	out, err = c.run("tree")
	require.NoError(t, err)
	assert.Equal(t, "milk Oat milk\nbread Bread\n", out)
}

func TestSearchListsAndExport(t *testing.T) {
	c := newCLI(t)
	c.seed()

	out, err := c.run("search", "APP")
	require.NoError(t, err)
	assert.Equal(t, "[groceries/fruit] apple Apple\n", out)

	out, err = c.run("search", "nothing-here")
	require.NoError(t, err)
	assert.Equal(t, "No results found\n", out)

	out, err = c.run("lists")
	require.NoError(t, err)
	assert.Equal(t, "* groceries\n", out)

	out, err = c.run("export")
	require.NoError(t, err)
	assert.Contains(t, out, "name: groceries")
	assert.Contains(t, out, "key: apple")

	_, err = c.run("delete-list", "groceries")
	require.NoError(t, err)
	out, err = c.run("lists")
	require.NoError(t, err)
	assert.Empty(t, out)
}
