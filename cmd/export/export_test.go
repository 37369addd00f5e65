package export_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"fjacquet/expenses/cmd/export"
	"fjacquet/expenses/cmd/root"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root.Init()
	if !export.Cmd.HasParent() {
		root.Cmd.AddCommand(export.Cmd)
	}

	var out bytes.Buffer
	root.Cmd.SetOut(&out)
	root.Cmd.SetErr(&bytes.Buffer{})
	root.Cmd.SetArgs(append([]string{"export"}, args...))
	err := root.Cmd.Execute()
	return out.String(), err
}

func TestExportCommand_Metadata(t *testing.T) {
	assert.Equal(t, "export file...", export.Cmd.Use)

	flag := export.Cmd.Flags().Lookup("output")
	require.NotNil(t, flag)
	assert.Equal(t, "o", flag.Shorthand)
	assert.Equal(t, "", flag.DefValue)
}

func TestExportCommand(t *testing.T) {
	path := filepath.Join("..", "..", "testdata", "nordea_simple.txt")

	t.Run("stdout", func(t *testing.T) {
		out, err := execute(t, "--csv-delimiter", ",", path)
		require.NoError(t, err)

		lines := strings.Split(strings.TrimSpace(out), "\n")
		require.Len(t, lines, 4)
		assert.True(t, strings.HasPrefix(lines[0], "Account,EntryDate,BookingDate,Month,"))
		assert.True(t, strings.HasPrefix(lines[1], "FI1234567890123456,02.05.2018,2018-05-02,05.2018,"))
		assert.Contains(t, lines[3], ",-300.00,James Bond,FI9876543210123456,NDEAFIHH,")
	})

	t.Run("file with semicolons", func(t *testing.T) {
		output := filepath.Join(t.TempDir(), "nested", "out.csv")

		out, err := execute(t, "--csv-delimiter", ";", "-o", output, path)
		require.NoError(t, err)
		assert.Empty(t, out)

		data, err := os.ReadFile(output)
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(string(data), "Account;EntryDate;"))
		assert.Equal(t, 4, strings.Count(string(data), "\n"))
	})
}
