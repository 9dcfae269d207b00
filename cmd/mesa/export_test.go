package main_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/mesa"
	main "github.com/fwojciec/mesa/cmd/mesa"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("writes the active project to the directory", func(t *testing.T) {
		t.Parallel()

		deps, _, stdout, _ := testDeps(t)
		_, err := deps.Store.UpdateActive(mesa.ProjectUpdate{
			Title:   strPtr("Meu Conto"),
			Content: strPtr("era uma vez"),
		})
		require.NoError(t, err)

		dir := t.TempDir()
		cmd := &main.ExportCmd{Dir: dir, Format: "md"}
		err = cmd.Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "Exported project p1")

		data, err := os.ReadFile(filepath.Join(dir, "Meu Conto.md"))
		require.NoError(t, err)
		assert.Equal(t, "era uma vez", string(data))
	})

	t.Run("rejects unknown formats", func(t *testing.T) {
		t.Parallel()

		deps, _, _, stderr := testDeps(t)

		cmd := &main.ExportCmd{Dir: t.TempDir(), Format: "pdf"}
		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Equal(t, mesa.EINVALID, mesa.ErrorCode(err))
		assert.Contains(t, stderr.String(), "error:")
	})
}
