package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/require"
)

func TestStampModalKeepsFrameAroundBox(t *testing.T) {
	t.Parallel()

	frame := strings.Join([]string{"aaaaaaaaaa", "bbbb", "cccccccccc", "dddddddddd"}, "\n")
	got := strings.Split(stampModal(frame, "XX\nYY", 3, 1, 10, 3), "\n")

	require.Equal(t, []string{"aaaaaaaaaa", "bbbXX     ", "cccYYccccc", "dddddddddd"}, got)
	for _, line := range got[1:3] {
		require.Equal(t, 10, ansi.StringWidth(line))
	}
}

func TestStampModalClipsToRows(t *testing.T) {
	t.Parallel()

	got := stampModal("1111\n2222", "A\nB\nC", 0, 1, 4, 2)
	require.Equal(t, "1111\nA222", got)
}

func TestEllipsize(t *testing.T) {
	t.Parallel()

	require.Equal(t, "Cadas…", ellipsize("Cadastrar Veículo", 6))
	require.Equal(t, "Sair", ellipsize("Sair", 10))
	require.Empty(t, ellipsize("Sair", 0))
}
