package moderation

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestModerator_CensorsForbiddenWords(t *testing.T) {
	m, err := NewModerator([]string{"bobagem"}, '*')
	require.NoError(t, err)

	require.Equal(t, "isso é *******", m.Censor("isso é bobagem"))
}

func TestModerator_IgnoresCaseAndSpacing(t *testing.T) {
	m, err := NewModerator([]string{"bobagem"}, '*')
	require.NoError(t, err)

	require.Equal(t, "*******", m.Censor("BoBaGem"))
	require.Equal(t, "*********", m.Censor("bo ba gem"))
}

func TestModerator_LeavesCleanTextAlone(t *testing.T) {
	m, err := NewModerator([]string{"bobagem"}, '*')
	require.NoError(t, err)

	require.Equal(t, "Olá TI, tudo bem?", m.Censor("Olá TI, tudo bem?"))
}

func TestModerator_EmptyListIsPassThrough(t *testing.T) {
	m, err := NewModerator(nil, '*')
	require.NoError(t, err)

	require.Equal(t, "qualquer coisa", m.Censor("qualquer coisa"))
}
