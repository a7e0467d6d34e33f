package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	t.Run("Data válida", func(t *testing.T) {
		date, err := ParseDate("2018-05-20")
		require.NoError(t, err)
		assert.Equal(t, time.Date(2018, 5, 20, 0, 0, 0, 0, time.UTC), *date)
	})

	t.Run("String vazia retorna data zero", func(t *testing.T) {
		date, err := ParseDate("")
		require.NoError(t, err)
		assert.True(t, date.IsZero())
	})

	t.Run("Formato inválido", func(t *testing.T) {
		date, err := ParseDate("20/05/2018")
		assert.Error(t, err)
		assert.Nil(t, date)
	})
}

func TestTruncateToDay(t *testing.T) {
	input := time.Date(2018, 7, 4, 23, 59, 58, 123, time.UTC)
	assert.Equal(t, time.Date(2018, 7, 4, 0, 0, 0, 0, time.UTC), TruncateToDay(input))
}
