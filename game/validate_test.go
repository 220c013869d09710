package game

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDecodeState(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		state := newTestState()
		data, err := json.Marshal(state)
		require.NoError(t, err)

		got, err := DecodeState(bytes.NewReader(data))

		require.NoError(t, err)
		require.Equal(t, state.Hash(), got.Hash())
	})

	t.Run("document", func(t *testing.T) {
		doc := `{
			"width": 10, "height": 5,
			"scores": [1, 2],
			"hooks": [{"x": 0, "y": 4}, {"x": 5, "y": 4}],
			"fish": {"3": {"position": {"x": 1, "y": 4}, "value": 7}},
			"turn": 2, "max_turns": 10
		}`

		got, err := DecodeState(strings.NewReader(doc))

		require.NoError(t, err)
		require.Equal(t, 7, got.FishValue(3))
		p0, p1 := got.Scores()
		require.Equal(t, 1, p0)
		require.Equal(t, 2, p1)
		require.Equal(t, 2, got.Turn)
	})

	t.Run("missing fish", func(t *testing.T) {
		got, err := DecodeState(strings.NewReader(`{"width": 4, "height": 4, "hooks": [{"x": 0, "y": 3}, {"x": 2, "y": 3}]}`))

		require.NoError(t, err)
		require.NotNil(t, got.Fish)
		require.Empty(t, got.FishPositions())
	})

	t.Run("malformed", func(t *testing.T) {
		_, err := DecodeState(strings.NewReader(`{"width": "ten"}`))
		require.ErrorContains(t, err, "failed to decode state")

		_, err = DecodeState(strings.NewReader(`{"width": 4, "height": 4, "colour": "red"}`))
		require.ErrorContains(t, err, "failed to decode state")
	})

	t.Run("invalid", func(t *testing.T) {
		cases := map[string]string{
			"board size":  `{"width": 1, "height": 4}`,
			"hook":        `{"width": 4, "height": 4, "hooks": [{"x": 0, "y": 4}, {"x": 2, "y": 3}]}`,
			"shared cell": `{"width": 4, "height": 4, "hooks": [{"x": 1, "y": 1}, {"x": 1, "y": 1}]}`,
			"fish":        `{"width": 4, "height": 4, "hooks": [{"x": 0, "y": 3}, {"x": 2, "y": 3}], "fish": {"0": {"position": {"x": -1, "y": 0}, "value": 1}}}`,
			"turn":        `{"width": 4, "height": 4, "turn": -1}`,
		}
		for name, doc := range cases {
			_, err := DecodeState(strings.NewReader(doc))
			require.ErrorContains(t, err, "invalid state", name)
		}
	})
}
