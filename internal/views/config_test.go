package views

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

// not parallel: the configuration is global.
func TestConfigureCheckSizes(t *testing.T) {
	prev := *config()
	defer Configure(prev)

	buf := bytes.NewBuffer(nil)
	Configure(Config{
		CheckSizes: true,
		Logger:     zerolog.New(buf).Level(zerolog.WarnLevel),
	})

	l := newFwdList(1, 2, 3)

	t.Run("matching size", func(t *testing.T) {
		buf.Reset()
		v := SubN(l.Begin(), l.End(), 3)

		assert.Equal(t, 3, v.Size())
		assert.Empty(t, buf.String())
	})

	t.Run("mismatch is logged and the explicit size is kept", func(t *testing.T) {
		buf.Reset()
		v := SubN(l.Begin(), l.End(), 5)

		assert.Equal(t, 5, v.Size())
		assert.Contains(t, buf.String(), `"level":"warn"`)
		assert.Contains(t, buf.String(), `"explicit-size":5`)
		assert.Contains(t, buf.String(), `"distance":3`)
	})

	t.Run("random access positions are not checked", func(t *testing.T) {
		buf.Reset()
		s := intSlice{1, 2}
		SubN(s.Begin(), s.End(), 5)

		assert.Empty(t, buf.String())
	})

	t.Run("disabled check", func(t *testing.T) {
		Configure(Config{Logger: zerolog.New(buf)})
		buf.Reset()

		SubN(l.Begin(), l.End(), 5)
		assert.Empty(t, buf.String())
	})
}
