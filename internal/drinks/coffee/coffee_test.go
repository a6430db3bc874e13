package coffee

import (
	"bytes"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/creational/internal/logger"
)

func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()

	var buf bytes.Buffer
	logger.SetOutput(&buf)
	logger.SetVerbose(true)
	t.Cleanup(func() {
		logger.SetVerbose(false)
		logger.SetOutput(os.Stderr)
	})
	return &buf
}

func TestNew(t *testing.T) {
	f, err := New()

	require.NoError(t, err)
	assert.IsType(t, &Factory{}, f)
}

func TestFactory_Prepare(t *testing.T) {
	buf := captureLog(t)
	f, err := New()
	require.NoError(t, err)

	drink := f.Prepare(250)

	require.IsType(t, &Drink{}, drink)
	assert.Equal(t, "Coffee", drink.Kind())
	assert.Equal(t, "[INFO] Grind some beans, boil water, pour 250 ml, add cream and sugar, enjoy!\n", buf.String())

	_, err = uuid.Parse(drink.ID())
	assert.NoError(t, err, "drink ID should be a UUID")
}

func TestFactory_Prepare_NewInstanceEachTime(t *testing.T) {
	f := &Factory{}

	first := f.Prepare(100)
	second := f.Prepare(100)

	assert.NotSame(t, first, second)
	assert.NotEqual(t, first.ID(), second.ID())
}

func TestFactory_Prepare_AmountDoesNotChangeProduct(t *testing.T) {
	f := &Factory{}

	small := f.Prepare(1)
	large := f.Prepare(1000)

	assert.Equal(t, small.Kind(), large.Kind())
	assert.IsType(t, small, large)
}

func TestDrink_Consume(t *testing.T) {
	buf := captureLog(t)
	drink := (&Factory{}).Prepare(100)
	buf.Reset()

	drink.Consume()

	assert.Equal(t, "[INFO] This coffee is delicious!\n", buf.String())
}

func TestIdentifier(t *testing.T) {
	assert.Equal(t, "CoffeeFactory", Identifier)
	assert.Equal(t, "Coffee", Kind)
}
