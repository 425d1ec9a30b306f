package validator_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/fieldkit/pkg/nullable"
	"github.com/dmitrymomot/fieldkit/pkg/validator"
)

// argTranslator renders key and arguments verbatim so tests can assert the
// exact interpolation arguments an evaluator passed.
type argTranslator struct{}

func (argTranslator) T(key string, args ...string) string {
	if len(args) == 0 {
		return key
	}
	return key + "|" + strings.Join(args, "|")
}

// message unwraps a failure outcome, failing the test on a pass.
func message(t *testing.T, res nullable.Null[string]) string {
	t.Helper()
	msg, ok := res.Take()
	if !ok {
		t.Fatal("expected a validation failure, got pass")
	}
	return msg
}

func TestNew(t *testing.T) {
	t.Run("renders any field value as string", func(t *testing.T) {
		assert.Equal(t, "title", validator.New("title").Field())
		assert.Equal(t, "42", validator.New(42).Field())
	})

	t.Run("defaults to not required and not nullable", func(t *testing.T) {
		v := validator.New("title")
		assert.False(t, v.IsRequired())
		assert.False(t, v.IsNull())
	})
}

func TestBuilderChaining(t *testing.T) {
	t.Run("setters return updated copies", func(t *testing.T) {
		base := validator.New("title")
		required := base.SetAsRequired(true)

		assert.False(t, base.IsRequired())
		assert.True(t, required.IsRequired())
	})

	t.Run("last write wins", func(t *testing.T) {
		v := validator.New("count").
			SetAsRequired(true).
			SetMin(10).
			SetMin(3).
			SetInt32Value(nullable.New[int32](5))

		assert.True(t, v.ValidateInt32().IsUndefined())
	})

	t.Run("nullable flag is stored but not enforced", func(t *testing.T) {
		v := validator.New("title").
			SetAsNullable(true).
			SetStringValue(nullable.Undefined[string]())

		assert.True(t, v.IsNull())
		// emptiness still reported; the flag is for callers to consult
		assert.Equal(t, "title-empty", message(t, v.ValidateString()))
	})
}

func TestValueExtraction(t *testing.T) {
	t.Run("null and undefined numeric sources leave the slot empty", func(t *testing.T) {
		for name, src := range map[string]nullable.Null[int32]{
			"explicit null": nullable.Nil[int32](),
			"undefined":     nullable.Undefined[int32](),
		} {
			v := validator.New("count").SetAsRequired(true).SetInt32Value(src)
			assert.Equal(t, "count-empty", message(t, v.ValidateInt32()), name)
		}
	})

	t.Run("null string source collapses to empty string", func(t *testing.T) {
		v := validator.New("title").SetStringValue(nullable.Nil[string]())
		assert.Equal(t, "title-empty", message(t, v.ValidateString()))
	})

	t.Run("lower variant case-folds the extracted string", func(t *testing.T) {
		v := validator.New("color").
			SetAsRequired(true).
			SetAsCaseSensitive(true).
			SetOptionListString("red", "blue").
			SetStringValueLower(nullable.New("RED"))

		assert.True(t, v.ValidateListString().IsUndefined())
	})

	t.Run("setting a value twice replaces the first", func(t *testing.T) {
		v := validator.New("count").
			SetAsRequired(true).
			SetMax(10).
			SetInt32Value(nullable.New[int32](99)).
			SetInt32Value(nullable.New[int32](5))

		assert.True(t, v.ValidateInt32().IsUndefined())
	})
}

func TestIdempotence(t *testing.T) {
	t.Run("repeated evaluation yields identical outcomes", func(t *testing.T) {
		v := validator.New("title").
			SetMin(10).
			SetStringValue(nullable.New("short"))

		first := v.ValidateString()
		second := v.ValidateString()
		assert.Equal(t, first, second)
		assert.Equal(t, "title-min", message(t, second))
	})

	t.Run("option list comparison does not mutate the stored list", func(t *testing.T) {
		v := validator.New("color").
			SetAsRequired(true).
			SetOptionListString("Red", "Blue").
			SetStringValue(nullable.New("red"))

		// case-insensitive match folds per evaluation
		assert.True(t, v.ValidateListString().IsUndefined())

		// a later case-sensitive evaluation sees the original casing
		strict := v.SetAsCaseSensitive(true)
		assert.Equal(t, "color-invalid", message(t, strict.ValidateListString()))
	})
}

func TestWithTranslator(t *testing.T) {
	t.Run("evaluators resolve keys through the injected backend", func(t *testing.T) {
		v := validator.New("title").
			WithTranslator(argTranslator{}).
			SetMin(3).
			SetStringValue(nullable.New("ab"))

		assert.Equal(t, "title-min|min|3", message(t, v.ValidateString()))
	})

	t.Run("default backend returns the bare key", func(t *testing.T) {
		v := validator.New("title").
			SetMin(3).
			SetStringValue(nullable.New("ab"))

		assert.Equal(t, "title-min", message(t, v.ValidateString()))
	})
}
