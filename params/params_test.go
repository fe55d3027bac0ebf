package params

import (
	"testing"

	"github.com/rohanthewiz/assert"
)

func TestDynamicParserSingleParam(t *testing.T) {
	prefix, suffix := SplitPattern("/{id}")
	assert.Equal(t, prefix, "/")

	parser := NewDynamicParser(suffix)
	arity, pattern := parser.ExpectedParams()
	assert.Equal(t, arity, 1)
	assert.Equal(t, pattern, "/{id}")

	parsed, err := parser.Parse("/5", len(prefix))
	assert.Nil(t, err)

	str, err := parsed.GetStr("id")
	assert.Nil(t, err)
	assert.Equal(t, str, "5")

	n, err := Get[int](parsed, "id")
	assert.Nil(t, err)
	assert.Equal(t, n, 5)

	f, err := Get[float64](parsed, "id")
	assert.Nil(t, err)
	assert.Equal(t, f, 5.0)
}

func TestDynamicParserParamThenLiteral(t *testing.T) {
	prefix, suffix := SplitPattern("/test/{id}/xxx")
	assert.Equal(t, prefix, "/test/")

	parser := NewDynamicParser(suffix)
	parsed, err := parser.Parse("/test/5/xxx", len(prefix))
	assert.Nil(t, err)

	str, err := parsed.GetStr("id")
	assert.Nil(t, err)
	assert.Equal(t, str, "5")
}

func TestDynamicParserInvalidSegment(t *testing.T) {
	prefix, suffix := SplitPattern("/test/{id}/xxx")
	parser := NewDynamicParser(suffix)

	_, err := parser.Parse("/test/5/yyy", len(prefix))
	assert.True(t, err != nil)

	pe, ok := err.(*Error)
	assert.True(t, ok)
	assert.Equal(t, pe.Kind, KindInvalidSegment)
}

func TestDynamicParserNotFound(t *testing.T) {
	prefix, suffix := SplitPattern("/test/{id}")
	parser := NewDynamicParser(suffix)

	_, err := parser.Parse("/test/", len(prefix))
	assert.True(t, err != nil)

	pe, ok := err.(*Error)
	assert.True(t, ok)
	assert.Equal(t, pe.Kind, KindNotFound)
}

func TestDynamicParserUnknownParameter(t *testing.T) {
	prefix, suffix := SplitPattern("/{id}")
	parser := NewDynamicParser(suffix)

	parsed, err := parser.Parse("/5", len(prefix))
	assert.Nil(t, err)

	_, err = parsed.GetStr("nope")
	assert.True(t, err != nil)

	pe, ok := err.(*Error)
	assert.True(t, ok)
	assert.Equal(t, pe.Kind, KindUnknownParameter)
}

func TestDynamicParserExactMatchNoTrailingSegments(t *testing.T) {
	parser := NewDynamicParser("")
	arity, _ := parser.ExpectedParams()
	assert.Equal(t, arity, 0)

	_, err := parser.Parse("/items", len("/items"))
	assert.Nil(t, err)

	_, err = parser.Parse("/items/5", len("/items"))
	assert.True(t, err != nil)
	pe, ok := err.(*Error)
	assert.True(t, ok)
	assert.Equal(t, pe.Kind, KindNotFound)
}
