package key

import (
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/vinicius-lino-figueiredo/gomapper/adapter/embedded"
	"github.com/vinicius-lino-figueiredo/gomapper/domain"
)

type coercerMock struct{ mock.Mock }

func (c *coercerMock) Coerce(t domain.Type, raw any, field domain.FieldOptions) any {
	return c.Called(t, raw, field).Get(0)
}

func (c *coercerMock) TryCoerce(t domain.Type, raw any, field domain.FieldOptions) (any, error) {
	call := c.Called(t, raw, field)
	return call.Get(0), call.Error(1)
}

func (c *coercerMock) Read(t domain.Type, stored any, dflt any) any {
	return c.Called(t, stored, dflt).Get(0)
}

func (c *coercerMock) Serialize(values any) []any {
	v, _ := c.Called(values).Get(0).([]any)
	return v
}

type pet struct {
	Name string `mongo:"name"`
}

type KeyTestSuite struct {
	suite.Suite
}

func (s *KeyTestSuite) newKey(name string, t domain.Type, opts ...Option) *Key {
	k, err := New(name, t, opts...)
	s.Require().NoError(err)
	return k
}

func (s *KeyTestSuite) TestNew() {
	k := s.newKey("age", domain.Primitive(domain.Integer), WithDefault(18))
	s.Equal("age", k.Name())
	s.Equal(domain.Primitive(domain.Integer), k.Type())
	s.Equal(18, k.Default())
	s.Equal(domain.FieldOptions{}, k.Options())
}

func (s *KeyTestSuite) TestNoName() {
	k, err := New("", domain.Primitive(domain.String))
	s.Nil(k)
	s.ErrorIs(err, domain.ErrNoKeyName)
}

func (s *KeyTestSuite) TestEqual() {
	a := s.newKey("a", domain.Primitive(domain.String))
	b := s.newKey("a", domain.Primitive(domain.String), WithDefault("x"))
	c := s.newKey("a", domain.Primitive(domain.Integer))
	d := s.newKey("b", domain.Primitive(domain.String))

	s.True(a.Equal(b))
	s.True(b.Equal(a))
	s.False(a.Equal(c))
	s.False(a.Equal(d))
	s.False(a.Equal(nil))
	s.True((*Key)(nil).Equal(nil))
}

func (s *KeyTestSuite) TestEqualEmbedded() {
	schema := embedded.NewSchema[pet]()
	a := s.newKey("pet", domain.EmbeddedType(schema))
	b := s.newKey("pet", domain.EmbeddedType(schema))
	c := s.newKey("pet", domain.EmbeddedType(embedded.NewSchema[pet]()))
	s.True(a.Equal(b))
	s.False(a.Equal(c))
}

func (s *KeyTestSuite) TestNative() {
	for _, t := range []domain.Type{domain.Primitive(domain.String), {}} {
		k := s.newKey("a", t)
		s.True(k.Native())
		s.False(k.EmbeddedDocument())
	}
	k := s.newKey("a", domain.EmbeddedType(embedded.NewSchema[pet]()))
	s.False(k.Native())
	s.True(k.EmbeddedDocument())
}

func (s *KeyTestSuite) TestSet() {
	s.Equal(int64(7), s.newKey("a", domain.Primitive(domain.Integer)).Set("007"))
	s.Nil(s.newKey("a", domain.Primitive(domain.Integer)).Set("abc"))
	s.Equal(true, s.newKey("a", domain.Primitive(domain.Boolean)).Set("true"))
	s.Equal(false, s.newKey("a", domain.Primitive(domain.Boolean)).Set("0"))
	s.Equal(true, s.newKey("a", domain.Primitive(domain.Boolean)).Set(1))
	s.Nil(s.newKey("a", domain.Primitive(domain.Date)).Set("not a date"))
	s.Equal("raw", s.newKey("a", domain.Type{}).Set("raw"))
}

func (s *KeyTestSuite) TestGet() {
	s.Equal([]any{}, s.newKey("a", domain.Primitive(domain.Array)).Get(nil))
	s.Equal("x", s.newKey("a", domain.Primitive(domain.String), WithDefault("x")).Get(nil))
	s.Equal("y", s.newKey("a", domain.Primitive(domain.String), WithDefault("x")).Get("y"))
}

func (s *KeyTestSuite) TestSerialize() {
	schema := embedded.NewSchema[pet]()
	k := s.newKey("pets", domain.Primitive(domain.Array), WithSerialize(schema))
	s.Same(schema, k.Options().Serialize)

	attrs := []any{map[string]any{"name": "Rex"}}
	docs := k.Set(attrs)
	s.True(schema.Is(docs.([]any)[0]))
	s.Equal(attrs, k.Serialize(docs))

	plain := s.newKey("tags", domain.Primitive(domain.Array))
	values := []any{1, 2}
	s.Equal(values, plain.Serialize(values))
}

func (s *KeyTestSuite) TestWithCoercer() {
	c := new(coercerMock)
	t := domain.Primitive(domain.String)
	c.On("Coerce", t, 1, domain.FieldOptions{}).Return("one").Once()
	c.On("Read", t, nil, "dflt").Return("dflt").Once()

	k := s.newKey("a", t, WithCoercer(c), WithDefault("dflt"))
	s.Equal("one", k.Set(1))
	s.Equal("dflt", k.Get(nil))
	c.AssertExpectations(s.T())
}

func TestKeyTestSuite(t *testing.T) {
	suite.Run(t, new(KeyTestSuite))
}
