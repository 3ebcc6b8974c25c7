package normalizer

import (
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/vinicius-lino-figueiredo/gomapper/domain"
)

type fieldSpecParserMock struct{ mock.Mock }

func (f *fieldSpecParserMock) Parse(spec any) []string {
	v, _ := f.Called(spec).Get(0).([]string)
	return v
}

type NormalizerTestSuite struct {
	suite.Suite
	n domain.OptionsNormalizer
}

func (s *NormalizerTestSuite) SetupTest() {
	s.n = NewNormalizer()
}

func (s *NormalizerTestSuite) TestEmpty() {
	s.Equal(domain.FindOptions{}, s.n.Normalize(map[string]any{}))
	s.Equal(domain.FindOptions{}, s.n.Normalize(nil))
	s.Equal(domain.FindOptions{}, s.n.Normalize("not options"))
}

func (s *NormalizerTestSuite) TestFields() {
	s.Equal([]string{"a", "b"}, s.n.Normalize(map[string]any{"fields": "a, b"}).Fields)
	s.Nil(s.n.Normalize(map[string]any{"fields": []any{}}).Fields)
	s.Equal([]string{"a", "b"}, s.n.Normalize(map[string]any{"fields": []string{"a", "b"}}).Fields)
}

func (s *NormalizerTestSuite) TestSelectAlias() {
	s.Equal([]string{"a"}, s.n.Normalize(map[string]any{"select": "a"}).Fields)
	s.Equal([]string{"f"}, s.n.Normalize(map[string]any{"select": "s", "fields": "f"}).Fields)
	s.Equal([]string{"s"}, s.n.Normalize(map[string]any{"select": "s", "fields": nil}).Fields)
}

func (s *NormalizerTestSuite) TestSkipAndLimit() {
	testCases := []struct {
		in  any
		out int64
	}{
		{in: 2, out: 2},
		{in: int32(3), out: 3},
		{in: uint(4), out: 4},
		{in: "2", out: 2},
		{in: " 5 ", out: 5},
		{in: "abc", out: 0},
		{in: 2.9, out: 2},
		{in: -1, out: 0},
		{in: "-3", out: 0},
		{in: nil, out: 0},
		{in: true, out: 0},
		{in: []any{1}, out: 0},
	}
	for _, tc := range testCases {
		opts := s.n.Normalize(map[string]any{"skip": tc.in, "limit": tc.in})
		s.Equal(tc.out, opts.Skip, "%#v", tc.in)
		s.Equal(tc.out, opts.Limit, "%#v", tc.in)
	}
}

func (s *NormalizerTestSuite) TestSort() {
	sort := []any{[]any{"name", 1}}
	s.Equal(sort, s.n.Normalize(map[string]any{"sort": sort}).Sort)
	s.Equal("name desc", s.n.Normalize(map[string]any{"sort": "name desc"}).Sort)
}

func (s *NormalizerTestSuite) TestUnknownKeys() {
	opts := s.n.Normalize(map[string]any{"order": "name", "offset": 3, "limit": 1})
	s.Equal(domain.FindOptions{Limit: 1}, opts)
}

func (s *NormalizerTestSuite) TestKeyKinds() {
	opts := s.n.Normalize(map[domain.Symbol]any{"skip": 1, "fields": "a"})
	s.Equal(domain.FindOptions{Skip: 1, Fields: []string{"a"}}, opts)
}

func (s *NormalizerTestSuite) TestFieldSpecParser() {
	p := new(fieldSpecParserMock)
	p.On("Parse", "spec").Return([]string{"parsed"}).Once()

	n := NewNormalizer(WithFieldSpecParser(p))
	s.Equal([]string{"parsed"}, n.Normalize(map[string]any{"fields": "spec"}).Fields)
	p.AssertExpectations(s.T())
}

func TestNormalizerTestSuite(t *testing.T) {
	suite.Run(t, new(NormalizerTestSuite))
}
