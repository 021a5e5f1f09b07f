package hash

import (
	"crypto/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type Base64Suite struct{ suite.Suite }

func (s *Base64Suite) TestEncodeN_TableDriven() {
	tests := []struct {
		name   string
		input  []byte
		n      int
		expect string
	}{
		{name: "empty input", input: []byte{}, n: 0, expect: ""},
		{name: "single zero byte", input: []byte{0x00}, n: 1, expect: ".."},
		{name: "single ff byte", input: []byte{0xff}, n: 1, expect: "9u"},
		{name: "two zero bytes", input: []byte{0x00, 0x00}, n: 2, expect: "..."},
		{name: "two ff bytes", input: []byte{0xff, 0xff}, n: 2, expect: "996"},
		{name: "full zero triple", input: []byte{0x00, 0x00, 0x00}, n: 3, expect: "...."},
		{name: "full ff triple", input: []byte{0xff, 0xff, 0xff}, n: 3, expect: "9999"},
		{name: "ascii triple", input: []byte("abc"), n: 3, expect: "WUHh"},
		{name: "truncated tail", input: []byte("hello"), n: 5, expect: "YETqZE6"},
		{name: "prefix only", input: []byte("hello"), n: 3, expect: "YETq"},
		{name: "sixteen byte salt", input: []byte{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15}, n: 16, expect: "..CA.uOD/eaGAOmJB.yMBu"},
	}

	for _, tc := range tests {
		s.Run(tc.name, func() {
			encoded, err := EncodeN(tc.input, tc.n)
			require.NoError(s.T(), err)
			assert.Equal(s.T(), tc.expect, encoded)
			assert.Len(s.T(), encoded, EncodedLen(tc.n))
		})
	}
}

func (s *Base64Suite) TestEncodeN_RejectsLengthOutOfRange() {
	for _, n := range []int{-1, 4, 100} {
		_, err := EncodeN([]byte("abc"), n)
		require.Error(s.T(), err)
		assert.ErrorIs(s.T(), err, ErrEncodeLength)
	}
}

func (s *Base64Suite) TestEncode_DropsFinalByte() {
	magic := []byte("OrpheanBeholderScryDoubt")

	encoded := Encode(magic)
	assert.Len(s.T(), encoded, digestLength)

	explicit, err := EncodeN(magic, len(magic)-1)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), explicit, encoded)

	full, err := EncodeN(magic, len(magic))
	require.NoError(s.T(), err)
	assert.Equal(s.T(), "R1HuYETfZiHjYE7qXETwS0LwcSPtbUHy", full)
	assert.NotEqual(s.T(), full, encoded)

	assert.Equal(s.T(), "", Encode(nil))
}

func (s *Base64Suite) TestEncode_DeterministicAndAlphabetOnly() {
	for size := 0; size < 40; size++ {
		input := make([]byte, size)
		_, err := rand.Read(input)
		require.NoError(s.T(), err)

		first, err := EncodeN(input, size)
		require.NoError(s.T(), err)
		second, err := EncodeN(input, size)
		require.NoError(s.T(), err)

		assert.Equal(s.T(), first, second)
		assert.NotContains(s.T(), first, "=")
		for _, r := range first {
			assert.True(s.T(), strings.ContainsRune(alphabet, r), "unexpected character %q", r)
		}
	}
}

func (s *Base64Suite) TestDecode_InvertsEncode() {
	for size := 0; size < 40; size++ {
		input := make([]byte, size)
		_, err := rand.Read(input)
		require.NoError(s.T(), err)

		encoded, err := EncodeN(input, size)
		require.NoError(s.T(), err)

		decoded, err := Decode(encoded)
		require.NoError(s.T(), err)
		assert.Equal(s.T(), input, decoded)
	}
}

func (s *Base64Suite) TestDecode_TableDriven() {
	tests := []struct {
		name      string
		input     string
		expect    []byte
		expectErr bool
	}{
		{name: "known salt", input: "K8y0i4Wyqyei3SiGHLEd.O", expect: []byte{0x33, 0xed, 0x36, 0x93, 0xa6, 0x34, 0xb3, 0x48, 0x24, 0xe5, 0x49, 0x08, 0x24, 0xd1, 0x9f, 0x01}},
		{name: "ignores unused low bits", input: "9w", expect: []byte{0xff}},
		{name: "padding is not part of the alphabet", input: "WUHh==", expectErr: true},
		{name: "standard base64 symbol", input: "WU+h", expectErr: true},
		{name: "impossible length", input: "WUHhW", expectErr: true},
		{name: "line break", input: "WU\nHh", expectErr: true},
	}

	for _, tc := range tests {
		s.Run(tc.name, func() {
			decoded, err := Decode(tc.input)
			if tc.expectErr {
				require.Error(s.T(), err)
				assert.ErrorIs(s.T(), err, ErrInvalidEncoding)
				return
			}
			require.NoError(s.T(), err)
			assert.Equal(s.T(), tc.expect, decoded)
		})
	}
}

func TestBase64Suite(t *testing.T) {
	suite.Run(t, new(Base64Suite))
}
