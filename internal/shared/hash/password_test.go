package hash

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"golang.org/x/crypto/bcrypt"
)

const knownHash = "$2a$08$K8y0i4Wyqyei3SiGHLEd.OweXJt7sno2HdPVrMvVf06kGgAZvPkga"

type PasswordSuite struct{ suite.Suite }

func (s *PasswordSuite) TestParse_KnownHash() {
	p, err := Parse(knownHash)
	require.NoError(s.T(), err)

	assert.Equal(s.T(), "2a", p.Version())
	assert.Equal(s.T(), 8, p.Cost())
	assert.Equal(s.T(), "K8y0i4Wyqyei3SiGHLEd.O", p.Salt())
	assert.Equal(s.T(), "weXJt7sno2HdPVrMvVf06kGgAZvPkga", p.Digest())
	assert.Equal(s.T(), knownHash, p.String())
	assert.False(s.T(), p.IsZero())

	salt, err := p.DecodedSalt()
	require.NoError(s.T(), err)
	assert.Len(s.T(), salt, rawSaltSize)

	digest, err := p.DecodedDigest()
	require.NoError(s.T(), err)
	assert.Len(s.T(), digest, rawDigestSize)
}

func (s *PasswordSuite) TestParse_Versions_TableDriven() {
	body := "K8y0i4Wyqyei3SiGHLEd.OweXJt7sno2HdPVrMvVf06kGgAZvPkga"

	tests := []struct {
		name    string
		input   string
		version string
	}{
		{name: "legacy 2", input: "$2$08$" + body, version: "2"},
		{name: "2a", input: "$2a$08$" + body, version: "2a"},
		{name: "2b", input: "$2b$08$" + body, version: "2b"},
		{name: "2y", input: "$2y$08$" + body, version: "2y"},
	}

	for _, tc := range tests {
		s.Run(tc.name, func() {
			p, err := Parse(tc.input)
			require.NoError(s.T(), err)
			assert.Equal(s.T(), tc.version, p.Version())
			assert.Equal(s.T(), 8, p.Cost())
			assert.Equal(s.T(), tc.input, p.String())
		})
	}
}

func (s *PasswordSuite) TestParse_Errors_TableDriven() {
	body := "K8y0i4Wyqyei3SiGHLEd.OweXJt7sno2HdPVrMvVf06kGgAZvPkga"

	tests := []struct {
		name   string
		input  string
		reason string
	}{
		{name: "no delimiters", input: "blarp", reason: "invalid hash string"},
		{name: "empty", input: "", reason: "invalid hash string"},
		{name: "too many delimiters", input: "$2a$08$" + body + "$", reason: "invalid hash string"},
		{name: "missing leading delimiter", input: "2a$08$x$" + body, reason: "invalid hash string"},
		{name: "unsupported version", input: "$-1$10$blarp", reason: "invalid hash version"},
		{name: "unknown letter", input: "$2x$08$" + body, reason: "invalid hash version"},
		{name: "future major version", input: "$3a$08$" + body, reason: "invalid hash version"},
		{name: "overlong version", input: "$2ab$08$" + body, reason: "invalid hash version"},
		{name: "cost below range", input: "$2a$03$" + body, reason: "invalid cost: 3"},
		{name: "cost above range", input: "$2a$32$" + body, reason: "invalid cost: 32"},
		{name: "cost not numeric", input: "$2a$0x$" + body, reason: "invalid cost: 0x"},
		{name: "cost too wide", input: "$2a$100$" + body, reason: "invalid cost: 100"},
		{name: "digest truncated", input: "$2a$08$" + body[:50], reason: "invalid hash length: salt and digest span 50 characters, want 53"},
		{name: "salt outside alphabet", input: "$2a$08$K8y0i4Wyqyei3SiGHLEd+OweXJt7sno2HdPVrMvVf06kGgAZvPkga", reason: "invalid salt encoding"},
		{name: "digest outside alphabet", input: "$2a$08$K8y0i4Wyqyei3SiGHLEd.OweXJt7sno2HdPVrMvVf06kGgAZvPkg=", reason: "invalid digest encoding"},
	}

	for _, tc := range tests {
		s.Run(tc.name, func() {
			p, err := Parse(tc.input)
			require.Error(s.T(), err)
			assert.True(s.T(), p.IsZero())
			assert.ErrorIs(s.T(), err, ErrInvalidHash)

			var formatErr *FormatError
			require.True(s.T(), errors.As(err, &formatErr))
			assert.Equal(s.T(), tc.reason, formatErr.Reason)
			assert.Equal(s.T(), "hash: "+tc.reason, err.Error())
		})
	}
}

func (s *PasswordSuite) TestVerify_AllVersionsShareDigest() {
	created, err := Create("foobar", bcrypt.MinCost)
	require.NoError(s.T(), err)

	body := strings.TrimPrefix(created.String(), "$"+created.Version()+"$")
	for _, version := range []string{"2", "2a", "2b", "2y"} {
		s.Run(version, func() {
			p, err := Parse("$" + version + "$" + body)
			require.NoError(s.T(), err)
			assert.True(s.T(), p.Verify("foobar"))
			assert.False(s.T(), p.Verify("foobaz"))
		})
	}
}

func (s *PasswordSuite) TestCreate_VerifyRoundTrip_TableDriven() {
	tests := []struct {
		name     string
		password string
		cost     int
	}{
		{name: "simple secret", password: "secret", cost: 4},
		{name: "empty password", password: "", cost: 4},
		{name: "unicode password", password: "pässwörd-日本語", cost: 5},
		{name: "72 byte password", password: strings.Repeat("a", 72), cost: 4},
	}

	for _, tc := range tests {
		s.Run(tc.name, func() {
			p, err := Create(tc.password, tc.cost)
			require.NoError(s.T(), err)
			assert.Equal(s.T(), tc.cost, p.Cost())
			assert.True(s.T(), p.Verify(tc.password))
			assert.False(s.T(), p.Verify("x"+tc.password))

			reparsed, err := Parse(p.String())
			require.NoError(s.T(), err)
			assert.True(s.T(), reparsed.Equal(p))
		})
	}
}

func (s *PasswordSuite) TestCreate_DefaultCost() {
	scheme := NewScheme(NewBcryptKDF(bcrypt.MinCost))

	p, err := scheme.Create("secret", 0)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), bcrypt.MinCost, p.Cost())
}

func (s *PasswordSuite) TestCreate_PropagatesKDFError() {
	_, err := Create("secret", bcrypt.MaxCost+1)
	require.Error(s.T(), err)

	var costErr bcrypt.InvalidCostError
	assert.True(s.T(), errors.As(err, &costErr))
	assert.NotErrorIs(s.T(), err, ErrInvalidHash)

	_, err = Create(strings.Repeat("a", 73), bcrypt.MinCost)
	assert.ErrorIs(s.T(), err, bcrypt.ErrPasswordTooLong)
}

func (s *PasswordSuite) TestVerify_ZeroValue() {
	var p Password
	assert.False(s.T(), p.Verify(""))
	assert.True(s.T(), p.IsZero())
}

func (s *PasswordSuite) TestEqual_TableDriven() {
	other := "$2a$08$K8y0i4Wyqyei3SiGHLEd.OweXJt7sno2HdPVrMvVf06kGgAZvPkgb"

	left, err := Parse(knownHash)
	require.NoError(s.T(), err)
	same, err := Parse(knownHash)
	require.NoError(s.T(), err)
	different, err := Parse(other)
	require.NoError(s.T(), err)

	assert.True(s.T(), left.Equal(same))
	assert.False(s.T(), left.Equal(different))
}

func (s *PasswordSuite) TestScanAndValue_TableDriven() {
	tests := []struct {
		name      string
		src       any
		expectErr bool
	}{
		{name: "string column", src: knownHash},
		{name: "bytes column", src: []byte(knownHash)},
		{name: "null column", src: nil, expectErr: true},
		{name: "malformed column", src: "not-a-hash", expectErr: true},
		{name: "unsupported type", src: 42, expectErr: true},
	}

	for _, tc := range tests {
		s.Run(tc.name, func() {
			var p Password
			err := p.Scan(tc.src)
			if tc.expectErr {
				require.Error(s.T(), err)
				assert.True(s.T(), p.IsZero())
				return
			}
			require.NoError(s.T(), err)
			assert.Equal(s.T(), "2a", p.Version())

			value, err := p.Value()
			require.NoError(s.T(), err)
			assert.Equal(s.T(), driver.Value(knownHash), value)
		})
	}

	var zero Password
	value, err := zero.Value()
	require.NoError(s.T(), err)
	assert.Nil(s.T(), value)
}

func (s *PasswordSuite) TestText_JSONRoundTrip() {
	type row struct {
		Hash Password `json:"hash"`
	}

	p, err := Parse(knownHash)
	require.NoError(s.T(), err)

	encoded, err := json.Marshal(row{Hash: p})
	require.NoError(s.T(), err)
	assert.JSONEq(s.T(), `{"hash":"`+knownHash+`"}`, string(encoded))

	var decoded row
	require.NoError(s.T(), json.Unmarshal(encoded, &decoded))
	assert.True(s.T(), decoded.Hash.Equal(p))

	err = json.Unmarshal([]byte(`{"hash":"blarp"}`), &decoded)
	assert.ErrorIs(s.T(), err, ErrInvalidHash)
}

// Hashes produced by other bcrypt implementations (OpenBSD, python bcrypt).
var externalVectors = []struct {
	name     string
	password string
	hashed   string
}{
	{name: "empty password", password: "", hashed: "$2b$12$JGZJSHED/woRIKSoTp5bZea/99GHy6jGK1ToltiTObaiRQMLxH3we"},
	{name: "pass", password: "pass", hashed: "$2b$12$GNk.4LiPcEcQxTb/FiWhfu52a11RA6Jh5r4mLpezmg6.DlYS3MKzy"},
	{name: "letmein", password: "letmein", hashed: "$2b$12$biCUWeQbpfJiIT0hZJqOWOQAPN93iU3MPDHkvsnKx3tqV2yWRtiNK"},
	{name: "digits", password: "010203040506070809", hashed: "$2b$12$60xRZwFvBNfExmNnV.twIOgz89kFEpp83ruKh5bufkUWQvVikbfL2"},
	{name: "chess opening", password: "1.e4 e5 2. Nf3 Nc6 3. Bb4 Bb5", hashed: "$2b$12$9cgE2qZ1LbIKMPerEq/gIeTCKUHaB6v9QJmjmEY1A01lkT3hL3eb6"},
	{name: "symbols", password: "!@#$%^&*()", hashed: "$2b$12$51NJndAjnyZOvS7YSH6rWesdaN02VMVMQnxv2b48Oe.pBxe1mFg6K"},
	{name: "mixed punctuation", password: "LI\"}41SWG(SD@^:~td", hashed: "$2b$12$hakLP0gLwtpiA0LB.jgEP.NCyuc8GkA.k943vBdX6qMJie5flQaJO"},
	{name: "repeated block", password: "VTaT^O<b%[8\\M7CJ&krtVTaT^O<b%[8\\M7CJ&krt", hashed: "$2b$12$o3Q7Grn/7RHqockRlJWaveTMz1KcClmMaDR.KAnV3gPUlwcNsSfKq"},
	{name: "quoted block", password: "\"j%MgQ\"c{dRr07FDO{qo1j%MgQ\"c{dRr07FDO{qo1", hashed: "$2b$12$uG5.qLAVM6g9oFp6ucDAZe7QfjAz8qSFB8pFEximoK856UbnXCD.i"},
	{name: "74 byte password", password: "HI`#ZWSY,wCXj>jIz(=-8AM[+\"L$${l(:]LBih&?)KHe*rLN$,z_g<]WWP1#Udh#\\gN+M9n*4", hashed: "$2b$12$qJAEBcCXXO5bF.O1iZhy9uEl35W84j9d1H6OAVfP19uR8hhS4QQzy"},
	{name: "57 byte password", password: "012345678901234567890123456789012345678901234567890123456", hashed: "$2a$10$XajjQvNhvvRt5GSeFk1xFe5l47dONXg781AmZtd869sO8zfsHuw7C"},
}

func (s *PasswordSuite) TestVerify_ExternalVectors_TableDriven() {
	if testing.Short() {
		s.T().Skip("cost 12 vectors")
	}

	for _, tc := range externalVectors {
		s.Run(tc.name, func() {
			p, err := Parse(tc.hashed)
			require.NoError(s.T(), err)

			assert.True(s.T(), p.Verify(tc.password))
			assert.False(s.T(), p.Verify("x"+tc.password))
			assert.Equal(s.T(), tc.hashed, p.String())
		})
	}
}

func TestPasswordSuite(t *testing.T) {
	suite.Run(t, new(PasswordSuite))
}
