package resident

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	alice = Record{
		Name: "Alice Pauline", Room: "A100", Phone: "94351253", Email: "alice@example.com",
		Vaccinated: true, Faculty: "SDE",
		LastFetDate: NewDate(2021, time.October, 20), LastCollectionDate: NewDate(2021, time.October, 21),
	}
	bob = Record{
		Name: "Bob Choo", Room: "B200", Phone: "98765432", Email: "bob@example.com",
		Vaccinated: false, Faculty: "FASS",
		LastFetDate: NewDate(2021, time.October, 10),
	}
	carl = Record{
		Name: "Carl Kurz", Room: "C300", Phone: "95352563", Email: "heinz@example.com",
		Vaccinated: true, Faculty: "SOC",
	}
	elle = Record{
		Name: "Elle Meyer", Room: "E400", Phone: "9482224", Email: "werner@example.com",
		Vaccinated: false, Faculty: "FOE",
	}
)

func TestValidateReferences(t *testing.T) {
	invalid := []struct {
		name  string
		input string
	}{
		{"empty string", ""},
		{"spaces only", " "},
		{"no comma between rooms", "a213 b423"},
		{"digits in name", "peter 2"},
		{"two spaces after comma", "A213,  B423"},
		{"trailing comma", "A213,"},
	}
	for _, tt := range invalid {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateReferences(tt.input)
			assert.ErrorIs(t, err, ErrFormat)
			assert.False(t, IsValidReferences(tt.input))
		})
	}

	valid := []string{
		Sentinel,
		"peter jack",
		"Capital Tan",
		"peter jack, Capital Tan",
		"peter jack,Capital Tan",
		"a213",
		"A213",
		"A213, b423",
		"  A213, b423  ",
	}
	for _, input := range valid {
		assert.True(t, IsValidReferences(input), "input %q", input)
	}
}

func TestValidateReferences_NameRoomConflict(t *testing.T) {
	err := ValidateReferences("Peter, a213")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrAmbiguousMix)
	assert.False(t, errors.Is(err, ErrFormat), "a mixed list is not a format error")
}

func TestParseReferences(t *testing.T) {
	refs, err := ParseReferences("A101, a102")
	require.NoError(t, err)
	assert.Equal(t, KindRoom, refs.Kind)
	assert.Equal(t, 2, refs.Len())
	assert.Equal(t, "A101, a102", refs.String())
	assert.True(t, refs.Tokens[1].Matches("A102", "whoever"))

	refs, err = ParseReferences(Sentinel)
	require.NoError(t, err)
	assert.True(t, refs.IsEmpty())
	assert.Equal(t, Sentinel, refs.String())
}

const (
	davidLi   = "David Li; Room: C112; Phone: 91031282; Email: lidavid@example.com; Vaccinated: T; Faculty: SDE; Last Fet Date: 02-10-2021; Last Collection Date: 01-10-2021"
	alexYeoh  = "Alex Yeoh; Room: E417; Phone: 87438807; Email: alexyeoh@example.com; Vaccinated: T; Faculty: SOC; Last Fet Date: 01-10-2021; Last Collection Date: 10-10-2021"
	berniceYu = "Bernice Yu; Room: A213; Phone: 99272758; Email: berniceyu@example.com; Vaccinated: F; Faculty: FASS; Last Fet Date: 10-10-2021; Last Collection Date: 11-10-2021"
)

func TestValidateStorage(t *testing.T) {
	invalid := map[string]string{
		"empty string":   "",
		"spaces only":    " ",
		"missing field":  "David Li; Room: C112; Phone: 91031282; Email: lidavid@example.com; Vaccinated: T; Faculty: SDE; Last Fet Date: 02-10-2021;",
		"no comma":       alexYeoh + " " + berniceYu + "peter jack,Capital Tan",
		"fields swapped": "David Li; Phone: 91031282; Room: C112; Email: lidavid@example.com; Vaccinated: T; Faculty: SDE; Last Fet Date: 02-10-2021; Last Collection Date: 01-10-2021",
		"bad vaccinated": strings.Replace(davidLi, "Vaccinated: T", "Vaccinated: Y", 1),
		"bad date":       strings.Replace(davidLi, "02-10-2021", "31-02-2021", 1),
	}
	for name, input := range invalid {
		t.Run(name, func(t *testing.T) {
			assert.ErrorIs(t, ValidateStorage(input), ErrFormat)
			assert.False(t, IsValidStorage(input))
		})
	}

	valid := map[string]string{
		"sentinel":         Sentinel,
		"single entry":     davidLi,
		"multiple entries": alexYeoh + ", " + berniceYu + ", " + davidLi,
		"lower case": "david li; room: C112; phone: 91031282; Email: lidavid@example.com; vaccinated: t; " +
			"faculty: SDE; last fet date: 02-10-2021; last collection date: 01-10-2021",
		"comma no space":       alexYeoh + "," + berniceYu,
		"no space around ;:":   "David Li;Room:C112;Phone:91031282;Email: lidavid@example.com;Vaccinated:T;Faculty:SDE;Last Fet Date: 02-10-2021;Last Collection Date: 01-10-2021",
		"dates not set":        "Carl Kurz; Room: C300; Phone: 95352563; Email: heinz@example.com; Vaccinated: T; Faculty: SOC; Last Fet Date: None; Last Collection Date: None",
		"extra inner spacing":  "David Li ;  Room :  C112 ; Phone: 91031282; Email: lidavid@example.com; Vaccinated: T; Faculty: SDE; Last  Fet Date: 02-10-2021; Last Collection Date: 01-10-2021",
		"lower case none date": "Carl Kurz; Room: C300; Phone: 95352563; Email: heinz@example.com; Vaccinated: T; Faculty: SOC; Last Fet Date: none; Last Collection Date: NONE",
	}
	for name, input := range valid {
		t.Run(name, func(t *testing.T) {
			assert.NoError(t, ValidateStorage(input))
		})
	}
}

func TestDecodeStorage(t *testing.T) {
	records, err := DecodeStorage(Sentinel)
	require.NoError(t, err)
	assert.Empty(t, records)

	records, err = DecodeStorage(alexYeoh + ", " + berniceYu)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "Alex Yeoh", records[0].Name)
	assert.True(t, records[0].Vaccinated)
	assert.Equal(t, "A213", records[1].Room)
	assert.False(t, records[1].Vaccinated)
	assert.Equal(t, NewDate(2021, time.October, 11), records[1].LastCollectionDate)
}

func TestEncodeDecodeIdempotent(t *testing.T) {
	inputs := []string{
		Sentinel,
		davidLi,
		alexYeoh + "," + berniceYu,
		"david li;room:c112;phone:91031282;email: lidavid@example.com;vaccinated:f;faculty:SDE;last fet date:None;last collection date:01-10-2021",
	}
	for _, input := range inputs {
		records, err := DecodeStorage(input)
		require.NoError(t, err)
		once := EncodeStorage(records)

		again, err := DecodeStorage(once)
		require.NoError(t, err, "canonical output must decode")
		assert.Equal(t, records, again)
		assert.Equal(t, once, EncodeStorage(again))
	}

	assert.Equal(t, davidLi, EncodeStorage(mustDecode(t, davidLi)))
}

func TestParseDate(t *testing.T) {
	for _, input := range []string{"None", "none", "NONE"} {
		d, err := ParseDate(input)
		require.NoError(t, err, input)
		assert.False(t, d.IsSet(), input)
		assert.Equal(t, Sentinel, d.String())
	}

	d, err := ParseDate("02-10-2021")
	require.NoError(t, err)
	assert.Equal(t, NewDate(2021, time.October, 2), d)

	for _, input := range []string{"", "Nonee", "2021-10-02", "31-02-2021"} {
		_, err := ParseDate(input)
		assert.ErrorIs(t, err, ErrFormat, input)
	}
}

func TestRecordString(t *testing.T) {
	assert.Equal(t,
		"Carl Kurz; Room: C300; Phone: 95352563; Email: heinz@example.com; Vaccinated: T; Faculty: SOC; Last Fet Date: None; Last Collection Date: None",
		carl.String())
	assert.NoError(t, carl.Validate())
}

func TestFromForms(t *testing.T) {
	l, err := FromForms(Sentinel, Sentinel)
	require.NoError(t, err)
	assert.True(t, l.IsEmpty())

	l, err = FromForms("E417, A213", alexYeoh+","+berniceYu)
	require.NoError(t, err)
	assert.Equal(t, 2, l.Len())
	assert.Equal(t, "E417, A213", l.Display())
	assert.Equal(t, alexYeoh+","+berniceYu, l.Storage(), "forms are kept as read")

	_, err = FromForms("E417", alexYeoh+", "+berniceYu)
	assert.ErrorIs(t, err, ErrFormat, "count mismatch")

	_, err = FromForms(Sentinel, davidLi)
	assert.ErrorIs(t, err, ErrFormat, "one side empty")
}

func TestListUnvaccinated(t *testing.T) {
	empty := Empty()
	assert.False(t, empty.HasUnvaccinated())
	assert.Equal(t, 0, empty.NumUnvaccinated())

	l := FromRecords([]Record{alice, bob, carl, elle})
	assert.True(t, l.HasUnvaccinated())
	assert.Equal(t, 2, l.NumUnvaccinated())

	vaccinated := FromRecords([]Record{alice, carl})
	assert.False(t, vaccinated.HasUnvaccinated())
}

func TestCombine(t *testing.T) {
	toAdd := []Record{alice}

	// empty current, one person
	l := Empty().Combine(toAdd)
	assert.Equal(t, alice.Name, l.Display())
	assert.Equal(t, alice.String(), l.Storage())

	// empty current, several persons
	toAdd = append(toAdd, bob, carl)
	l = Empty().Combine(toAdd)
	assert.Equal(t, "Alice Pauline, Bob Choo, Carl Kurz", l.Display())
	assert.Equal(t, alice.String()+", "+bob.String()+", "+carl.String(), l.Storage())

	// current not empty
	current, err := FromForms(elle.Name, elle.String())
	require.NoError(t, err)
	l = current.Combine(toAdd)
	assert.Equal(t, "Elle Meyer, Alice Pauline, Bob Choo, Carl Kurz", l.Display())
	assert.Equal(t, elle.String()+", "+alice.String()+", "+bob.String()+", "+carl.String(), l.Storage())
	assert.Equal(t, 1, current.Len(), "receiver must not change")
}

func TestCombine_KeepsExistingTokensVerbatim(t *testing.T) {
	loose := "David Li;Room:C112;Phone:91031282;Email: lidavid@example.com;Vaccinated:T;Faculty:SDE;Last Fet Date: 02-10-2021;Last Collection Date: 01-10-2021"
	current, err := FromForms("c112", loose)
	require.NoError(t, err)

	l := current.Combine([]Record{bob})
	assert.Equal(t, "c112, Bob Choo", l.Display())
	assert.Equal(t, loose+", "+bob.String(), l.Storage())
}

func TestCombine_CommaOnlySeparators(t *testing.T) {
	current, err := FromForms("E417,A213", alexYeoh+","+berniceYu)
	require.NoError(t, err)

	l := current.Combine([]Record{bob})
	assert.Equal(t, "E417,A213, Bob Choo", l.Display())
	assert.Equal(t, alexYeoh+","+berniceYu+", "+bob.String(), l.Storage())
	assert.Equal(t, alexYeoh+","+berniceYu, current.Storage(), "receiver must not change")

	rebuilt, err := FromForms(l.Display(), l.Storage())
	require.NoError(t, err)
	assert.Equal(t, l.Records(), rebuilt.Records())

	assert.Equal(t, current.Storage(), current.Combine(nil).Storage())
}

func TestCombine_Associative(t *testing.T) {
	base := FromRecords([]Record{elle})
	a := []Record{alice}
	b := []Record{bob, carl}

	stepwise := base.Combine(a).Combine(b)
	together := base.Combine(append(append([]Record{}, a...), b...))

	assert.Equal(t, together.Display(), stepwise.Display())
	assert.Equal(t, together.Storage(), stepwise.Storage())
}

func TestListFormsStayAligned(t *testing.T) {
	lists := []List{
		Empty(),
		FromRecords([]Record{alice}),
		FromRecords([]Record{alice, bob, carl}).Combine([]Record{elle}),
	}
	for _, l := range lists {
		rebuilt, err := FromForms(l.Display(), l.Storage())
		require.NoError(t, err)
		assert.Equal(t, l.Len(), rebuilt.Len())
		assert.Equal(t, l.Records(), rebuilt.Records())
	}
}

func TestContains(t *testing.T) {
	l := FromRecords([]Record{alice, bob})
	moved := alice
	moved.Phone = "11111111"
	assert.True(t, l.Contains(moved), "identity is room and name")

	other := alice
	other.Room = "A101"
	assert.False(t, l.Contains(other))
}

func mustDecode(t *testing.T, s string) []Record {
	t.Helper()
	records, err := DecodeStorage(s)
	require.NoError(t, err)
	return records
}
