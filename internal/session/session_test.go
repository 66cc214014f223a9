package session

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theirongolddev/fincoach/internal/advisor"
	"github.com/theirongolddev/fincoach/internal/content"
	"github.com/theirongolddev/fincoach/internal/model"
)

var fixedNow = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

type memJournal struct {
	profiles map[string]*model.Profile
	entries  map[string][]model.Entry
	failNext error
}

func newMemJournal() *memJournal {
	return &memJournal{
		profiles: make(map[string]*model.Profile),
		entries:  make(map[string][]model.Entry),
	}
}

func (j *memJournal) SaveProfile(id string, p *model.Profile) error {
	if err := j.failNext; err != nil {
		j.failNext = nil
		return err
	}
	j.profiles[id] = p
	return nil
}

func (j *memJournal) AppendEntry(id string, e model.Entry) error {
	if err := j.failNext; err != nil {
		j.failNext = nil
		return err
	}
	j.entries[id] = append(j.entries[id], e)
	return nil
}

func (j *memJournal) ClearHistory(id string) error {
	delete(j.entries, id)
	return nil
}

func newSession(t *testing.T, opts Options) *Session {
	t.Helper()
	adv, err := advisor.New(content.MustLoad())
	require.NoError(t, err)
	if opts.Now == nil {
		opts.Now = func() time.Time { return fixedNow }
	}
	s, err := New(adv, opts)
	require.NoError(t, err)
	return s
}

func studentInput() ProfileInput {
	return ProfileInput{
		Name:       "Alex",
		Age:        20,
		Occupation: "College Student",
		Income:     decimal.NewFromInt(1200),
		Experience: model.ExperienceBeginner,
		Goals:      "Build an emergency fund",
	}
}

func professionalInput() ProfileInput {
	return ProfileInput{
		Name:       "Sarah",
		Age:        32,
		Occupation: "Software Engineer",
		Income:     decimal.NewFromInt(7500),
		Experience: model.ExperienceIntermediate,
		Goals:      "Retire early",
	}
}

func TestNew_SeedsWelcome(t *testing.T) {
	s := newSession(t, Options{})

	require.Len(t, s.History, 1)
	assert.Equal(t, model.RoleAssistant, s.History[0].Role)
	assert.Equal(t, advisor.WelcomeMessage, s.History[0].Content)
	assert.Equal(t, fixedNow, s.History[0].Timestamp)
	assert.Regexp(t, `^sess-`, s.ID)
	assert.Regexp(t, `^msg-`, s.History[0].ID)
	assert.Nil(t, s.Profile)
}

func TestNew_RestoresHistoryWithoutReseeding(t *testing.T) {
	prior := []model.Entry{{ID: "msg-1", Role: model.RoleUser, Content: "hi"}}
	s := newSession(t, Options{ID: "sess-x", History: prior})

	assert.Equal(t, "sess-x", s.ID)
	assert.Equal(t, prior, s.History)
}

func TestSend_WithoutProfileAlwaysPrompts(t *testing.T) {
	s := newSession(t, Options{})

	for _, msg := range []string{"budget help", "invest?", "hello"} {
		reply, err := s.Send(msg)
		require.NoError(t, err)
		require.NotNil(t, reply)
		assert.Equal(t, advisor.NoProfilePrompt, reply.Content)
	}
	assert.Len(t, s.History, 7)
}

func TestSend_BlankIsNoop(t *testing.T) {
	s := newSession(t, Options{})

	for _, msg := range []string{"", "   ", "\n\t"} {
		reply, err := s.Send(msg)
		require.NoError(t, err)
		assert.Nil(t, reply)
	}
	assert.Len(t, s.History, 1)
}

func TestSend_TrimsAndAppendsBothEntries(t *testing.T) {
	s := newSession(t, Options{})
	_, err := s.SubmitProfile(studentInput())
	require.NoError(t, err)

	before := len(s.History)
	reply, err := s.Send("  Can you help me budget?  ")
	require.NoError(t, err)

	require.Len(t, s.History, before+2)
	user := s.History[before]
	assert.Equal(t, model.RoleUser, user.Role)
	assert.Equal(t, "Can you help me budget?", user.Content)

	want, _ := content.MustLoad().Advice(model.SegmentStudent, "budgeting")
	assert.Equal(t, want, reply.Content)
	assert.Equal(t, *reply, s.History[before+1])
}

func TestSubmitProfile_Student(t *testing.T) {
	s := newSession(t, Options{})

	p, err := s.SubmitProfile(studentInput())
	require.NoError(t, err)

	assert.Equal(t, model.SegmentStudent, p.Segment)
	assert.Equal(t, fixedNow, p.CreatedAt)
	assert.Same(t, p, s.Profile)

	housing, ok := p.Budget.Amount(model.CategoryHousing)
	require.True(t, ok)
	assert.True(t, housing.Equal(decimal.NewFromInt(396)))

	last := s.History[len(s.History)-1]
	assert.Contains(t, last.Content, "Hey Alex!")
	assert.Contains(t, last.Content, "college student")
}

func TestSubmitProfile_ProfessionalReplacesWholesale(t *testing.T) {
	s := newSession(t, Options{})
	_, err := s.SubmitProfile(studentInput())
	require.NoError(t, err)

	p, err := s.SubmitProfile(professionalInput())
	require.NoError(t, err)

	assert.Equal(t, model.SegmentProfessional, s.Profile.Segment)
	assert.Equal(t, "Sarah", s.Profile.Name)
	_, hasTextbooks := p.Budget.Amount(model.CategoryTextbooks)
	assert.False(t, hasTextbooks)
	inv, _ := p.Budget.Amount(model.CategoryInvestments)
	assert.True(t, inv.Equal(decimal.NewFromInt(1500)))
}

func TestSubmitProfile_ValidationLeavesStateUntouched(t *testing.T) {
	testcases := []struct {
		name   string
		mutate func(*ProfileInput)
	}{
		{"empty name", func(in *ProfileInput) { in.Name = "" }},
		{"zero age", func(in *ProfileInput) { in.Age = 0 }},
		{"negative age", func(in *ProfileInput) { in.Age = -3 }},
		{"empty occupation", func(in *ProfileInput) { in.Occupation = "" }},
		{"zero income", func(in *ProfileInput) { in.Income = decimal.Zero }},
		{"negative income", func(in *ProfileInput) { in.Income = decimal.NewFromInt(-10) }},
		{"empty experience", func(in *ProfileInput) { in.Experience = "" }},
		{"unknown experience", func(in *ProfileInput) { in.Experience = "Guru" }},
		{"empty goals", func(in *ProfileInput) { in.Goals = "" }},
	}

	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			j := newMemJournal()
			s := newSession(t, Options{Journal: j})
			_, err := s.SubmitProfile(studentInput())
			require.NoError(t, err)
			prev := s.Profile
			historyLen := len(s.History)

			in := professionalInput()
			tc.mutate(&in)
			_, err = s.SubmitProfile(in)

			assert.ErrorIs(t, err, ErrInvalidProfile)
			assert.Same(t, prev, s.Profile)
			assert.Len(t, s.History, historyLen)
			assert.Same(t, prev, j.profiles[s.ID])
		})
	}
}

func TestSubmitProfile_JournalFailureKeepsOldProfile(t *testing.T) {
	j := newMemJournal()
	s := newSession(t, Options{Journal: j})
	j.failNext = errors.New("disk full")

	_, err := s.SubmitProfile(studentInput())
	require.Error(t, err)
	assert.Nil(t, s.Profile)
}

func TestReset(t *testing.T) {
	t.Run("without profile", func(t *testing.T) {
		s := newSession(t, Options{})
		_, err := s.Send("hello")
		require.NoError(t, err)

		require.NoError(t, s.Reset())
		require.Len(t, s.History, 1)
		assert.Equal(t, advisor.WelcomeMessage, s.History[0].Content)
	})

	t.Run("with profile", func(t *testing.T) {
		j := newMemJournal()
		s := newSession(t, Options{Journal: j})
		_, err := s.SubmitProfile(professionalInput())
		require.NoError(t, err)
		_, err = s.Send("taxes?")
		require.NoError(t, err)

		require.NoError(t, s.Reset())
		require.Len(t, s.History, 2)
		assert.Equal(t, advisor.WelcomeMessage, s.History[0].Content)
		assert.Equal(t, advisor.PersonalizedWelcome(s.Profile), s.History[1].Content)
		assert.NotNil(t, s.Profile)
		assert.Equal(t, s.History, j.entries[s.ID])
	})
}

func TestJournalReceivesEveryEntry(t *testing.T) {
	j := newMemJournal()
	s := newSession(t, Options{Journal: j})
	_, err := s.SubmitProfile(studentInput())
	require.NoError(t, err)
	_, err = s.Send("how do I save?")
	require.NoError(t, err)

	assert.Equal(t, s.History, j.entries[s.ID])
	assert.Same(t, s.Profile, j.profiles[s.ID])
}

func TestQuickAction(t *testing.T) {
	s := newSession(t, Options{})
	_, err := s.SubmitProfile(professionalInput())
	require.NoError(t, err)

	reply, err := s.QuickAction("investment")
	require.NoError(t, err)
	want, _ := content.MustLoad().Advice(model.SegmentProfessional, "investing")
	assert.Equal(t, want, reply.Content)
	assert.Equal(t, "What are some good investment options for me?", s.History[len(s.History)-2].Content)

	_, err = s.QuickAction("lottery")
	assert.Error(t, err)
}

func TestRecordThenReply(t *testing.T) {
	s := newSession(t, Options{})
	_, err := s.SubmitProfile(professionalInput())
	require.NoError(t, err)

	in, err := s.Record("  my debt  ")
	require.NoError(t, err)
	require.NotNil(t, in)
	assert.Equal(t, "my debt", in.Content)

	out, err := s.Reply(in.Content)
	require.NoError(t, err)
	assert.Contains(t, out.Content, "high-interest debt first")
}

func TestParseProfileInput(t *testing.T) {
	in, err := ParseProfileInput(" Sarah ", "32", "Engineer", "$7,500.50", "Advanced", "Grow wealth")
	require.NoError(t, err)
	assert.Equal(t, "Sarah", in.Name)
	assert.Equal(t, 32, in.Age)
	assert.True(t, in.Income.Equal(decimal.RequireFromString("7500.5")))
	assert.Equal(t, model.ExperienceAdvanced, in.Experience)
	require.NoError(t, in.Validate())

	_, err = ParseProfileInput("a", "twenty", "b", "1", "Beginner", "c")
	assert.ErrorIs(t, err, ErrInvalidProfile)

	_, err = ParseProfileInput("a", "20", "b", "lots", "Beginner", "c")
	assert.ErrorIs(t, err, ErrInvalidProfile)

	in, err = ParseProfileInput("", "", "", "", "", "")
	require.NoError(t, err)
	err = in.Validate()
	assert.ErrorIs(t, err, ErrInvalidProfile)
	assert.ErrorContains(t, err, "name, age, occupation, income, experience, goals")
}

func TestParseCommand(t *testing.T) {
	testcases := []struct {
		line string
		want Command
	}{
		{"how do I budget?", Command{Kind: CommandMessage, Arg: "how do I budget?"}},
		{"  spaced  ", Command{Kind: CommandMessage, Arg: "spaced"}},
		{"", Command{Kind: CommandMessage}},
		{"exit", Command{Kind: CommandExit}},
		{"QUIT", Command{Kind: CommandExit}},
		{"/quit", Command{Kind: CommandExit}},
		{"/reset", Command{Kind: CommandReset}},
		{"/clear", Command{Kind: CommandReset}},
		{"/quick Investment", Command{Kind: CommandQuick, Arg: "investment"}},
		{"/quick", Command{Kind: CommandQuick}},
		{"/profile", Command{Kind: CommandProfile}},
		{"/help", Command{Kind: CommandHelp}},
		{"/dance now", Command{Kind: CommandUnknown, Arg: "dance"}},
	}

	for _, tc := range testcases {
		t.Run(tc.line, func(t *testing.T) {
			assert.Equal(t, tc.want, ParseCommand(tc.line))
		})
	}
}
